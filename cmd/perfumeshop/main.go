package main

import (
	"io"
	"log"
	"os"

	"perfumeshop/internal/config"
	applog "perfumeshop/internal/log"
	"perfumeshop/internal/repos"
	"perfumeshop/internal/services"
	"perfumeshop/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.StoreDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Session wiring: restore the persisted sign-in (or demo auto-login).
	local := repos.NewLocalRepo(db)
	authSvc := &services.AuthService{Local: local, Delay: cfg.LoginDelay}
	sess, err := authSvc.Restore()
	if err != nil {
		log.Fatal(err)
	}
	applog.Info("auth.restore", map[string]any{
		"user": sess.User.Email, "authenticated": sess.IsAuthenticated,
	})

	// Store boot: idle -> loading -> ready, seeding every collection.
	st := store.New()
	if err := st.Load(store.Seed, cfg.LoadDelay); err != nil {
		applog.Error("store.load", err, nil)
		os.Exit(1)
	}

	reports := services.NewReportService(st)
	d := reports.Dashboard()
	applog.Info("store.ready", map[string]any{
		"products":  d.TotalProducts,
		"suppliers": d.TotalSuppliers,
		"customers": d.TotalCustomers,
		"orders":    d.TotalOrders,
		"low_stock": d.LowStock,
		"revenue":   d.TotalRevenue,
	})
}
