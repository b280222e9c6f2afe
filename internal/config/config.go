package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreDSN   string
	LogFile    string
	LoadDelay  time.Duration
	LoginDelay time.Duration
}

func Load() Config {
	// .env is optional; real env vars win either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] skipping .env: %v", err)
	}

	dsn := os.Getenv("STORE_DSN")
	if dsn == "" {
		dsn = "perfumeshop.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./perfumeshop.log"
	}

	cfg := Config{
		StoreDSN:   dsn,
		LogFile:    logFile,
		LoadDelay:  delayMS("LOAD_DELAY_MS", 1000),
		LoginDelay: delayMS("LOGIN_DELAY_MS", 1000),
	}
	log.Printf("[config] STORE_DSN=%s LOG_FILE=%s LOAD_DELAY_MS=%d LOGIN_DELAY_MS=%d",
		cfg.StoreDSN, cfg.LogFile, cfg.LoadDelay.Milliseconds(), cfg.LoginDelay.Milliseconds())
	return cfg
}

func delayMS(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
		log.Printf("[config] ignoring bad %s=%q", key, v)
	}
	return time.Duration(def) * time.Millisecond
}
