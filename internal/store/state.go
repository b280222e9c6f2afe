package store

import "perfumeshop/internal/domain"

// Load-sequence states.
const (
	StatusIdle    = "idle"
	StatusLoading = "loading"
	StatusReady   = "ready"
	StatusError   = "error"
)

// State is one immutable snapshot of every collection. Mutations build a
// fresh State and swap it in; a snapshot handed to a reader is never
// modified afterwards.
type State struct {
	Products       []domain.Product
	Suppliers      []domain.Supplier
	Customers      []domain.Customer
	Orders         []domain.Order
	PurchaseOrders []domain.PurchaseOrder
	Users          []domain.User

	Loading bool
	Err     string
}

// SeedData is what a loader hands the store. The hard-coded fixture in
// seed.go satisfies it today; a real backend fetch could later.
type SeedData struct {
	Products       []domain.Product
	Suppliers      []domain.Supplier
	Customers      []domain.Customer
	Orders         []domain.Order
	PurchaseOrders []domain.PurchaseOrder
	Users          []domain.User
}

func cloned[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
