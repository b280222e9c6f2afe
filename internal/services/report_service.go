package services

import (
	"perfumeshop/internal/domain"
	"perfumeshop/internal/store"
)

// ReportService derives the dashboard and report figures from the current
// snapshot. Everything is recomputed per call; nothing is cached.
type ReportService struct {
	Store *store.Store
}

func NewReportService(st *store.Store) *ReportService { return &ReportService{Store: st} }

// LowStockProducts returns products at or below their minimum level.
// The boundary case (stock == minimum) counts as low.
func (s *ReportService) LowStockProducts() []domain.Product {
	st := s.Store.Snapshot()
	var out []domain.Product
	for _, p := range st.Products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

func (s *ReportService) OrdersByCustomer(customerID int64) []domain.Order {
	st := s.Store.Snapshot()
	var out []domain.Order
	for _, o := range st.Orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out
}

func (s *ReportService) TotalRevenue() float64 {
	st := s.Store.Snapshot()
	total := 0.0
	for _, o := range st.Orders {
		total += o.Total
	}
	return total
}

func (s *ReportService) AvgOrderValue() float64 {
	st := s.Store.Snapshot()
	if len(st.Orders) == 0 {
		return 0
	}
	total := 0.0
	for _, o := range st.Orders {
		total += o.Total
	}
	return total / float64(len(st.Orders))
}

func (s *ReportService) CustomersByType() map[string]int {
	st := s.Store.Snapshot()
	out := make(map[string]int, len(domain.CustomerTypes))
	for _, t := range domain.CustomerTypes {
		out[t] = 0
	}
	for _, c := range st.Customers {
		out[c.CustomerType]++
	}
	return out
}

func (s *ReportService) ActiveCustomers() int {
	st := s.Store.Snapshot()
	n := 0
	for _, c := range st.Customers {
		if c.Status == domain.StatusActive {
			n++
		}
	}
	return n
}

// TopProducts is the first n products in insertion order. The screens never
// sorted by a sales metric, so neither does this.
func (s *ReportService) TopProducts(n int) []domain.Product {
	st := s.Store.Snapshot()
	if n > len(st.Products) {
		n = len(st.Products)
	}
	return st.Products[:n]
}

// RecentOrders is the first n orders in insertion order.
func (s *ReportService) RecentOrders(n int) []domain.Order {
	st := s.Store.Snapshot()
	if n > len(st.Orders) {
		n = len(st.Orders)
	}
	return st.Orders[:n]
}

type Dashboard struct {
	TotalProducts  int     `json:"totalProducts"`
	TotalOrders    int     `json:"totalOrders"`
	TotalCustomers int     `json:"totalCustomers"`
	TotalSuppliers int     `json:"totalSuppliers"`
	LowStock       int     `json:"lowStockProducts"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
}

func (s *ReportService) Dashboard() Dashboard {
	st := s.Store.Snapshot()
	d := Dashboard{
		TotalProducts:  len(st.Products),
		TotalOrders:    len(st.Orders),
		TotalCustomers: len(st.Customers),
		TotalSuppliers: len(st.Suppliers),
	}
	for _, p := range st.Products {
		if p.LowStock() {
			d.LowStock++
		}
	}
	for _, o := range st.Orders {
		d.TotalRevenue += o.Total
	}
	if len(st.Orders) > 0 {
		d.AvgOrderValue = d.TotalRevenue / float64(len(st.Orders))
	}
	return d
}
