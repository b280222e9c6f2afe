package store

import (
	"fmt"
	"sync"
	"time"

	"perfumeshop/internal/domain"
	"perfumeshop/internal/validate"
)

// Store holds the authoritative in-memory snapshot of every collection.
// There is one logical writer; readers get immutable State values, so a
// reader never observes a half-applied mutation.
//
// Cross-entity references (SupplierID, CustomerID, ProductID) are advisory:
// deleting a referenced entity leaves the reference dangling on purpose.
type Store struct {
	mu     sync.RWMutex
	state  *State
	status string
	lastID int64
}

func New() *Store {
	return &Store{state: &State{}, status: StatusIdle}
}

// Snapshot returns the current state. The returned value and everything it
// references must be treated as read-only.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.state
}

func (s *Store) Status() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Load runs the idle → loading → ready/error sequence: flag loading, wait
// the simulated fetch latency, seed all collections from the loader. On
// loader failure the error message is surfaced on the snapshot and the
// store stays unusable until a restart; there is no retry.
func (s *Store) Load(loader func() (SeedData, error), delay time.Duration) error {
	s.mu.Lock()
	ns := *s.state
	ns.Loading = true
	ns.Err = ""
	s.state = &ns
	s.status = StatusLoading
	s.mu.Unlock()

	time.Sleep(delay)
	data, err := loader()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		es := *s.state
		es.Loading = false
		es.Err = err.Error()
		s.state = &es
		s.status = StatusError
		return err
	}
	s.state = &State{
		Products:       data.Products,
		Suppliers:      data.Suppliers,
		Customers:      data.Customers,
		Orders:         data.Orders,
		PurchaseOrders: data.PurchaseOrders,
		Users:          data.Users,
	}
	s.status = StatusReady
	s.lastID = maxSeedID(data)
	return nil
}

func maxSeedID(d SeedData) int64 {
	var m int64
	for _, p := range d.Products {
		m = max(m, p.ID)
	}
	for _, x := range d.Suppliers {
		m = max(m, x.ID)
	}
	for _, c := range d.Customers {
		m = max(m, c.ID)
	}
	for _, o := range d.Orders {
		m = max(m, o.ID)
	}
	for _, po := range d.PurchaseOrders {
		m = max(m, po.ID)
	}
	for _, u := range d.Users {
		m = max(m, u.ID)
	}
	return m
}

// nextID issues a timestamp-based id, bumped when the clock hasn't moved
// since the last one. Unique within the store's lifetime. Callers hold mu.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func today() string { return time.Now().Format(domain.DateOnly) }

// ---------- Products ----------

func (s *Store) AddProduct(cmd AddProductCommand) (domain.Product, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := today()
	p := domain.Product{
		ID:            s.nextID(),
		Name:          cmd.Name,
		Brand:         cmd.Brand,
		SKU:           cmd.SKU,
		FragranceType: cmd.FragranceType,
		Size:          cmd.Size,
		Category:      cmd.Category,
		CostPrice:     cmd.CostPrice,
		SellingPrice:  cmd.SellingPrice,
		CurrentStock:  cmd.CurrentStock,
		MinStockLevel: cmd.MinStockLevel,
		SupplierID:    cmd.SupplierID,
		Description:   cmd.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	ns := *s.state
	ns.Products = append(cloned(ns.Products), p)
	s.state = &ns
	return p, nil
}

// UpdateProduct replaces the product wholesale and re-stamps UpdatedAt;
// CreatedAt is carried over. Unknown id is a silent no-op.
func (s *Store) UpdateProduct(cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	ns.Products = cloned(ns.Products)
	for i, p := range ns.Products {
		if p.ID != cmd.ID {
			continue
		}
		ns.Products[i] = domain.Product{
			ID:            p.ID,
			Name:          cmd.Name,
			Brand:         cmd.Brand,
			SKU:           cmd.SKU,
			FragranceType: cmd.FragranceType,
			Size:          cmd.Size,
			Category:      cmd.Category,
			CostPrice:     cmd.CostPrice,
			SellingPrice:  cmd.SellingPrice,
			CurrentStock:  cmd.CurrentStock,
			MinStockLevel: cmd.MinStockLevel,
			SupplierID:    cmd.SupplierID,
			Description:   cmd.Description,
			CreatedAt:     p.CreatedAt,
			UpdatedAt:     today(),
		}
		break
	}
	s.state = &ns
	return nil
}

func (s *Store) DeleteProduct(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	out := make([]domain.Product, 0, len(ns.Products))
	for _, p := range ns.Products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	ns.Products = out
	s.state = &ns
}

// ---------- Suppliers ----------

func (s *Store) AddSupplier(cmd AddSupplierCommand) (domain.Supplier, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Supplier{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sp := domain.Supplier{
		ID:            s.nextID(),
		Name:          cmd.Name,
		Email:         cmd.Email,
		Phone:         cmd.Phone,
		Address:       cmd.Address,
		ContactPerson: cmd.ContactPerson,
		PaymentTerms:  cmd.PaymentTerms,
		Brands:        validate.Brands(cmd.Brands),
		TotalOrders:   0,
		TotalValue:    0,
		Rating:        0,
		Status:        domain.StatusActive,
	}
	ns := *s.state
	ns.Suppliers = append(cloned(ns.Suppliers), sp)
	s.state = &ns
	return sp, nil
}

func (s *Store) UpdateSupplier(cmd UpdateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	ns.Suppliers = cloned(ns.Suppliers)
	for i, sp := range ns.Suppliers {
		if sp.ID != cmd.ID {
			continue
		}
		ns.Suppliers[i] = domain.Supplier{
			ID:            sp.ID,
			Name:          cmd.Name,
			Email:         cmd.Email,
			Phone:         cmd.Phone,
			Address:       cmd.Address,
			ContactPerson: cmd.ContactPerson,
			PaymentTerms:  cmd.PaymentTerms,
			Brands:        validate.Brands(cmd.Brands),
			TotalOrders:   cmd.TotalOrders,
			TotalValue:    cmd.TotalValue,
			Rating:        cmd.Rating,
			Status:        cmd.Status,
		}
		break
	}
	s.state = &ns
	return nil
}

func (s *Store) DeleteSupplier(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	out := make([]domain.Supplier, 0, len(ns.Suppliers))
	for _, sp := range ns.Suppliers {
		if sp.ID != id {
			out = append(out, sp)
		}
	}
	ns.Suppliers = out
	s.state = &ns
}

// ---------- Customers ----------

func (s *Store) AddCustomer(cmd AddCustomerCommand) (domain.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Customer{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := domain.Customer{
		ID:           s.nextID(),
		Name:         cmd.Name,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		Address:      cmd.Address,
		CustomerType: cmd.CustomerType,
		Status:       domain.StatusActive,
		TotalOrders:  0,
		TotalSpent:   0,
		LastOrder:    "",
	}
	ns := *s.state
	ns.Customers = append(cloned(ns.Customers), c)
	s.state = &ns
	return c, nil
}

func (s *Store) UpdateCustomer(cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	ns.Customers = cloned(ns.Customers)
	for i, c := range ns.Customers {
		if c.ID != cmd.ID {
			continue
		}
		ns.Customers[i] = domain.Customer{
			ID:           c.ID,
			Name:         cmd.Name,
			Email:        cmd.Email,
			Phone:        cmd.Phone,
			Address:      cmd.Address,
			CustomerType: cmd.CustomerType,
			Status:       cmd.Status,
			TotalOrders:  cmd.TotalOrders,
			TotalSpent:   cmd.TotalSpent,
			LastOrder:    cmd.LastOrder,
		}
		break
	}
	s.state = &ns
	return nil
}

// DeleteCustomer removes the customer only. Orders keep their CustomerID
// and the name snapshot; nothing cascades.
func (s *Store) DeleteCustomer(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	out := make([]domain.Customer, 0, len(ns.Customers))
	for _, c := range ns.Customers {
		if c.ID != id {
			out = append(out, c)
		}
	}
	ns.Customers = out
	s.state = &ns
}

// ---------- Orders ----------

// AddOrder creates the order with today's date, a Pending status, and a
// total summed from the line items. CustomerName and blank item names are
// resolved from the current snapshot once, at creation.
func (s *Store) AddOrder(cmd AddOrderCommand) (domain.Order, error) {
	if err := cmd.Validate(); err != nil {
		return domain.Order{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID()
	items := make([]domain.OrderItem, 0, len(cmd.Items))
	total := 0.0
	for _, it := range cmd.Items {
		name := it.ProductName
		if name == "" {
			name = s.productName(it.ProductID)
		}
		item := domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		}
		items = append(items, item)
		total += item.Subtotal()
	}

	o := domain.Order{
		ID:              id,
		OrderNumber:     fmt.Sprintf("ORD-%d-%03d", time.Now().Year(), id%1000),
		CustomerID:      cmd.CustomerID,
		CustomerName:    s.customerName(cmd.CustomerID), // blank when dangling
		OrderDate:       today(),
		Status:          "Pending",
		Total:           total,
		Items:           items,
		ShippingAddress: cmd.ShippingAddress,
		PaymentMethod:   cmd.PaymentMethod,
		PaymentStatus:   "Pending",
	}
	ns := *s.state
	ns.Orders = append(cloned(ns.Orders), o)
	s.state = &ns
	return o, nil
}

func (s *Store) UpdateOrder(cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	ns.Orders = cloned(ns.Orders)
	for i, o := range ns.Orders {
		if o.ID != cmd.ID {
			continue
		}
		items := make([]domain.OrderItem, 0, len(cmd.Items))
		total := 0.0
		for _, it := range cmd.Items {
			item := domain.OrderItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				Price:       it.Price,
			}
			items = append(items, item)
			total += item.Subtotal()
		}
		ns.Orders[i] = domain.Order{
			ID:              o.ID,
			OrderNumber:     cmd.OrderNumber,
			CustomerID:      cmd.CustomerID,
			CustomerName:    cmd.CustomerName,
			OrderDate:       cmd.OrderDate,
			Status:          cmd.Status,
			Total:           total,
			Items:           items,
			ShippingAddress: cmd.ShippingAddress,
			PaymentMethod:   cmd.PaymentMethod,
			PaymentStatus:   cmd.PaymentStatus,
		}
		break
	}
	s.state = &ns
	return nil
}

func (s *Store) DeleteOrder(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ns := *s.state
	out := make([]domain.Order, 0, len(ns.Orders))
	for _, o := range ns.Orders {
		if o.ID != id {
			out = append(out, o)
		}
	}
	ns.Orders = out
	s.state = &ns
}

// callers hold mu
func (s *Store) customerName(id int64) string {
	for _, c := range s.state.Customers {
		if c.ID == id {
			return c.Name
		}
	}
	return ""
}

func (s *Store) productName(id int64) string {
	for _, p := range s.state.Products {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}
