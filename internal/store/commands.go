package store

import (
	"fmt"

	"perfumeshop/internal/domain"
	"perfumeshop/internal/validate"
)

// Commands are the typed mutation payloads. Only fields the entity forms
// actually require are mandatory; everything else is checked when present,
// matching how loosely the screens fill these in.

type AddProductCommand struct {
	Name          string
	Brand         string
	SKU           string
	FragranceType string
	Size          string
	Category      string
	CostPrice     float64
	SellingPrice  float64
	CurrentStock  int
	MinStockLevel int
	SupplierID    int64 // advisory reference, never checked for existence
	Description   string
}

func (c AddProductCommand) Validate() error { return productFields(c) }

type UpdateProductCommand struct {
	ID            int64
	Name          string
	Brand         string
	SKU           string
	FragranceType string
	Size          string
	Category      string
	CostPrice     float64
	SellingPrice  float64
	CurrentStock  int
	MinStockLevel int
	SupplierID    int64
	Description   string
}

func (c UpdateProductCommand) Validate() error {
	return productFields(AddProductCommand{
		Name: c.Name, FragranceType: c.FragranceType, Category: c.Category,
		CostPrice: c.CostPrice, SellingPrice: c.SellingPrice,
		CurrentStock: c.CurrentStock, MinStockLevel: c.MinStockLevel,
	})
}

func productFields(c AddProductCommand) error {
	if _, ok := validate.Name(c.Name); !ok {
		return fmt.Errorf("product: invalid name %q", c.Name)
	}
	if c.FragranceType != "" && !validate.OneOf(c.FragranceType, domain.FragranceTypes) {
		return fmt.Errorf("product: unknown fragrance type %q", c.FragranceType)
	}
	if c.Category != "" && !validate.OneOf(c.Category, domain.Categories) {
		return fmt.Errorf("product: unknown category %q", c.Category)
	}
	if !validate.Money(c.CostPrice) || !validate.Money(c.SellingPrice) {
		return fmt.Errorf("product: prices must be non-negative")
	}
	if !validate.Stock(c.CurrentStock) || !validate.Stock(c.MinStockLevel) {
		return fmt.Errorf("product: stock levels must be non-negative")
	}
	return nil
}

type AddSupplierCommand struct {
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
	PaymentTerms  string
	Brands        string // comma-separated, split and trimmed on apply
}

func (c AddSupplierCommand) Validate() error {
	return supplierFields(c.Name, c.Email, c.PaymentTerms, 0)
}

type UpdateSupplierCommand struct {
	ID            int64
	Name          string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
	PaymentTerms  string
	Brands        string
	TotalOrders   int
	TotalValue    float64
	Rating        float64
	Status        string
}

func (c UpdateSupplierCommand) Validate() error {
	if c.Status != "" && c.Status != domain.StatusActive && c.Status != domain.StatusInactive {
		return fmt.Errorf("supplier: unknown status %q", c.Status)
	}
	return supplierFields(c.Name, c.Email, c.PaymentTerms, c.Rating)
}

func supplierFields(name, email, terms string, rating float64) error {
	if _, ok := validate.Name(name); !ok {
		return fmt.Errorf("supplier: invalid name %q", name)
	}
	if email != "" {
		if _, ok := validate.Email(email); !ok {
			return fmt.Errorf("supplier: invalid email %q", email)
		}
	}
	if terms != "" && !validate.OneOf(terms, domain.PaymentTerms) {
		return fmt.Errorf("supplier: unknown payment terms %q", terms)
	}
	if !validate.Rating(rating) {
		return fmt.Errorf("supplier: rating out of range")
	}
	return nil
}

type AddCustomerCommand struct {
	Name         string
	Email        string
	Phone        string
	Address      string
	CustomerType string
}

func (c AddCustomerCommand) Validate() error {
	return customerFields(c.Name, c.Email, c.CustomerType, "")
}

type UpdateCustomerCommand struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Address      string
	CustomerType string
	Status       string
	TotalOrders  int
	TotalSpent   float64
	LastOrder    string
}

func (c UpdateCustomerCommand) Validate() error {
	return customerFields(c.Name, c.Email, c.CustomerType, c.Status)
}

func customerFields(name, email, ctype, status string) error {
	if _, ok := validate.Name(name); !ok {
		return fmt.Errorf("customer: invalid name %q", name)
	}
	if email != "" {
		if _, ok := validate.Email(email); !ok {
			return fmt.Errorf("customer: invalid email %q", email)
		}
	}
	if ctype != "" && !validate.OneOf(ctype, domain.CustomerTypes) {
		return fmt.Errorf("customer: unknown type %q", ctype)
	}
	if status != "" && status != domain.StatusActive && status != domain.StatusInactive {
		return fmt.Errorf("customer: unknown status %q", status)
	}
	return nil
}

type OrderItemCommand struct {
	ProductID   int64
	ProductName string // resolved from the product at apply time when blank
	Quantity    int
	Price       float64
}

type AddOrderCommand struct {
	CustomerID      int64
	Items           []OrderItemCommand
	ShippingAddress string
	PaymentMethod   string
}

func (c AddOrderCommand) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("order: needs at least one item")
	}
	if err := orderItems(c.Items); err != nil {
		return err
	}
	if c.PaymentMethod != "" && !validate.OneOf(c.PaymentMethod, domain.PaymentMethods) {
		return fmt.Errorf("order: unknown payment method %q", c.PaymentMethod)
	}
	return nil
}

type UpdateOrderCommand struct {
	ID              int64
	OrderNumber     string
	CustomerID      int64
	CustomerName    string
	OrderDate       string
	Status          string
	Items           []OrderItemCommand
	ShippingAddress string
	PaymentMethod   string
	PaymentStatus   string
}

func (c UpdateOrderCommand) Validate() error {
	if len(c.Items) == 0 {
		return fmt.Errorf("order: needs at least one item")
	}
	if err := orderItems(c.Items); err != nil {
		return err
	}
	if c.Status != "" && !validate.OneOf(c.Status, domain.OrderStatuses) {
		return fmt.Errorf("order: unknown status %q", c.Status)
	}
	if c.PaymentMethod != "" && !validate.OneOf(c.PaymentMethod, domain.PaymentMethods) {
		return fmt.Errorf("order: unknown payment method %q", c.PaymentMethod)
	}
	return nil
}

func orderItems(items []OrderItemCommand) error {
	for i, it := range items {
		if !validate.Qty(it.Quantity) {
			return fmt.Errorf("order: item %d quantity must be at least 1", i)
		}
		if !validate.Money(it.Price) {
			return fmt.Errorf("order: item %d price must be non-negative", i)
		}
	}
	return nil
}
