package domain

// DateOnly is the layout for entity date fields (orderDate, createdAt, ...).
const DateOnly = "2006-01-02"

type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	SKU           string  `json:"sku"`
	FragranceType string  `json:"fragranceType"` // EDT | EDP | Parfum | EDC
	Size          string  `json:"size"`
	Category      string  `json:"category"` // Luxury | Designer | Niche | Celebrity
	CostPrice     float64 `json:"costPrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	CurrentStock  int     `json:"currentStock"`
	MinStockLevel int     `json:"minStockLevel"`
	SupplierID    int64   `json:"supplierId"`
	Description   string  `json:"description"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool { return p.CurrentStock <= p.MinStockLevel }

type Supplier struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	ContactPerson string   `json:"contactPerson"`
	PaymentTerms  string   `json:"paymentTerms"` // Net 15 | Net 30 | Net 45 | Net 60 | COD
	Brands        []string `json:"brands"`
	TotalOrders   int      `json:"totalOrders"`
	TotalValue    float64  `json:"totalValue"`
	Rating        float64  `json:"rating"` // 0..5
	Status        string   `json:"status"` // Active | Inactive
}

type Customer struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	CustomerType string  `json:"customerType"` // Regular | Premium | VIP
	Status       string  `json:"status"`       // Active | Inactive
	TotalOrders  int     `json:"totalOrders"`
	TotalSpent   float64 `json:"totalSpent"`
	LastOrder    string  `json:"lastOrder,omitempty"` // empty until first order
}

type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"` // snapshot at add time, never refreshed
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"` // snapshot at add time
}

// Subtotal is the line amount for the item.
func (it OrderItem) Subtotal() float64 { return it.Price * float64(it.Quantity) }

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"` // ORD-<year>-<3 digits>
	CustomerID      int64       `json:"customerId"`
	CustomerName    string      `json:"customerName"` // snapshot at creation, never refreshed
	OrderDate       string      `json:"orderDate"`
	Status          string      `json:"status"` // Pending | Processing | Shipped | Delivered | Cancelled
	Total           float64     `json:"total"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	PaymentStatus   string      `json:"paymentStatus"` // Pending | Paid
}

type PurchaseOrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	CostPrice   float64 `json:"costPrice"`
}

type PurchaseOrder struct {
	ID               int64               `json:"id"`
	PONumber         string              `json:"poNumber"`
	SupplierID       int64               `json:"supplierId"`
	SupplierName     string              `json:"supplierName"` // snapshot at creation
	OrderDate        string              `json:"orderDate"`
	ExpectedDelivery string              `json:"expectedDelivery"`
	Status           string              `json:"status"` // Pending | Received | Cancelled
	Total            float64             `json:"total"`
	Items            []PurchaseOrderItem `json:"items"`
}

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var (
	FragranceTypes = []string{"EDT", "EDP", "Parfum", "EDC"}
	Categories     = []string{"Luxury", "Designer", "Niche", "Celebrity"}
	PaymentTerms   = []string{"Net 15", "Net 30", "Net 45", "Net 60", "COD"}
	CustomerTypes  = []string{"Regular", "Premium", "VIP"}
	OrderStatuses  = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}
	PaymentMethods = []string{"Credit Card", "PayPal", "Bank Transfer", "Cash"}
	UserRoles      = []string{"Admin", "Manager", "Staff"}
)
