package store_test

import (
	"regexp"
	"testing"
	"time"

	"perfumeshop/internal/domain"
	"perfumeshop/internal/store"
)

func readyStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New()
	if err := st.Load(store.Seed, 0); err != nil {
		t.Fatal(err)
	}
	return st
}

func TestLoad_StatusTransitions(t *testing.T) {
	st := store.New()
	if st.Status() != store.StatusIdle {
		t.Fatalf("want idle before load, got %s", st.Status())
	}
	if err := st.Load(store.Seed, 0); err != nil {
		t.Fatal(err)
	}
	if st.Status() != store.StatusReady {
		t.Fatalf("want ready after load, got %s", st.Status())
	}
	snap := st.Snapshot()
	if snap.Loading || snap.Err != "" {
		t.Fatalf("want clean flags, got loading=%v err=%q", snap.Loading, snap.Err)
	}
	if len(snap.Products) != 5 || len(snap.Suppliers) != 3 || len(snap.Customers) != 3 ||
		len(snap.Orders) != 3 || len(snap.PurchaseOrders) != 2 || len(snap.Users) != 3 {
		t.Fatalf("unexpected seed sizes: %+v", snap)
	}
}

func TestLoad_ErrorSurfacesMessage(t *testing.T) {
	st := store.New()
	boom := func() (store.SeedData, error) {
		return store.SeedData{}, errBoom
	}
	if err := st.Load(boom, 0); err == nil {
		t.Fatal("want load error")
	}
	if st.Status() != store.StatusError {
		t.Fatalf("want error status, got %s", st.Status())
	}
	snap := st.Snapshot()
	if snap.Loading || snap.Err != "seed unavailable" {
		t.Fatalf("want surfaced message, got loading=%v err=%q", snap.Loading, snap.Err)
	}
}

type boomErr struct{}

func (boomErr) Error() string { return "seed unavailable" }

var errBoom = boomErr{}

func TestAddProduct_AppendsWithFreshID(t *testing.T) {
	st := readyStore(t)
	before := st.Snapshot().Products

	p, err := st.AddProduct(store.AddProductCommand{
		Name: "Creed Aventus", Brand: "Creed", SKU: "CRD-AVE-EDP-100",
		FragranceType: "EDP", Size: "100ml", Category: "Niche",
		CostPrice: 180, SellingPrice: 320, CurrentStock: 12, MinStockLevel: 5,
		SupplierID: 2, Description: "Pineapple and birch",
	})
	if err != nil {
		t.Fatal(err)
	}

	after := st.Snapshot().Products
	if len(after) != len(before)+1 {
		t.Fatalf("want %d products, got %d", len(before)+1, len(after))
	}
	for _, old := range before {
		if old.ID == p.ID {
			t.Fatalf("new id %d collides with existing", p.ID)
		}
	}
	today := time.Now().Format(domain.DateOnly)
	if p.CreatedAt != today || p.UpdatedAt != today {
		t.Fatalf("want both stamps %s, got created=%s updated=%s", today, p.CreatedAt, p.UpdatedAt)
	}
}

func TestAddProduct_ConsecutiveIDsUnique(t *testing.T) {
	st := readyStore(t)
	a, err := st.AddProduct(store.AddProductCommand{Name: "A"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.AddProduct(store.AddProductCommand{Name: "B"})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID == b.ID {
		t.Fatalf("ids must be unique, both %d", a.ID)
	}
	if b.ID < a.ID {
		t.Fatalf("ids must be monotonic: %d then %d", a.ID, b.ID)
	}
}

func TestAddProduct_RejectsNegativePrice(t *testing.T) {
	st := readyStore(t)
	before := len(st.Snapshot().Products)
	_, err := st.AddProduct(store.AddProductCommand{Name: "Bad", CostPrice: -1})
	if err == nil {
		t.Fatal("want validation error")
	}
	if got := len(st.Snapshot().Products); got != before {
		t.Fatalf("rejected command must not touch state, got %d products", got)
	}
}

func TestUpdateProduct_RestampsOnlyUpdatedAt(t *testing.T) {
	st := readyStore(t)
	orig := st.Snapshot().Products[0] // Chanel No. 5

	err := st.UpdateProduct(store.UpdateProductCommand{
		ID: orig.ID, Name: orig.Name, Brand: orig.Brand, SKU: orig.SKU,
		FragranceType: orig.FragranceType, Size: orig.Size, Category: orig.Category,
		CostPrice: orig.CostPrice, SellingPrice: 175.00,
		CurrentStock: orig.CurrentStock, MinStockLevel: orig.MinStockLevel,
		SupplierID: orig.SupplierID, Description: orig.Description,
	})
	if err != nil {
		t.Fatal(err)
	}

	got := st.Snapshot().Products[0]
	if got.SellingPrice != 175.00 {
		t.Fatalf("want price updated, got %v", got.SellingPrice)
	}
	if got.Name != orig.Name || got.SKU != orig.SKU || got.CurrentStock != orig.CurrentStock ||
		got.CostPrice != orig.CostPrice || got.SupplierID != orig.SupplierID {
		t.Fatalf("other fields must be unchanged: %+v", got)
	}
	if got.CreatedAt != orig.CreatedAt {
		t.Fatalf("createdAt must survive update, got %s", got.CreatedAt)
	}
	if got.UpdatedAt != time.Now().Format(domain.DateOnly) {
		t.Fatalf("updatedAt must be re-stamped, got %s", got.UpdatedAt)
	}
}

func TestUpdateProduct_MissingIDIsNoOp(t *testing.T) {
	st := readyStore(t)
	before := st.Snapshot().Products
	if err := st.UpdateProduct(store.UpdateProductCommand{ID: 9999, Name: "Ghost"}); err != nil {
		t.Fatal(err)
	}
	after := st.Snapshot().Products
	if len(after) != len(before) {
		t.Fatalf("no-op must not change length: %d vs %d", len(after), len(before))
	}
	for i := range before {
		if after[i] != before[i] && after[i].Name == "Ghost" {
			t.Fatalf("missing id must not be applied anywhere: %+v", after[i])
		}
	}
}

func TestDeleteProduct_Idempotent(t *testing.T) {
	st := readyStore(t)
	st.DeleteProduct(5)
	if got := len(st.Snapshot().Products); got != 4 {
		t.Fatalf("want 4 after delete, got %d", got)
	}
	st.DeleteProduct(5) // second call is a no-op
	if got := len(st.Snapshot().Products); got != 4 {
		t.Fatalf("second delete must be a no-op, got %d", got)
	}
}

func TestDeleteCustomer_OrdersKeepDanglingReference(t *testing.T) {
	st := readyStore(t)
	st.DeleteCustomer(1)

	snap := st.Snapshot()
	for _, c := range snap.Customers {
		if c.ID == 1 {
			t.Fatal("customer 1 should be gone")
		}
	}
	if len(snap.Orders) != 3 {
		t.Fatalf("orders must not cascade, got %d", len(snap.Orders))
	}
	o := snap.Orders[0]
	if o.CustomerID != 1 || o.CustomerName != "John Smith" {
		t.Fatalf("dangling reference and name snapshot must survive: %+v", o)
	}
}

func TestAddSupplier_SplitsBrandsAndDefaults(t *testing.T) {
	st := readyStore(t)
	sp, err := st.AddSupplier(store.AddSupplierCommand{Name: "X", Brands: "Chanel, Dior, "})
	if err != nil {
		t.Fatal(err)
	}
	if len(sp.Brands) != 2 || sp.Brands[0] != "Chanel" || sp.Brands[1] != "Dior" {
		t.Fatalf("want [Chanel Dior], got %v", sp.Brands)
	}
	if sp.TotalOrders != 0 || sp.TotalValue != 0 || sp.Rating != 0 || sp.Status != domain.StatusActive {
		t.Fatalf("bad defaults: %+v", sp)
	}
}

func TestAddCustomer_Defaults(t *testing.T) {
	st := readyStore(t)
	c, err := st.AddCustomer(store.AddCustomerCommand{Name: "New Customer", CustomerType: "Regular"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Status != domain.StatusActive || c.TotalOrders != 0 || c.TotalSpent != 0 || c.LastOrder != "" {
		t.Fatalf("bad defaults: %+v", c)
	}
}

func TestAddOrder_TotalNumberAndSnapshots(t *testing.T) {
	st := readyStore(t)
	o, err := st.AddOrder(store.AddOrderCommand{
		CustomerID: 1,
		Items:      []store.OrderItemCommand{{ProductID: 1, Quantity: 2, Price: 150}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if o.Total != 300.00 {
		t.Fatalf("want total 300, got %v", o.Total)
	}
	if ok, _ := regexp.MatchString(`^ORD-\d{4}-\d{3}$`, o.OrderNumber); !ok {
		t.Fatalf("bad order number %q", o.OrderNumber)
	}
	if o.CustomerName != "John Smith" {
		t.Fatalf("want denormalized customer name, got %q", o.CustomerName)
	}
	if o.Items[0].ProductName != "Chanel No. 5" {
		t.Fatalf("want resolved product name, got %q", o.Items[0].ProductName)
	}
	if o.Status != "Pending" || o.PaymentStatus != "Pending" {
		t.Fatalf("want Pending/Pending, got %s/%s", o.Status, o.PaymentStatus)
	}
	if o.OrderDate != time.Now().Format(domain.DateOnly) {
		t.Fatalf("want today's order date, got %s", o.OrderDate)
	}
}

func TestAddOrder_DanglingCustomerGetsBlankName(t *testing.T) {
	st := readyStore(t)
	o, err := st.AddOrder(store.AddOrderCommand{
		CustomerID: 999,
		Items:      []store.OrderItemCommand{{ProductID: 1, Quantity: 1, Price: 10}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if o.CustomerName != "" {
		t.Fatalf("dangling customer must render blank, got %q", o.CustomerName)
	}
}

func TestAddOrder_RejectsBadItems(t *testing.T) {
	st := readyStore(t)
	if _, err := st.AddOrder(store.AddOrderCommand{CustomerID: 1}); err == nil {
		t.Fatal("want error for empty items")
	}
	if _, err := st.AddOrder(store.AddOrderCommand{
		CustomerID: 1,
		Items:      []store.OrderItemCommand{{ProductID: 1, Quantity: 0, Price: 10}},
	}); err == nil {
		t.Fatal("want error for zero quantity")
	}
	if got := len(st.Snapshot().Orders); got != 3 {
		t.Fatalf("rejected orders must not be stored, got %d", got)
	}
}

func TestUpdateOrder_ReplacesAndRecomputesTotal(t *testing.T) {
	st := readyStore(t)
	orig := st.Snapshot().Orders[1] // ORD-2024-002

	err := st.UpdateOrder(store.UpdateOrderCommand{
		ID: orig.ID, OrderNumber: orig.OrderNumber,
		CustomerID: orig.CustomerID, CustomerName: orig.CustomerName,
		OrderDate: orig.OrderDate, Status: "Shipped",
		Items: []store.OrderItemCommand{
			{ProductID: 2, ProductName: "Dior Sauvage", Quantity: 2, Price: 135.00},
		},
		ShippingAddress: orig.ShippingAddress,
		PaymentMethod:   orig.PaymentMethod, PaymentStatus: orig.PaymentStatus,
	})
	if err != nil {
		t.Fatal(err)
	}

	got := st.Snapshot().Orders[1]
	if got.Status != "Shipped" {
		t.Fatalf("want Shipped, got %s", got.Status)
	}
	if got.Total != 270.00 {
		t.Fatalf("total must be recomputed from items, got %v", got.Total)
	}
	if got.OrderNumber != orig.OrderNumber || got.ID != orig.ID {
		t.Fatalf("identity fields must survive: %+v", got)
	}
}

func TestDeleteOrder(t *testing.T) {
	st := readyStore(t)
	st.DeleteOrder(2)
	snap := st.Snapshot()
	if len(snap.Orders) != 2 {
		t.Fatalf("want 2 orders, got %d", len(snap.Orders))
	}
	for _, o := range snap.Orders {
		if o.ID == 2 {
			t.Fatal("order 2 should be gone")
		}
	}
}

func TestSnapshot_ImmutableAcrossMutations(t *testing.T) {
	st := readyStore(t)
	snap := st.Snapshot()
	nProducts, nOrders := len(snap.Products), len(snap.Orders)

	if _, err := st.AddProduct(store.AddProductCommand{Name: "After Snapshot"}); err != nil {
		t.Fatal(err)
	}
	st.DeleteOrder(1)

	if len(snap.Products) != nProducts || len(snap.Orders) != nOrders {
		t.Fatal("earlier snapshot must not observe later mutations")
	}
	if snap.Orders[0].ID != 1 {
		t.Fatalf("earlier snapshot contents changed: %+v", snap.Orders[0])
	}
}

func TestUpdateSupplier_FullReplace(t *testing.T) {
	st := readyStore(t)
	err := st.UpdateSupplier(store.UpdateSupplierCommand{
		ID: 3, Name: "Designer Fragrances Co", Email: "orders@designerfragrances.com",
		Phone: "+1-555-0103", Address: "789 Scent Boulevard, Miami, FL 33101",
		ContactPerson: "Emma Rodriguez", PaymentTerms: "Net 30",
		Brands: "Versace, Calvin Klein", TotalOrders: 68, TotalValue: 80000,
		Rating: 4.9, Status: domain.StatusInactive,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := st.Snapshot().Suppliers[2]
	if got.PaymentTerms != "Net 30" || got.TotalOrders != 68 || got.Status != domain.StatusInactive {
		t.Fatalf("replace not applied: %+v", got)
	}
	if len(got.Brands) != 2 {
		t.Fatalf("brands must be re-split on update, got %v", got.Brands)
	}
}
