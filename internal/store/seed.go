package store

import "perfumeshop/internal/domain"

// Seed returns the fixed demo dataset. It stands in for a backend fetch:
// swap the loader passed to Load and nothing else changes.
func Seed() (SeedData, error) {
	return SeedData{
		Products:       seedProducts(),
		Suppliers:      seedSuppliers(),
		Customers:      seedCustomers(),
		Orders:         seedOrders(),
		PurchaseOrders: seedPurchaseOrders(),
		Users:          seedUsers(),
	}, nil
}

// SeedUser is the account the mocked sign-in always resolves to.
func SeedUser() domain.User {
	return domain.User{
		ID:          1,
		Name:        "Admin User",
		Email:       "admin@perfumeshop.com",
		Role:        "Admin",
		Status:      domain.StatusActive,
		Permissions: []string{domain.PermissionAll},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: 1, Name: "Chanel No. 5", Brand: "Chanel", SKU: "CHN-005-EDT-100",
			FragranceType: "EDT", Size: "100ml", Category: "Luxury",
			CostPrice: 85.00, SellingPrice: 150.00, CurrentStock: 45, MinStockLevel: 10,
			SupplierID: 1, Description: "The world's most iconic fragrance",
			CreatedAt: "2024-01-15", UpdatedAt: "2024-06-01",
		},
		{
			ID: 2, Name: "Dior Sauvage", Brand: "Dior", SKU: "DOR-SAV-EDT-100",
			FragranceType: "EDT", Size: "100ml", Category: "Luxury",
			CostPrice: 78.00, SellingPrice: 135.00, CurrentStock: 23, MinStockLevel: 15,
			SupplierID: 1, Description: "Fresh and woody fragrance",
			CreatedAt: "2024-02-10", UpdatedAt: "2024-06-01",
		},
		{
			ID: 3, Name: "Tom Ford Black Orchid", Brand: "Tom Ford", SKU: "TF-BO-EDP-50",
			FragranceType: "EDP", Size: "50ml", Category: "Luxury",
			CostPrice: 95.00, SellingPrice: 165.00, CurrentStock: 8, MinStockLevel: 12,
			SupplierID: 2, Description: "Luxurious and mysterious fragrance",
			CreatedAt: "2024-03-05", UpdatedAt: "2024-06-01",
		},
		{
			ID: 4, Name: "Versace Eros", Brand: "Versace", SKU: "VER-ERO-EDT-100",
			FragranceType: "EDT", Size: "100ml", Category: "Designer",
			CostPrice: 42.00, SellingPrice: 75.00, CurrentStock: 67, MinStockLevel: 20,
			SupplierID: 3, Description: "Fresh and vibrant fragrance",
			CreatedAt: "2024-01-20", UpdatedAt: "2024-06-01",
		},
		{
			ID: 5, Name: "Calvin Klein Eternity", Brand: "Calvin Klein", SKU: "CK-ETE-EDT-100",
			FragranceType: "EDT", Size: "100ml", Category: "Designer",
			CostPrice: 28.00, SellingPrice: 55.00, CurrentStock: 34, MinStockLevel: 15,
			SupplierID: 3, Description: "Timeless and elegant fragrance",
			CreatedAt: "2024-02-15", UpdatedAt: "2024-06-01",
		},
	}
}

func seedSuppliers() []domain.Supplier {
	return []domain.Supplier{
		{
			ID: 1, Name: "Luxury Fragrances Ltd", Email: "orders@luxuryfragrances.com",
			Phone: "+1-555-0101", Address: "123 Perfume Street, New York, NY 10001",
			ContactPerson: "Sarah Johnson", PaymentTerms: "Net 30",
			Brands:      []string{"Chanel", "Dior", "Tom Ford"},
			TotalOrders: 45, TotalValue: 125000, Rating: 4.8, Status: domain.StatusActive,
		},
		{
			ID: 2, Name: "Premium Scents Inc", Email: "supply@premiumscents.com",
			Phone: "+1-555-0102", Address: "456 Fragrance Ave, Los Angeles, CA 90210",
			ContactPerson: "Michael Chen", PaymentTerms: "Net 45",
			Brands:      []string{"Tom Ford", "Creed", "Maison Margiela"},
			TotalOrders: 32, TotalValue: 89000, Rating: 4.6, Status: domain.StatusActive,
		},
		{
			ID: 3, Name: "Designer Fragrances Co", Email: "orders@designerfragrances.com",
			Phone: "+1-555-0103", Address: "789 Scent Boulevard, Miami, FL 33101",
			ContactPerson: "Emma Rodriguez", PaymentTerms: "Net 15",
			Brands:      []string{"Versace", "Calvin Klein", "Hugo Boss"},
			TotalOrders: 67, TotalValue: 78000, Rating: 4.7, Status: domain.StatusActive,
		},
	}
}

func seedCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID: 1, Name: "John Smith", Email: "john.smith@email.com", Phone: "+1-555-1001",
			Address: "123 Main St, Springfield, IL 62701", CustomerType: "Premium",
			Status: domain.StatusActive, TotalOrders: 12, TotalSpent: 1250.00, LastOrder: "2024-05-28",
		},
		{
			ID: 2, Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1-555-1002",
			Address: "456 Oak Ave, Chicago, IL 60601", CustomerType: "Regular",
			Status: domain.StatusActive, TotalOrders: 8, TotalSpent: 890.00, LastOrder: "2024-05-25",
		},
		{
			ID: 3, Name: "Michael Johnson", Email: "michael.j@email.com", Phone: "+1-555-1003",
			Address: "789 Pine St, Milwaukee, WI 53201", CustomerType: "VIP",
			Status: domain.StatusActive, TotalOrders: 15, TotalSpent: 2100.00, LastOrder: "2024-05-30",
		},
	}
}

func seedOrders() []domain.Order {
	return []domain.Order{
		{
			ID: 1, OrderNumber: "ORD-2024-001", CustomerID: 1, CustomerName: "John Smith",
			OrderDate: "2024-05-28", Status: "Delivered", Total: 285.00,
			Items: []domain.OrderItem{
				{ProductID: 1, ProductName: "Chanel No. 5", Quantity: 1, Price: 150.00},
				{ProductID: 4, ProductName: "Versace Eros", Quantity: 1, Price: 75.00},
				{ProductID: 5, ProductName: "Calvin Klein Eternity", Quantity: 1, Price: 55.00},
			},
			ShippingAddress: "123 Main St, Springfield, IL 62701",
			PaymentMethod:   "Credit Card", PaymentStatus: "Paid",
		},
		{
			ID: 2, OrderNumber: "ORD-2024-002", CustomerID: 2, CustomerName: "Emily Davis",
			OrderDate: "2024-05-25", Status: "Processing", Total: 210.00,
			Items: []domain.OrderItem{
				{ProductID: 2, ProductName: "Dior Sauvage", Quantity: 1, Price: 135.00},
				{ProductID: 4, ProductName: "Versace Eros", Quantity: 1, Price: 75.00},
			},
			ShippingAddress: "456 Oak Ave, Chicago, IL 60601",
			PaymentMethod:   "PayPal", PaymentStatus: "Paid",
		},
		{
			ID: 3, OrderNumber: "ORD-2024-003", CustomerID: 3, CustomerName: "Michael Johnson",
			OrderDate: "2024-05-30", Status: "Shipped", Total: 315.00,
			Items: []domain.OrderItem{
				{ProductID: 1, ProductName: "Chanel No. 5", Quantity: 1, Price: 150.00},
				{ProductID: 3, ProductName: "Tom Ford Black Orchid", Quantity: 1, Price: 165.00},
			},
			ShippingAddress: "789 Pine St, Milwaukee, WI 53201",
			PaymentMethod:   "Credit Card", PaymentStatus: "Paid",
		},
	}
}

func seedPurchaseOrders() []domain.PurchaseOrder {
	return []domain.PurchaseOrder{
		{
			ID: 1, PONumber: "PO-2024-001", SupplierID: 1, SupplierName: "Luxury Fragrances Ltd",
			OrderDate: "2024-05-20", ExpectedDelivery: "2024-06-05", Status: "Pending", Total: 1650.00,
			Items: []domain.PurchaseOrderItem{
				{ProductID: 1, ProductName: "Chanel No. 5", Quantity: 10, CostPrice: 85.00},
				{ProductID: 2, ProductName: "Dior Sauvage", Quantity: 10, CostPrice: 78.00},
			},
		},
		{
			ID: 2, PONumber: "PO-2024-002", SupplierID: 2, SupplierName: "Premium Scents Inc",
			OrderDate: "2024-05-22", ExpectedDelivery: "2024-06-08", Status: "Received", Total: 950.00,
			Items: []domain.PurchaseOrderItem{
				{ProductID: 3, ProductName: "Tom Ford Black Orchid", Quantity: 10, CostPrice: 95.00},
			},
		},
	}
}

func seedUsers() []domain.User {
	return []domain.User{
		{
			ID: 1, Name: "Admin User", Email: "admin@perfumeshop.com", Role: "Admin",
			Status: domain.StatusActive, LastLogin: "2024-05-30T10:30:00Z",
			Permissions: []string{domain.PermissionAll},
		},
		{
			ID: 2, Name: "Sales Manager", Email: "sales@perfumeshop.com", Role: "Manager",
			Status: domain.StatusActive, LastLogin: "2024-05-30T09:15:00Z",
			Permissions: []string{"sales", "customers", "orders"},
		},
		{
			ID: 3, Name: "Inventory Staff", Email: "inventory@perfumeshop.com", Role: "Staff",
			Status: domain.StatusActive, LastLogin: "2024-05-29T14:20:00Z",
			Permissions: []string{"inventory", "products"},
		},
	}
}
