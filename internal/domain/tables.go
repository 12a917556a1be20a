package domain

var Tables = []interface{}{
	// Store
	&User{},
	&Category{},
	&Product{},
	// Orders
	&Order{},
	&OrderItem{},
	&Payment{},
	// System
	&AuditLog{},
}
