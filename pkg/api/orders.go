package api

import "time"

// OrderItem is one purchased line item, priced at order time.
type OrderItem struct {
	ID          string `json:"id"` // UUID
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
	Quantity    int    `json:"quantity"`
}

// Order represents a placed order.
type Order struct {
	CreatedAt       time.Time   `json:"created_at"`
	ID              string      `json:"id"` // UUID
	OrderNumber     string      `json:"order_number"`
	Status          string      `json:"status"`
	PaymentStatus   string      `json:"payment_status"`
	ShippingAddress string      `json:"shipping_address"`
	Subtotal        string      `json:"subtotal"`
	ShippingCost    string      `json:"shipping_cost"`
	Total           string      `json:"total"`
	Items           []OrderItem `json:"items"`
}

// OrderList is the paginated order listing envelope.
type OrderList struct {
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
	Results  []Order `json:"results"`
	Count    int     `json:"count"`
}

// CreateOrderRequest places an order from the current cart contents.
type CreateOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
	City            string `json:"city"`
	State           string `json:"state,omitempty"`
	ZipCode         string `json:"zip_code"`
	Country         string `json:"country"`
	Phone           string `json:"phone"`
	PaymentMethod   string `json:"payment_method"`
	Notes           string `json:"notes,omitempty"`
}

// AdminOrderStats summarizes order volume for the admin dashboard.
type AdminOrderStats struct {
	TotalRevenue    string `json:"total_revenue"`
	TotalOrders     int    `json:"total_orders"`
	PendingOrders   int    `json:"pending_orders"`
	DeliveredOrders int    `json:"delivered_orders"`
}
