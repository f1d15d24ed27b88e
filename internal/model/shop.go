package model

import "time"

// Product is a wellness product in the shop catalog.
type Product struct {
	ID          string  `json:"productId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// CartItem is a product plus quantity inside a cart.
type CartItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Cart is the user's current shopping cart.
type Cart struct {
	ID    string     `json:"cartId"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// Order is a placed order.
type Order struct {
	ID        string     `json:"orderId"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
