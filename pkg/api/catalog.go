package api

import "time"

// Category represents a product category.
type Category struct {
	ID          string `json:"id"` // UUID
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Product represents a catalog product. Prices are decimal strings on
// the wire; the client displays them and never does arithmetic on them.
type Product struct {
	CreatedAt     time.Time `json:"created_at"`
	Category      *Category `json:"category,omitempty"`
	ID            string    `json:"id"` // UUID
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description,omitempty"`
	Price         string    `json:"price"`
	DiscountPrice string    `json:"discount_price,omitempty"`
	FinalPrice    string    `json:"final_price"`
	Image         string    `json:"image,omitempty"`
	Stock         int       `json:"stock"`
	IsFeatured    bool      `json:"is_featured"`
	IsActive      bool      `json:"is_active"`
}

// ProductList is the server's paginated listing envelope.
type ProductList struct {
	Next     string    `json:"next,omitempty"`
	Previous string    `json:"previous,omitempty"`
	Results  []Product `json:"results"`
	Count    int       `json:"count"`
}

// TrackInteractionRequest records a product interaction (view, cart add,
// purchase) with the analytics endpoint.
type TrackInteractionRequest struct {
	Metadata        map[string]any `json:"metadata,omitempty"`
	ProductID       string         `json:"product_id"`
	InteractionType string         `json:"interaction_type"`
}
