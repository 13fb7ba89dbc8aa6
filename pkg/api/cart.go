package api

// CartItem is one line item in a cart.
type CartItem struct {
	Product    Product `json:"product"`
	ID         string  `json:"id"` // UUID
	UnitPrice  string  `json:"unit_price"`
	TotalPrice string  `json:"total_price"`
	Quantity   int     `json:"quantity"`
}

// Cart is the server-side cart snapshot. The client never computes
// totals locally; it reflects the server's last response.
type Cart struct {
	ID         string     `json:"id"` // UUID
	Subtotal   string     `json:"subtotal"`
	Total      string     `json:"total"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
}

// AddToCartRequest adds a product to the cart. SessionKey identifies the
// guest cart for unauthenticated callers and is omitted once logged in.
type AddToCartRequest struct {
	ProductID  string `json:"product_id"`
	SessionKey string `json:"session_key,omitempty"`
	Quantity   int    `json:"quantity"`
}

// UpdateCartItemRequest changes a line item's quantity.
type UpdateCartItemRequest struct {
	SessionKey string `json:"session_key,omitempty"`
	Quantity   int    `json:"quantity"`
}

// MergeCartRequest folds the guest cart identified by SessionKey into
// the authenticated user's cart.
type MergeCartRequest struct {
	SessionKey string `json:"session_key"`
}
