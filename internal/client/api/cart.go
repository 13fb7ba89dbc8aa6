package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkolesov/shopfront/pkg/api"
)

// sessionQuery appends the guest session key to a cart path when present.
// Authenticated calls identify the cart by the bearer token instead.
func sessionQuery(path, sessionKey string) string {
	if sessionKey == "" {
		return path
	}
	return path + "?session_key=" + url.QueryEscape(sessionKey)
}

// Cart fetches the current cart snapshot
func (c *Client) Cart(ctx context.Context, sessionKey string) (*api.Cart, error) {
	var cart api.Cart
	if err := c.do(ctx, http.MethodGet, sessionQuery("/cart/", sessionKey), nil, &cart); err != nil {
		return nil, fmt.Errorf("cart request failed: %w", err)
	}
	return &cart, nil
}

// AddToCart adds a product and returns the updated cart
func (c *Client) AddToCart(ctx context.Context, req api.AddToCartRequest) (*api.Cart, error) {
	var cart api.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/add/", req, &cart); err != nil {
		return nil, fmt.Errorf("add to cart request failed: %w", err)
	}
	return &cart, nil
}

// UpdateCartItem changes a line item's quantity and returns the updated cart
func (c *Client) UpdateCartItem(ctx context.Context, itemID string, req api.UpdateCartItemRequest) (*api.Cart, error) {
	var cart api.Cart
	path := fmt.Sprintf("/cart/update/%s/", url.PathEscape(itemID))
	if err := c.do(ctx, http.MethodPatch, path, req, &cart); err != nil {
		return nil, fmt.Errorf("update cart item request failed: %w", err)
	}
	return &cart, nil
}

// RemoveFromCart deletes a line item and returns the updated cart
func (c *Client) RemoveFromCart(ctx context.Context, itemID, sessionKey string) (*api.Cart, error) {
	var cart api.Cart
	path := sessionQuery(fmt.Sprintf("/cart/remove/%s/", url.PathEscape(itemID)), sessionKey)
	if err := c.do(ctx, http.MethodDelete, path, nil, &cart); err != nil {
		return nil, fmt.Errorf("remove from cart request failed: %w", err)
	}
	return &cart, nil
}

// ClearCart empties the cart and returns the (empty) cart
func (c *Client) ClearCart(ctx context.Context, sessionKey string) (*api.Cart, error) {
	var cart api.Cart
	if err := c.do(ctx, http.MethodDelete, sessionQuery("/cart/clear/", sessionKey), nil, &cart); err != nil {
		return nil, fmt.Errorf("clear cart request failed: %w", err)
	}
	return &cart, nil
}

// MergeCart folds the guest cart identified by sessionKey into the
// authenticated user's cart. Requires a committed credential pair.
func (c *Client) MergeCart(ctx context.Context, sessionKey string) (*api.Cart, error) {
	var cart api.Cart
	req := api.MergeCartRequest{SessionKey: sessionKey}
	if err := c.do(ctx, http.MethodPost, "/cart/merge/", req, &cart); err != nil {
		return nil, fmt.Errorf("merge cart request failed: %w", err)
	}
	return &cart, nil
}
