package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkolesov/shopfront/pkg/api"
)

func withQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// Products lists products. query supports category, search, ordering and
// page parameters; empty values should be omitted by the caller.
func (c *Client) Products(ctx context.Context, query url.Values) (*api.ProductList, error) {
	var list api.ProductList
	if err := c.do(ctx, http.MethodGet, withQuery("/products/", query), nil, &list); err != nil {
		return nil, fmt.Errorf("products request failed: %w", err)
	}
	return &list, nil
}

// FeaturedProducts lists the featured selection
func (c *Client) FeaturedProducts(ctx context.Context) ([]api.Product, error) {
	var products []api.Product
	if err := c.do(ctx, http.MethodGet, "/products/featured/", nil, &products); err != nil {
		return nil, fmt.Errorf("featured products request failed: %w", err)
	}
	return products, nil
}

// Categories lists all product categories
func (c *Client) Categories(ctx context.Context) ([]api.Category, error) {
	var categories []api.Category
	if err := c.do(ctx, http.MethodGet, "/products/categories/", nil, &categories); err != nil {
		return nil, fmt.Errorf("categories request failed: %w", err)
	}
	return categories, nil
}

// ProductBySlug fetches a single product
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*api.Product, error) {
	var product api.Product
	path := fmt.Sprintf("/products/%s/", url.PathEscape(slug))
	if err := c.do(ctx, http.MethodGet, path, nil, &product); err != nil {
		return nil, fmt.Errorf("product request failed: %w", err)
	}
	return &product, nil
}

// ProductsByCategory lists products within one category
func (c *Client) ProductsByCategory(ctx context.Context, categorySlug string, query url.Values) (*api.ProductList, error) {
	var list api.ProductList
	path := withQuery(fmt.Sprintf("/products/category/%s/", url.PathEscape(categorySlug)), query)
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("products by category request failed: %w", err)
	}
	return &list, nil
}

// TrackInteraction records a product interaction with the analytics endpoint
func (c *Client) TrackInteraction(ctx context.Context, req api.TrackInteractionRequest) error {
	if err := c.do(ctx, http.MethodPost, "/analytics/track/", req, nil); err != nil {
		return fmt.Errorf("track interaction request failed: %w", err)
	}
	return nil
}
