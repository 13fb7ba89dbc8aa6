package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkolesov/shopfront/pkg/api"
)

// Orders lists the current user's orders
func (c *Client) Orders(ctx context.Context, query url.Values) (*api.OrderList, error) {
	var list api.OrderList
	if err := c.do(ctx, http.MethodGet, withQuery("/orders/", query), nil, &list); err != nil {
		return nil, fmt.Errorf("orders request failed: %w", err)
	}
	return &list, nil
}

// Order fetches one order by id
func (c *Client) Order(ctx context.Context, orderID string) (*api.Order, error) {
	var order api.Order
	path := fmt.Sprintf("/orders/%s/", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	return &order, nil
}

// CreateOrder places an order from the current cart contents
func (c *Client) CreateOrder(ctx context.Context, req api.CreateOrderRequest) (*api.Order, error) {
	var order api.Order
	if err := c.do(ctx, http.MethodPost, "/orders/create/", req, &order); err != nil {
		return nil, fmt.Errorf("create order request failed: %w", err)
	}
	return &order, nil
}

// TrackOrder looks up an order by its public order number. Works without
// authentication so customers can track from any device.
func (c *Client) TrackOrder(ctx context.Context, orderNumber string) (*api.Order, error) {
	var order api.Order
	path := fmt.Sprintf("/orders/track/%s/", url.PathEscape(orderNumber))
	if err := c.do(ctx, http.MethodGet, path, nil, &order); err != nil {
		return nil, fmt.Errorf("track order request failed: %w", err)
	}
	return &order, nil
}

// AdminOrderStats fetches order volume stats for the admin dashboard
func (c *Client) AdminOrderStats(ctx context.Context) (*api.AdminOrderStats, error) {
	var stats api.AdminOrderStats
	if err := c.do(ctx, http.MethodGet, "/orders/admin/stats/", nil, &stats); err != nil {
		return nil, fmt.Errorf("admin order stats request failed: %w", err)
	}
	return &stats, nil
}
