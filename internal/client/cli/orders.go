package cli

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dkolesov/shopfront/pkg/api"
)

func (c *Cli) runCheckout(ctx context.Context) error {
	cart, err := c.carts.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return fmt.Errorf("your cart is empty")
	}

	c.io.Println("=== Checkout ===")
	c.io.Println()
	c.printCart(cart)
	c.io.Println()

	var req api.CreateOrderRequest
	if req.ShippingAddress, err = c.io.ReadInput("Shipping address: "); err != nil {
		return err
	}
	if req.City, err = c.io.ReadInput("City: "); err != nil {
		return err
	}
	if req.ZipCode, err = c.io.ReadInput("Zip code: "); err != nil {
		return err
	}
	if req.Country, err = c.io.ReadInput("Country: "); err != nil {
		return err
	}
	if req.Phone, err = c.io.ReadInput("Phone: "); err != nil {
		return err
	}
	if req.PaymentMethod, err = c.io.ReadInput("Payment method (card/cod): "); err != nil {
		return err
	}
	if req.Notes, err = c.io.ReadInput("Notes (optional): "); err != nil {
		return err
	}

	order, err := c.apiClient.CreateOrder(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	for _, item := range cart.Items {
		c.catalog.Track(ctx, item.Product.ID, "purchase", map[string]any{"quantity": item.Quantity})
	}

	c.io.Println()
	c.io.Printf("✓ Order placed: %s\n", order.OrderNumber)
	c.io.Printf("Track it with: track %s\n", order.OrderNumber)
	return nil
}

func (c *Cli) runOrders(ctx context.Context) error {
	list, err := c.apiClient.Orders(ctx, url.Values{})
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	c.io.Println("=== Your Orders ===")
	c.io.Println()
	if list.Count == 0 {
		c.io.Println("No orders yet.")
		return nil
	}
	for _, order := range list.Results {
		c.io.Printf("  %s  %s  %-12s %10s\n",
			order.OrderNumber,
			order.CreatedAt.Format("2006-01-02"),
			order.Status,
			order.Total)
	}
	return nil
}

func (c *Cli) runOrder(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: order <order-id>")
	}

	order, err := c.apiClient.Order(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load order: %w", err)
	}

	c.printOrder(order)
	return nil
}

// runTrackOrder looks an order up by its public number. Works without an
// account, matching the storefront's guest order tracking page.
func (c *Cli) runTrackOrder(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: track <order-number>")
	}

	order, err := c.apiClient.TrackOrder(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to track order: %w", err)
	}

	c.printOrder(order)
	return nil
}

func (c *Cli) printOrder(order *api.Order) {
	c.io.Printf("=== Order %s ===\n", order.OrderNumber)
	c.io.Println()
	c.io.Printf("Placed:   %s\n", order.CreatedAt.Format("2006-01-02 15:04"))
	c.io.Printf("Status:   %s\n", order.Status)
	c.io.Printf("Payment:  %s\n", order.PaymentStatus)
	c.io.Printf("Ship to:  %s\n", order.ShippingAddress)
	c.io.Println()

	for _, item := range order.Items {
		c.io.Printf("  %-30s x%-3d %10s\n", item.ProductName, item.Quantity, item.TotalPrice)
	}
	c.io.Println()
	c.io.Printf("Subtotal: %s\n", order.Subtotal)
	c.io.Printf("Shipping: %s\n", order.ShippingCost)
	c.io.Printf("Total:    %s\n", order.Total)
}
