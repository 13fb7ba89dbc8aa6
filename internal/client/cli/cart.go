package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dkolesov/shopfront/pkg/api"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.runCartShow(ctx)
	}

	switch args[0] {
	case "show":
		return c.runCartShow(ctx)
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "update":
		return c.runCartUpdate(ctx, args[1:])
	case "remove":
		return c.runCartRemove(ctx, args[1:])
	case "clear":
		return c.runCartClear(ctx)
	default:
		return fmt.Errorf("unknown cart subcommand: %s (expected show, add, update, remove or clear)", args[0])
	}
}

func (c *Cli) runCartShow(ctx context.Context) error {
	cart, err := c.carts.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	c.printCart(cart)
	return nil
}

func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cart add <product-id> [quantity]")
	}

	quantity := 1
	if len(args) > 1 {
		q, err := strconv.Atoi(args[1])
		if err != nil || q < 1 {
			return fmt.Errorf("quantity must be a positive number, got %q", args[1])
		}
		quantity = q
	}

	cart, err := c.carts.Add(ctx, args[0], quantity)
	if err != nil {
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	c.catalog.Track(ctx, args[0], "cart_add", map[string]any{"quantity": quantity})

	c.io.Println("✓ Added to cart")
	c.printCart(cart)
	return nil
}

func (c *Cli) runCartUpdate(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: cart update <item-id> <quantity>")
	}

	quantity, err := strconv.Atoi(args[1])
	if err != nil || quantity < 1 {
		return fmt.Errorf("quantity must be a positive number, got %q", args[1])
	}

	cart, err := c.carts.UpdateItem(ctx, args[0], quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}

	c.io.Println("✓ Cart updated")
	c.printCart(cart)
	return nil
}

func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: cart remove <item-id>")
	}

	cart, err := c.carts.Remove(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	c.io.Println("✓ Item removed")
	c.printCart(cart)
	return nil
}

func (c *Cli) runCartClear(ctx context.Context) error {
	if _, err := c.carts.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	c.io.Println("✓ Cart cleared")
	return nil
}

func (c *Cli) printCart(cart *api.Cart) {
	c.io.Println("=== Cart ===")
	c.io.Println()

	if cart == nil || len(cart.Items) == 0 {
		c.io.Println("Your cart is empty.")
		return
	}

	for _, item := range cart.Items {
		c.io.Printf("  %-30s x%-3d %10s  (item %s)\n",
			item.Product.Name, item.Quantity, item.TotalPrice, item.ID)
	}
	c.io.Println()
	c.io.Printf("Items:    %d\n", cart.TotalItems)
	c.io.Printf("Subtotal: %s\n", cart.Subtotal)
	c.io.Printf("Total:    %s\n", cart.Total)
}
