package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runAdminStats(ctx context.Context) error {
	stats, err := c.apiClient.AdminOrderStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to load order stats: %w", err)
	}

	c.io.Println("=== Order Stats ===")
	c.io.Println()
	c.io.Printf("Total orders:     %d\n", stats.TotalOrders)
	c.io.Printf("Pending orders:   %d\n", stats.PendingOrders)
	c.io.Printf("Delivered orders: %d\n", stats.DeliveredOrders)
	c.io.Printf("Total revenue:    %s\n", stats.TotalRevenue)
	return nil
}
