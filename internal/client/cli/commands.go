package cli

import (
	"context"
	"fmt"

	"github.com/dkolesov/shopfront/internal/client/nav"
)

// Run dispatches a command. The guard decides first; a login redirect is
// honored by running the login flow and then the originally requested
// command, mirroring a browser's post-login redirect query.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	route, ok := commandRoutes[command]
	if !ok {
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}

	decision := c.guard.Evaluate(ctx, route)
	if !decision.Allow {
		switch decision.RedirectTo {
		case nav.RouteLogin:
			c.io.Println("You need to sign in first.")
			c.io.Println()
			if err := c.runLogin(ctx); err != nil {
				return err
			}
			// Re-evaluate with the fresh session before continuing
			if again := c.guard.Evaluate(ctx, route); !again.Allow {
				return fmt.Errorf("not authorized for %s", route.Path)
			}
		case nav.RouteHome:
			if route.Meta.Guest {
				c.io.Println("You are already signed in.")
			} else {
				c.io.Println("Admin access required.")
			}
			return c.runHome(ctx)
		default:
			return fmt.Errorf("navigation to %s denied", route.Path)
		}
	}

	// The guard may have fired background initialization; commands
	// render session-dependent data, so wait for it here, off the
	// navigation critical path.
	select {
	case <-c.session.InitDone():
	case <-ctx.Done():
		return ctx.Err()
	}

	switch command {
	case "home":
		return c.runHome(ctx)
	case "products":
		return c.runProducts(ctx, args)
	case "product":
		return c.runProduct(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "cart":
		return c.runCart(ctx, args)
	case "checkout":
		return c.runCheckout(ctx)
	case "track":
		return c.runTrackOrder(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "login":
		return c.runLogin(ctx)
	case "register":
		return c.runRegister(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "password":
		return c.runChangePassword(ctx)
	case "orders":
		return c.runOrders(ctx)
	case "order":
		return c.runOrder(ctx, args)
	case "admin-stats":
		return c.runAdminStats(ctx)
	default:
		PrintUsage(c.io)
		return fmt.Errorf("unknown command: %s", command)
	}
}
