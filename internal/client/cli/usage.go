package cli

import "github.com/dkolesov/shopfront/internal/client/iocli"

// PrintUsage prints the command reference.
func PrintUsage(io iocli.IO) {
	io.Println("Usage: shopfront [flags] <command> [arguments]")
	io.Println()
	io.Println("Browsing:")
	io.Println("  home                          Featured products and categories")
	io.Println("  products [-search s] [-category slug] [-sort field] [-page n]")
	io.Println("                                List products")
	io.Println("  product <slug>                Show one product")
	io.Println("  categories                    List categories")
	io.Println()
	io.Println("Cart and orders:")
	io.Println("  cart [show]                   Show the cart")
	io.Println("  cart add <product-id> [qty]   Add a product")
	io.Println("  cart update <item-id> <qty>   Change a line item quantity")
	io.Println("  cart remove <item-id>         Remove a line item")
	io.Println("  cart clear                    Empty the cart")
	io.Println("  checkout                      Place an order from the cart")
	io.Println("  track <order-number>          Track an order (no account needed)")
	io.Println("  orders                        List your orders")
	io.Println("  order <order-id>              Show one order")
	io.Println()
	io.Println("Account:")
	io.Println("  login                         Sign in")
	io.Println("  register                      Create an account")
	io.Println("  logout                        Sign out")
	io.Println("  status                        Show session status")
	io.Println("  profile [edit]                Show or edit your profile")
	io.Println("  password                      Change your password")
	io.Println()
	io.Println("Admin:")
	io.Println("  admin-stats                   Order volume and revenue")
	io.Println()
	io.Println("Flags:")
	io.Println("  -server URL                   API base URL (default http://localhost:8000/api,")
	io.Println("                                or SHOPFRONT_SERVER)")
	io.Println("  -db PATH                      Local state database (default shopfront.db)")
	io.Println("  -version                      Print version and exit")
}
