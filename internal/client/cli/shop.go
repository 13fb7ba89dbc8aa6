package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/dkolesov/shopfront/internal/client/catalog"
	"github.com/dkolesov/shopfront/pkg/api"
)

func (c *Cli) runHome(ctx context.Context) error {
	c.io.Println("=== Shopfront ===")
	c.io.Println()

	featured, err := c.catalog.Featured(ctx)
	if err != nil {
		return fmt.Errorf("failed to load featured products: %w", err)
	}

	if len(featured) > 0 {
		c.io.Println("Featured products:")
		for _, p := range featured {
			c.printProductLine(p)
		}
		c.io.Println()
	}

	categories, err := c.catalog.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	c.io.Println("Categories:")
	for _, cat := range categories {
		c.io.Printf("  %s (%s)\n", cat.Name, cat.Slug)
	}
	return nil
}

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	search := fs.String("search", "", "search term")
	category := fs.String("category", "", "category slug")
	ordering := fs.String("sort", "", "ordering field, e.g. price or -created_at")
	page := fs.Int("page", 1, "page number")
	if err := fs.Parse(args); err != nil {
		return err
	}

	filters := catalog.Filters{
		Search:   *search,
		Category: *category,
		Ordering: *ordering,
	}
	if filters == (catalog.Filters{}) {
		c.catalog.ClearFilters()
	} else {
		c.catalog.SetFilters(filters)
	}

	list, err := c.catalog.Products(ctx, *page)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	c.io.Println("=== Products ===")
	c.io.Println()
	c.printProductList(list, *page)
	return nil
}

func (c *Cli) runProduct(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: product <slug>")
	}

	product, err := c.catalog.ProductBySlug(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}

	c.io.Printf("=== %s ===\n", product.Name)
	c.io.Println()
	if product.Description != "" {
		c.io.Println(product.Description)
		c.io.Println()
	}
	if product.DiscountPrice != "" {
		c.io.Printf("Price: %s (was %s)\n", product.FinalPrice, product.Price)
	} else {
		c.io.Printf("Price: %s\n", product.FinalPrice)
	}
	if product.Category != nil {
		c.io.Printf("Category: %s\n", product.Category.Name)
	}
	if product.Stock > 0 {
		c.io.Printf("In stock: %d\n", product.Stock)
	} else {
		c.io.Println("Out of stock")
	}
	c.io.Println()
	c.io.Printf("Add with: cart add %s <quantity>\n", product.ID)
	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	categories, err := c.catalog.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	c.io.Println("=== Categories ===")
	c.io.Println()
	if len(categories) == 0 {
		c.io.Println("No categories yet.")
		return nil
	}
	for _, cat := range categories {
		c.io.Printf("  %-20s %s\n", cat.Name, cat.Slug)
		if cat.Description != "" {
			c.io.Printf("    %s\n", cat.Description)
		}
	}
	return nil
}

func (c *Cli) printProductList(list *api.ProductList, page int) {
	if list.Count == 0 {
		c.io.Println("No products found.")
		return
	}

	for _, p := range list.Results {
		c.printProductLine(p)
	}
	c.io.Println()
	c.io.Printf("%d product(s) total, page %d\n", list.Count, page)
	if list.Next != "" {
		c.io.Printf("More results: products -page %d\n", page+1)
	}
}

func (c *Cli) printProductLine(p api.Product) {
	price := p.FinalPrice
	if p.DiscountPrice != "" {
		price = fmt.Sprintf("%s (was %s)", p.FinalPrice, p.Price)
	}
	c.io.Printf("  %-30s %10s  [%s]\n", p.Name, price, p.Slug)
}
