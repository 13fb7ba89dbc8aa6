// Package catalog wraps the product listing endpoints and the analytics
// interaction tracker. Pure request/response glue: state is the server's
// last answer plus the active filters.
package catalog

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"sync"

	apiclient "github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/pkg/api"
)

const defaultOrdering = "-created_at"

// Filters narrow the product listing.
type Filters struct {
	Category string
	Search   string
	Ordering string
}

// Store is the catalog subsystem.
type Store struct {
	apiClient *apiclient.Client

	mu      sync.Mutex
	filters Filters
}

// NewStore creates the catalog store with the default ordering.
func NewStore(apiClient *apiclient.Client) *Store {
	return &Store{
		apiClient: apiClient,
		filters:   Filters{Ordering: defaultOrdering},
	}
}

// SetFilters replaces the active filters.
func (s *Store) SetFilters(f Filters) {
	s.mu.Lock()
	s.filters = f
	s.mu.Unlock()
}

// ClearFilters resets the filters to the default state.
func (s *Store) ClearFilters() {
	s.SetFilters(Filters{Ordering: defaultOrdering})
}

// Products lists products for the given page using the active filters.
func (s *Store) Products(ctx context.Context, page int) (*api.ProductList, error) {
	return s.apiClient.Products(ctx, s.query(page))
}

// ByCategory lists one category's products for the given page.
func (s *Store) ByCategory(ctx context.Context, categorySlug string, page int) (*api.ProductList, error) {
	query := url.Values{}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	return s.apiClient.ProductsByCategory(ctx, categorySlug, query)
}

// Featured lists the featured selection.
func (s *Store) Featured(ctx context.Context) ([]api.Product, error) {
	return s.apiClient.FeaturedProducts(ctx)
}

// Categories lists all categories.
func (s *Store) Categories(ctx context.Context) ([]api.Category, error) {
	return s.apiClient.Categories(ctx)
}

// ProductBySlug fetches one product and records a view interaction.
// Tracking is best-effort; a failure never surfaces to the caller.
func (s *Store) ProductBySlug(ctx context.Context, slug string) (*api.Product, error) {
	product, err := s.apiClient.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.Track(ctx, product.ID, "view", nil)
	return product, nil
}

// Track records a product interaction with the analytics endpoint.
func (s *Store) Track(ctx context.Context, productID, interactionType string, metadata map[string]any) {
	err := s.apiClient.TrackInteraction(ctx, api.TrackInteractionRequest{
		ProductID:       productID,
		InteractionType: interactionType,
		Metadata:        metadata,
	})
	if err != nil {
		slog.Warn("failed to track interaction", "type", interactionType, "error", err)
	}
}

// query builds listing parameters from the active filters, dropping
// empty values the way the server expects.
func (s *Store) query(page int) url.Values {
	s.mu.Lock()
	filters := s.filters
	s.mu.Unlock()

	query := url.Values{}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.Ordering != "" {
		query.Set("ordering", filters.Ordering)
	}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	return query
}
