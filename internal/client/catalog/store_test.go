package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiclient "github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/pkg/api"
)

func TestStore_Products_FilterQuery(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(api.ProductList{Count: 1, Results: []api.Product{{Slug: "mug"}}})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewStore(apiclient.NewClient(server.URL, nil))
	store.SetFilters(Filters{Category: "kitchen", Search: "mug", Ordering: "-created_at"})

	list, err := store.Products(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)

	assert.Equal(t, []string{"kitchen"}, gotQuery["category"])
	assert.Equal(t, []string{"mug"}, gotQuery["search"])
	assert.Equal(t, []string{"-created_at"}, gotQuery["ordering"])
	assert.Equal(t, []string{"2"}, gotQuery["page"])
}

func TestStore_Products_EmptyFiltersOmitted(t *testing.T) {
	var gotQuery map[string][]string
	mux := http.NewServeMux()
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(api.ProductList{})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewStore(apiclient.NewClient(server.URL, nil))
	store.SetFilters(Filters{})

	_, err := store.Products(context.Background(), 1)
	require.NoError(t, err)

	assert.NotContains(t, gotQuery, "category")
	assert.NotContains(t, gotQuery, "search")
	assert.NotContains(t, gotQuery, "ordering")
	assert.NotContains(t, gotQuery, "page")
}

func TestStore_ProductBySlug_TracksView(t *testing.T) {
	var (
		mu      sync.Mutex
		tracked []api.TrackInteractionRequest
	)
	mux := http.NewServeMux()
	mux.HandleFunc("/products/blue-mug/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Product{ID: "prod-7", Slug: "blue-mug", Name: "Blue Mug"})
	})
	mux.HandleFunc("/analytics/track/", func(w http.ResponseWriter, r *http.Request) {
		var req api.TrackInteractionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		tracked = append(tracked, req)
		mu.Unlock()
		_ = json.NewEncoder(w).Encode(api.MessageResponse{Message: "ok"})
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewStore(apiclient.NewClient(server.URL, nil))

	product, err := store.ProductBySlug(context.Background(), "blue-mug")
	require.NoError(t, err)
	assert.Equal(t, "Blue Mug", product.Name)

	require.Len(t, tracked, 1)
	assert.Equal(t, "prod-7", tracked[0].ProductID)
	assert.Equal(t, "view", tracked[0].InteractionType)
}

func TestStore_ProductBySlug_TrackFailureIgnored(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products/blue-mug/", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(api.Product{ID: "prod-7", Slug: "blue-mug"})
	})
	mux.HandleFunc("/analytics/track/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	store := NewStore(apiclient.NewClient(server.URL, nil))

	_, err := store.ProductBySlug(context.Background(), "blue-mug")
	assert.NoError(t, err)
}
