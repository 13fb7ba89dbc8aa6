// Package cart wraps the cart endpoints and owns the anonymous session
// identifier that keys the guest cart before authentication.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	apiclient "github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/internal/client/storage"
	"github.com/dkolesov/shopfront/pkg/api"
)

// Store is the cart subsystem. It keeps the server's last cart snapshot
// and nothing else; totals and prices are never computed locally.
type Store struct {
	apiClient *apiclient.Client
	tokens    storage.TokenStorage
	session   storage.SessionStorage

	mu   sync.Mutex
	cart *api.Cart
}

// NewStore creates the cart store.
func NewStore(apiClient *apiclient.Client, tokens storage.TokenStorage, session storage.SessionStorage) *Store {
	return &Store{
		apiClient: apiClient,
		tokens:    tokens,
		session:   session,
	}
}

// Cached returns the last cart snapshot received from the server, or nil.
func (s *Store) Cached() *api.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// Fetch loads the current cart.
func (s *Store) Fetch(ctx context.Context) (*api.Cart, error) {
	key, err := s.requestKey(ctx, true)
	if err != nil {
		return nil, err
	}

	cart, err := s.apiClient.Cart(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.remember(cart), nil
}

// Add puts a product into the cart.
func (s *Store) Add(ctx context.Context, productID string, quantity int) (*api.Cart, error) {
	key, err := s.requestKey(ctx, true)
	if err != nil {
		return nil, err
	}

	cart, err := s.apiClient.AddToCart(ctx, api.AddToCartRequest{
		ProductID:  productID,
		Quantity:   quantity,
		SessionKey: key,
	})
	if err != nil {
		return nil, err
	}
	return s.remember(cart), nil
}

// UpdateItem changes a line item's quantity.
func (s *Store) UpdateItem(ctx context.Context, itemID string, quantity int) (*api.Cart, error) {
	key, err := s.requestKey(ctx, false)
	if err != nil {
		return nil, err
	}

	cart, err := s.apiClient.UpdateCartItem(ctx, itemID, api.UpdateCartItemRequest{
		Quantity:   quantity,
		SessionKey: key,
	})
	if err != nil {
		return nil, err
	}
	return s.remember(cart), nil
}

// Remove deletes a line item.
func (s *Store) Remove(ctx context.Context, itemID string) (*api.Cart, error) {
	key, err := s.requestKey(ctx, false)
	if err != nil {
		return nil, err
	}

	cart, err := s.apiClient.RemoveFromCart(ctx, itemID, key)
	if err != nil {
		return nil, err
	}
	return s.remember(cart), nil
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) (*api.Cart, error) {
	key, err := s.requestKey(ctx, false)
	if err != nil {
		return nil, err
	}

	cart, err := s.apiClient.ClearCart(ctx, key)
	if err != nil {
		return nil, err
	}
	return s.remember(cart), nil
}

// MergeGuest folds the guest cart into the authenticated user's cart.
// Called by the session service right after login commits the credential
// pair; with no guest key there is nothing to merge.
func (s *Store) MergeGuest(ctx context.Context) error {
	key, err := s.session.GetSessionKey(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionKeyNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read guest session key: %w", err)
	}

	cart, err := s.apiClient.MergeCart(ctx, key)
	if err != nil {
		return err
	}

	s.remember(cart)
	return nil
}

// requestKey returns the guest session key to send with a cart request.
// Authenticated callers are identified by the bearer token instead, so
// the key is empty whenever an access token is stored. For guests, a
// missing key is minted and persisted when create is set.
func (s *Store) requestKey(ctx context.Context, create bool) (string, error) {
	if token, err := s.tokens.GetAccessToken(ctx); err == nil && token != "" {
		return "", nil
	}

	key, err := s.session.GetSessionKey(ctx)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, storage.ErrSessionKeyNotFound) {
		return "", fmt.Errorf("failed to read guest session key: %w", err)
	}
	if !create {
		return "", nil
	}

	key = uuid.New().String()
	if err := s.session.SaveSessionKey(ctx, key); err != nil {
		return "", fmt.Errorf("failed to persist guest session key: %w", err)
	}
	return key, nil
}

func (s *Store) remember(cart *api.Cart) *api.Cart {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	return cart
}
