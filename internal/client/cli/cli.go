// Package cli implements the terminal frontend. Every command maps to a
// route with authorization meta and is vetted by the navigation guard
// before it runs, exactly like a route transition in a browser client.
package cli

import (
	apiclient "github.com/dkolesov/shopfront/internal/client/api"
	"github.com/dkolesov/shopfront/internal/client/cart"
	"github.com/dkolesov/shopfront/internal/client/catalog"
	"github.com/dkolesov/shopfront/internal/client/iocli"
	"github.com/dkolesov/shopfront/internal/client/nav"
	"github.com/dkolesov/shopfront/internal/client/session"
)

type Cli struct {
	io        iocli.IO
	apiClient *apiclient.Client
	session   *session.Service
	guard     *nav.Guard
	carts     *cart.Store
	catalog   *catalog.Store
}

func New(
	io iocli.IO,
	apiClient *apiclient.Client,
	sessionSvc *session.Service,
	guard *nav.Guard,
	cartStore *cart.Store,
	catalogStore *catalog.Store,
) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		session:   sessionSvc,
		guard:     guard,
		carts:     cartStore,
		catalog:   catalogStore,
	}
}
