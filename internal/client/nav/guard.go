// Package nav implements the navigation guard: a synchronous
// authorization decision made before every route transition, using only
// locally available state. It never calls the network on this path; at
// most it kicks off session initialization in the background.
package nav

import (
	"context"
	"net/url"
)

// Well-known route names used as redirect targets.
const (
	RouteLogin = "Login"
	RouteHome  = "Home"
)

// RouteMeta are the authorization flags attached to a route definition.
type RouteMeta struct {
	RequiresAuth  bool
	RequiresAdmin bool
	Guest         bool
}

// Route is a navigation target: a name, the requested path and its meta.
type Route struct {
	Name string
	Path string
	Meta RouteMeta
}

// Decision is the guard's verdict. Every evaluation terminates in either
// an explicit continue or an explicit redirect; the guard never errors.
type Decision struct {
	RedirectTo string
	Query      url.Values
	Allow      bool
}

// Continue allows the navigation.
func Continue() Decision {
	return Decision{Allow: true}
}

// RedirectTo denies the navigation in favor of the named route.
func RedirectTo(name string, query url.Values) Decision {
	return Decision{RedirectTo: name, Query: query}
}

// TokenReader is the guard's view of the token store: presence only.
type TokenReader interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// Session is the guard's view of the session state machine.
type Session interface {
	Initialized() bool
	IsAdmin() bool
	StartBackgroundInit(ctx context.Context)
}

// Guard decides route access from token presence and cached session
// flags.
type Guard struct {
	tokens  TokenReader
	session Session
}

// NewGuard creates a navigation guard.
func NewGuard(tokens TokenReader, session Session) *Guard {
	return &Guard{tokens: tokens, session: session}
}

// Evaluate makes the authorization decision for a navigation to route.
//
// Admin routes are handled optimistically: before the session has been
// initialized the admin status is unknown, so navigation is allowed and
// initialization fires in the background. A non-admin may briefly reach
// an admin view's shell until the view's own check revokes access. Only
// an initialized session with a false admin flag is redirected home.
func (g *Guard) Evaluate(ctx context.Context, route Route) Decision {
	hasToken := g.hasToken(ctx)

	if route.Meta.RequiresAuth && !hasToken {
		// Preserve the requested path for post-login redirect
		return RedirectTo(RouteLogin, url.Values{"redirect": {route.Path}})
	}

	if route.Meta.RequiresAdmin && g.session.Initialized() && !g.session.IsAdmin() {
		return RedirectTo(RouteHome, nil)
	}

	if route.Meta.Guest && hasToken {
		return RedirectTo(RouteHome, nil)
	}

	if hasToken && !g.session.Initialized() {
		g.session.StartBackgroundInit(ctx)
	}

	return Continue()
}

// hasToken reports access-token presence. A storage read failure counts
// as absence: the guard has no error path.
func (g *Guard) hasToken(ctx context.Context) bool {
	token, err := g.tokens.GetAccessToken(ctx)
	return err == nil && token != ""
}
