package cli

import "github.com/dkolesov/shopfront/internal/client/nav"

// commandRoutes binds each command to its route definition. The meta
// flags drive the navigation guard the same way router meta drives a
// browser client's guard.
var commandRoutes = map[string]nav.Route{
	"home":       {Name: "Home", Path: "/"},
	"products":   {Name: "Products", Path: "/products"},
	"product":    {Name: "ProductDetail", Path: "/products/detail"},
	"categories": {Name: "Categories", Path: "/categories"},
	"cart":       {Name: "Cart", Path: "/cart"},
	"checkout":   {Name: "Checkout", Path: "/checkout"},
	"track":      {Name: "TrackOrder", Path: "/track-order"},
	"status":     {Name: "Status", Path: "/status"},
	"logout":     {Name: "Logout", Path: "/logout"},

	"login":    {Name: "Login", Path: "/login", Meta: nav.RouteMeta{Guest: true}},
	"register": {Name: "Register", Path: "/register", Meta: nav.RouteMeta{Guest: true}},

	"profile":  {Name: "Profile", Path: "/profile", Meta: nav.RouteMeta{RequiresAuth: true}},
	"password": {Name: "ChangePassword", Path: "/profile/password", Meta: nav.RouteMeta{RequiresAuth: true}},
	"orders":   {Name: "Orders", Path: "/orders", Meta: nav.RouteMeta{RequiresAuth: true}},
	"order":    {Name: "OrderDetail", Path: "/order", Meta: nav.RouteMeta{RequiresAuth: true}},

	"admin-stats": {
		Name: "AdminStats",
		Path: "/admin",
		Meta: nav.RouteMeta{RequiresAuth: true, RequiresAdmin: true},
	},
}
