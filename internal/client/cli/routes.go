package cli

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

// Route names one screen of the storefront.
type Route string

const (
	RouteHome           Route = "home"
	RouteRegister       Route = "register"
	RouteLogin          Route = "login"
	RouteVerify         Route = "verify"
	RouteSuccess        Route = "success"
	RouteAdminHome      Route = "admin-home"
	RouteUserHome       Route = "user-home"
	RouteShop           Route = "shop"
	RouteUserArtList    Route = "user-art-list"
	RouteUserArtDetail  Route = "user-art-detail"
	RouteAllUsers       Route = "all-users"
	RouteWishlist       Route = "wishlist"
	RouteCart           Route = "cart"
	RouteAddArt         Route = "add-art"
	RouteArtList        Route = "art-list"
	RouteArtDetail      Route = "art-detail"
	RouteArtUpdate      Route = "art-update"
	RouteForgotPassword Route = "forgot-password"
	RouteResetPassword  Route = "reset-password"
	RouteProfileUpdate  Route = "profile-update"
)

var publicRoutes = map[Route]bool{
	RouteHome:           true,
	RouteRegister:       true,
	RouteLogin:          true,
	RouteVerify:         true,
	RouteSuccess:        true,
	RouteShop:           true,
	RouteForgotPassword: true,
	RouteResetPassword:  true,
}

// Public reports whether r can be shown without a session.
func (r Route) Public() bool { return publicRoutes[r] }

// Location is a route plus its id parameter, if it takes one.
type Location struct {
	Route Route
	ID    int64
}

func (l Location) String() string {
	if l.ID > 0 {
		return fmt.Sprintf("/%s/%d", l.Route, l.ID)
	}
	if l.Route == RouteHome {
		return "/"
	}
	return "/" + string(l.Route)
}

// Router tracks the current location and guards protected routes.
type Router struct {
	mu      sync.Mutex
	current Location
}

func NewRouter() *Router {
	return &Router{current: Location{Route: RouteHome}}
}

// Resolve applies the guard: a protected route requested without a session
// resolves to login.
func Resolve(to Location, who session.Identity) (Location, bool) {
	if !to.Route.Public() && who.Anonymous() {
		return Location{Route: RouteLogin}, true
	}
	return to, false
}

// Go moves to the guarded destination and reports whether it was
// redirected.
func (r *Router) Go(to Location, who session.Identity) (Location, bool) {
	dest, redirected := Resolve(to, who)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = dest
	return dest, redirected
}

func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
