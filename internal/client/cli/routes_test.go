package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

func TestResolve(t *testing.T) {
	anon := session.Identity{}
	user := session.Identity{UserID: 2}

	public := []Route{
		RouteHome, RouteRegister, RouteLogin, RouteVerify, RouteSuccess,
		RouteShop, RouteForgotPassword, RouteResetPassword,
	}
	protected := []Route{
		RouteAdminHome, RouteUserHome, RouteUserArtList, RouteUserArtDetail,
		RouteAllUsers, RouteWishlist, RouteCart, RouteAddArt, RouteArtList,
		RouteArtDetail, RouteArtUpdate, RouteProfileUpdate,
	}

	for _, r := range public {
		got, redirected := Resolve(Location{Route: r}, anon)
		assert.False(t, redirected, r)
		assert.Equal(t, r, got.Route)
	}
	for _, r := range protected {
		got, redirected := Resolve(Location{Route: r, ID: 4}, anon)
		assert.True(t, redirected, r)
		assert.Equal(t, Location{Route: RouteLogin}, got)

		got, redirected = Resolve(Location{Route: r, ID: 4}, user)
		assert.False(t, redirected, r)
		assert.Equal(t, Location{Route: r, ID: 4}, got)
	}
}

func TestRouter_Go(t *testing.T) {
	r := NewRouter()
	assert.Equal(t, "/", r.Current().String())

	loc, redirected := r.Go(Location{Route: RouteCart}, session.Identity{})
	assert.True(t, redirected)
	assert.Equal(t, RouteLogin, loc.Route)
	assert.Equal(t, "/login", r.Current().String())

	r.Go(Location{Route: RouteUserArtDetail, ID: 7}, session.Identity{UserID: 3})
	assert.Equal(t, "/user-art-detail/7", r.Current().String())
}
