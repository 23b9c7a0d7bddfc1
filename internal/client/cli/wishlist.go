package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/artgallery/internal/client/views"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

var errNoWishlist = common.NewValidationError("", "Open the wishlist first.")

func (a *App) cmdWishlist(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteWishlist}) {
		return nil
	}
	a.wishlist = views.NewWishlistView(a.svc.Wishlist, a.who)
	if err := a.wishlist.Load(ctx); err != nil {
		return a.report(ctx, "load wishlist", err, "")
	}
	renderWishlist(a.wishlist)
	return nil
}

func (a *App) wishlistOpen() (*views.WishlistView, error) {
	if a.wishlist == nil || a.router.Current().Route != RouteWishlist {
		return nil, errNoWishlist
	}
	return a.wishlist, nil
}

// cmdOpen navigates from a wishlist card to its art.
func (a *App) cmdOpen(ctx context.Context, args []string) error {
	w, err := a.wishlistOpen()
	if err != nil {
		return a.report(ctx, "open item", err, "")
	}
	id, err := argID(args, 0, "item")
	if err != nil {
		return a.report(ctx, "open item", err, "")
	}
	artID, ok := w.Open(id)
	if !ok {
		return a.report(ctx, "open item", views.ErrNoSuchItem, "This item has no art to show.")
	}
	return a.openDetail(ctx, Location{Route: RouteUserArtDetail, ID: artID})
}

// cmdUnwish removes a card and stays on the wishlist.
func (a *App) cmdUnwish(ctx context.Context, args []string) error {
	w, err := a.wishlistOpen()
	if err != nil {
		return a.report(ctx, "remove from wishlist", err, "")
	}
	id, err := argID(args, 0, "item")
	if err != nil {
		return a.report(ctx, "remove from wishlist", err, "")
	}
	if err := w.Remove(ctx, id); err != nil {
		return a.report(ctx, "remove from wishlist", err, "")
	}
	renderWishlist(w)
	return nil
}

func (a *App) cmdClearWishlist(ctx context.Context, args []string) error {
	w, err := a.wishlistOpen()
	if err != nil {
		return a.report(ctx, "clear wishlist", err, "")
	}
	if err := w.Clear(ctx); err != nil {
		return a.report(ctx, "clear wishlist", err, "")
	}
	renderWishlist(w)
	return nil
}

func (a *App) cmdScroll(ctx context.Context, args []string) error {
	w, err := a.wishlistOpen()
	if err != nil {
		return a.report(ctx, "scroll", err, "")
	}
	if len(args) < 2 {
		return a.report(ctx, "scroll", common.NewValidationError("", "usage: scroll <left|right> <category>"), "")
	}

	s := w.Strip(strings.Join(args[1:], " "))
	switch args[0] {
	case "left":
		s.ScrollLeft()
	case "right":
		s.ScrollRight()
	default:
		return a.report(ctx, "scroll", common.NewValidationError("direction", "must be left or right"), "")
	}
	renderWishlist(w)
	return nil
}
