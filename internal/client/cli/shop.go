package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/artgallery/internal/client/views"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

var errNoListing = common.NewValidationError("", "Open the shop first.")

func (a *App) cmdShop(ctx context.Context, args []string) error {
	a.navigate(Location{Route: RouteShop})
	if err := a.openListing(ctx); err != nil {
		return err
	}
	a.renderListing()
	return nil
}

func (a *App) cmdArts(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteUserArtList}) {
		return nil
	}
	if err := a.openListing(ctx); err != nil {
		return err
	}
	a.renderListing()
	return nil
}

// openListing builds a fresh listing for the screen just entered, so a
// selection never outlives the screen it was made on.
func (a *App) openListing(ctx context.Context) error {
	a.listing = views.NewListingView(a.svc.Arts, a.log)
	if err := a.listing.Load(ctx); err != nil {
		return a.report(ctx, "load arts", err, "")
	}
	return nil
}

func (a *App) renderListing() {
	renderCategories(a.listing.Categories(), a.listing.Filter())
	renderArts(a.listing.Visible())
}

func (a *App) listingOpen() (*views.ListingView, error) {
	if a.listing == nil {
		return nil, errNoListing
	}
	switch a.router.Current().Route {
	case RouteShop, RouteUserArtList, RouteArtList:
		return a.listing, nil
	}
	return nil, errNoListing
}

func (a *App) cmdSearch(ctx context.Context, args []string) error {
	v, err := a.listingOpen()
	if err != nil {
		return a.report(ctx, "search", err, "")
	}
	if err := v.Search(ctx, strings.Join(args, " ")); err != nil {
		return a.report(ctx, "search", err, "")
	}
	renderArts(v.Visible())
	return nil
}

func (a *App) cmdCategory(ctx context.Context, args []string) error {
	v, err := a.listingOpen()
	if err != nil {
		return a.report(ctx, "category", err, "")
	}
	if len(args) > 0 {
		v.ToggleCategory(strings.Join(args, " "))
	}
	renderCategories(v.Categories(), v.Filter())
	return nil
}

func (a *App) cmdPrice(ctx context.Context, args []string) error {
	v, err := a.listingOpen()
	if err != nil {
		return a.report(ctx, "price", err, "")
	}
	lower, upper := "", ""
	if len(args) > 0 {
		lower = args[0]
	}
	if len(args) > 1 {
		upper = args[1]
	}
	v.SetPriceRange(lower, upper)
	return nil
}

func (a *App) cmdApply(ctx context.Context, args []string) error {
	v, err := a.listingOpen()
	if err != nil {
		return a.report(ctx, "apply", err, "")
	}
	renderArts(v.Apply())
	return nil
}

// cmdArt opens the user detail screen of an art.
func (a *App) cmdArt(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "id")
	if err != nil {
		return a.report(ctx, "art", err, "")
	}
	return a.openDetail(ctx, Location{Route: RouteUserArtDetail, ID: id})
}

func (a *App) openDetail(ctx context.Context, to Location) error {
	if !a.navigate(to) {
		return nil
	}
	if err := a.detail.Load(ctx, to.ID); err != nil {
		return a.report(ctx, "load art", err, "")
	}
	art, _ := a.detail.Art()
	renderArt(art)
	renderPicture(a.detail)
	return nil
}

func (a *App) onDetail() bool {
	switch a.router.Current().Route {
	case RouteUserArtDetail, RouteArtDetail:
		_, ok := a.detail.Art()
		return ok
	}
	return false
}

var errNoArtShown = common.NewValidationError("", "Open an art first.")

func (a *App) cmdNextPicture(ctx context.Context, args []string) error {
	if !a.onDetail() {
		return a.report(ctx, "next picture", errNoArtShown, "")
	}
	a.detail.NextPicture()
	renderPicture(a.detail)
	return nil
}

func (a *App) cmdPrevPicture(ctx context.Context, args []string) error {
	if !a.onDetail() {
		return a.report(ctx, "previous picture", errNoArtShown, "")
	}
	a.detail.PrevPicture()
	renderPicture(a.detail)
	return nil
}

// cmdBuy adds one of the shown art to the cart and moves to the cart.
func (a *App) cmdBuy(ctx context.Context, args []string) error {
	if !a.onDetail() {
		return a.report(ctx, "add to cart", errNoArtShown, "")
	}
	if a.who.Anonymous() {
		return a.cmdCart(ctx, nil)
	}
	art, _ := a.detail.Art()
	if _, err := a.svc.Cart.Add(ctx, a.who, art.ID, 1); err != nil {
		return a.report(ctx, "add to cart", err, "")
	}
	printlnFn("Added to cart.")
	return a.cmdCart(ctx, nil)
}

// cmdWish adds the shown art to the wishlist and moves to the wishlist.
func (a *App) cmdWish(ctx context.Context, args []string) error {
	if !a.onDetail() {
		return a.report(ctx, "add to wishlist", errNoArtShown, "")
	}
	if a.who.Anonymous() {
		return a.cmdWishlist(ctx, nil)
	}
	art, _ := a.detail.Art()
	if _, err := a.svc.Wishlist.Add(ctx, a.who, art.ID); err != nil {
		return a.report(ctx, "add to wishlist", err, "")
	}
	printlnFn("Added to wishlist.")
	return a.cmdWishlist(ctx, nil)
}
