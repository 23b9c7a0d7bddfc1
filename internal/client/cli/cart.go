package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/artgallery/internal/client/views"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

var errNoCart = common.NewValidationError("", "Open the cart first.")

// cmdCart shows the cart of the current identity. Without a session the
// guard sends the user to login before anything is fetched.
func (a *App) cmdCart(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteCart}) {
		return nil
	}
	a.cart = views.NewCartView(a.svc.Cart, a.who)
	if err := a.cart.Load(ctx); err != nil {
		return a.report(ctx, "load cart", err, "")
	}
	renderCart(a.cart)
	return nil
}

func (a *App) cartOpen() (*views.CartView, error) {
	if a.cart == nil || a.router.Current().Route != RouteCart {
		return nil, errNoCart
	}
	return a.cart, nil
}

func (a *App) cmdQty(ctx context.Context, args []string) error {
	cart, err := a.cartOpen()
	if err != nil {
		return a.report(ctx, "edit quantity", err, "")
	}
	id, err := argID(args, 0, "item")
	if err != nil {
		return a.report(ctx, "edit quantity", err, "")
	}
	if len(args) < 2 {
		return a.report(ctx, "edit quantity", common.NewValidationError("quantity", "is required"), "")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return a.report(ctx, "edit quantity", common.NewValidationError("quantity", "must be a number"), "")
	}
	if !cart.Edit(id, qty) {
		return a.report(ctx, "edit quantity", views.ErrNoSuchItem, "Quantity not changed.")
	}
	renderCart(cart)
	return nil
}

func (a *App) cmdSave(ctx context.Context, args []string) error {
	cart, err := a.cartOpen()
	if err != nil {
		return a.report(ctx, "save quantity", err, "")
	}
	id, err := argID(args, 0, "item")
	if err != nil {
		return a.report(ctx, "save quantity", err, "")
	}
	if err := cart.Save(ctx, id); err != nil {
		if errors.Is(err, views.ErrNoSuchItem) {
			return a.report(ctx, "save quantity", err, "No such item in the cart.")
		}
		return a.report(ctx, "save quantity", err, "")
	}
	printlnFn("Quantity updated.")
	renderCart(cart)
	return nil
}

func (a *App) cmdRemove(ctx context.Context, args []string) error {
	cart, err := a.cartOpen()
	if err != nil {
		return a.report(ctx, "remove item", err, "")
	}
	id, err := argID(args, 0, "item")
	if err != nil {
		return a.report(ctx, "remove item", err, "")
	}
	if err := cart.Remove(ctx, id); err != nil {
		return a.report(ctx, "remove item", err, "")
	}
	renderCart(cart)
	return nil
}

func (a *App) cmdClearCart(ctx context.Context, args []string) error {
	cart, err := a.cartOpen()
	if err != nil {
		return a.report(ctx, "clear cart", err, "")
	}
	if err := cart.Clear(ctx); err != nil {
		return a.report(ctx, "clear cart", err, "")
	}
	renderCart(cart)
	return nil
}

func (a *App) cmdCheckout(ctx context.Context, args []string) error {
	cart, err := a.cartOpen()
	if err != nil {
		return a.report(ctx, "checkout", err, "")
	}
	printlnFn(cart.Checkout())
	return nil
}
