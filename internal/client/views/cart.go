package views

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

// CheckoutMessage acknowledges checkout; no payment happens.
const CheckoutMessage = "Proceeding to checkout..."

var (
	// ErrQuantityTooLow is returned by Save for a quantity below 1.
	ErrQuantityTooLow = errors.New("quantity must be at least 1")
	ErrNoSuchItem     = errors.New("no such item")
)

// Row is the quantity state of one cart line: Clean or Dirty.
type Row interface {
	Quantity() int
	isRow()
}

// Clean mirrors the server quantity.
type Clean struct {
	Qty int
}

// Dirty holds a local edit not yet saved.
type Dirty struct {
	Edited   int
	Original int
}

func (c Clean) Quantity() int { return c.Qty }
func (d Dirty) Quantity() int { return d.Edited }
func (Clean) isRow()          {}
func (Dirty) isRow()          {}

// CartView is the cart screen of one identity.
type CartView struct {
	mu    sync.Mutex
	cart  services.CartService
	who   session.Identity
	items []models.CartItem
	rows  map[int64]Row
}

func NewCartView(cart services.CartService, who session.Identity) *CartView {
	return &CartView{cart: cart, who: who, rows: map[int64]Row{}}
}

// Load fetches the cart. An anonymous identity yields an empty cart and no
// request.
func (v *CartView) Load(ctx context.Context) error {
	if v.who.Anonymous() {
		v.mu.Lock()
		v.items, v.rows = nil, map[int64]Row{}
		v.mu.Unlock()
		return nil
	}

	items, err := v.cart.Items(ctx, v.who)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
	v.rows = make(map[int64]Row, len(items))
	for _, it := range items {
		v.rows[it.ID] = Clean{Qty: it.Quantity}
	}
	return nil
}

func (v *CartView) Items() []models.CartItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.CartItem(nil), v.items...)
}

func (v *CartView) Row(itemID int64) (Row, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	r, ok := v.rows[itemID]
	return r, ok
}

func originalQuantity(r Row) int {
	if d, ok := r.(Dirty); ok {
		return d.Original
	}
	return r.Quantity()
}

// Edit records a local quantity. Negative values and unknown items are
// ignored and reported as false. Editing back to the server value makes the
// row Clean again.
func (v *CartView) Edit(itemID int64, qty int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	r, ok := v.rows[itemID]
	if !ok || qty < 0 {
		return false
	}
	orig := originalQuantity(r)
	if qty == orig {
		v.rows[itemID] = Clean{Qty: orig}
	} else {
		v.rows[itemID] = Dirty{Edited: qty, Original: orig}
	}
	return true
}

// Save sends the row's current quantity. A quantity below 1 fails with
// ErrQuantityTooLow without a request. On success only that row changes.
func (v *CartView) Save(ctx context.Context, itemID int64) error {
	v.mu.Lock()
	r, ok := v.rows[itemID]
	v.mu.Unlock()
	if !ok {
		return ErrNoSuchItem
	}
	if r.Quantity() < 1 {
		return ErrQuantityTooLow
	}

	updated, err := v.cart.Update(ctx, v.who, itemID, r.Quantity())
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.items {
		if v.items[i].ID == itemID {
			v.items[i] = updated
			break
		}
	}
	v.rows[itemID] = Clean{Qty: updated.Quantity}
	return nil
}

// Remove drops the item after the server confirms.
func (v *CartView) Remove(ctx context.Context, itemID int64) error {
	if err := v.cart.Remove(ctx, v.who, itemID); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	kept := make([]models.CartItem, 0, len(v.items))
	for _, it := range v.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	v.items = kept
	delete(v.rows, itemID)
	return nil
}

func (v *CartView) Clear(ctx context.Context) error {
	if err := v.cart.Clear(ctx, v.who); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items, v.rows = nil, map[int64]Row{}
	return nil
}

// Total sums price times the current, possibly unsaved, quantity.
func (v *CartView) Total() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	var total float64
	for _, it := range v.items {
		qty := it.Quantity
		if r, ok := v.rows[it.ID]; ok {
			qty = r.Quantity()
		}
		total += it.Price * float64(qty)
	}
	return total
}

// Dirty lists the ids of rows with unsaved edits, ascending.
func (v *CartView) Dirty() []int64 {
	v.mu.Lock()
	defer v.mu.Unlock()

	var out []int64
	for id, r := range v.rows {
		if _, ok := r.(Dirty); ok {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (v *CartView) Checkout() string { return CheckoutMessage }
