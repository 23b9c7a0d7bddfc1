package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

var member = session.Identity{UserID: 7}

func loadedCart(t *testing.T) (*CartView, *fakeCart) {
	t.Helper()
	fc := &fakeCart{
		items: []models.CartItem{
			{ID: 1, ArtTitle: "Dawn", Price: 100, Quantity: 1},
			{ID: 2, ArtTitle: "Dusk", Price: 50, Quantity: 2},
			{ID: 3, ArtTitle: "Noon", Price: 10, Quantity: 5},
		},
		updateRet: func(itemID int64, qty int) models.CartItem {
			return models.CartItem{ID: itemID, ArtTitle: "saved", Price: 100, Quantity: qty}
		},
	}
	v := NewCartView(fc, member)
	require.NoError(t, v.Load(context.Background()))
	return v, fc
}

func TestCartView_AnonymousLoadSendsNothing(t *testing.T) {
	fc := &fakeCart{}
	v := NewCartView(fc, session.Identity{})

	require.NoError(t, v.Load(context.Background()))
	assert.Zero(t, fc.itemCalls)
	assert.Empty(t, v.Items())
}

func TestCartView_TotalUsesEditedQuantities(t *testing.T) {
	v, fc := loadedCart(t)
	assert.Equal(t, 250.0, v.Total())

	require.True(t, v.Edit(1, 3))
	assert.Equal(t, 450.0, v.Total())
	assert.Empty(t, fc.updates, "editing alone sends nothing")
}

func TestCartView_EditRowStates(t *testing.T) {
	v, _ := loadedCart(t)

	require.True(t, v.Edit(2, 4))
	r, ok := v.Row(2)
	require.True(t, ok)
	assert.Equal(t, Dirty{Edited: 4, Original: 2}, r)

	require.True(t, v.Edit(2, 2))
	r, _ = v.Row(2)
	assert.Equal(t, Clean{Qty: 2}, r)

	assert.False(t, v.Edit(2, -1))
	assert.False(t, v.Edit(99, 1))
}

func TestCartView_SaveBelowOneSendsNothing(t *testing.T) {
	v, fc := loadedCart(t)
	require.True(t, v.Edit(1, 0))
	before := v.Items()

	err := v.Save(context.Background(), 1)
	require.ErrorIs(t, err, ErrQuantityTooLow)
	assert.Empty(t, fc.updates)
	assert.Equal(t, before, v.Items())
	r, _ := v.Row(1)
	assert.Equal(t, Dirty{Edited: 0, Original: 1}, r)
}

func TestCartView_SaveTouchesOnlyThatRow(t *testing.T) {
	v, fc := loadedCart(t)
	require.True(t, v.Edit(1, 3))
	require.True(t, v.Edit(3, 8))

	require.NoError(t, v.Save(context.Background(), 1))

	assert.Equal(t, []updateCall{{itemID: 1, qty: 3}}, fc.updates)
	r1, _ := v.Row(1)
	assert.Equal(t, Clean{Qty: 3}, r1)
	r3, _ := v.Row(3)
	assert.Equal(t, Dirty{Edited: 8, Original: 5}, r3, "other edits survive")

	items := v.Items()
	assert.Equal(t, "saved", items[0].ArtTitle)
	assert.Equal(t, "Dusk", items[1].ArtTitle)
	assert.Equal(t, []int64{3}, v.Dirty())
}

func TestCartView_SaveFailureKeepsEdit(t *testing.T) {
	v, fc := loadedCart(t)
	fc.updateErr = errors.New("boom")
	require.True(t, v.Edit(2, 6))

	require.Error(t, v.Save(context.Background(), 2))
	r, _ := v.Row(2)
	assert.Equal(t, Dirty{Edited: 6, Original: 2}, r)
}

func TestCartView_SaveUnknownItem(t *testing.T) {
	v, _ := loadedCart(t)
	require.ErrorIs(t, v.Save(context.Background(), 42), ErrNoSuchItem)
}

func TestCartView_RemoveAndClear(t *testing.T) {
	v, fc := loadedCart(t)
	before := v.Items()

	require.NoError(t, v.Remove(context.Background(), 2))
	assert.Equal(t, []int64{2}, fc.removed)
	items := v.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
	assert.Len(t, before, 3, "earlier snapshots are not mutated")
	_, ok := v.Row(2)
	assert.False(t, ok)

	fc.removeErr = errors.New("nope")
	require.Error(t, v.Remove(context.Background(), 1))
	assert.Len(t, v.Items(), 2)

	require.NoError(t, v.Clear(context.Background()))
	assert.Equal(t, 1, fc.cleared)
	assert.Empty(t, v.Items())
	assert.Zero(t, v.Total())
}

func TestCartView_Checkout(t *testing.T) {
	v, fc := loadedCart(t)
	assert.Equal(t, "Proceeding to checkout...", v.Checkout())
	assert.Empty(t, fc.updates)
	assert.Zero(t, fc.cleared)
}
