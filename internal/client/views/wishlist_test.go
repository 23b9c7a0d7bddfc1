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

func wish(id int64, category string) models.WishlistItem {
	return models.WishlistItem{ID: id, Art: &models.Art{ID: id * 10, Title: "art", Category: category}}
}

func TestGroupByCategory(t *testing.T) {
	items := []models.WishlistItem{
		wish(1, "Painting"),
		wish(2, "Painting"),
		wish(3, "Sculpture"),
		{ID: 4},
	}

	groups := GroupByCategory(items)

	require.Len(t, groups, 3)
	got := map[string]int{}
	for _, g := range groups {
		got[g.Category] = len(g.Items)
	}
	assert.Equal(t, map[string]int{"Painting": 2, "Sculpture": 1, "Other": 1}, got)
	assert.Equal(t, "Painting", groups[0].Category)
	assert.Equal(t, OtherCategory, groups[2].Category)
}

func TestGroupByCategory_EmptyCategoryIsOther(t *testing.T) {
	groups := GroupByCategory([]models.WishlistItem{wish(1, "")})
	require.Len(t, groups, 1)
	assert.Equal(t, OtherCategory, groups[0].Category)
}

func TestStrip_Affordances(t *testing.T) {
	tests := []struct {
		name                string
		strip               Strip
		scroll              func(*Strip)
		wantOffset          int
		wantLeft, wantRight bool
	}{
		{"fits", Strip{Width: 3, Length: 2}, nil, 0, false, false},
		{"exactly full", Strip{Width: 3, Length: 3}, nil, 0, false, false},
		{"overflow at start", Strip{Width: 3, Length: 5}, nil, 0, false, true},
		{"scrolled to end", Strip{Width: 3, Length: 5}, (*Strip).ScrollRight, 2, true, false},
		{"scrolled in middle", Strip{Width: 3, Length: 9}, (*Strip).ScrollRight, 3, true, true},
		{"left clamps", Strip{Width: 3, Length: 9, Offset: 1}, (*Strip).ScrollLeft, 0, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.strip
			if tt.scroll != nil {
				tt.scroll(&s)
			}
			assert.Equal(t, tt.wantOffset, s.Offset)
			left, right := s.Affordance()
			assert.Equal(t, tt.wantLeft, left)
			assert.Equal(t, tt.wantRight, right)
		})
	}
}

func TestStrip_Window(t *testing.T) {
	s := Strip{Width: 3, Length: 5}
	from, to := s.Window()
	assert.Equal(t, [2]int{0, 3}, [2]int{from, to})

	s.ScrollRight()
	from, to = s.Window()
	assert.Equal(t, [2]int{2, 5}, [2]int{from, to})
}

func loadedWishlist(t *testing.T) (*WishlistView, *fakeWishlist) {
	t.Helper()
	fw := &fakeWishlist{items: []models.WishlistItem{
		wish(1, "Painting"), wish(2, "Painting"), wish(3, "Sculpture"),
		wish(4, "Painting"), wish(5, "Painting"), {ID: 6},
	}}
	v := NewWishlistView(fw, member)
	require.NoError(t, v.Load(context.Background()))
	return v, fw
}

func TestWishlistView_RemoveKeepsOthers(t *testing.T) {
	v, fw := loadedWishlist(t)

	require.NoError(t, v.Remove(context.Background(), 3))

	assert.Equal(t, []int64{3}, fw.removed)
	var left []int64
	for _, it := range v.Items() {
		left = append(left, it.ID)
	}
	assert.Equal(t, []int64{1, 2, 4, 5, 6}, left)
	for _, g := range v.Groups() {
		assert.NotEqual(t, "Sculpture", g.Category)
	}
}

func TestWishlistView_RemoveFailureKeepsItem(t *testing.T) {
	v, fw := loadedWishlist(t)
	fw.removeErr = errors.New("down")

	require.Error(t, v.Remove(context.Background(), 1))
	assert.Len(t, v.Items(), 6)
}

func TestWishlistView_StripTracksGroup(t *testing.T) {
	v, _ := loadedWishlist(t)

	s := v.Strip("Painting")
	assert.Equal(t, 4, s.Length)
	s.ScrollRight()
	assert.Equal(t, 1, s.Offset)

	require.NoError(t, v.Remove(context.Background(), 5))
	s = v.Strip("Painting")
	assert.Equal(t, 3, s.Length)
	assert.Equal(t, 0, s.Offset, "offset is clamped when the group shrinks")

	left, right := v.Strip("Sculpture").Affordance()
	assert.False(t, left)
	assert.False(t, right)
}

func TestWishlistView_Open(t *testing.T) {
	v, _ := loadedWishlist(t)

	artID, ok := v.Open(2)
	require.True(t, ok)
	assert.Equal(t, int64(20), artID)

	_, ok = v.Open(6)
	assert.False(t, ok, "items without art have no detail page")
	_, ok = v.Open(99)
	assert.False(t, ok)
}

func TestWishlistView_AnonymousAndClear(t *testing.T) {
	fw := &fakeWishlist{items: []models.WishlistItem{wish(1, "x")}}
	anon := NewWishlistView(fw, session.Identity{})
	require.NoError(t, anon.Load(context.Background()))
	assert.Zero(t, fw.itemCalls)

	v, fw := loadedWishlist(t)
	require.NoError(t, v.Clear(context.Background()))
	assert.Equal(t, 1, fw.cleared)
	assert.Empty(t, v.Groups())
}
