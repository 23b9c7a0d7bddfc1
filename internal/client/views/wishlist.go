package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

// OtherCategory collects items without an art or a category.
const OtherCategory = "Other"

// DefaultStripWidth is how many cards one category row shows at a time.
const DefaultStripWidth = 3

type Group struct {
	Category string
	Items    []models.WishlistItem
}

// GroupByCategory buckets items by art category in order of first
// appearance.
func GroupByCategory(items []models.WishlistItem) []Group {
	var groups []Group
	index := map[string]int{}
	for _, it := range items {
		cat := it.Category()
		if cat == "" {
			cat = OtherCategory
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, Group{Category: cat})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Strip is a horizontally scrolled window of Width cards over Length cards.
// Scrolling never changes the data.
type Strip struct {
	Offset int
	Width  int
	Length int
}

func (s *Strip) maxOffset() int {
	if s.Length <= s.Width {
		return 0
	}
	return s.Length - s.Width
}

func (s *Strip) ScrollLeft() {
	s.Offset -= s.Width
	if s.Offset < 0 {
		s.Offset = 0
	}
}

func (s *Strip) ScrollRight() {
	s.Offset += s.Width
	if m := s.maxOffset(); s.Offset > m {
		s.Offset = m
	}
}

// Affordance reports whether there is anything to scroll to on either side.
func (s *Strip) Affordance() (showLeft, showRight bool) {
	return s.Offset > 0, s.Offset+s.Width < s.Length
}

// Window returns the half-open index range currently in view.
func (s *Strip) Window() (from, to int) {
	from = s.Offset
	if from > s.Length {
		from = s.Length
	}
	to = from + s.Width
	if to > s.Length {
		to = s.Length
	}
	return from, to
}

// WishlistView is the wishlist screen of one identity.
type WishlistView struct {
	mu       sync.Mutex
	wishlist services.WishlistService
	who      session.Identity
	items    []models.WishlistItem
	strips   map[string]*Strip
	width    int
}

func NewWishlistView(wishlist services.WishlistService, who session.Identity) *WishlistView {
	return &WishlistView{
		wishlist: wishlist,
		who:      who,
		strips:   map[string]*Strip{},
		width:    DefaultStripWidth,
	}
}

func (v *WishlistView) Load(ctx context.Context) error {
	if v.who.Anonymous() {
		v.mu.Lock()
		v.items = nil
		v.mu.Unlock()
		return nil
	}

	items, err := v.wishlist.Items(ctx, v.who)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = items
	v.strips = map[string]*Strip{}
	return nil
}

func (v *WishlistView) Items() []models.WishlistItem {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.WishlistItem(nil), v.items...)
}

// Groups is recomputed from the current items on every call.
func (v *WishlistView) Groups() []Group {
	v.mu.Lock()
	defer v.mu.Unlock()
	return GroupByCategory(v.items)
}

// Strip returns the scroll state of category, sized to its current group.
func (v *WishlistView) Strip(category string) *Strip {
	v.mu.Lock()
	defer v.mu.Unlock()

	n := 0
	for _, g := range GroupByCategory(v.items) {
		if g.Category == category {
			n = len(g.Items)
			break
		}
	}
	s, ok := v.strips[category]
	if !ok {
		s = &Strip{Width: v.width}
		v.strips[category] = s
	}
	s.Length = n
	if m := s.maxOffset(); s.Offset > m {
		s.Offset = m
	}
	return s
}

// Open returns the art id whose detail screen the item leads to.
func (v *WishlistView) Open(itemID int64) (int64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, it := range v.items {
		if it.ID == itemID {
			if it.Art == nil {
				return 0, false
			}
			return it.Art.ID, true
		}
	}
	return 0, false
}

// Remove deletes the item once the server confirms. It never navigates.
func (v *WishlistView) Remove(ctx context.Context, itemID int64) error {
	if err := v.wishlist.Remove(ctx, v.who, itemID); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	kept := make([]models.WishlistItem, 0, len(v.items))
	for _, it := range v.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	v.items = kept
	return nil
}

func (v *WishlistView) Clear(ctx context.Context) error {
	if err := v.wishlist.Clear(ctx, v.who); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = nil
	v.strips = map[string]*Strip{}
	return nil
}
