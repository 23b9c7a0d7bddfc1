package views

import (
	"context"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/logging"
)

// NoProductsMessage is shown when the filtered listing is empty.
const NoProductsMessage = "No products found."

// Filter is the listing's category and price-range selection. Bounds are
// kept as typed so that partial input such as "12abc" behaves like the
// storefront's number fields.
type Filter struct {
	Categories map[string]bool
	Lower      string
	Upper      string
}

func (f Filter) anyCategory() bool {
	for _, on := range f.Categories {
		if on {
			return false
		}
	}
	return true
}

// Bounds returns the numeric price range. A bound that does not start with
// a number, or parses to zero, falls back to 0 for Lower and +Inf for Upper.
func (f Filter) Bounds() (lower, upper float64) {
	return boundOr(f.Lower, 0), boundOr(f.Upper, math.Inf(1))
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseLeadingFloat parses the longest numeric prefix of s after leading
// whitespace, ignoring any trailing text.
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1), true
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1), true
	}
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func boundOr(s string, def float64) float64 {
	v, ok := parseLeadingFloat(s)
	if !ok || v == 0 || math.IsNaN(v) {
		return def
	}
	return v
}

// FilterArts returns the arts matching f, in input order. An empty category
// selection matches every category; the price range is inclusive.
func FilterArts(arts []models.Art, f Filter) []models.Art {
	lower, upper := f.Bounds()
	all := f.anyCategory()

	out := make([]models.Art, 0, len(arts))
	for _, a := range arts {
		if !all && !f.Categories[a.Category] {
			continue
		}
		if a.Price < lower || a.Price > upper {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ListingView is the shop / art list screen.
type ListingView struct {
	mu         sync.Mutex
	arts       services.ArtService
	log        logging.Logger
	gen        Generation
	all        []models.Art
	categories []string
	filter     Filter
	applied    Filter
	visible    []models.Art
}

func NewListingView(arts services.ArtService, log logging.Logger) *ListingView {
	return &ListingView{
		arts:   arts,
		log:    log.With("view", "listing"),
		filter: Filter{Categories: map[string]bool{}},
	}
}

// Load fetches the full listing and the category list and shows it
// unfiltered; the selection only narrows it on Apply. A failing category
// fetch is logged and leaves the category list empty.
func (v *ListingView) Load(ctx context.Context) error {
	ticket := v.gen.Next()

	arts, err := v.arts.List(ctx)
	if err != nil {
		return err
	}
	cats, catErr := v.arts.Categories(ctx)
	if catErr != nil {
		v.log.Warn(ctx, "loading categories failed", "error", catErr.Error())
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.gen.Current(ticket) {
		return ErrStale
	}
	v.all = arts
	if catErr == nil {
		v.categories = cats
	}
	v.applied = Filter{}
	v.visible = append([]models.Art(nil), v.all...)
	return nil
}

// Search replaces the full set with the backend's matches and re-applies
// the last applied filter.
func (v *ListingView) Search(ctx context.Context, query string) error {
	ticket := v.gen.Next()

	arts, err := v.arts.Search(ctx, query)
	if err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.gen.Current(ticket) {
		return ErrStale
	}
	v.all = arts
	v.visible = FilterArts(v.all, v.applied)
	return nil
}

// ToggleCategory flips c in the selection. It takes effect on Apply.
func (v *ListingView) ToggleCategory(c string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.filter.Categories[c] {
		delete(v.filter.Categories, c)
		return
	}
	v.filter.Categories[c] = true
}

// SetPriceRange stores the typed bounds. It takes effect on Apply.
func (v *ListingView) SetPriceRange(lower, upper string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filter.Lower, v.filter.Upper = lower, upper
}

// Apply recomputes the visible set from the full set.
func (v *ListingView) Apply() []models.Art {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.applied = v.filter.clone()
	v.visible = FilterArts(v.all, v.applied)
	return append([]models.Art(nil), v.visible...)
}

func (v *ListingView) Visible() []models.Art {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Art(nil), v.visible...)
}

func (v *ListingView) All() []models.Art {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Art(nil), v.all...)
}

func (v *ListingView) Categories() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.categories...)
}

// Filter returns a copy of the current selection.
func (v *ListingView) Filter() Filter {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.filter.clone()
}

func (f Filter) clone() Filter {
	cats := make(map[string]bool, len(f.Categories))
	for c, on := range f.Categories {
		cats[c] = on
	}
	return Filter{Categories: cats, Lower: f.Lower, Upper: f.Upper}
}

// SelectedCategories lists the selection in sorted order.
func (f Filter) SelectedCategories() []string {
	out := make([]string, 0, len(f.Categories))
	for c, on := range f.Categories {
		if on {
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
