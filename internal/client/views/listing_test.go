package views

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/logging"
)

func pricedArts(prices ...float64) []models.Art {
	out := make([]models.Art, len(prices))
	for i, p := range prices {
		out[i] = models.Art{ID: int64(i + 1), Price: p}
	}
	return out
}

func prices(arts []models.Art) []float64 {
	out := make([]float64, len(arts))
	for i, a := range arts {
		out[i] = a.Price
	}
	return out
}

func TestFilterArts_PriceRangeInclusive(t *testing.T) {
	got := FilterArts(pricedArts(5, 10, 25, 50, 75), Filter{Lower: "10", Upper: "50"})
	assert.Equal(t, []float64{10, 25, 50}, prices(got))
}

func TestFilter_Bounds(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		lower, upper string
		wantLo       float64
		wantHi       float64
	}{
		{"", "", 0, inf},
		{"10", "50", 10, 50},
		{"abc", "xyz", 0, inf},
		{"12abc", "40.5usd", 12, 40.5},
		{"  7", "0", 7, inf},
		{"-5", "-0", -5, inf},
		{".5", "1e2", 0.5, 100},
		{"Infinity", "Infinity", inf, inf},
	}
	for _, tt := range tests {
		t.Run(tt.lower+"/"+tt.upper, func(t *testing.T) {
			lo, hi := Filter{Lower: tt.lower, Upper: tt.upper}.Bounds()
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestFilterArts_ResultIsSubsetSatisfyingPredicates(t *testing.T) {
	arts := []models.Art{
		{ID: 1, Category: "Oil", Price: 5},
		{ID: 2, Category: "Oil", Price: 30},
		{ID: 3, Category: "Watercolor", Price: 30},
		{ID: 4, Category: "Sculpture", Price: 120},
		{ID: 5, Category: "", Price: 40},
	}
	filters := []Filter{
		{},
		{Categories: map[string]bool{"Oil": true}},
		{Categories: map[string]bool{"Oil": true, "Sculpture": true}, Lower: "10"},
		{Categories: map[string]bool{"Oil": false}, Upper: "35"},
		{Lower: "200"},
		{Lower: "junk", Upper: "40"},
	}

	for _, f := range filters {
		got := FilterArts(arts, f)
		lo, hi := f.Bounds()
		selected := f.SelectedCategories()

		for _, a := range got {
			assert.Contains(t, arts, a)
			assert.True(t, a.Price >= lo && a.Price <= hi)
			if len(selected) > 0 {
				assert.Contains(t, selected, a.Category)
			}
		}
		// Nothing that passes both predicates is dropped.
		want := 0
		for _, a := range arts {
			catOK := len(selected) == 0 || f.Categories[a.Category]
			if catOK && a.Price >= lo && a.Price <= hi {
				want++
			}
		}
		assert.Len(t, got, want)
	}
}

func TestListingView_LoadToggleApply(t *testing.T) {
	fa := &fakeArts{
		list: []models.Art{
			{ID: 1, Category: "Oil", Price: 10},
			{ID: 2, Category: "Sculpture", Price: 90},
			{ID: 3, Category: "Oil", Price: 60},
		},
		cats: []string{"Oil", "Sculpture"},
	}
	v := NewListingView(fa, logging.Nop())
	require.NoError(t, v.Load(context.Background()))

	assert.Len(t, v.Visible(), 3)
	assert.Equal(t, []string{"Oil", "Sculpture"}, v.Categories())

	v.ToggleCategory("Oil")
	assert.Len(t, v.Visible(), 3, "filter applies only on Apply")
	got := v.Apply()
	assert.Equal(t, []int64{1, 3}, ids(got))

	v.SetPriceRange("", "50")
	assert.Equal(t, []int64{1}, ids(v.Apply()))

	v.ToggleCategory("Oil")
	assert.Empty(t, v.Filter().SelectedCategories())
	assert.Equal(t, []int64{1}, ids(v.Apply()))
}

func ids(arts []models.Art) []int64 {
	out := make([]int64, len(arts))
	for i, a := range arts {
		out[i] = a.ID
	}
	return out
}

func TestListingView_CategoryFailureIsNotFatal(t *testing.T) {
	fa := &fakeArts{list: pricedArts(1, 2), catsErr: errors.New("down")}
	v := NewListingView(fa, logging.Nop())

	require.NoError(t, v.Load(context.Background()))
	assert.Len(t, v.All(), 2)
	assert.Empty(t, v.Categories())
}

func TestListingView_LoadFailureKeepsState(t *testing.T) {
	fa := &fakeArts{list: pricedArts(1, 2)}
	v := NewListingView(fa, logging.Nop())
	require.NoError(t, v.Load(context.Background()))

	fa.listErr = errors.New("down")
	require.Error(t, v.Load(context.Background()))
	assert.Len(t, v.All(), 2)
}

func TestListingView_SearchReappliesFilter(t *testing.T) {
	fa := &fakeArts{
		list:  pricedArts(5, 15, 25),
		found: []models.Art{{ID: 9, Price: 5}, {ID: 10, Price: 30}},
	}
	v := NewListingView(fa, logging.Nop())
	require.NoError(t, v.Load(context.Background()))

	v.SetPriceRange("10", "")
	v.Apply()
	require.NoError(t, v.Search(context.Background(), "sky"))

	if diff := cmp.Diff([]models.Art{{ID: 10, Price: 30}}, v.Visible()); diff != "" {
		t.Errorf("visible mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, fa.calls, "Search:sky")
}

func TestListingView_LoadShowsUnfilteredListing(t *testing.T) {
	fa := &fakeArts{list: pricedArts(5, 25, 75)}
	v := NewListingView(fa, logging.Nop())
	require.NoError(t, v.Load(context.Background()))

	v.SetPriceRange("500", "")
	v.ToggleCategory("Oil")
	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, []float64{5, 25, 75}, prices(v.Visible()), "staged selection is not applied by a reload")

	assert.Empty(t, v.Apply())
	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, []float64{5, 25, 75}, prices(v.Visible()), "a reload shows the fetched set as is")
}

func TestListingView_SearchUsesAppliedFilterOnly(t *testing.T) {
	fa := &fakeArts{
		list:  pricedArts(5, 15),
		found: []models.Art{{ID: 9, Price: 5}, {ID: 10, Price: 30}},
	}
	v := NewListingView(fa, logging.Nop())
	require.NoError(t, v.Load(context.Background()))

	v.SetPriceRange("10", "")
	require.NoError(t, v.Search(context.Background(), "sky"))
	assert.Equal(t, []int64{9, 10}, ids(v.Visible()))
}

func TestListingView_StaleLoadIsDropped(t *testing.T) {
	gate := make(chan struct{})
	fa := &fakeArts{
		list:     pricedArts(1, 2, 3),
		found:    []models.Art{{ID: 10, Price: 30}},
		listGate: gate,
	}
	v := NewListingView(fa, logging.Nop())

	slow := make(chan error, 1)
	go func() { slow <- v.Load(context.Background()) }()

	require.Eventually(t, func() bool { return v.gen.n.Load() == 1 }, time.Second, time.Millisecond)
	require.NoError(t, v.Search(context.Background(), "sky"))
	close(gate)

	require.ErrorIs(t, <-slow, ErrStale)
	assert.Equal(t, []int64{10}, ids(v.Visible()))
	assert.Equal(t, []int64{10}, ids(v.All()))
}
