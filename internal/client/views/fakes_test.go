package views

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

// ---- fakes ----

type fakeArts struct {
	list    []models.Art
	listErr error
	cats    []string
	catsErr error
	found   []models.Art
	art     map[int64]models.Art
	getErr  error
	// gate, when set, blocks Get for that id until closed.
	gate map[int64]chan struct{}
	// listGate, when set, blocks List until closed.
	listGate chan struct{}

	mu    sync.Mutex
	calls []string
}

func (f *fakeArts) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeArts) List(ctx context.Context) ([]models.Art, error) {
	f.record("List")
	if f.listGate != nil {
		<-f.listGate
	}
	return f.list, f.listErr
}

func (f *fakeArts) Categories(ctx context.Context) ([]string, error) {
	f.record("Categories")
	return f.cats, f.catsErr
}

func (f *fakeArts) Get(ctx context.Context, id int64) (models.Art, error) {
	if ch, ok := f.gate[id]; ok {
		<-ch
	}
	if f.getErr != nil {
		return models.Art{}, f.getErr
	}
	return f.art[id], nil
}

func (f *fakeArts) Search(ctx context.Context, query string) ([]models.Art, error) {
	f.record("Search:" + query)
	return f.found, f.listErr
}

func (f *fakeArts) Add(ctx context.Context, form models.ArtForm) (models.Art, error) {
	return models.Art{}, nil
}

func (f *fakeArts) Update(ctx context.Context, id int64, form models.ArtForm) (models.Art, error) {
	return models.Art{}, nil
}

func (f *fakeArts) Delete(ctx context.Context, id int64) error { return nil }

type updateCall struct {
	itemID int64
	qty    int
}

type fakeCart struct {
	items     []models.CartItem
	itemsErr  error
	updates   []updateCall
	updateRet func(itemID int64, qty int) models.CartItem
	updateErr error
	removed   []int64
	removeErr error
	cleared   int
	clearErr  error
	itemCalls int
}

func (f *fakeCart) Items(ctx context.Context, who session.Identity) ([]models.CartItem, error) {
	f.itemCalls++
	return f.items, f.itemsErr
}

func (f *fakeCart) Add(ctx context.Context, who session.Identity, artID int64, quantity int) (models.CartItem, error) {
	return models.CartItem{}, nil
}

func (f *fakeCart) Update(ctx context.Context, who session.Identity, itemID int64, quantity int) (models.CartItem, error) {
	f.updates = append(f.updates, updateCall{itemID, quantity})
	if f.updateErr != nil {
		return models.CartItem{}, f.updateErr
	}
	return f.updateRet(itemID, quantity), nil
}

func (f *fakeCart) Remove(ctx context.Context, who session.Identity, itemID int64) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, itemID)
	return nil
}

func (f *fakeCart) Clear(ctx context.Context, who session.Identity) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared++
	return nil
}

type fakeWishlist struct {
	items     []models.WishlistItem
	removeErr error
	removed   []int64
	cleared   int
	itemCalls int
}

func (f *fakeWishlist) Items(ctx context.Context, who session.Identity) ([]models.WishlistItem, error) {
	f.itemCalls++
	return f.items, nil
}

func (f *fakeWishlist) Add(ctx context.Context, who session.Identity, artID int64) (models.WishlistItem, error) {
	return models.WishlistItem{}, nil
}

func (f *fakeWishlist) Remove(ctx context.Context, who session.Identity, itemID int64) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removed = append(f.removed, itemID)
	return nil
}

func (f *fakeWishlist) Clear(ctx context.Context, who session.Identity) error {
	f.cleared++
	return nil
}

type fakeOTP struct {
	verifyRet models.StatusResult
	verifyErr error
	regenRet  models.StatusResult
	regenErr  error
	codes     []string
	resends   int
}

func (f *fakeOTP) Verify(ctx context.Context, email, otp string) (models.StatusResult, error) {
	f.codes = append(f.codes, otp)
	return f.verifyRet, f.verifyErr
}

func (f *fakeOTP) RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error) {
	f.resends++
	return f.regenRet, f.regenErr
}

// fakeScheduler records AfterFunc calls; Fire runs the last callback.
type fakeScheduler struct {
	delays  []time.Duration
	pending func()
	stopped bool
}

func (s *fakeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.delays = append(s.delays, d)
	s.pending = f
	return s
}

func (s *fakeScheduler) Stop() bool {
	s.stopped = true
	return true
}

func (s *fakeScheduler) Fire() { s.pending() }
