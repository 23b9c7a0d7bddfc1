package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

// ArtGetter is the part of services.ArtService the detail screens use.
type ArtGetter interface {
	Get(ctx context.Context, id int64) (models.Art, error)
}

// DetailView shows one art and cycles through its pictures.
type DetailView struct {
	mu      sync.Mutex
	arts    ArtGetter
	gen     Generation
	art     models.Art
	loaded  bool
	picture int
}

func NewDetailView(arts ArtGetter) *DetailView {
	return &DetailView{arts: arts}
}

// Load fetches art id. If another Load started meanwhile, the response is
// dropped with ErrStale. A failed load keeps the previous art.
func (v *DetailView) Load(ctx context.Context, id int64) error {
	ticket := v.gen.Next()

	a, err := v.arts.Get(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.gen.Current(ticket) {
		return ErrStale
	}
	if err != nil {
		return err
	}
	v.art, v.loaded, v.picture = a, true, 0
	return nil
}

func (v *DetailView) Art() (models.Art, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.art, v.loaded
}

// Picture returns the URL in view and its 1-based position, or "" when the
// art has no pictures.
func (v *DetailView) Picture() (url string, pos, total int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	pics := v.art.Pictures()
	if len(pics) == 0 {
		return "", 0, 0
	}
	return pics[v.picture], v.picture + 1, len(pics)
}

func (v *DetailView) NextPicture() { v.step(1) }

func (v *DetailView) PrevPicture() { v.step(-1) }

func (v *DetailView) step(d int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n := len(v.art.Pictures())
	if n == 0 {
		return
	}
	v.picture = ((v.picture+d)%n + n) % n
}
