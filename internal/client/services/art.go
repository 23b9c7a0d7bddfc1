package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

// ArtService covers the listing and the admin inventory.
type ArtService interface {
	List(ctx context.Context) ([]models.Art, error)
	Categories(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64) (models.Art, error)
	Search(ctx context.Context, query string) ([]models.Art, error)
	Add(ctx context.Context, form models.ArtForm) (models.Art, error)
	Update(ctx context.Context, id int64, form models.ArtForm) (models.Art, error)
	Delete(ctx context.Context, id int64) error
}

type artService struct {
	client client.Client
}

func NewArtService(c client.Client) ArtService {
	return &artService{client: c}
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return common.NewValidationError(field, "must be a positive id")
	}
	return nil
}

// ParsePrice reads a price typed by the user.
func ParsePrice(s string) (float64, error) {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, common.NewValidationError("price", "must be a number")
	}
	if p < 0 {
		return 0, common.NewValidationError("price", "must not be negative")
	}
	return p, nil
}

func validateArtForm(form models.ArtForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return common.NewValidationError("title", "is required")
	}
	if form.Price < 0 {
		return common.NewValidationError("price", "must not be negative")
	}
	return nil
}

func (s *artService) List(ctx context.Context) ([]models.Art, error) {
	arts, err := s.client.ListArts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list arts: %w", err)
	}
	return arts, nil
}

func (s *artService) Categories(ctx context.Context) ([]string, error) {
	cats, err := s.client.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}

func (s *artService) Get(ctx context.Context, id int64) (models.Art, error) {
	if err := requireID("art", id); err != nil {
		return models.Art{}, err
	}
	a, err := s.client.GetArt(ctx, id)
	if err != nil {
		return models.Art{}, fmt.Errorf("get art %d: %w", id, err)
	}
	return a, nil
}

func (s *artService) Search(ctx context.Context, query string) ([]models.Art, error) {
	arts, err := s.client.SearchArts(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("search arts: %w", err)
	}
	return arts, nil
}

func (s *artService) Add(ctx context.Context, form models.ArtForm) (models.Art, error) {
	if err := validateArtForm(form); err != nil {
		return models.Art{}, err
	}
	a, err := s.client.AddArt(ctx, form)
	if err != nil {
		return models.Art{}, fmt.Errorf("add art: %w", err)
	}
	return a, nil
}

func (s *artService) Update(ctx context.Context, id int64, form models.ArtForm) (models.Art, error) {
	if err := requireID("art", id); err != nil {
		return models.Art{}, err
	}
	if err := validateArtForm(form); err != nil {
		return models.Art{}, err
	}
	a, err := s.client.UpdateArt(ctx, id, form)
	if err != nil {
		return models.Art{}, fmt.Errorf("update art %d: %w", id, err)
	}
	return a, nil
}

func (s *artService) Delete(ctx context.Context, id int64) error {
	if err := requireID("art", id); err != nil {
		return err
	}
	if err := s.client.DeleteArt(ctx, id); err != nil {
		return fmt.Errorf("delete art %d: %w", id, err)
	}
	return nil
}
