package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
)

type WishlistService interface {
	Items(ctx context.Context, who session.Identity) ([]models.WishlistItem, error)
	Add(ctx context.Context, who session.Identity, artID int64) (models.WishlistItem, error)
	Remove(ctx context.Context, who session.Identity, itemID int64) error
	Clear(ctx context.Context, who session.Identity) error
}

type wishlistService struct {
	client client.Client
}

func NewWishlistService(c client.Client) WishlistService {
	return &wishlistService{client: c}
}

func (s *wishlistService) Items(ctx context.Context, who session.Identity) ([]models.WishlistItem, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	items, err := s.client.Wishlist(ctx, who.UserID)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	return items, nil
}

func (s *wishlistService) Add(ctx context.Context, who session.Identity, artID int64) (models.WishlistItem, error) {
	if err := requireIdentity(who); err != nil {
		return models.WishlistItem{}, err
	}
	if err := requireID("art", artID); err != nil {
		return models.WishlistItem{}, err
	}
	item, err := s.client.AddToWishlist(ctx, who.UserID, artID)
	if err != nil {
		return models.WishlistItem{}, fmt.Errorf("add to wishlist: %w", err)
	}
	return item, nil
}

func (s *wishlistService) Remove(ctx context.Context, who session.Identity, itemID int64) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if err := requireID("item", itemID); err != nil {
		return err
	}
	if err := s.client.RemoveFromWishlist(ctx, itemID); err != nil {
		return fmt.Errorf("remove wishlist item %d: %w", itemID, err)
	}
	return nil
}

func (s *wishlistService) Clear(ctx context.Context, who session.Identity) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if err := s.client.ClearWishlist(ctx, who.UserID); err != nil {
		return fmt.Errorf("clear wishlist: %w", err)
	}
	return nil
}
