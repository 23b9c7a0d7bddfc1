package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

// CartService manages the signed-in user's cart. Every method needs a
// non-anonymous identity and fails with common.ErrNotLoggedIn otherwise.
type CartService interface {
	Items(ctx context.Context, who session.Identity) ([]models.CartItem, error)
	Add(ctx context.Context, who session.Identity, artID int64, quantity int) (models.CartItem, error)
	Update(ctx context.Context, who session.Identity, itemID int64, quantity int) (models.CartItem, error)
	Remove(ctx context.Context, who session.Identity, itemID int64) error
	Clear(ctx context.Context, who session.Identity) error
}

type cartService struct {
	client client.Client
}

func NewCartService(c client.Client) CartService {
	return &cartService{client: c}
}

func requireIdentity(who session.Identity) error {
	if who.Anonymous() {
		return common.ErrNotLoggedIn
	}
	return nil
}

func requireQuantity(q int) error {
	if q < 1 {
		return common.NewValidationError("quantity", "must be at least 1")
	}
	return nil
}

func (s *cartService) Items(ctx context.Context, who session.Identity) ([]models.CartItem, error) {
	if err := requireIdentity(who); err != nil {
		return nil, err
	}
	items, err := s.client.Cart(ctx, who.UserID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	return items, nil
}

func (s *cartService) Add(ctx context.Context, who session.Identity, artID int64, quantity int) (models.CartItem, error) {
	if err := requireIdentity(who); err != nil {
		return models.CartItem{}, err
	}
	if err := requireID("art", artID); err != nil {
		return models.CartItem{}, err
	}
	if err := requireQuantity(quantity); err != nil {
		return models.CartItem{}, err
	}
	item, err := s.client.AddToCart(ctx, who.UserID, artID, quantity)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("add to cart: %w", err)
	}
	return item, nil
}

func (s *cartService) Update(ctx context.Context, who session.Identity, itemID int64, quantity int) (models.CartItem, error) {
	if err := requireIdentity(who); err != nil {
		return models.CartItem{}, err
	}
	if err := requireID("item", itemID); err != nil {
		return models.CartItem{}, err
	}
	if err := requireQuantity(quantity); err != nil {
		return models.CartItem{}, err
	}
	item, err := s.client.UpdateCartItem(ctx, who.UserID, itemID, quantity)
	if err != nil {
		return models.CartItem{}, fmt.Errorf("update cart item %d: %w", itemID, err)
	}
	return item, nil
}

func (s *cartService) Remove(ctx context.Context, who session.Identity, itemID int64) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if err := requireID("item", itemID); err != nil {
		return err
	}
	if err := s.client.RemoveFromCart(ctx, itemID); err != nil {
		return fmt.Errorf("remove cart item %d: %w", itemID, err)
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, who session.Identity) error {
	if err := requireIdentity(who); err != nil {
		return err
	}
	if err := s.client.ClearCart(ctx, who.UserID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
