package client

import (
	"context"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

// Client is the storefront REST API, one method per endpoint.
type Client interface {
	Close() error

	Register(ctx context.Context, form models.RegisterForm) (models.User, error)
	Verify(ctx context.Context, email, otp string) (models.StatusResult, error)
	RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error)
	Login(ctx context.Context, email string, password []byte) (models.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (models.StatusResult, error)
	ResetPassword(ctx context.Context, token string, newPassword []byte) (models.StatusResult, error)
	UpdateProfile(ctx context.Context, userID int64, form models.ProfileForm) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	AddArt(ctx context.Context, form models.ArtForm) (models.Art, error)
	ListArts(ctx context.Context) ([]models.Art, error)
	Categories(ctx context.Context) ([]string, error)
	GetArt(ctx context.Context, id int64) (models.Art, error)
	UpdateArt(ctx context.Context, id int64, form models.ArtForm) (models.Art, error)
	DeleteArt(ctx context.Context, id int64) error
	SearchArts(ctx context.Context, query string) ([]models.Art, error)

	AddToWishlist(ctx context.Context, userID, artID int64) (models.WishlistItem, error)
	Wishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error)
	RemoveFromWishlist(ctx context.Context, itemID int64) error
	ClearWishlist(ctx context.Context, userID int64) error

	AddToCart(ctx context.Context, userID, artID int64, quantity int) (models.CartItem, error)
	Cart(ctx context.Context, userID int64) ([]models.CartItem, error)
	UpdateCartItem(ctx context.Context, userID, itemID int64, quantity int) (models.CartItem, error)
	RemoveFromCart(ctx context.Context, itemID int64) error
	ClearCart(ctx context.Context, userID int64) error
}
