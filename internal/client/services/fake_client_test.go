package services

import (
	"context"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

// fakeClient implements client.Client for service unit tests. Every call is
// recorded by name in Calls; results come from the exported fields.
type fakeClient struct {
	Calls []string

	CloseErr error

	RegisterRet      models.User
	RegisterErr      error
	LastRegister     models.RegisterForm
	LastRegisterPass string

	VerifyRet models.StatusResult
	VerifyErr error
	LastOTP   string

	RegenRet models.StatusResult
	RegenErr error

	LoginRet      models.LoginResult
	LoginErr      error
	LastLoginPass string

	ForgotRet models.StatusResult
	ForgotErr error

	ResetRet      models.StatusResult
	ResetErr      error
	LastResetPass string

	ProfileRet models.User
	ProfileErr error

	UsersRet []models.User
	UsersErr error

	ArtRet     models.Art
	ArtErr     error
	ArtsRet    []models.Art
	ArtsErr    error
	CatsRet    []string
	LastQuery  string
	LastArtID  int64
	LastUserID int64
	LastItemID int64
	LastQty    int

	WishRet  models.WishlistItem
	WishsRet []models.WishlistItem
	WishErr  error

	CartRet  models.CartItem
	CartsRet []models.CartItem
	CartErr  error
}

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Close() error { f.record("Close"); return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	f.record("Register")
	f.LastRegister = form
	f.LastRegisterPass = string(form.Password)
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Verify(ctx context.Context, email, otp string) (models.StatusResult, error) {
	f.record("Verify")
	f.LastOTP = otp
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error) {
	f.record("RegenerateOTP")
	return f.RegenRet, f.RegenErr
}

func (f *fakeClient) Login(ctx context.Context, email string, password []byte) (models.LoginResult, error) {
	f.record("Login")
	f.LastLoginPass = string(password)
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) (models.StatusResult, error) {
	f.record("ForgotPassword")
	return f.ForgotRet, f.ForgotErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, token string, newPassword []byte) (models.StatusResult, error) {
	f.record("ResetPassword")
	f.LastResetPass = string(newPassword)
	return f.ResetRet, f.ResetErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, userID int64, form models.ProfileForm) (models.User, error) {
	f.record("UpdateProfile")
	f.LastUserID = userID
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) ListUsers(ctx context.Context) ([]models.User, error) {
	f.record("ListUsers")
	return f.UsersRet, f.UsersErr
}

func (f *fakeClient) AddArt(ctx context.Context, form models.ArtForm) (models.Art, error) {
	f.record("AddArt")
	return f.ArtRet, f.ArtErr
}

func (f *fakeClient) ListArts(ctx context.Context) ([]models.Art, error) {
	f.record("ListArts")
	return f.ArtsRet, f.ArtsErr
}

func (f *fakeClient) Categories(ctx context.Context) ([]string, error) {
	f.record("Categories")
	return f.CatsRet, f.ArtsErr
}

func (f *fakeClient) GetArt(ctx context.Context, id int64) (models.Art, error) {
	f.record("GetArt")
	f.LastArtID = id
	return f.ArtRet, f.ArtErr
}

func (f *fakeClient) UpdateArt(ctx context.Context, id int64, form models.ArtForm) (models.Art, error) {
	f.record("UpdateArt")
	f.LastArtID = id
	return f.ArtRet, f.ArtErr
}

func (f *fakeClient) DeleteArt(ctx context.Context, id int64) error {
	f.record("DeleteArt")
	f.LastArtID = id
	return f.ArtErr
}

func (f *fakeClient) SearchArts(ctx context.Context, query string) ([]models.Art, error) {
	f.record("SearchArts")
	f.LastQuery = query
	return f.ArtsRet, f.ArtsErr
}

func (f *fakeClient) AddToWishlist(ctx context.Context, userID, artID int64) (models.WishlistItem, error) {
	f.record("AddToWishlist")
	f.LastUserID, f.LastArtID = userID, artID
	return f.WishRet, f.WishErr
}

func (f *fakeClient) Wishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	f.record("Wishlist")
	f.LastUserID = userID
	return f.WishsRet, f.WishErr
}

func (f *fakeClient) RemoveFromWishlist(ctx context.Context, itemID int64) error {
	f.record("RemoveFromWishlist")
	f.LastItemID = itemID
	return f.WishErr
}

func (f *fakeClient) ClearWishlist(ctx context.Context, userID int64) error {
	f.record("ClearWishlist")
	f.LastUserID = userID
	return f.WishErr
}

func (f *fakeClient) AddToCart(ctx context.Context, userID, artID int64, quantity int) (models.CartItem, error) {
	f.record("AddToCart")
	f.LastUserID, f.LastArtID, f.LastQty = userID, artID, quantity
	return f.CartRet, f.CartErr
}

func (f *fakeClient) Cart(ctx context.Context, userID int64) ([]models.CartItem, error) {
	f.record("Cart")
	f.LastUserID = userID
	return f.CartsRet, f.CartErr
}

func (f *fakeClient) UpdateCartItem(ctx context.Context, userID, itemID int64, quantity int) (models.CartItem, error) {
	f.record("UpdateCartItem")
	f.LastUserID, f.LastItemID, f.LastQty = userID, itemID, quantity
	return f.CartRet, f.CartErr
}

func (f *fakeClient) RemoveFromCart(ctx context.Context, itemID int64) error {
	f.record("RemoveFromCart")
	f.LastItemID = itemID
	return f.CartErr
}

func (f *fakeClient) ClearCart(ctx context.Context, userID int64) error {
	f.record("ClearCart")
	f.LastUserID = userID
	return f.CartErr
}
