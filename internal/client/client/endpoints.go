package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

var _ Client = (*HTTPClient)(nil)

// Auth and users.

func (c *HTTPClient) Register(ctx context.Context, form models.RegisterForm) (models.User, error) {
	var u models.User
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/register",
		body: multipartBody{
			form:  form,
			extra: url.Values{"password": {string(form.Password)}},
			files: []filePart{{Field: "profilePic", Path: form.ProfilePic}},
		},
	}, &u)
	return u, err
}

func (c *HTTPClient) Verify(ctx context.Context, email, otp string) (models.StatusResult, error) {
	return c.doStatus(ctx, request{
		method: http.MethodPut,
		path:   "/verify",
		body:   jsonBody{v: map[string]string{"email": email, "otp": otp}},
	})
}

func (c *HTTPClient) RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error) {
	return c.doStatus(ctx, request{
		method: http.MethodPut,
		path:   "/regenerate-otp",
		body:   jsonBody{v: map[string]string{"email": email}},
	})
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (models.LoginResult, error) {
	var res models.LoginResult
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/login",
		body:   jsonBody{v: map[string]string{"email": email, "password": string(password)}},
	}, &res)
	return res, err
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (models.StatusResult, error) {
	return c.doStatus(ctx, request{
		method: http.MethodPost,
		path:   "/forgot-password",
		body:   jsonBody{v: map[string]string{"email": email}},
	})
}

func (c *HTTPClient) ResetPassword(ctx context.Context, token string, newPassword []byte) (models.StatusResult, error) {
	return c.doStatus(ctx, request{
		method: http.MethodPost,
		path:   "/reset-password",
		body:   jsonBody{v: map[string]string{"token": token, "newPassword": string(newPassword)}},
	})
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, userID int64, form models.ProfileForm) (models.User, error) {
	var u models.User
	err := c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/users/update/%d", userID),
		body: multipartBody{
			form:  form,
			files: []filePart{{Field: "file", Path: form.Picture}},
		},
	}, &u)
	return u, err
}

func (c *HTTPClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/users"}, &users)
	return users, err
}

// Arts.

// artFiles maps picture slots onto form fields; add uses file1..4 and update
// picture1..4, as the backend expects.
func artFiles(prefix string, pictures [4]string) []filePart {
	parts := make([]filePart, 0, len(pictures))
	for i, p := range pictures {
		parts = append(parts, filePart{Field: fmt.Sprintf("%s%d", prefix, i+1), Path: p})
	}
	return parts
}

func (c *HTTPClient) AddArt(ctx context.Context, form models.ArtForm) (models.Art, error) {
	var a models.Art
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   "/arts/add",
		body:   multipartBody{form: form, files: artFiles("file", form.Pictures)},
	}, &a)
	return a, err
}

func (c *HTTPClient) ListArts(ctx context.Context) ([]models.Art, error) {
	var arts []models.Art
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/arts/all"}, &arts)
	return arts, err
}

func (c *HTTPClient) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	err := c.doJSON(ctx, request{method: http.MethodGet, path: "/arts/categories"}, &cats)
	return cats, err
}

func (c *HTTPClient) GetArt(ctx context.Context, id int64) (models.Art, error) {
	var a models.Art
	err := c.doJSON(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/arts/%d", id)}, &a)
	return a, err
}

func (c *HTTPClient) UpdateArt(ctx context.Context, id int64, form models.ArtForm) (models.Art, error) {
	var a models.Art
	err := c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/arts/update/%d", id),
		body:   multipartBody{form: form, files: artFiles("picture", form.Pictures)},
	}, &a)
	return a, err
}

func (c *HTTPClient) DeleteArt(ctx context.Context, id int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/arts/%d", id)}, nil)
}

func (c *HTTPClient) SearchArts(ctx context.Context, query string) ([]models.Art, error) {
	var arts []models.Art
	err := c.doJSON(ctx, request{
		method: http.MethodGet,
		path:   "/arts/search",
		query:  url.Values{"q": {query}},
	}, &arts)
	return arts, err
}

// Wishlist.

func (c *HTTPClient) AddToWishlist(ctx context.Context, userID, artID int64) (models.WishlistItem, error) {
	var item models.WishlistItem
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/wishlist/add/%d", userID),
		body:   jsonBody{v: map[string]int64{"id": artID}},
	}, &item)
	return item, err
}

func (c *HTTPClient) Wishlist(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := c.doJSON(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/wishlist/user/%d", userID)}, &items)
	return items, err
}

func (c *HTTPClient) RemoveFromWishlist(ctx context.Context, itemID int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/wishlist/remove/%d", itemID)}, nil)
}

func (c *HTTPClient) ClearWishlist(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/wishlist/clear/%d", userID)}, nil)
}

// Cart.

type quantityBody struct {
	Quantity int `json:"quantity"`
}

func (c *HTTPClient) AddToCart(ctx context.Context, userID, artID int64, quantity int) (models.CartItem, error) {
	var item models.CartItem
	err := c.doJSON(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/cart/add/%d/%d", userID, artID),
		body:   jsonBody{v: quantityBody{Quantity: quantity}},
	}, &item)
	return item, err
}

func (c *HTTPClient) Cart(ctx context.Context, userID int64) ([]models.CartItem, error) {
	var items []models.CartItem
	err := c.doJSON(ctx, request{method: http.MethodGet, path: fmt.Sprintf("/cart/user/%d", userID)}, &items)
	return items, err
}

func (c *HTTPClient) UpdateCartItem(ctx context.Context, userID, itemID int64, quantity int) (models.CartItem, error) {
	var item models.CartItem
	err := c.doJSON(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("/cart/update/%d/%d", userID, itemID),
		body:   jsonBody{v: quantityBody{Quantity: quantity}},
	}, &item)
	return item, err
}

func (c *HTTPClient) RemoveFromCart(ctx context.Context, itemID int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/cart/remove/%d", itemID)}, nil)
}

func (c *HTTPClient) ClearCart(ctx context.Context, userID int64) error {
	return c.doJSON(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/cart/clear/%d", userID)}, nil)
}
