package fakebackend

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

var (
	errNotFound     = errors.New("not found")
	errConflict     = errors.New("conflict")
	errInvalid      = errors.New("invalid")
	errUnauthorized = errors.New("unauthorized")
)

// storeError carries the message sent back to the client.
type storeError struct {
	kind error
	msg  string
}

func (e *storeError) Error() string { return e.msg }
func (e *storeError) Unwrap() error { return e.kind }

func fail(kind error, msg string) error {
	return &storeError{kind: kind, msg: msg}
}

type userRecord struct {
	user     models.User
	password string
	otp      string
	picture  string
}

// Store is the backend's in-memory state. All methods are safe for
// concurrent use.
type Store struct {
	mu sync.Mutex

	users    map[int64]*userRecord
	arts     map[int64]*models.Art
	cart     map[int64]*models.CartItem
	wishlist map[int64]*models.WishlistItem
	resets   map[string]int64

	nextUser, nextArt, nextCart, nextWish int64

	newOTP   func() string
	newToken func() string
}

func NewStore() *Store {
	return &Store{
		users:    map[int64]*userRecord{},
		arts:     map[int64]*models.Art{},
		cart:     map[int64]*models.CartItem{},
		wishlist: map[int64]*models.WishlistItem{},
		resets:   map[string]int64{},
		newOTP:   randomOTP,
		newToken: randomToken,
	}
}

func randomOTP() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}

func randomToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// SeedAdmin creates the verified administrator, which is always user 1 when
// called on an empty store.
func (s *Store) SeedAdmin(name, email, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextUser++
	rec := &userRecord{
		user:     models.User{ID: s.nextUser, Name: name, Email: email, Active: true},
		password: password,
	}
	s.users[rec.user.ID] = rec
	return rec.user
}

// SeedArt stores a under a fresh id.
func (s *Store) SeedArt(a models.Art) models.Art {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextArt++
	a.ID = s.nextArt
	s.arts[a.ID] = &a
	return a
}

func (s *Store) userByEmail(email string) *userRecord {
	for _, rec := range s.users {
		if strings.EqualFold(rec.user.Email, email) {
			return rec
		}
	}
	return nil
}

// Register creates an inactive user with a fresh OTP.
func (s *Store) Register(name, email, password, picture string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email == "" || password == "" {
		return models.User{}, fail(errInvalid, "Email and password are required")
	}
	if s.userByEmail(email) != nil {
		return models.User{}, fail(errConflict, "Email already registered")
	}

	s.nextUser++
	rec := &userRecord{
		user:     models.User{ID: s.nextUser, Name: name, Email: email},
		password: password,
		otp:      s.newOTP(),
		picture:  picture,
	}
	s.users[rec.user.ID] = rec
	return rec.user, nil
}

// OTP returns the pending code for email, for tests and the server log.
func (s *Store) OTP(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.userByEmail(email)
	if rec == nil || rec.otp == "" {
		return "", false
	}
	return rec.otp, true
}

func (s *Store) Verify(email, otp string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.userByEmail(email)
	if rec == nil {
		return fail(errNotFound, "User not found")
	}
	if rec.otp == "" || rec.otp != otp {
		return fail(errInvalid, "Invalid OTP")
	}
	rec.otp = ""
	rec.user.Active = true
	return nil
}

func (s *Store) RegenerateOTP(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.userByEmail(email)
	if rec == nil {
		return "", fail(errNotFound, "User not found")
	}
	if rec.user.Active {
		return "", fail(errConflict, "Account already verified")
	}
	rec.otp = s.newOTP()
	return rec.otp, nil
}

func (s *Store) Login(email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.userByEmail(email)
	if rec == nil || rec.password != password {
		return models.User{}, fail(errUnauthorized, "Invalid email or password")
	}
	if !rec.user.Active {
		return models.User{}, fail(errUnauthorized, "Account not verified")
	}
	return rec.user, nil
}

// ForgotPassword issues a reset token for email.
func (s *Store) ForgotPassword(email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.userByEmail(email)
	if rec == nil {
		return "", fail(errNotFound, "User not found")
	}
	token := s.newToken()
	s.resets[token] = rec.user.ID
	return token, nil
}

// ResetToken returns the outstanding token for email, if any.
func (s *Store) ResetToken(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.userByEmail(email)
	if rec == nil {
		return "", false
	}
	for token, id := range s.resets {
		if id == rec.user.ID {
			return token, true
		}
	}
	return "", false
}

func (s *Store) ResetPassword(token, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.resets[token]
	if !ok {
		return fail(errInvalid, "Invalid or expired token")
	}
	if password == "" {
		return fail(errInvalid, "Password is required")
	}
	s.users[id].password = password
	delete(s.resets, token)
	return nil
}

func (s *Store) UpdateUser(id int64, name, email, picture string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return models.User{}, fail(errNotFound, "User not found")
	}
	if name != "" {
		rec.user.Name = name
	}
	if email != "" {
		if other := s.userByEmail(email); other != nil && other.user.ID != id {
			return models.User{}, fail(errConflict, "Email already registered")
		}
		rec.user.Email = email
	}
	if picture != "" {
		rec.picture = picture
	}
	return rec.user, nil
}

func (s *Store) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, rec := range s.users {
		out = append(out, rec.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Arts.

func (s *Store) AddArt(form models.ArtForm, pictures [4]string) (models.Art, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form.Title == "" {
		return models.Art{}, fail(errInvalid, "Title is required")
	}
	s.nextArt++
	a := models.Art{
		ID:          s.nextArt,
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		Price:       form.Price,
	}
	setPictures(&a, pictures)
	s.arts[a.ID] = &a
	return a, nil
}

func setPictures(a *models.Art, pictures [4]string) {
	slots := []*string{&a.PictureURL1, &a.PictureURL2, &a.PictureURL3, &a.PictureURL4}
	for i, p := range pictures {
		if p != "" {
			*slots[i] = p
		}
	}
}

func (s *Store) sortedArts() []models.Art {
	out := make([]models.Art, 0, len(s.arts))
	for _, a := range s.arts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Arts() []models.Art {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedArts()
}

// Categories lists distinct non-empty categories in id order of first use.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	out := []string{}
	for _, a := range s.sortedArts() {
		if a.Category != "" && !seen[a.Category] {
			seen[a.Category] = true
			out = append(out, a.Category)
		}
	}
	return out
}

func (s *Store) Art(id int64) (models.Art, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.arts[id]
	if !ok {
		return models.Art{}, fail(errNotFound, "Art not found")
	}
	return *a, nil
}

func (s *Store) UpdateArt(id int64, form models.ArtForm, pictures [4]string) (models.Art, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.arts[id]
	if !ok {
		return models.Art{}, fail(errNotFound, "Art not found")
	}
	a.Title = form.Title
	a.Description = form.Description
	a.Category = form.Category
	a.Price = form.Price
	setPictures(a, pictures)
	return *a, nil
}

// DeleteArt also drops cart and wishlist rows pointing at the art.
func (s *Store) DeleteArt(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.arts[id]; !ok {
		return fail(errNotFound, "Art not found")
	}
	delete(s.arts, id)
	for k, c := range s.cart {
		if c.Art != nil && c.Art.ID == id {
			delete(s.cart, k)
		}
	}
	for k, w := range s.wishlist {
		if w.Art != nil && w.Art.ID == id {
			delete(s.wishlist, k)
		}
	}
	return nil
}

func (s *Store) Search(q string) []models.Art {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = strings.ToLower(strings.TrimSpace(q))
	out := []models.Art{}
	for _, a := range s.sortedArts() {
		if q == "" ||
			strings.Contains(strings.ToLower(a.Title), q) ||
			strings.Contains(strings.ToLower(a.Description), q) ||
			strings.Contains(strings.ToLower(a.Category), q) {
			out = append(out, a)
		}
	}
	return out
}

// Wishlist.

func (s *Store) AddToWishlist(userID, artID int64) (models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID]; !ok {
		return models.WishlistItem{}, fail(errNotFound, "User not found")
	}
	a, ok := s.arts[artID]
	if !ok {
		return models.WishlistItem{}, fail(errNotFound, "Art not found")
	}
	for _, w := range s.wishlist {
		if w.UserID == userID && w.Art != nil && w.Art.ID == artID {
			return models.WishlistItem{}, fail(errConflict, "Already in wishlist")
		}
	}
	s.nextWish++
	art := *a
	item := models.WishlistItem{ID: s.nextWish, UserID: userID, Art: &art}
	s.wishlist[item.ID] = &item
	return item, nil
}

func (s *Store) Wishlist(userID int64) []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.WishlistItem{}
	for _, w := range s.wishlist {
		if w.UserID == userID {
			out = append(out, *w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) RemoveFromWishlist(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wishlist[id]; !ok {
		return fail(errNotFound, "Wishlist item not found")
	}
	delete(s.wishlist, id)
	return nil
}

func (s *Store) ClearWishlist(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, w := range s.wishlist {
		if w.UserID == userID {
			delete(s.wishlist, k)
		}
	}
}

// Cart.

// AddToCart keeps one row per (user, art): adding an art already in the
// cart increases its quantity.
func (s *Store) AddToCart(userID, artID int64, quantity int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return models.CartItem{}, fail(errInvalid, "Quantity must be at least 1")
	}
	if _, ok := s.users[userID]; !ok {
		return models.CartItem{}, fail(errNotFound, "User not found")
	}
	a, ok := s.arts[artID]
	if !ok {
		return models.CartItem{}, fail(errNotFound, "Art not found")
	}
	for _, c := range s.cart {
		if c.UserID == userID && c.Art != nil && c.Art.ID == artID {
			c.Quantity += quantity
			return *c, nil
		}
	}
	s.nextCart++
	art := *a
	item := models.CartItem{
		ID:       s.nextCart,
		UserID:   userID,
		Art:      &art,
		ArtTitle: a.Title,
		Price:    a.Price,
		Quantity: quantity,
	}
	s.cart[item.ID] = &item
	return item, nil
}

func (s *Store) Cart(userID int64) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []models.CartItem{}
	for _, c := range s.cart {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) UpdateCartItem(userID, itemID int64, quantity int) (models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return models.CartItem{}, fail(errInvalid, "Quantity must be at least 1")
	}
	c, ok := s.cart[itemID]
	if !ok || c.UserID != userID {
		return models.CartItem{}, fail(errNotFound, "Cart item not found")
	}
	c.Quantity = quantity
	return *c, nil
}

func (s *Store) RemoveFromCart(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cart[id]; !ok {
		return fail(errNotFound, "Cart item not found")
	}
	delete(s.cart, id)
	return nil
}

func (s *Store) ClearCart(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, c := range s.cart {
		if c.UserID == userID {
			delete(s.cart, k)
		}
	}
}
