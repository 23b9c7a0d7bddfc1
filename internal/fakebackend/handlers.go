package fakebackend

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}

type messageReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, errConflict):
		return http.StatusConflict
	case errors.Is(err, errInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), messageReply{Message: err.Error()})
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fail(errInvalid, fmt.Sprintf("Invalid %s", name))
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fail(errInvalid, "Malformed JSON body")
	}
	return nil
}

// decodeForm parses a multipart body and fills dst from its text fields.
func (s *Server) decodeForm(r *http.Request, dst any) error {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return fail(errInvalid, "Expected multipart form data")
	}
	if err := s.decoder.Decode(dst, r.MultipartForm.Value); err != nil {
		return fail(errInvalid, "Invalid form fields")
	}
	return nil
}

// upload consumes the file in field and returns the URL it would be served
// under, or "" when the field is absent.
func upload(r *http.Request, field, prefix string) (string, error) {
	f, hdr, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", nil
	}
	if err != nil {
		return "", fail(errInvalid, "Unreadable file "+field)
	}
	defer f.Close()
	if _, err := io.Copy(io.Discard, f); err != nil {
		return "", fail(errInvalid, "Unreadable file "+field)
	}
	return fmt.Sprintf("/uploads/%s/%s", prefix, hdr.Filename), nil
}

func uploadPictures(r *http.Request, fieldPrefix string) ([4]string, error) {
	var out [4]string
	for i := range out {
		u, err := upload(r, fmt.Sprintf("%s%d", fieldPrefix, i+1), "arts")
		if err != nil {
			return out, err
		}
		out[i] = u
	}
	return out, nil
}

// Auth and users.

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var form models.RegisterForm
	if err := s.decodeForm(r, &form); err != nil {
		writeError(w, err)
		return
	}
	pic, err := upload(r, "profilePic", "users")
	if err != nil {
		writeError(w, err)
		return
	}

	u, err := s.store.Register(form.Name, form.Email, r.FormValue("password"), pic)
	if err != nil {
		writeError(w, err)
		return
	}
	otp, _ := s.store.OTP(u.Email)
	s.log.Info(r.Context(), "otp issued", "email", u.Email, "otp", otp)
	writeJSON(w, http.StatusCreated, u)
}

type emailOTP struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (s *Server) verify(w http.ResponseWriter, r *http.Request) {
	var in emailOTP
	if err := decodeJSON(r, &in); err != nil {
		writeText(w, statusFor(err), err.Error())
		return
	}
	if err := s.store.Verify(in.Email, in.OTP); err != nil {
		writeText(w, statusFor(err), err.Error())
		return
	}
	writeText(w, http.StatusOK, "Account verified successfully. You can now log in.")
}

// regenerateOTP takes the email from the JSON body, or from the query for
// older clients.
func (s *Server) regenerateOTP(w http.ResponseWriter, r *http.Request) {
	var in emailOTP
	if err := decodeJSON(r, &in); err != nil {
		writeText(w, statusFor(err), err.Error())
		return
	}
	if in.Email == "" {
		in.Email = r.URL.Query().Get("email")
	}
	otp, err := s.store.RegenerateOTP(in.Email)
	if err != nil {
		writeText(w, statusFor(err), err.Error())
		return
	}
	s.log.Info(r.Context(), "otp issued", "email", in.Email, "otp", otp)
	writeText(w, http.StatusOK, "OTP regenerated. Please check your email.")
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login reports bad credentials as success=false with a 200, like the
// storefront backend does.
func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	u, err := s.store.Login(in.Email, in.Password)
	if errors.Is(err, errUnauthorized) {
		writeJSON(w, http.StatusOK, models.LoginResult{Message: err.Error()})
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResult{Success: true, UserID: u.ID, Message: "Login successful"})
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	token, err := s.store.ForgotPassword(in.Email)
	if err != nil {
		writeError(w, err)
		return
	}
	s.log.Info(r.Context(), "reset token issued", "email", in.Email, "token", token)
	writeJSON(w, http.StatusOK, messageReply{Success: true, Message: "Password reset link sent to your email."})
}

type resetRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var in resetRequest
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.ResetPassword(in.Token, in.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messageReply{Success: true, Message: "Password has been reset."})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Users())
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var form models.ProfileForm
	if err := s.decodeForm(r, &form); err != nil {
		writeError(w, err)
		return
	}
	pic, err := upload(r, "file", "users")
	if err != nil {
		writeError(w, err)
		return
	}
	u, err := s.store.UpdateUser(id, form.Name, form.Email, pic)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Arts.

func (s *Server) addArt(w http.ResponseWriter, r *http.Request) {
	var form models.ArtForm
	if err := s.decodeForm(r, &form); err != nil {
		writeError(w, err)
		return
	}
	pics, err := uploadPictures(r, "file")
	if err != nil {
		writeError(w, err)
		return
	}
	a, err := s.store.AddArt(form, pics)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) listArts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Arts())
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Categories())
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Search(r.URL.Query().Get("q")))
}

func (s *Server) getArt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	a, err := s.store.Art(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) updateArt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var form models.ArtForm
	if err := s.decodeForm(r, &form); err != nil {
		writeError(w, err)
		return
	}
	pics, err := uploadPictures(r, "picture")
	if err != nil {
		writeError(w, err)
		return
	}
	a, err := s.store.UpdateArt(id, form, pics)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) deleteArt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.DeleteArt(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Wishlist.

type artRef struct {
	ID int64 `json:"id"`
}

func (s *Server) addToWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	var in artRef
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, err)
		return
	}
	item, err := s.store.AddToWishlist(userID, in.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) wishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Wishlist(userID))
}

func (s *Server) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.RemoveFromWishlist(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	s.store.ClearWishlist(userID)
	w.WriteHeader(http.StatusNoContent)
}

// Cart.

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

// quantity reads the JSON body first and falls back to ?quantity=, then 1.
func quantity(r *http.Request) (int, error) {
	var in quantityRequest
	if err := decodeJSON(r, &in); err != nil {
		return 0, err
	}
	if in.Quantity != nil {
		return *in.Quantity, nil
	}
	if q := r.URL.Query().Get("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil {
			return 0, fail(errInvalid, "Invalid quantity")
		}
		return n, nil
	}
	return 1, nil
}

func (s *Server) addToCart(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	artID, err := pathID(r, "artId")
	if err != nil {
		writeError(w, err)
		return
	}
	qty, err := quantity(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := s.store.AddToCart(userID, artID, qty)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) cart(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Cart(userID))
}

func (s *Server) updateCartItem(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	qty, err := quantity(r)
	if err != nil {
		writeError(w, err)
		return
	}
	item, err := s.store.UpdateCartItem(userID, id, qty)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (s *Server) removeFromCart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.RemoveFromCart(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeError(w, err)
		return
	}
	s.store.ClearCart(userID)
	w.WriteHeader(http.StatusNoContent)
}
