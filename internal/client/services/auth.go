// Package services contains application services for the artgallery client.
// Each service wraps the API client for one concern and validates input
// before any request is sent.
//
// This file defines the authentication service: register, OTP verification,
// login/logout through the local session, password recovery and profile
// updates.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

// OTPLength is the number of digits in a verification code.
const OTPLength = 6

// ErrInvalidCredentials is matched by every *LoginError.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginError is a login the backend answered with success=false.
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	if e.Message == "" {
		return "Invalid email or password."
	}
	return e.Message
}

func (e *LoginError) Is(target error) bool { return target == ErrInvalidCredentials }

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create an account; the password is wiped once sent.
//   - Verify / RegenerateOTP: confirm the account with the mailed code.
//   - Login: authenticate and start a local session; Logout ends it.
//   - Current: the identity stored in the session, anonymous if none.
//   - ForgotPassword / ResetPassword: token-based password recovery.
//   - UpdateProfile: change name, email and picture of the signed-in user.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, form models.RegisterForm, confirm []byte) (models.User, error)
	Verify(ctx context.Context, email, otp string) (models.StatusResult, error)
	RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error)
	Login(ctx context.Context, email string, password []byte) (session.Identity, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (session.Identity, error)
	ForgotPassword(ctx context.Context, email string) (models.StatusResult, error)
	ResetPassword(ctx context.Context, token string, password, confirm []byte) (models.StatusResult, error)
	UpdateProfile(ctx context.Context, who session.Identity, form models.ProfileForm) (models.User, error)
	Close() error
}

type authService struct {
	client   client.Client
	sessions *session.Manager
}

// NewAuthService constructs an AuthService bound to the given API client
// and session manager.
func NewAuthService(c client.Client, sessions *session.Manager) AuthService {
	return &authService{client: c, sessions: sessions}
}

func requireEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return common.NewValidationError("email", "is required")
	}
	return nil
}

func requirePasswords(password, confirm []byte) error {
	if len(password) == 0 {
		return common.NewValidationError("password", "is required")
	}
	if string(password) != string(confirm) {
		return common.NewValidationError("", "Passwords do not match.")
	}
	return nil
}

func (a *authService) Register(ctx context.Context, form models.RegisterForm, confirm []byte) (models.User, error) {
	defer common.WipeByteArray(form.Password)
	defer common.WipeByteArray(confirm)

	if err := requireEmail(form.Email); err != nil {
		return models.User{}, err
	}
	if err := requirePasswords(form.Password, confirm); err != nil {
		return models.User{}, err
	}

	u, err := a.client.Register(ctx, form)
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}
	return u, nil
}

// ValidateOTP checks that otp has exactly OTPLength non-blank characters.
func ValidateOTP(otp string) error {
	if len([]rune(otp)) != OTPLength || strings.ContainsAny(otp, " \t") {
		return common.NewValidationError("otp", fmt.Sprintf("must have %d digits", OTPLength))
	}
	return nil
}

func (a *authService) Verify(ctx context.Context, email, otp string) (models.StatusResult, error) {
	if err := requireEmail(email); err != nil {
		return models.StatusResult{}, err
	}
	if err := ValidateOTP(otp); err != nil {
		return models.StatusResult{}, err
	}

	res, err := a.client.Verify(ctx, email, otp)
	if err != nil {
		return models.StatusResult{}, fmt.Errorf("verify: %w", err)
	}
	return res, nil
}

func (a *authService) RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error) {
	if err := requireEmail(email); err != nil {
		return models.StatusResult{}, err
	}
	res, err := a.client.RegenerateOTP(ctx, email)
	if err != nil {
		return models.StatusResult{}, fmt.Errorf("regenerate otp: %w", err)
	}
	return res, nil
}

// Login authenticates and, on success, stores the user id in the session.
// A reply without success or without a user id yields a *LoginError.
func (a *authService) Login(ctx context.Context, email string, password []byte) (session.Identity, error) {
	defer common.WipeByteArray(password)

	if err := requireEmail(email); err != nil {
		return session.Identity{}, err
	}
	if len(password) == 0 {
		return session.Identity{}, common.NewValidationError("password", "is required")
	}

	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return session.Identity{}, fmt.Errorf("login: %w", err)
	}
	if !res.Success || res.UserID <= 0 {
		return session.Identity{}, &LoginError{Message: res.Message}
	}

	id, err := a.sessions.SignIn(ctx, res.UserID)
	if err != nil {
		return session.Identity{}, fmt.Errorf("save session: %w", err)
	}
	return id, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.sessions.SignOut(ctx)
}

func (a *authService) Current(ctx context.Context) (session.Identity, error) {
	return a.sessions.Current(ctx)
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (models.StatusResult, error) {
	if err := requireEmail(email); err != nil {
		return models.StatusResult{}, err
	}
	res, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return models.StatusResult{}, fmt.Errorf("forgot password: %w", err)
	}
	return res, nil
}

func (a *authService) ResetPassword(ctx context.Context, token string, password, confirm []byte) (models.StatusResult, error) {
	defer common.WipeByteArray(password)
	defer common.WipeByteArray(confirm)

	if strings.TrimSpace(token) == "" {
		return models.StatusResult{}, common.NewValidationError("token", "is required")
	}
	if err := requirePasswords(password, confirm); err != nil {
		return models.StatusResult{}, err
	}

	res, err := a.client.ResetPassword(ctx, token, password)
	if err != nil {
		return models.StatusResult{}, fmt.Errorf("reset password: %w", err)
	}
	return res, nil
}

func (a *authService) UpdateProfile(ctx context.Context, who session.Identity, form models.ProfileForm) (models.User, error) {
	if who.Anonymous() {
		return models.User{}, common.ErrNotLoggedIn
	}
	if err := requireEmail(form.Email); err != nil {
		return models.User{}, err
	}

	u, err := a.client.UpdateProfile(ctx, who.UserID, form)
	if err != nil {
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close() error {
	return a.client.Close()
}
