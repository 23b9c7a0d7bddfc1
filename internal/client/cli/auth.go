package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

const (
	resetSuccessMessage  = "Password reset successful!"
	resetFailedMessage   = "Password reset failed. Please try again."
	forgotSentMessage    = "Password reset link sent. Please check your email."
	forgotFailedMessage  = "Failed to send password reset link. Please try again."
	registeredMessage    = "Registration successful. Please check your email for the OTP."
	profileUpdateMessage = "Profile updated."
)

func (a *App) cmdHome(ctx context.Context, args []string) error {
	a.navigate(Location{Route: RouteHome})
	printlnFn("Welcome to the art gallery. Type 'shop' to browse, 'login' or 'register' to get started.")
	return nil
}

// cmdRegister prompts for the account fields and, on success, opens the
// verification screen for the new email.
func (a *App) cmdRegister(ctx context.Context, args []string) error {
	a.navigate(Location{Route: RouteRegister})

	name, err := getSimpleText(a.src, "Enter name", a.out)
	if err != nil {
		return a.inputFailed(ctx, "register", err)
	}
	email, err := getSimpleText(a.src, "Enter email", a.out)
	if err != nil {
		return a.inputFailed(ctx, "register", err)
	}
	password, err := getPassword(a.src, "Enter password", a.out)
	if err != nil {
		return a.inputFailed(ctx, "register", err)
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.src, "Confirm password", a.out)
	if err != nil {
		return a.inputFailed(ctx, "register", err)
	}
	defer common.WipeByteArray(confirm)
	pic, err := getSimpleText(a.src, "Profile picture file (optional)", a.out)
	if err != nil {
		return a.inputFailed(ctx, "register", err)
	}

	form := models.RegisterForm{Name: name, Email: email, Password: password, ProfilePic: pic}
	if _, err := a.svc.Auth.Register(ctx, form, confirm); err != nil {
		return a.report(ctx, "register", err, "")
	}

	printlnFn(registeredMessage)
	a.email = email
	a.startVerify(ctx, email)
	return nil
}

// cmdLogin signs in and routes admins to the admin home and everyone else
// to the user home.
func (a *App) cmdLogin(ctx context.Context, args []string) error {
	a.navigate(Location{Route: RouteLogin})

	email, err := getSimpleText(a.src, "Enter email", a.out)
	if err != nil {
		return a.inputFailed(ctx, "login", err)
	}
	password, err := getPassword(a.src, "Enter password", a.out)
	if err != nil {
		return a.inputFailed(ctx, "login", err)
	}
	defer common.WipeByteArray(password)

	who, err := a.svc.Auth.Login(ctx, email, password)
	if err != nil {
		var le *services.LoginError
		if errors.As(err, &le) {
			a.log.Info(ctx, "login rejected", "email", email)
			printlnFn(le.Error())
			return err
		}
		return a.report(ctx, "login", err, "")
	}

	a.setIdentity(who)
	a.log.Info(ctx, "signed in", "user_id", who.UserID)
	printlnFn("Login successful.")
	if who.IsAdmin() {
		return a.cmdAdmin(ctx, nil)
	}
	a.navigate(Location{Route: RouteUserHome})
	printlnFn("Type 'arts' to browse, 'cart' or 'wishlist' to see your items.")
	return nil
}

func (a *App) cmdLogout(ctx context.Context, args []string) error {
	if err := a.svc.Auth.Logout(ctx); err != nil {
		return a.report(ctx, "logout", err, "")
	}
	a.setIdentity(session.Identity{})
	a.navigate(Location{Route: RouteHome})
	printlnFn("Logged out.")
	return nil
}

func (a *App) cmdForgot(ctx context.Context, args []string) error {
	a.navigate(Location{Route: RouteForgotPassword})

	email, err := a.argOrPrompt(args, "Enter email")
	if err != nil {
		return a.inputFailed(ctx, "forgot password", err)
	}

	res, err := a.svc.Auth.ForgotPassword(ctx, email)
	if err != nil {
		return a.report(ctx, "forgot password", err, forgotFailedMessage)
	}
	if !res.Success {
		printlnFn(orDefault(res.Message, forgotFailedMessage))
		return nil
	}
	printlnFn(orDefault(res.Message, forgotSentMessage))
	return nil
}

// cmdReset sets a new password with the token from the reset link and
// moves to login on success.
func (a *App) cmdReset(ctx context.Context, args []string) error {
	a.navigate(Location{Route: RouteResetPassword})

	token, err := a.argOrPrompt(args, "Enter reset token")
	if err != nil {
		return a.inputFailed(ctx, "reset password", err)
	}
	password, err := getPassword(a.src, "Enter new password", a.out)
	if err != nil {
		return a.inputFailed(ctx, "reset password", err)
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.src, "Confirm new password", a.out)
	if err != nil {
		return a.inputFailed(ctx, "reset password", err)
	}
	defer common.WipeByteArray(confirm)

	res, err := a.svc.Auth.ResetPassword(ctx, token, password, confirm)
	if err != nil {
		var valErr *common.ValidationError
		if errors.As(err, &valErr) {
			return a.report(ctx, "reset password", err, "")
		}
		return a.report(ctx, "reset password", err, resetFailedMessage)
	}
	if !res.Success {
		printlnFn(orDefault(res.Message, resetFailedMessage))
		return nil
	}

	printlnFn(resetSuccessMessage)
	a.navigate(Location{Route: RouteLogin})
	return nil
}

func (a *App) cmdProfile(ctx context.Context, args []string) error {
	if !a.navigate(Location{Route: RouteProfileUpdate}) {
		return nil
	}

	name, err := getSimpleText(a.src, "Enter name", a.out)
	if err != nil {
		return a.inputFailed(ctx, "update profile", err)
	}
	email, err := getSimpleText(a.src, "Enter email", a.out)
	if err != nil {
		return a.inputFailed(ctx, "update profile", err)
	}
	pic, err := getSimpleText(a.src, "Profile picture file (optional)", a.out)
	if err != nil {
		return a.inputFailed(ctx, "update profile", err)
	}

	u, err := a.svc.Auth.UpdateProfile(ctx, a.who, models.ProfileForm{Name: name, Email: email, Picture: pic})
	if err != nil {
		return a.report(ctx, "update profile", err, "")
	}
	printlnFn(profileUpdateMessage)
	renderUser(u)
	return nil
}

func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.src, prompt, a.out)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
