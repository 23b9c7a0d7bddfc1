package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/client/views"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

var errNoVerification = common.NewValidationError("", "No verification in progress. Type 'verify <email>' first.")

func (a *App) cmdVerify(ctx context.Context, args []string) error {
	email := a.email
	if len(args) > 0 {
		email = args[0]
	}
	if email == "" {
		var err error
		if email, err = getSimpleText(a.src, "Enter email", a.out); err != nil {
			return a.inputFailed(ctx, "verify", err)
		}
	}
	a.email = email
	a.startVerify(ctx, email)
	return nil
}

// startVerify opens a fresh verification screen for email. The cooldown
// ticker runs until the screen is left or the app stops.
func (a *App) startVerify(ctx context.Context, email string) {
	a.endVerify()
	a.navigate(Location{Route: RouteVerify})

	opts := []views.VerifyOption{
		views.WithRedirect(a.cfg.VerifyRedirectDelay, func() {
			a.redirect(Location{Route: RouteLogin})
			printlnFn("Redirecting to login...")
		}),
	}
	if a.afterFunc != nil {
		opts = append(opts, views.WithAfterFunc(a.afterFunc))
	}
	a.verify = views.NewVerifyFlow(a.svc.Auth, email, opts...)

	tctx, cancel := context.WithCancel(ctx)
	a.stopTicker = cancel
	go a.verify.Cooldown().Run(tctx, a.tick)

	printlnFn(fmt.Sprintf("Enter the %d-digit code sent to %s ('otp <code>'). Resend available in %ds.",
		services.OTPLength, email, a.verify.Cooldown().Remaining()))
}

func (a *App) endVerify() {
	if a.stopTicker != nil {
		a.stopTicker()
		a.stopTicker = nil
	}
	if a.verify != nil {
		a.verify.Close()
	}
}

func (a *App) currentFlow() (*views.VerifyFlow, error) {
	if a.verify == nil || a.router.Current().Route != RouteVerify {
		return nil, errNoVerification
	}
	return a.verify, nil
}

func (a *App) cmdOTP(ctx context.Context, args []string) error {
	f, err := a.currentFlow()
	if err != nil {
		return a.report(ctx, "otp", err, "")
	}
	if len(args) == 0 || !f.SetCode(args[0]) {
		return a.report(ctx, "otp", common.NewValidationError("otp", fmt.Sprintf("enter %d digits", services.OTPLength)), "")
	}
	return a.submit(ctx, f)
}

func (a *App) cmdDigit(ctx context.Context, args []string) error {
	f, err := a.currentFlow()
	if err != nil {
		return a.report(ctx, "digit", err, "")
	}
	if len(args) < 2 {
		return a.report(ctx, "digit", common.NewValidationError("", "usage: digit <1-6> <d>"), "")
	}
	pos, err := strconv.Atoi(args[0])
	if err != nil || !f.SetDigit(pos-1, args[1]) {
		return a.report(ctx, "digit", common.NewValidationError("digit", "rejected"), "")
	}
	if f.CanSubmit() {
		printlnFn("Code complete. Type 'submit'.")
	}
	return nil
}

func (a *App) cmdSubmit(ctx context.Context, args []string) error {
	f, err := a.currentFlow()
	if err != nil {
		return a.report(ctx, "submit", err, "")
	}
	return a.submit(ctx, f)
}

func (a *App) submit(ctx context.Context, f *views.VerifyFlow) error {
	err := f.Submit(ctx)
	if err != nil {
		a.log.Warn(ctx, "verification failed", "error", err.Error())
	}
	if msg, _ := f.Message(); msg != "" {
		printlnFn(msg)
	} else if err != nil {
		printlnFn(UserMessage(err))
	}
	if f.State() == views.VerifiedSuccess {
		a.navigate(Location{Route: RouteSuccess})
	}
	return err
}

func (a *App) cmdResend(ctx context.Context, args []string) error {
	f, err := a.currentFlow()
	if err != nil {
		return a.report(ctx, "resend", err, "")
	}

	err = f.Resend(ctx)
	if errors.Is(err, views.ErrResendUnavailable) {
		printlnFn(fmt.Sprintf("Resend available in %ds.", f.Cooldown().Remaining()))
		return err
	}
	if err != nil {
		a.log.Warn(ctx, "resend failed", "error", err.Error())
	}
	msg, _ := f.Message()
	printlnFn(msg)
	return err
}
