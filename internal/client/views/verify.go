package views

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/common"
)

const (
	InitialCooldown = 60
	ResendCooldown  = 30

	verifiedMessage     = "Verification successful!"
	verifyFailedMessage = "Invalid OTP. Please try again."
	resentMessage       = "OTP resent successfully. Please check your email."
	resendFailedMessage = "Failed to resend OTP. Please try again."
)

var ErrResendUnavailable = errors.New("resend is not available yet")

type VerifyState int

const (
	AwaitingInput VerifyState = iota
	Submitting
	VerifiedSuccess
	VerifiedFailure
)

func (s VerifyState) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting input"
	case Submitting:
		return "submitting"
	case VerifiedSuccess:
		return "verified"
	case VerifiedFailure:
		return "failed"
	}
	return "unknown"
}

// Cooldown counts seconds until an OTP resend is allowed. Resend is
// enabled when the count reaches zero or when Enable is called after a
// failed resend.
type Cooldown struct {
	mu        sync.Mutex
	remaining int
	enabled   bool
}

// NewCooldown starts a cooldown of seconds.
func NewCooldown(seconds int) *Cooldown {
	c := &Cooldown{}
	c.Restart(seconds)
	return c
}

// Restart sets the count and disables resend until it expires.
func (c *Cooldown) Restart(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remaining = seconds
	c.enabled = seconds <= 0
}

// Tick advances one second and returns what is left.
func (c *Cooldown) Tick() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
		if c.remaining == 0 {
			c.enabled = true
		}
	}
	return c.remaining
}

func (c *Cooldown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Cooldown) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *Cooldown) Enable() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = true
}

func (c *Cooldown) disable() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.enabled {
		return false
	}
	c.enabled = false
	return true
}

// Run ticks every interval until ctx is done.
func (c *Cooldown) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Tick()
		case <-ctx.Done():
			return
		}
	}
}

// Timer is the part of *time.Timer the flow needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d, like time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// OTPSender is the part of services.AuthService the flow uses.
type OTPSender interface {
	Verify(ctx context.Context, email, otp string) (models.StatusResult, error)
	RegenerateOTP(ctx context.Context, email string) (models.StatusResult, error)
}

type VerifyOption func(*VerifyFlow)

// WithRedirect sets the delay and the callback run after a successful
// verification.
func WithRedirect(delay time.Duration, onVerified func()) VerifyOption {
	return func(f *VerifyFlow) {
		f.delay = delay
		f.onVerified = onVerified
	}
}

func WithAfterFunc(af AfterFunc) VerifyOption {
	return func(f *VerifyFlow) { f.afterFunc = af }
}

// VerifyFlow is the OTP verification screen.
type VerifyFlow struct {
	mu       sync.Mutex
	auth     OTPSender
	email    string
	digits   [services.OTPLength]string
	state    VerifyState
	outcome  VerifyState
	message  string
	isError  bool
	cooldown *Cooldown

	delay      time.Duration
	onVerified func()
	afterFunc  AfterFunc
	redirect   Timer
}

func NewVerifyFlow(auth OTPSender, email string, opts ...VerifyOption) *VerifyFlow {
	f := &VerifyFlow{
		auth:       auth,
		email:      email,
		cooldown:   NewCooldown(InitialCooldown),
		delay:      2 * time.Second,
		onVerified: func() {},
		afterFunc:  realAfterFunc,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *VerifyFlow) Cooldown() *Cooldown { return f.cooldown }

func (f *VerifyFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *VerifyFlow) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.email = strings.TrimSpace(email)
}

func (f *VerifyFlow) State() VerifyState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Outcome is the result of the last submit: VerifiedSuccess,
// VerifiedFailure, or AwaitingInput before any.
func (f *VerifyFlow) Outcome() VerifyState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.outcome
}

// Message returns the last status line and whether it reports a failure.
func (f *VerifyFlow) Message() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message, f.isError
}

// SetDigit stores s at position i. Input longer than one character, out of
// range, or arriving while submitting or after success is rejected.
func (f *VerifyFlow) SetDigit(i int, s string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i < 0 || i >= len(f.digits) || len([]rune(s)) > 1 {
		return false
	}
	if f.state == Submitting || f.state == VerifiedSuccess {
		return false
	}
	f.digits[i] = s
	return true
}

// SetCode fills the digits from a whole code, one character each.
func (f *VerifyFlow) SetCode(code string) bool {
	runes := []rune(code)
	if len(runes) > services.OTPLength {
		return false
	}
	for i := 0; i < services.OTPLength; i++ {
		s := ""
		if i < len(runes) {
			s = string(runes[i])
		}
		if !f.SetDigit(i, s) {
			return false
		}
	}
	return true
}

func (f *VerifyFlow) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return strings.Join(f.digits[:], "")
}

func (f *VerifyFlow) canSubmitLocked() bool {
	if f.state != AwaitingInput {
		return false
	}
	for _, d := range f.digits {
		if d == "" {
			return false
		}
	}
	return true
}

// CanSubmit is false while any digit is empty or a submit is in flight.
func (f *VerifyFlow) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canSubmitLocked()
}

// Submit verifies the entered code. On success the redirect callback is
// scheduled after the configured delay.
func (f *VerifyFlow) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.canSubmitLocked() {
		f.mu.Unlock()
		return common.NewValidationError("otp", "enter all digits first")
	}
	f.state = Submitting
	f.message, f.isError = "", false
	email, code := f.email, strings.Join(f.digits[:], "")
	f.mu.Unlock()

	res, err := f.auth.Verify(ctx, email, code)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err == nil && !res.Success {
		f.fail(firstNonEmpty(res.Message, verifyFailedMessage))
		return nil
	}
	if err != nil {
		f.fail(Describe(err, verifyFailedMessage))
		return err
	}

	f.state, f.outcome = VerifiedSuccess, VerifiedSuccess
	f.message = firstNonEmpty(res.Message, verifiedMessage)
	f.redirect = f.afterFunc(f.delay, f.onVerified)
	return nil
}

// fail records a VerifiedFailure outcome and returns to AwaitingInput so the
// code can be corrected.
func (f *VerifyFlow) fail(msg string) {
	f.state, f.outcome = AwaitingInput, VerifiedFailure
	f.message, f.isError = msg, true
}

// Resend asks for a new code. The cooldown restarts at ResendCooldown and
// resend stays disabled until it expires, unless the request fails.
func (f *VerifyFlow) Resend(ctx context.Context) error {
	if !f.cooldown.disable() {
		return ErrResendUnavailable
	}
	f.cooldown.Restart(ResendCooldown)

	f.mu.Lock()
	f.message, f.isError = "", false
	email := f.email
	f.mu.Unlock()

	res, err := f.auth.RegenerateOTP(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.cooldown.Enable()
		f.message, f.isError = Describe(err, resendFailedMessage), true
		return err
	}
	f.message = firstNonEmpty(res.Message, resentMessage)
	return nil
}

// Close cancels a pending redirect.
func (f *VerifyFlow) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.redirect != nil {
		f.redirect.Stop()
		f.redirect = nil
	}
}

func firstNonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
