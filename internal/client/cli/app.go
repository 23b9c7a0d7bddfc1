package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/dmitrijs2005/artgallery/internal/client/config"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
	"github.com/dmitrijs2005/artgallery/internal/client/session"
	"github.com/dmitrijs2005/artgallery/internal/client/views"
	"github.com/dmitrijs2005/artgallery/internal/common"
	"github.com/dmitrijs2005/artgallery/internal/logging"
)

// Services groups the storefront services the App drives.
type Services struct {
	Auth     services.AuthService
	Arts     services.ArtService
	Cart     services.CartService
	Wishlist services.WishlistService
	Users    services.UserService
}

// App is the interactive storefront. It owns the identity read from the
// session at start-up and hands it to every view that needs one.
type App struct {
	cfg      *config.Config
	log      logging.Logger
	svc      Services
	src      lineSource
	out      io.Writer
	router   *Router
	commands map[string]command

	who   session.Identity
	email string

	listing  *views.ListingView
	detail   *views.DetailView
	cart     *views.CartView
	wishlist *views.WishlistView
	users    *views.UsersView
	verify   *views.VerifyFlow

	stopTicker context.CancelFunc
	afterFunc  views.AfterFunc
	tick       time.Duration
	redirects  chan Location
}

func NewApp(cfg *config.Config, log logging.Logger, svc Services, src lineSource) *App {
	return &App{
		cfg:       cfg,
		log:       log.With("module", "cli"),
		svc:       svc,
		src:       src,
		out:       os.Stdout,
		router:    NewRouter(),
		commands:  commandTable(),
		detail:    views.NewDetailView(svc.Arts),
		users:     views.NewUsersView(svc.Users),
		tick:      time.Second,
		redirects: make(chan Location, 1),
	}
}

// Run restores the session and blocks in the REPL until the user exits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.close()

	who, err := a.svc.Auth.Current(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading session failed", "error", err.Error())
	}
	a.setIdentity(who)

	printlnFn("Welcome to the art gallery (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.src)
}

func (a *App) close() {
	a.endVerify()
	if err := a.svc.Auth.Close(); err != nil {
		a.log.Warn(context.Background(), "closing client failed", "error", err.Error())
	}
}

// Exec runs one command. Pending redirects scheduled in the background are
// applied first.
func (a *App) Exec(ctx context.Context, name string, args []string) error {
	a.applyRedirects()

	c, ok := a.commands[name]
	if !ok {
		return errUnknownCommand
	}
	return c.run(a, ctx, args)
}

// Help lists the commands available to the current identity.
func (a *App) Help() string {
	names := make([]string, 0, len(a.commands))
	for name, c := range a.commands {
		if c.allowed(a.who) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range names {
		c := a.commands[name]
		fmt.Fprintf(&b, "  %-28s %s\n", strings.TrimSpace(name+" "+c.usage), c.help)
	}
	b.WriteString("  help, exit")
	return b.String()
}

func (a *App) status() string {
	who := "guest"
	switch {
	case a.who.IsAdmin():
		who = "admin"
	case !a.who.Anonymous():
		who = fmt.Sprintf("user %d", a.who.UserID)
	}
	return fmt.Sprintf("(%s %s)", who, a.router.Current())
}

// setIdentity switches the identity every identity-bound view is built for.
func (a *App) setIdentity(who session.Identity) {
	a.who = who
	a.cart = nil
	a.wishlist = nil
}

// navigate moves to the given location through the guard. It returns false
// when the user was sent to login instead, before anything is fetched.
func (a *App) navigate(to Location) bool {
	if _, redirected := a.router.Go(to, a.who); redirected {
		printlnFn("Please log in first. Type 'login' to sign in.")
		return false
	}
	return true
}

// redirect queues a navigation from a background callback.
func (a *App) redirect(to Location) {
	select {
	case a.redirects <- to:
	default:
	}
}

func (a *App) applyRedirects() {
	select {
	case to := <-a.redirects:
		a.navigate(to)
	default:
	}
}

// UserMessage is the one line shown to the user for err.
func UserMessage(err error) string {
	return views.Describe(err, "")
}

// report logs err and prints its user-facing line. Prior state is left
// untouched. Stale responses are dropped silently.
func (a *App) report(ctx context.Context, op string, err error, fallback string) error {
	if errors.Is(err, views.ErrStale) {
		a.log.Debug(ctx, "stale response dropped", "op", op)
		return err
	}
	a.log.Warn(ctx, op+" failed", "error", err.Error())
	printlnFn(views.Describe(err, fallback))
	return err
}

const inputCancelledMessage = "Input cancelled."

// inputFailed reports a prompt that could not be read. End of input and
// Ctrl-C cancel the command.
func (a *App) inputFailed(ctx context.Context, op string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
		return a.report(ctx, op, err, inputCancelledMessage)
	}
	return a.report(ctx, op, err, "")
}

// argID parses the i-th argument as an id.
func argID(args []string, i int, name string) (int64, error) {
	if i >= len(args) {
		return 0, common.NewValidationError(name, "is required")
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewValidationError(name, "must be a positive number")
	}
	return id, nil
}
