// Package fakebackend is an in-memory stand-in for the storefront REST API.
// It serves the same routes and reply shapes the client expects and backs
// both the client's integration tests and cmd/fakeserver for local runs.
//
// OTP codes and password-reset tokens are not mailed; they are logged at
// info level and exposed through Store.OTP and Store.ResetToken.
package fakebackend

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/dmitrijs2005/artgallery/internal/logging"
)

const (
	maxFormMemory   = 32 << 20
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	store   *Store
	log     logging.Logger
	router  *mux.Router
	decoder *schema.Decoder
}

func New(store *Store, log logging.Logger) *Server {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)

	s := &Server{
		store:   store,
		log:     log.With("module", "fake_backend"),
		router:  mux.NewRouter(),
		decoder: dec,
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	r := s.router
	r.Use(s.logRequests)

	r.HandleFunc("/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/verify", s.verify).Methods(http.MethodPut)
	r.HandleFunc("/regenerate-otp", s.regenerateOTP).Methods(http.MethodPut)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/forgot-password", s.forgotPassword).Methods(http.MethodPost)
	r.HandleFunc("/reset-password", s.resetPassword).Methods(http.MethodPost)
	r.HandleFunc("/users", s.listUsers).Methods(http.MethodGet)
	r.HandleFunc("/users/update/{id:[0-9]+}", s.updateUser).Methods(http.MethodPut)

	r.HandleFunc("/arts/add", s.addArt).Methods(http.MethodPost)
	r.HandleFunc("/arts/all", s.listArts).Methods(http.MethodGet)
	r.HandleFunc("/arts/categories", s.categories).Methods(http.MethodGet)
	r.HandleFunc("/arts/search", s.search).Methods(http.MethodGet)
	r.HandleFunc("/arts/update/{id:[0-9]+}", s.updateArt).Methods(http.MethodPut)
	r.HandleFunc("/arts/{id:[0-9]+}", s.getArt).Methods(http.MethodGet)
	r.HandleFunc("/arts/{id:[0-9]+}", s.deleteArt).Methods(http.MethodDelete)

	r.HandleFunc("/wishlist/add/{userId:[0-9]+}", s.addToWishlist).Methods(http.MethodPost)
	r.HandleFunc("/wishlist/user/{userId:[0-9]+}", s.wishlist).Methods(http.MethodGet)
	r.HandleFunc("/wishlist/remove/{id:[0-9]+}", s.removeFromWishlist).Methods(http.MethodDelete)
	r.HandleFunc("/wishlist/clear/{userId:[0-9]+}", s.clearWishlist).Methods(http.MethodDelete)

	r.HandleFunc("/cart/add/{userId:[0-9]+}/{artId:[0-9]+}", s.addToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart/user/{userId:[0-9]+}", s.cart).Methods(http.MethodGet)
	r.HandleFunc("/cart/update/{userId:[0-9]+}/{id:[0-9]+}", s.updateCartItem).Methods(http.MethodPut)
	r.HandleFunc("/cart/remove/{id:[0-9]+}", s.removeFromCart).Methods(http.MethodDelete)
	r.HandleFunc("/cart/clear/{userId:[0-9]+}", s.clearCart).Methods(http.MethodDelete)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping fake backend...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Error(ctx, "shutdown failed", "error", err.Error())
		}
	}()

	s.log.Info(ctx, "Starting fake backend", "address", addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		started := time.Now()
		next.ServeHTTP(rec, r)
		s.log.Debug(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"request_id", r.Header.Get("X-Request-ID"),
			"duration", time.Since(started).String(),
		)
	})
}
