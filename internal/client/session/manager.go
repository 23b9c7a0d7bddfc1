package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/artgallery/internal/logging"
)

// AdminUserID is the account the backend treats as the administrator.
const AdminUserID int64 = 1

// Identity is who the client acts as. The zero value is anonymous.
type Identity struct {
	UserID int64
}

func (i Identity) Anonymous() bool { return i.UserID <= 0 }

func (i Identity) IsAdmin() bool { return i.UserID == AdminUserID }

// Manager owns the userId entry of a Store.
type Manager struct {
	store Store
	ttl   time.Duration
	log   logging.Logger
}

func NewManager(store Store, ttl time.Duration, log logging.Logger) *Manager {
	return &Manager{store: store, ttl: ttl, log: log.With("component", "session")}
}

// SignIn stores userID for the configured TTL.
func (m *Manager) SignIn(ctx context.Context, userID int64) (Identity, error) {
	if userID <= 0 {
		return Identity{}, fmt.Errorf("sign in: invalid user id %d", userID)
	}
	if err := m.store.Set(ctx, UserIDKey, strconv.FormatInt(userID, 10), m.ttl); err != nil {
		return Identity{}, err
	}
	m.log.Info(ctx, "session started", "user_id", userID, "ttl", m.ttl.String())
	return Identity{UserID: userID}, nil
}

// Current returns the stored identity, or an anonymous one when nothing
// valid is stored. An unparsable value is dropped and treated as absent.
func (m *Manager) Current(ctx context.Context) (Identity, error) {
	raw, ok, err := m.store.Get(ctx, UserIDKey)
	if err != nil {
		return Identity{}, err
	}
	if !ok {
		return Identity{}, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		m.log.Warn(ctx, "dropping malformed session value", "value", raw)
		return Identity{}, m.store.Clear(ctx, UserIDKey)
	}
	return Identity{UserID: id}, nil
}

// SignOut forgets the stored identity.
func (m *Manager) SignOut(ctx context.Context) error {
	if err := m.store.Clear(ctx, UserIDKey); err != nil {
		return err
	}
	m.log.Info(ctx, "session cleared")
	return nil
}
