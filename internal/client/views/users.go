package views

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/client/services"
)

// UsersView is the admin list of accounts.
type UsersView struct {
	mu    sync.Mutex
	svc   services.UserService
	users []models.User
}

func NewUsersView(svc services.UserService) *UsersView {
	return &UsersView{svc: svc}
}

func (v *UsersView) Load(ctx context.Context) error {
	users, err := v.svc.List(ctx)
	if err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.users = users
	return nil
}

func (v *UsersView) Users() []models.User {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.User(nil), v.users...)
}
