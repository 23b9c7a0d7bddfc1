package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/artgallery/internal/client/client"
	"github.com/dmitrijs2005/artgallery/internal/client/models"
)

// UserService backs the admin user list.
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
}

type userService struct {
	client client.Client
}

func NewUserService(c client.Client) UserService {
	return &userService{client: c}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
