package repository

import (
	"context"

	"skillswap-backend/internal/models"

	"github.com/google/uuid"
)

// UserStore define a interface do diretório de usuários
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	RenameUser(ctx context.Context, user *models.User, newUsername string) error
	DeleteUser(ctx context.Context, user *models.User, confirmUsername string) error
	Count(ctx context.Context) (int, error)
}
