package userRepo

import (
	"context"

	"slotify/models"
)

// UserRepository manages platform accounts.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	AppendNotification(ctx context.Context, userID string, notification models.Notification) error
	EnsureIndexes() error
}
