package businessRepo

import (
	"context"

	"slotify/models"
)

// BusinessRepository manages tenant records; superadmin-only surface.
type BusinessRepository interface {
	GetByID(ctx context.Context, businessID string) (*models.Business, error)
	List(ctx context.Context) ([]models.Business, error)
	Create(ctx context.Context, business *models.Business) error
	Update(ctx context.Context, business *models.Business) error
	EnsureIndexes() error
}
