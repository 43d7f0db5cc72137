package specialistRepo

import (
	"context"

	"slotify/models"
)

// SpecialistRepository manages specialist profiles and their service offerings.
type SpecialistRepository interface {
	GetByID(ctx context.Context, specialistID string) (*models.Specialist, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Specialist, error)
	ListByVertical(ctx context.Context, businessType string) ([]models.Specialist, error)
	Create(ctx context.Context, specialist *models.Specialist) error
	Update(ctx context.Context, specialist *models.Specialist) error
	Delete(ctx context.Context, specialistID string) error

	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context, businessID string) ([]models.Service, error)
	UpsertService(ctx context.Context, service models.Service) error

	EnsureIndexes() error
}
