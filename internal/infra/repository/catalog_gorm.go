package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

// CatalogGormRepository serves the read-only reference entities:
// services, rooms and specialties.
type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) ListServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&services).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return services, nil
}

func (r *CatalogGormRepository) ListRooms(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rooms).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return rooms, nil
}

func (r *CatalogGormRepository) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	var specialties []models.Specialty
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&specialties).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return specialties, nil
}
