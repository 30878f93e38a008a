package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) List(ctx context.Context) ([]models.Professional, error) {
	var pros []models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		Order("name ASC").
		Find(&pros).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return pros, nil
}

func (r *ProfessionalGormRepository) FindByID(ctx context.Context, id uint) (*models.Professional, error) {
	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Specialties").
		First(&pro, id).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return &pro, nil
}

// Create inserts the professional together with its specialty links.
// Specialties are referenced by ID; unknown IDs fail the foreign key.
func (r *ProfessionalGormRepository) Create(ctx context.Context, pro *models.Professional) error {
	if err := r.db.WithContext(ctx).
		Omit("Specialties.*").
		Create(pro).Error; err != nil {
		return storeerr.Translate(err)
	}
	return nil
}

// Update fully replaces the professional's fields and specialty links.
func (r *ProfessionalGormRepository) Update(ctx context.Context, id uint, pro *models.Professional) error {
	res := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name": pro.Name,
			"cpf":  pro.CPF,
			"role": pro.Role,
		})
	if res.Error != nil {
		return storeerr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.ErrNotFound
	}

	if err := r.db.WithContext(ctx).
		Model(&models.Professional{ID: id}).
		Association("Specialties").
		Replace(pro.Specialties); err != nil {
		return storeerr.Translate(err)
	}
	return nil
}

func (r *ProfessionalGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Select("Specialties").
		Delete(&models.Professional{ID: id})
	if res.Error != nil {
		return storeerr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}
