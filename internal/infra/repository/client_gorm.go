package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/studio-beleza/salon-scheduler/internal/models"
	"github.com/studio-beleza/salon-scheduler/internal/storeerr"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return clients, nil
}

func (r *ClientGormRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, storeerr.Translate(err)
	}
	return &client, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return storeerr.Translate(err)
	}
	return nil
}

// Update fully replaces the client's fields.
func (r *ClientGormRepository) Update(ctx context.Context, id uint, client *models.Client) error {
	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       client.Name,
			"cpf":        client.CPF,
			"phone":      client.Phone,
			"birth_date": client.BirthDate,
		})
	if res.Error != nil {
		return storeerr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return storeerr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}
