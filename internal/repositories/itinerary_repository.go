package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type ItineraryRepository interface {
	Create(ctx context.Context, item *db_models.ItineraryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ItineraryItem, error)
	Update(ctx context.Context, item *db_models.ItineraryItem) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) Create(ctx context.Context, item *db_models.ItineraryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itineraryRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.ItineraryItem, error) {
	var item db_models.ItineraryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itineraryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ItineraryItem, error) {
	var items []db_models.ItineraryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itineraryRepository) Update(ctx context.Context, item *db_models.ItineraryItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(item)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
