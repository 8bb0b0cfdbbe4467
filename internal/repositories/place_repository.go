package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *db_models.LocalPlace) error
	GetByID(ctx context.Context, id string) (*db_models.LocalPlace, error)
	List(ctx context.Context) ([]db_models.LocalPlace, error)
	Update(ctx context.Context, place *db_models.LocalPlace) error
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *db_models.LocalPlace) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.LocalPlace, error) {
	var place db_models.LocalPlace
	err := r.db.WithContext(ctx).First(&place, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) List(ctx context.Context) ([]db_models.LocalPlace, error) {
	var places []db_models.LocalPlace
	err := r.db.WithContext(ctx).Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

func (r *placeRepository) Update(ctx context.Context, place *db_models.LocalPlace) error {
	return r.db.WithContext(ctx).Save(place).Error
}
