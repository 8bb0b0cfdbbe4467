package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type UserRepository interface {
	Create(ctx context.Context, user *db_models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	FindByUsername(ctx context.Context, username string) (*db_models.User, error)
	UpdateTravelDNA(ctx context.Context, id uuid.UUID, dna *db_models.TravelDNA) error
	UpdateLocation(ctx context.Context, id uuid.UUID, location *db_models.GeoPoint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *db_models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Read helpers return default value + nil error when no rows are found.

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateTravelDNA(ctx context.Context, id uuid.UUID, dna *db_models.TravelDNA) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("travel_dna", dna).Error
}

func (r *userRepository) UpdateLocation(ctx context.Context, id uuid.UUID, location *db_models.GeoPoint) error {
	return r.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("current_location", location).Error
}
