package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type BehaviorRepository interface {
	Save(ctx context.Context, behavior *db_models.UserBehavior) error
	SaveBatch(ctx context.Context, behaviors []db_models.UserBehavior) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserBehavior, error)
}

type behaviorRepository struct {
	db *gorm.DB
}

func NewBehaviorRepository(db *gorm.DB) BehaviorRepository {
	return &behaviorRepository{db: db}
}

func (r *behaviorRepository) Save(ctx context.Context, behavior *db_models.UserBehavior) error {
	return r.db.WithContext(ctx).Create(behavior).Error
}

func (r *behaviorRepository) SaveBatch(ctx context.Context, behaviors []db_models.UserBehavior) error {
	if len(behaviors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&behaviors).Error
}

func (r *behaviorRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.UserBehavior, error) {
	var behaviors []db_models.UserBehavior
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&behaviors).Error
	if err != nil {
		return nil, err
	}
	return behaviors, nil
}
