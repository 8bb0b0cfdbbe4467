package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *db_models.Recommendation) error
	GetByID(ctx context.Context, id string) (*db_models.Recommendation, error)
	List(ctx context.Context) ([]db_models.Recommendation, error)
}

type recommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{db: db}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *db_models.Recommendation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *recommendationRepository) GetByID(ctx context.Context, id string) (*db_models.Recommendation, error) {
	var rec db_models.Recommendation
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// List returns the full candidate set in insertion order. Filtering is done
// by the selection pipeline, not the database.
func (r *recommendationRepository) List(ctx context.Context) ([]db_models.Recommendation, error) {
	var recs []db_models.Recommendation
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}
	return recs, nil
}
