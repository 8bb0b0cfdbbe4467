package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type QuizRepository interface {
	SaveResponse(ctx context.Context, response *db_models.QuizResponse) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.QuizResponse, error)
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) SaveResponse(ctx context.Context, response *db_models.QuizResponse) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *quizRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.QuizResponse, error) {
	var responses []db_models.QuizResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("question_index ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
