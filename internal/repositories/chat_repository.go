package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelmate/internal/models/db_models"
)

type ChatRepository interface {
	Save(ctx context.Context, message *db_models.ChatMessage) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) Save(ctx context.Context, message *db_models.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListByUser returns the conversation oldest first. The log is append-only;
// rows are never updated.
func (r *chatRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.ChatMessage, error) {
	var messages []db_models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
