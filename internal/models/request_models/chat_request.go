package request_models

import "travelmate/internal/models/db_models"

type SendMessageRequest struct {
	UserID        string                   `json:"userId" binding:"required"`
	Message       string                   `json:"message" binding:"required"`
	Sender        string                   `json:"sender" binding:"required,oneof=user ai"`
	Context       *db_models.ChatContext   `json:"context,omitempty"`
	AIPersonality *db_models.AIPersonality `json:"aiPersonality,omitempty"`
}

type PersonalizedResponseRequest struct {
	Message string `json:"message" binding:"required"`
}
