package db_models

import "github.com/google/uuid"

type ChatContext struct {
	CurrentLocation        *GeoPoint `json:"currentLocation,omitempty"`
	Mood                   string    `json:"mood,omitempty"`
	RelatedRecommendations []string  `json:"relatedRecommendations,omitempty"`
	PersonalizedTone       string    `json:"personalizedTone,omitempty"`
}

type AIPersonality struct {
	ResponseStyle  string `json:"responseStyle"`
	KnowledgeLevel string `json:"knowledgeLevel"`
	Enthusiasm     int    `json:"enthusiasm"`
}

// ChatMessage is one entry of the append-only conversation log.
// Sender is "user" or "ai".
type ChatMessage struct {
	BaseModel
	UserID        uuid.UUID      `gorm:"index" json:"userId"`
	Message       string         `json:"message"`
	Sender        string         `json:"sender"`
	Context       *ChatContext   `gorm:"serializer:json" json:"context,omitempty"`
	AIPersonality *AIPersonality `gorm:"serializer:json" json:"aiPersonality,omitempty"`
}
