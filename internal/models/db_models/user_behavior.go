package db_models

import "github.com/google/uuid"

// UserBehavior is one logged user action. The log is append-only and never
// revised; analysis always recounts the full log.
type UserBehavior struct {
	BaseModel
	UserID           uuid.UUID `gorm:"index" json:"userId"`
	ActionType       string    `json:"actionType"` // visit, skip, favorite, rate, view, search
	ItemID           string    `json:"itemId,omitempty"`
	ItemType         string    `json:"itemType"` // recommendation, itinerary_item, local_place, chat_message
	Location         *GeoPoint `gorm:"serializer:json" json:"location,omitempty"`
	Mood             string    `json:"mood,omitempty"`
	TimeOfDay        string    `json:"timeOfDay,omitempty"`
	WeatherCondition string    `json:"weatherCondition,omitempty"`
	CompanionType    string    `json:"companionType,omitempty"` // solo, couple, family, friends
	Rating           int       `json:"rating,omitempty"`
	Feedback         string    `json:"feedback,omitempty"`
}
