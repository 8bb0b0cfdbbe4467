package request_models

import "travelmate/internal/models/db_models"

type TrackBehaviorRequest struct {
	UserID           string              `json:"userId" binding:"required"`
	ActionType       string              `json:"actionType" binding:"required,oneof=visit skip favorite rate view search"`
	ItemID           string              `json:"itemId,omitempty"`
	ItemType         string              `json:"itemType" binding:"required"`
	Location         *db_models.GeoPoint `json:"location,omitempty"`
	Mood             string              `json:"mood,omitempty"`
	TimeOfDay        string              `json:"timeOfDay,omitempty"`
	WeatherCondition string              `json:"weatherCondition,omitempty"`
	CompanionType    string              `json:"companionType,omitempty"`
	Rating           int                 `json:"rating,omitempty"`
	Feedback         string              `json:"feedback,omitempty"`
}
