package db_models

import "github.com/google/uuid"

// ItineraryItem is one scheduled activity of a user's trip. DurationMinutes
// is the canonical duration; display strings are derived in the response
// layer. Items are never deleted: skip marks them completed, favorite toggles
// the flag.
type ItineraryItem struct {
	BaseModel
	UserID          uuid.UUID `gorm:"index" json:"userId"`
	Day             int       `json:"day"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Category        string    `json:"category"`
	ActivityType    string    `json:"type"`
	Cost            int       `json:"cost"`
	DurationMinutes int       `json:"durationMinutes"`
	Tags            []string  `gorm:"serializer:json" json:"tags"`
	IsCompleted     bool      `gorm:"default:false" json:"isCompleted"`
	IsFavorited     bool      `gorm:"default:false" json:"isFavorited"`
}
