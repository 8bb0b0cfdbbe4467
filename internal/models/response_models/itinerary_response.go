package response_models

import (
	"travelmate/internal/models/db_models"
	"travelmate/pkg/utils"
)

type ItineraryItemResponse struct {
	ID              string   `json:"id"`
	UserID          string   `json:"userId"`
	Day             int      `json:"day"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ImageURL        string   `json:"imageUrl"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Category        string   `json:"category"`
	Cost            int      `json:"cost"`
	DurationMinutes int      `json:"durationMinutes"`
	Duration        string   `json:"duration"`
	Tags            []string `json:"tags"`
	IsCompleted     bool     `json:"isCompleted"`
	IsFavorited     bool     `json:"isFavorited"`
}

func ToItineraryItemResponse(item db_models.ItineraryItem) ItineraryItemResponse {
	return ItineraryItemResponse{
		ID:              item.ID.String(),
		UserID:          item.UserID.String(),
		Day:             item.Day,
		Title:           item.Title,
		Description:     item.Description,
		ImageURL:        item.ImageURL,
		StartTime:       item.StartTime,
		EndTime:         item.EndTime,
		Category:        item.Category,
		Cost:            item.Cost,
		DurationMinutes: item.DurationMinutes,
		Duration:        utils.FormatDuration(item.DurationMinutes),
		Tags:            item.Tags,
		IsCompleted:     item.IsCompleted,
		IsFavorited:     item.IsFavorited,
	}
}

func ToItineraryItemResponses(items []db_models.ItineraryItem) []ItineraryItemResponse {
	responses := make([]ItineraryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItineraryItemResponse(item))
	}
	return responses
}
