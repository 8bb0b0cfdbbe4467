package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"travelmate/internal/models/db_models"
)

func TestDisplayRating(t *testing.T) {
	rec := db_models.Recommendation{Title: "Secret Waterfall Trail", Rating: 48}
	resp := ToRecommendationResponse(rec)

	assert.Equal(t, 48, resp.Rating)
	assert.Equal(t, "4.8", resp.DisplayRating)

	rec.Rating = 50
	assert.Equal(t, "5.0", ToRecommendationResponse(rec).DisplayRating)
}

func TestToItineraryItemResponseDuration(t *testing.T) {
	item := db_models.ItineraryItem{Title: "Morning Hike", DurationMinutes: 150}
	resp := ToItineraryItemResponse(item)

	assert.Equal(t, 150, resp.DurationMinutes)
	assert.Equal(t, "2h 30m", resp.Duration)
}
