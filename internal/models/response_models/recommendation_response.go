package response_models

import (
	"fmt"

	"travelmate/internal/models/db_models"
)

// RecommendationResponse mirrors the stored record and adds the display
// rating (stored score x10, shown with one decimal).
type RecommendationResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	ImageURL      string                   `json:"imageUrl"`
	Rating        int                      `json:"rating"`
	DisplayRating string                   `json:"displayRating"`
	Category      string                   `json:"category"`
	Moods         []string                 `json:"moods"`
	Tags          []string                 `json:"tags"`
	IsHiddenGem   bool                     `json:"isHiddenGem"`
	Location      *db_models.PlaceLocation `json:"location"`
	CrowdData     *db_models.CrowdData     `json:"crowdData,omitempty"`
	LocalInsights *db_models.LocalInsights `json:"localInsights,omitempty"`
}

func ToRecommendationResponse(rec db_models.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:            rec.ID.String(),
		Title:         rec.Title,
		Description:   rec.Description,
		ImageURL:      rec.ImageURL,
		Rating:        rec.Rating,
		DisplayRating: fmt.Sprintf("%.1f", float64(rec.Rating)/10),
		Category:      rec.Category,
		Moods:         rec.Moods,
		Tags:          rec.Tags,
		IsHiddenGem:   rec.IsHiddenGem,
		Location:      rec.Location,
		CrowdData:     rec.CrowdData,
		LocalInsights: rec.LocalInsights,
	}
}

func ToRecommendationResponses(recs []db_models.Recommendation) []RecommendationResponse {
	responses := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, ToRecommendationResponse(rec))
	}
	return responses
}
