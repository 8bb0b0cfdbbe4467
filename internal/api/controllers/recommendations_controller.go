package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelmate/internal/models/db_models"
	"travelmate/internal/models/response_models"
	"travelmate/internal/services"
	"travelmate/pkg/utils"
)

type RecommendationsController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationsController(recommendationService services.RecommendationServiceInterface) *RecommendationsController {
	return &RecommendationsController{
		recommendationService: recommendationService,
	}
}

// GetRecommendations filters the candidate set by the optional mood, location
// radius and text search query params. Latitude and longitude must come as a
// pair; radius defaults when absent or non-positive.
func (r *RecommendationsController) GetRecommendations(c *gin.Context) {
	query := services.RecommendationQuery{
		Mood:        c.Query("mood"),
		SearchQuery: c.Query("q"),
	}

	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid coordinates (lat and lng must both be numbers)")
			return
		}
		query.Location = &db_models.GeoPoint{Latitude: lat, Longitude: lng}
	}

	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || radius <= 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid radius")
			return
		}
		query.RadiusKm = radius
	}

	recommendations, err := r.recommendationService.Query(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToRecommendationResponses(recommendations),
		"Recommendations fetched successfully")
}

func (r *RecommendationsController) GetCrowdOptimized(c *gin.Context) {
	recommendations, err := r.recommendationService.GetCrowdOptimized(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToRecommendationResponses(recommendations),
		"Crowd-optimized recommendations fetched successfully")
}

func (r *RecommendationsController) GetAdaptive(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	recommendations, err := r.recommendationService.GetAdaptive(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.ToRecommendationResponses(recommendations),
		"Adaptive recommendations fetched successfully")
}
