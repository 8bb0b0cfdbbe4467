package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelmate/internal/models/request_models"
	"travelmate/internal/models/response_models"
	"travelmate/internal/services"
	"travelmate/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GetItinerary returns the user's itinerary, optionally narrowed to one day.
// With adaptive=true each item is decorated with crowd-adjusted timing and a
// contextual tip; weather and weatherTemp query params feed the weather rule.
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	day := 0
	if dayStr := c.Query("day"); dayStr != "" {
		day, err = strconv.Atoi(dayStr)
		if err != nil || day < 1 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid day")
			return
		}
	}

	if c.Query("adaptive") != "true" {
		items, err := i.itineraryService.GetUserItinerary(c.Request.Context(), userID, day)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c,
			response_models.ToItineraryItemResponses(items),
			"Itinerary fetched successfully")
		return
	}

	var weather *services.WeatherSnapshot
	if condition := c.Query("weather"); condition != "" {
		temp, _ := strconv.Atoi(c.DefaultQuery("weatherTemp", "0"))
		weather = &services.WeatherSnapshot{Condition: condition, TempC: temp}
	}

	crowdLevels := map[string]string{}
	items, err := i.itineraryService.GetAdaptiveItinerary(c.Request.Context(), userID, day, crowdLevels, weather)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Adaptive itinerary fetched successfully")
}

func (i *ItineraryController) UpdateItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req request_models.UpdateItineraryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	update := services.ItineraryItemUpdate{
		IsCompleted: req.IsCompleted,
		IsFavorited: req.IsFavorited,
	}
	if err := i.itineraryService.UpdateItem(c.Request.Context(), itemID, update); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary item updated successfully")
}
