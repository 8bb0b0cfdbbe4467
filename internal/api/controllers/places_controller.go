package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"travelmate/internal/models/db_models"
	"travelmate/internal/models/request_models"
	"travelmate/internal/services"
	"travelmate/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

// GetLocalPlaces returns verified and community places within walking
// distance of the given coordinates, optionally narrowed by category.
func (p *PlacesController) GetLocalPlaces(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)
	if latErr != nil || lngErr != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat and lng are required")
		return
	}

	places, err := p.placeService.GetLocalPlaces(c.Request.Context(), lat, lng, c.Query("category"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Local places fetched successfully")
}

func (p *PlacesController) AddPlace(c *gin.Context) {
	var req request_models.AddLocalPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	place := &db_models.LocalPlace{
		Name:          req.Name,
		Category:      req.Category,
		Location:      req.Location,
		DiscoveredBy:  req.DiscoveredBy,
		Popularity:    req.Popularity,
		CrowdData:     req.CrowdData,
		LocalInsights: req.LocalInsights,
		IsVerified:    req.IsVerified,
	}

	if err := p.placeService.AddPlace(c.Request.Context(), place); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Local place added successfully")
}

// UpdateCrowdData merges the provided crowd fields over the stored document
// and stamps lastUpdated.
func (p *PlacesController) UpdateCrowdData(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	var req request_models.UpdateCrowdDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := p.placeService.UpdateCrowdData(c.Request.Context(), placeID, req.CrowdData); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Crowd data updated successfully")
}
