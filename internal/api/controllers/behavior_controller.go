package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"travelmate/internal/models/db_models"
	"travelmate/internal/models/request_models"
	"travelmate/internal/services"
	"travelmate/pkg/utils"
)

type BehaviorController struct {
	behaviorService services.BehaviorServiceInterface
}

func NewBehaviorController(behaviorService services.BehaviorServiceInterface) *BehaviorController {
	return &BehaviorController{
		behaviorService: behaviorService,
	}
}

// Track accepts a behavior event for batched persistence. The call returns as
// soon as the event is queued; high-priority actions flush immediately.
func (b *BehaviorController) Track(c *gin.Context) {
	var req request_models.TrackBehaviorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	behavior := &db_models.UserBehavior{
		UserID:           userID,
		ActionType:       req.ActionType,
		ItemID:           req.ItemID,
		ItemType:         req.ItemType,
		Location:         req.Location,
		Mood:             req.Mood,
		TimeOfDay:        req.TimeOfDay,
		WeatherCondition: req.WeatherCondition,
		CompanionType:    req.CompanionType,
		Rating:           req.Rating,
		Feedback:         req.Feedback,
	}

	if err := b.behaviorService.Track(c.Request.Context(), behavior); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Behavior tracked successfully")
}

func (b *BehaviorController) GetPatterns(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	behaviors, err := b.behaviorService.GetPatterns(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	flags, err := b.behaviorService.GetPreferenceFlags(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"behaviors":   behaviors,
		"preferences": flags,
	}, "Behavior patterns fetched successfully")
}
