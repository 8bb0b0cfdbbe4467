package services

import (
	"context"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

// WeatherSnapshot is the live weather input to adaptive adjustment.
type WeatherSnapshot struct {
	Condition string `json:"condition"`
	TempC     int    `json:"temp"`
}

// AdjustedTiming is the outcome of adaptive adjustment for one item.
type AdjustedTiming struct {
	EstimatedMinutes int    `json:"estimatedMinutes"`
	Tip              string `json:"tip"`
}

var crowdMultipliers = map[string]float64{
	"low":    0.8,
	"medium": 1.0,
	"high":   1.3,
}

// AdjustForContext scales the item's duration by the crowd multiplier and
// picks at most one contextual tip. Missing weather or DNA silently skips the
// rules that need them.
func AdjustForContext(item db_models.ItineraryItem, crowdLevel string, weather *WeatherSnapshot, dna *db_models.TravelDNA) AdjustedTiming {
	multiplier, ok := crowdMultipliers[crowdLevel]
	if !ok {
		multiplier = 1.0
	}

	adjusted := AdjustedTiming{
		EstimatedMinutes: int(math.Round(float64(item.DurationMinutes) * multiplier)),
	}

	// first matching rule wins
	switch {
	case weather != nil && weather.Condition == "sunny" && item.ActivityType == "outdoor":
		adjusted.Tip = "Perfect weather for this outdoor activity!"
	case dna != nil && dna.AdventureSeeker > 70 && item.Category == "adventure":
		adjusted.Tip = "This matches your adventurous spirit perfectly!"
	case crowdLevel == "high":
		adjusted.Tip = "Consider visiting earlier or later to avoid crowds"
	}

	return adjusted
}

// ItineraryItemUpdate is the partial update applied by PUT; nil fields are
// left untouched.
type ItineraryItemUpdate struct {
	IsCompleted *bool
	IsFavorited *bool
}

type ItineraryServiceInterface interface {
	GetUserItinerary(ctx context.Context, userID uuid.UUID, day int) ([]db_models.ItineraryItem, error)
	GetAdaptiveItinerary(ctx context.Context, userID uuid.UUID, day int, crowdLevels map[string]string, weather *WeatherSnapshot) ([]AdaptiveItineraryItem, error)
	CreateItem(ctx context.Context, item *db_models.ItineraryItem) error
	UpdateItem(ctx context.Context, itemID uuid.UUID, update ItineraryItemUpdate) error
}

// AdaptiveItineraryItem pairs a stored item with its live adjustment.
type AdaptiveItineraryItem struct {
	db_models.ItineraryItem
	CrowdLevel    string `json:"crowdLevel"`
	EstimatedTime int    `json:"estimatedTime"`
	Duration      string `json:"duration"`
	Tip           string `json:"adaptiveRecommendation,omitempty"`
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	userRepo      repositories.UserRepository
	logger        *zap.SugaredLogger
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository, userRepo repositories.UserRepository, logger *zap.SugaredLogger) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

func (s *ItineraryService) GetUserItinerary(ctx context.Context, userID uuid.UUID, day int) ([]db_models.ItineraryItem, error) {
	items, err := s.itineraryRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Errorw("listing itinerary failed", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	if day <= 0 {
		return items, nil
	}

	filtered := make([]db_models.ItineraryItem, 0, len(items))
	for _, item := range items {
		if item.Day == day {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// GetAdaptiveItinerary decorates the day's items with crowd-adjusted timing
// and contextual tips. A missing travel DNA simply disables the DNA rule.
func (s *ItineraryService) GetAdaptiveItinerary(ctx context.Context, userID uuid.UUID, day int, crowdLevels map[string]string, weather *WeatherSnapshot) ([]AdaptiveItineraryItem, error) {
	items, err := s.GetUserItinerary(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	var dna *db_models.TravelDNA
	user, err := s.userRepo.FindByID(ctx, userID)
	if err == nil && user != nil {
		dna = user.TravelDNA
	}

	adaptive := make([]AdaptiveItineraryItem, 0, len(items))
	for _, item := range items {
		crowdLevel, ok := crowdLevels[item.ID.String()]
		if !ok {
			crowdLevel = "medium"
		}
		timing := AdjustForContext(item, crowdLevel, weather, dna)
		adaptive = append(adaptive, AdaptiveItineraryItem{
			ItineraryItem: item,
			CrowdLevel:    crowdLevel,
			EstimatedTime: timing.EstimatedMinutes,
			Duration:      utils.FormatDuration(item.DurationMinutes),
			Tip:           timing.Tip,
		})
	}
	return adaptive, nil
}

func (s *ItineraryService) CreateItem(ctx context.Context, item *db_models.ItineraryItem) error {
	if err := s.itineraryRepo.Create(ctx, item); err != nil {
		s.logger.Errorw("creating itinerary item failed", "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// UpdateItem applies skip/favorite mutations in place. Updating a missing id
// is a no-op, not an error.
func (s *ItineraryService) UpdateItem(ctx context.Context, itemID uuid.UUID, update ItineraryItemUpdate) error {
	item, err := s.itineraryRepo.GetByID(ctx, itemID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return nil
	}

	if update.IsCompleted != nil {
		item.IsCompleted = *update.IsCompleted
	}
	if update.IsFavorited != nil {
		item.IsFavorited = *update.IsFavorited
	}

	if err := s.itineraryRepo.Update(ctx, item); err != nil {
		s.logger.Errorw("updating itinerary item failed", "item_id", itemID, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}
