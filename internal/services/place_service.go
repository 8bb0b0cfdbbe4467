package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

// Local places are surfaced within a fixed 5 km walkable radius.
const localPlaceRadiusKm = 5.0

type PlaceServiceInterface interface {
	GetLocalPlaces(ctx context.Context, lat, lng float64, category string) ([]db_models.LocalPlace, error)
	AddPlace(ctx context.Context, place *db_models.LocalPlace) error
	UpdateCrowdData(ctx context.Context, placeID string, crowdData db_models.CrowdData) error
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
	logger    *zap.SugaredLogger
}

func NewPlaceService(placeRepo repositories.PlaceRepository, logger *zap.SugaredLogger) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
		logger:    logger,
	}
}

func (s *PlaceService) GetLocalPlaces(ctx context.Context, lat, lng float64, category string) ([]db_models.LocalPlace, error) {
	all, err := s.placeRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("listing local places failed", "error", err)
		return nil, utils.ErrDatabaseError
	}

	nearby := make([]db_models.LocalPlace, 0, len(all))
	for _, place := range all {
		if place.Location == nil {
			continue
		}
		if !utils.WithinRadius(lat, lng, place.Location.Latitude, place.Location.Longitude, localPlaceRadiusKm) {
			continue
		}
		if category != "" && !strings.EqualFold(place.Category, category) {
			continue
		}
		nearby = append(nearby, place)
	}
	return nearby, nil
}

func (s *PlaceService) AddPlace(ctx context.Context, place *db_models.LocalPlace) error {
	if err := s.placeRepo.Create(ctx, place); err != nil {
		s.logger.Errorw("creating local place failed", "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}

// UpdateCrowdData merges the given fields over the stored crowd data and
// stamps lastUpdated. Empty fields in the update leave the stored values
// alone.
func (s *PlaceService) UpdateCrowdData(ctx context.Context, placeID string, crowdData db_models.CrowdData) error {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if place == nil {
		return utils.ErrPlaceNotFound
	}

	merged := db_models.CrowdData{}
	if place.CrowdData != nil {
		merged = *place.CrowdData
	}
	if len(crowdData.PeakHours) > 0 {
		merged.PeakHours = crowdData.PeakHours
	}
	if crowdData.BestTimeToVisit != "" {
		merged.BestTimeToVisit = crowdData.BestTimeToVisit
	}
	if crowdData.CrowdLevel != "" {
		merged.CrowdLevel = crowdData.CrowdLevel
	}
	merged.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	place.CrowdData = &merged
	if err := s.placeRepo.Update(ctx, place); err != nil {
		s.logger.Errorw("updating crowd data failed", "place_id", placeID, "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}
