package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

// PreferenceFlags are the coarse preferences distilled from a user's behavior
// log. Recomputed from the full log on every call; counting only, so log
// order is irrelevant.
type PreferenceFlags struct {
	SkipsCultural      bool `json:"skipsCultural"`
	LovesNature        bool `json:"lovesNature"`
	PrefersQuietPlaces bool `json:"prefersQuietPlaces"`
}

// AnalyzePreferences derives the flags by counting:
// more than 2 skips of Cultural items, at least one favorited Nature item,
// and more relax moods than party moods across the whole log.
func AnalyzePreferences(log []db_models.UserBehavior) PreferenceFlags {
	var skippedCultural, favoritedNature, relaxCount, partyCount int

	for _, b := range log {
		if b.ActionType == "skip" && b.ItemType == "Cultural" {
			skippedCultural++
		}
		if b.ActionType == "favorite" && b.ItemType == "Nature" {
			favoritedNature++
		}
		switch b.Mood {
		case "relax":
			relaxCount++
		case "party":
			partyCount++
		}
	}

	return PreferenceFlags{
		SkipsCultural:      skippedCultural > 2,
		LovesNature:        favoritedNature > 0,
		PrefersQuietPlaces: relaxCount > partyCount,
	}
}

type BehaviorServiceInterface interface {
	Track(ctx context.Context, behavior *db_models.UserBehavior) error
	GetPatterns(ctx context.Context, userID uuid.UUID) ([]db_models.UserBehavior, error)
	GetPreferenceFlags(ctx context.Context, userID uuid.UUID) (PreferenceFlags, error)
}

type BehaviorService struct {
	behaviorRepo repositories.BehaviorRepository
	tracker      *BehaviorTracker
	logger       *zap.SugaredLogger
}

func NewBehaviorService(behaviorRepo repositories.BehaviorRepository, tracker *BehaviorTracker, logger *zap.SugaredLogger) BehaviorServiceInterface {
	return &BehaviorService{
		behaviorRepo: behaviorRepo,
		tracker:      tracker,
		logger:       logger,
	}
}

// Track enqueues the behavior for batched persistence. High-priority actions
// (favorite, rate, skip) trigger an immediate flush.
func (s *BehaviorService) Track(ctx context.Context, behavior *db_models.UserBehavior) error {
	s.tracker.Enqueue(*behavior)
	return nil
}

func (s *BehaviorService) GetPatterns(ctx context.Context, userID uuid.UUID) ([]db_models.UserBehavior, error) {
	behaviors, err := s.behaviorRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Errorw("listing behavior failed", "user_id", userID, "error", err)
		return nil, utils.ErrDatabaseError
	}
	return behaviors, nil
}

func (s *BehaviorService) GetPreferenceFlags(ctx context.Context, userID uuid.UUID) (PreferenceFlags, error) {
	behaviors, err := s.behaviorRepo.ListByUser(ctx, userID)
	if err != nil {
		return PreferenceFlags{}, utils.ErrDatabaseError
	}
	return AnalyzePreferences(behaviors), nil
}
