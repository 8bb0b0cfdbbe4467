package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelmate/internal/models/db_models"
	"travelmate/internal/repositories"
	"travelmate/pkg/utils"
)

const defaultRadiusKm = 10.0

// RecommendationQuery carries the optional filter inputs. Nil/zero fields
// disable their pipeline stage.
type RecommendationQuery struct {
	Mood          string
	Location      *db_models.GeoPoint
	RadiusKm      float64
	BehaviorFlags *PreferenceFlags
	SearchQuery   string
}

// SelectRecommendations runs the filter pipeline over the candidate list:
// location radius, then mood, then behavior flags, then text search. Each
// stage is optional and the input order is preserved; selection never
// re-sorts.
func SelectRecommendations(all []db_models.Recommendation, query RecommendationQuery) []db_models.Recommendation {
	selected := make([]db_models.Recommendation, 0, len(all))

	radius := query.RadiusKm
	if radius <= 0 {
		radius = defaultRadiusKm
	}

	for _, rec := range all {
		if query.Location != nil {
			// no location on record means no match, never "unknown = match"
			if rec.Location == nil {
				continue
			}
			if !utils.WithinRadius(query.Location.Latitude, query.Location.Longitude,
				rec.Location.Latitude, rec.Location.Longitude, radius) {
				continue
			}
		}

		if query.Mood != "" && query.Mood != "all" && !rec.HasMood(query.Mood) {
			continue
		}

		if query.BehaviorFlags != nil && !passesBehaviorFlags(rec, *query.BehaviorFlags) {
			continue
		}

		if query.SearchQuery != "" && !matchesSearch(rec, query.SearchQuery) {
			continue
		}

		selected = append(selected, rec)
	}

	return selected
}

// passesBehaviorFlags applies the adaptive exclusions. A loved Nature item is
// force-kept before the quiet-places rule can exclude it; items without crowd
// data are never excluded by that rule.
func passesBehaviorFlags(rec db_models.Recommendation, flags PreferenceFlags) bool {
	if flags.SkipsCultural && rec.Category == "Cultural" {
		return false
	}
	if flags.LovesNature && rec.Category == "Nature" {
		return true
	}
	if flags.PrefersQuietPlaces && rec.CrowdData != nil && rec.CrowdData.CrowdLevel == "high" {
		return false
	}
	return true
}

func matchesSearch(rec db_models.Recommendation, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(rec.Title), q) ||
		strings.Contains(strings.ToLower(rec.Description), q)
}

type RecommendationServiceInterface interface {
	Query(ctx context.Context, query RecommendationQuery) ([]db_models.Recommendation, error)
	GetCrowdOptimized(ctx context.Context) ([]db_models.Recommendation, error)
	GetAdaptive(ctx context.Context, userID uuid.UUID) ([]db_models.Recommendation, error)
	Create(ctx context.Context, rec *db_models.Recommendation) error
}

type RecommendationService struct {
	recommendationRepo repositories.RecommendationRepository
	behaviorRepo       repositories.BehaviorRepository
	logger             *zap.SugaredLogger
}

func NewRecommendationService(
	recommendationRepo repositories.RecommendationRepository,
	behaviorRepo repositories.BehaviorRepository,
	logger *zap.SugaredLogger,
) RecommendationServiceInterface {
	return &RecommendationService{
		recommendationRepo: recommendationRepo,
		behaviorRepo:       behaviorRepo,
		logger:             logger,
	}
}

func (s *RecommendationService) Query(ctx context.Context, query RecommendationQuery) ([]db_models.Recommendation, error) {
	all, err := s.recommendationRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("listing recommendations failed", "error", err)
		return nil, utils.ErrDatabaseError
	}
	return SelectRecommendations(all, query), nil
}

func (s *RecommendationService) GetCrowdOptimized(ctx context.Context) ([]db_models.Recommendation, error) {
	all, err := s.recommendationRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	withCrowd := make([]db_models.Recommendation, 0, len(all))
	for _, rec := range all {
		if rec.CrowdData != nil {
			withCrowd = append(withCrowd, rec)
		}
	}
	return withCrowd, nil
}

// GetAdaptive filters the full candidate set through the flags distilled from
// the user's behavior log.
func (s *RecommendationService) GetAdaptive(ctx context.Context, userID uuid.UUID) ([]db_models.Recommendation, error) {
	behaviors, err := s.behaviorRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	flags := AnalyzePreferences(behaviors)

	all, err := s.recommendationRepo.List(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return SelectRecommendations(all, RecommendationQuery{BehaviorFlags: &flags}), nil
}

func (s *RecommendationService) Create(ctx context.Context, rec *db_models.Recommendation) error {
	if err := s.recommendationRepo.Create(ctx, rec); err != nil {
		s.logger.Errorw("creating recommendation failed", "error", err)
		return utils.ErrDatabaseError
	}
	return nil
}
