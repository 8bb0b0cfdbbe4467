package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelmate/internal/models/db_models"
)

func rec(title, category string, moods []string, loc *db_models.PlaceLocation) db_models.Recommendation {
	return db_models.Recommendation{
		Title:       title,
		Description: "a place worth a detour",
		Category:    category,
		Moods:       moods,
		Location:    loc,
	}
}

func tokyoLoc(lat, lng float64) *db_models.PlaceLocation {
	return &db_models.PlaceLocation{Latitude: lat, Longitude: lng, City: "Tokyo"}
}

func TestSelectRecommendationsNoFiltersKeepsOrder(t *testing.T) {
	all := []db_models.Recommendation{
		rec("A", "Nature", []string{"relax"}, tokyoLoc(35.68, 139.65)),
		rec("B", "Nightlife", []string{"party"}, tokyoLoc(35.69, 139.70)),
		rec("C", "History", []string{"explore"}, nil),
	}

	out := SelectRecommendations(all, RecommendationQuery{})

	require.Len(t, out, 3)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
	assert.Equal(t, "C", out[2].Title)
}

func TestSelectRecommendationsRadius(t *testing.T) {
	center := &db_models.GeoPoint{Latitude: 35.6762, Longitude: 139.6503}
	all := []db_models.Recommendation{
		rec("near", "Nature", nil, tokyoLoc(35.6762, 139.6503)),
		// roughly 0.9 degrees of latitude is about 100 km
		rec("far", "Nature", nil, tokyoLoc(36.58, 139.6503)),
		rec("nowhere", "Nature", nil, nil),
	}

	out := SelectRecommendations(all, RecommendationQuery{Location: center})

	require.Len(t, out, 1)
	assert.Equal(t, "near", out[0].Title)
}

func TestSelectRecommendationsRadiusBoundaryInclusive(t *testing.T) {
	center := &db_models.GeoPoint{Latitude: 0, Longitude: 0}
	// one degree of longitude at the equator is about 111.19 km
	all := []db_models.Recommendation{
		rec("edge", "Nature", nil, &db_models.PlaceLocation{Latitude: 0, Longitude: 1}),
	}

	out := SelectRecommendations(all, RecommendationQuery{Location: center, RadiusKm: 112})
	require.Len(t, out, 1)

	out = SelectRecommendations(all, RecommendationQuery{Location: center, RadiusKm: 111})
	assert.Empty(t, out)
}

func TestSelectRecommendationsMood(t *testing.T) {
	all := []db_models.Recommendation{
		rec("spa", "Nature", []string{"relax"}, nil),
		rec("club", "Nightlife", []string{"party"}, nil),
	}

	out := SelectRecommendations(all, RecommendationQuery{Mood: "party"})
	require.Len(t, out, 1)
	assert.Equal(t, "club", out[0].Title)

	// "all" disables the mood stage
	out = SelectRecommendations(all, RecommendationQuery{Mood: "all"})
	assert.Len(t, out, 2)
}

func TestSelectRecommendationsBehaviorFlags(t *testing.T) {
	crowded := rec("crowded nature", "Nature", nil, nil)
	crowded.CrowdData = &db_models.CrowdData{CrowdLevel: "high"}
	crowdedMarket := rec("crowded market", "Food", nil, nil)
	crowdedMarket.CrowdData = &db_models.CrowdData{CrowdLevel: "high"}

	all := []db_models.Recommendation{
		rec("temple", "Cultural", nil, nil),
		crowded,
		crowdedMarket,
		rec("quiet cafe", "Food", nil, nil),
	}

	flags := PreferenceFlags{SkipsCultural: true, LovesNature: true, PrefersQuietPlaces: true}
	out := SelectRecommendations(all, RecommendationQuery{BehaviorFlags: &flags})

	titles := make([]string, 0, len(out))
	for _, r := range out {
		titles = append(titles, r.Title)
	}
	// the loved Nature item survives the quiet-places rule; the Cultural item
	// and the crowded non-Nature item do not
	assert.Equal(t, []string{"crowded nature", "quiet cafe"}, titles)
}

func TestSelectRecommendationsQuietPlacesIgnoresMissingCrowdData(t *testing.T) {
	all := []db_models.Recommendation{rec("unknown crowd", "Food", nil, nil)}
	flags := PreferenceFlags{PrefersQuietPlaces: true}

	out := SelectRecommendations(all, RecommendationQuery{BehaviorFlags: &flags})
	assert.Len(t, out, 1)
}

func TestSelectRecommendationsSearch(t *testing.T) {
	all := []db_models.Recommendation{
		rec("Secret Waterfall Trail", "Nature", nil, nil),
		rec("The Hidden Door", "Nightlife", nil, nil),
	}

	out := SelectRecommendations(all, RecommendationQuery{SearchQuery: "WATERFALL"})
	require.Len(t, out, 1)
	assert.Equal(t, "Secret Waterfall Trail", out[0].Title)

	// description text matches too
	out = SelectRecommendations(all, RecommendationQuery{SearchQuery: "detour"})
	assert.Len(t, out, 2)
}

func TestSelectRecommendationsIdempotent(t *testing.T) {
	all := []db_models.Recommendation{
		rec("A", "Nature", []string{"relax"}, nil),
		rec("B", "Nightlife", []string{"party"}, nil),
	}
	query := RecommendationQuery{Mood: "relax"}

	first := SelectRecommendations(all, query)
	second := SelectRecommendations(first, query)
	assert.Equal(t, first, second)
}

func TestGetAdaptiveUsesBehaviorLog(t *testing.T) {
	userID := uuid.New()
	behaviorRepo := &fakeBehaviorRepo{}
	for i := 0; i < 3; i++ {
		behaviorRepo.saved = append(behaviorRepo.saved, db_models.UserBehavior{
			UserID:     userID,
			ActionType: "skip",
			ItemType:   "Cultural",
		})
	}

	recRepo := &fakeRecommendationRepo{recs: []db_models.Recommendation{
		rec("temple", "Cultural", nil, nil),
		rec("trail", "Nature", nil, nil),
	}}

	svc := NewRecommendationService(recRepo, behaviorRepo, testLogger())
	out, err := svc.GetAdaptive(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "trail", out[0].Title)
}

func TestGetCrowdOptimizedKeepsOnlyItemsWithCrowdData(t *testing.T) {
	withCrowd := rec("busy", "Food", nil, nil)
	withCrowd.CrowdData = &db_models.CrowdData{CrowdLevel: "medium"}

	recRepo := &fakeRecommendationRepo{recs: []db_models.Recommendation{
		rec("plain", "Food", nil, nil),
		withCrowd,
	}}

	svc := NewRecommendationService(recRepo, &fakeBehaviorRepo{}, testLogger())
	out, err := svc.GetCrowdOptimized(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "busy", out[0].Title)
}
