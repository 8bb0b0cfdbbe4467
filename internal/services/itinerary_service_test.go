package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelmate/internal/models/db_models"
)

func item(durationMinutes int, category, activityType string) db_models.ItineraryItem {
	return db_models.ItineraryItem{
		Title:           "Morning Hike",
		Category:        category,
		ActivityType:    activityType,
		DurationMinutes: durationMinutes,
	}
}

func TestAdjustForContextCrowdMultipliers(t *testing.T) {
	tests := []struct {
		crowdLevel string
		want       int
	}{
		{"low", 48},
		{"medium", 60},
		{"high", 78},
		{"unknown", 60},
		{"", 60},
	}

	for _, tt := range tests {
		got := AdjustForContext(item(60, "adventure", "outdoor"), tt.crowdLevel, nil, nil)
		assert.Equal(t, tt.want, got.EstimatedMinutes, "crowd level %q", tt.crowdLevel)
	}
}

func TestAdjustForContextRounding(t *testing.T) {
	// 45 * 1.3 = 58.5, rounds up
	got := AdjustForContext(item(45, "food", "indoor"), "high", nil, nil)
	assert.Equal(t, 59, got.EstimatedMinutes)
}

func TestAdjustForContextTipPriority(t *testing.T) {
	adventurousDNA := &db_models.TravelDNA{AdventureSeeker: 85}
	sunny := &WeatherSnapshot{Condition: "sunny", TempC: 24}

	// all three rules match; the weather rule wins
	got := AdjustForContext(item(60, "adventure", "outdoor"), "high", sunny, adventurousDNA)
	assert.Equal(t, "Perfect weather for this outdoor activity!", got.Tip)

	// without the weather match the DNA rule wins
	got = AdjustForContext(item(60, "adventure", "indoor"), "high", sunny, adventurousDNA)
	assert.Equal(t, "This matches your adventurous spirit perfectly!", got.Tip)

	// crowd rule is last
	got = AdjustForContext(item(60, "food", "indoor"), "high", sunny, adventurousDNA)
	assert.Equal(t, "Consider visiting earlier or later to avoid crowds", got.Tip)

	got = AdjustForContext(item(60, "food", "indoor"), "low", sunny, adventurousDNA)
	assert.Empty(t, got.Tip)
}

func TestAdjustForContextMissingInputs(t *testing.T) {
	got := AdjustForContext(item(60, "adventure", "outdoor"), "medium", nil, nil)
	assert.Equal(t, 60, got.EstimatedMinutes)
	assert.Empty(t, got.Tip)
}

func TestGetUserItineraryDayFilter(t *testing.T) {
	repo := newFakeItineraryRepo()
	userID := uuid.New()
	for day := 1; day <= 3; day++ {
		it := item(60, "food", "indoor")
		it.UserID = userID
		it.Day = day
		require.NoError(t, repo.Create(context.Background(), &it))
	}

	svc := NewItineraryService(repo, newFakeUserRepo(), testLogger())

	all, err := svc.GetUserItinerary(context.Background(), userID, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	dayTwo, err := svc.GetUserItinerary(context.Background(), userID, 2)
	require.NoError(t, err)
	require.Len(t, dayTwo, 1)
	assert.Equal(t, 2, dayTwo[0].Day)
}

func TestGetAdaptiveItineraryDefaultsToMediumCrowd(t *testing.T) {
	repo := newFakeItineraryRepo()
	userID := uuid.New()
	it := item(90, "adventure", "outdoor")
	it.UserID = userID
	it.Day = 1
	require.NoError(t, repo.Create(context.Background(), &it))

	svc := NewItineraryService(repo, newFakeUserRepo(), testLogger())
	out, err := svc.GetAdaptiveItinerary(context.Background(), userID, 1, nil, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "medium", out[0].CrowdLevel)
	assert.Equal(t, 90, out[0].EstimatedTime)
	assert.Equal(t, "1h 30m", out[0].Duration)
}

func TestGetAdaptiveItineraryUsesCrowdLevels(t *testing.T) {
	repo := newFakeItineraryRepo()
	userRepo := newFakeUserRepo()
	userID := uuid.New()

	it := item(60, "adventure", "outdoor")
	it.UserID = userID
	it.Day = 1
	require.NoError(t, repo.Create(context.Background(), &it))

	require.NoError(t, userRepo.UpdateTravelDNA(context.Background(), userID, &db_models.TravelDNA{AdventureSeeker: 85}))

	svc := NewItineraryService(repo, userRepo, testLogger())
	crowdLevels := map[string]string{it.ID.String(): "high"}
	out, err := svc.GetAdaptiveItinerary(context.Background(), userID, 1, crowdLevels, nil)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "high", out[0].CrowdLevel)
	assert.Equal(t, 78, out[0].EstimatedTime)
	assert.Equal(t, "This matches your adventurous spirit perfectly!", out[0].Tip)
}

func TestUpdateItemPartial(t *testing.T) {
	repo := newFakeItineraryRepo()
	it := item(60, "food", "indoor")
	it.UserID = uuid.New()
	require.NoError(t, repo.Create(context.Background(), &it))

	svc := NewItineraryService(repo, newFakeUserRepo(), testLogger())

	completed := true
	err := svc.UpdateItem(context.Background(), it.ID, ItineraryItemUpdate{IsCompleted: &completed})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), it.ID)
	assert.True(t, stored.IsCompleted)
	assert.False(t, stored.IsFavorited)

	favorited := true
	err = svc.UpdateItem(context.Background(), it.ID, ItineraryItemUpdate{IsFavorited: &favorited})
	require.NoError(t, err)

	stored, _ = repo.GetByID(context.Background(), it.ID)
	assert.True(t, stored.IsCompleted)
	assert.True(t, stored.IsFavorited)
}

func TestUpdateItemMissingIsNoOp(t *testing.T) {
	svc := NewItineraryService(newFakeItineraryRepo(), newFakeUserRepo(), testLogger())

	completed := true
	err := svc.UpdateItem(context.Background(), uuid.New(), ItineraryItemUpdate{IsCompleted: &completed})
	assert.NoError(t, err)
}
