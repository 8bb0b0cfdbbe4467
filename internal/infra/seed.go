package infra

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"travelmate/internal/models/db_models"
)

// SeedSampleData inserts the demo recommendations and local places when the
// tables are empty. Safe to call on every boot.
func SeedSampleData(db *gorm.DB, logger *zap.SugaredLogger) {
	var count int64
	if err := db.Model(&db_models.Recommendation{}).Count(&count).Error; err != nil {
		logger.Errorw("seed: counting recommendations failed", "error", err)
		return
	}
	if count == 0 {
		if err := db.Create(sampleRecommendations()).Error; err != nil {
			logger.Errorw("seed: inserting recommendations failed", "error", err)
		}
	}

	if err := db.Model(&db_models.LocalPlace{}).Count(&count).Error; err != nil {
		logger.Errorw("seed: counting local places failed", "error", err)
		return
	}
	if count == 0 {
		if err := db.Create(sampleLocalPlaces()).Error; err != nil {
			logger.Errorw("seed: inserting local places failed", "error", err)
		}
	}
}

func sampleRecommendations() []db_models.Recommendation {
	now := time.Now().UTC().Format(time.RFC3339)
	return []db_models.Recommendation{
		{
			Title:       "Secret Waterfall Trail",
			Description: "A hidden oasis perfect for meditation and nature photography",
			ImageURL:    "https://images.unsplash.com/photo-1439066615861-d1af74d74000?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			Rating:      48,
			Category:    "Nature",
			Moods:       []string{"relax", "explore"},
			Tags:        []string{"Nature", "Peaceful"},
			IsHiddenGem: true,
			Location: &db_models.PlaceLocation{
				Latitude:     35.6762,
				Longitude:    139.6503,
				City:         "Tokyo",
				Country:      "Japan",
				Address:      "Shibuya Forest Sanctuary",
				Neighborhood: "Shibuya",
			},
			CrowdData: &db_models.CrowdData{
				PeakHours:       []string{"10:00-12:00", "15:00-17:00"},
				BestTimeToVisit: "Early morning (7:00-9:00)",
				CrowdLevel:      "low",
				LastUpdated:     now,
			},
			LocalInsights: &db_models.LocalInsights{
				DiscoveredBy:      "local",
				LocalTips:         []string{"Bring water shoes for the stream crossing", "Best photography light at golden hour"},
				SeasonalInfo:      "Most beautiful in autumn with fall colors",
				AccessibilityInfo: "Moderate hiking required",
			},
		},
		{
			Title:       "The Hidden Door",
			Description: "Exclusive speakeasy known only to locals, featuring craft cocktails",
			ImageURL:    "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			Rating:      46,
			Category:    "Nightlife",
			Moods:       []string{"party"},
			Tags:        []string{"Nightlife", "Cocktails"},
			IsHiddenGem: true,
			Location: &db_models.PlaceLocation{
				Latitude:     35.6694,
				Longitude:    139.7018,
				City:         "Tokyo",
				Country:      "Japan",
				Address:      "2-15-3 Ginza Underground",
				Neighborhood: "Ginza",
			},
			CrowdData: &db_models.CrowdData{
				PeakHours:       []string{"20:00-23:00"},
				BestTimeToVisit: "Weekdays after 18:00",
				CrowdLevel:      "medium",
				LastUpdated:     now,
			},
			LocalInsights: &db_models.LocalInsights{
				DiscoveredBy:      "local",
				LocalTips:         []string{"Ask for the 'Tokyo Sunset' cocktail - not on menu", "Reservation recommended on weekends"},
				AccessibilityInfo: "Basement level, stairs only",
			},
		},
		{
			Title:       "Forgotten Temple Ruins",
			Description: "Ancient architectural wonder with breathtaking sunrise views",
			ImageURL:    "https://images.unsplash.com/photo-1545558014-8692077e9b5c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=200",
			Rating:      49,
			Category:    "History",
			Moods:       []string{"explore"},
			Tags:        []string{"History", "Adventure"},
			IsHiddenGem: true,
			Location: &db_models.PlaceLocation{
				Latitude:     35.7149,
				Longitude:    139.7969,
				City:         "Tokyo",
				Country:      "Japan",
				Address:      "Ueno Park Historic District",
				Neighborhood: "Ueno",
			},
			CrowdData: &db_models.CrowdData{
				PeakHours:       []string{"09:00-11:00", "14:00-16:00"},
				BestTimeToVisit: "Sunrise (6:00-7:30)",
				CrowdLevel:      "low",
				LastUpdated:     now,
			},
			LocalInsights: &db_models.LocalInsights{
				DiscoveredBy:      "traveler",
				LocalTips:         []string{"Bring a flashlight for exploring inner chambers", "Perfect for sunrise photography"},
				SeasonalInfo:      "Cherry blossoms frame the ruins in spring",
				AccessibilityInfo: "Some stairs and uneven ground",
			},
		},
	}
}

func sampleLocalPlaces() []db_models.LocalPlace {
	now := time.Now().UTC().Format(time.RFC3339)
	return []db_models.LocalPlace{
		{
			Name:     "Grandmother's Kitchen",
			Category: "Restaurant",
			Location: &db_models.PlaceLocation{
				Latitude:     35.6586,
				Longitude:    139.7454,
				City:         "Tokyo",
				Country:      "Japan",
				Address:      "3-22-8 Shimbashi",
				Neighborhood: "Shimbashi",
			},
			DiscoveredBy: "local_tip",
			Popularity:   85,
			CrowdData: &db_models.CrowdData{
				PeakHours:       []string{"12:00-13:00", "19:00-21:00"},
				BestTimeToVisit: "14:00-17:00 for quiet dining",
				CrowdLevel:      "high",
				LastUpdated:     now,
			},
			LocalInsights: &db_models.LocalInsights{
				DiscoveredBy: "local",
				LocalTips:    []string{"Order the daily special - it's always amazing", "Cash only establishment"},
				SeasonalInfo: "Seasonal menu changes monthly",
			},
			IsVerified: true,
		},
	}
}
