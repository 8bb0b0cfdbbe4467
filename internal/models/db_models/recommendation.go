package db_models

// PlaceLocation is the jsonb location document shared by recommendations and
// local places.
type PlaceLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Address      string  `json:"address"`
	Neighborhood string  `json:"neighborhood,omitempty"`
}

// CrowdData carries the categorical congestion estimate for a place.
// CrowdLevel is one of "low", "medium", "high".
type CrowdData struct {
	PeakHours       []string `json:"peakHours"`
	BestTimeToVisit string   `json:"bestTimeToVisit"`
	CrowdLevel      string   `json:"crowdLevel"`
	LastUpdated     string   `json:"lastUpdated"`
}

type LocalInsights struct {
	DiscoveredBy      string   `json:"discoveredBy"`
	LocalTips         []string `json:"localTips"`
	SeasonalInfo      string   `json:"seasonalInfo,omitempty"`
	AccessibilityInfo string   `json:"accessibilityInfo,omitempty"`
}

// Recommendation is a curated place suggestion. Rating stores score x10 so a
// 4.8 is persisted as 48; the response layer divides it back out.
type Recommendation struct {
	BaseModel
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"imageUrl"`
	Rating        int            `json:"rating"`
	Category      string         `json:"category"`
	Moods         []string       `gorm:"serializer:json" json:"moods"`
	Tags          []string       `gorm:"serializer:json" json:"tags"`
	IsHiddenGem   bool           `gorm:"default:true" json:"isHiddenGem"`
	Location      *PlaceLocation `gorm:"serializer:json" json:"location"`
	CrowdData     *CrowdData     `gorm:"serializer:json" json:"crowdData,omitempty"`
	LocalInsights *LocalInsights `gorm:"serializer:json" json:"localInsights,omitempty"`
}

func (r *Recommendation) HasMood(mood string) bool {
	for _, m := range r.Moods {
		if m == mood {
			return true
		}
	}
	return false
}
