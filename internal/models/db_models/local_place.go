package db_models

type LocalPlace struct {
	BaseModel
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	Location      *PlaceLocation `gorm:"serializer:json" json:"location"`
	DiscoveredBy  string         `json:"discoveredBy"` // google_places, local_tip, user_generated
	Popularity    int            `gorm:"default:0" json:"popularity"`
	CrowdData     *CrowdData     `gorm:"serializer:json" json:"crowdData,omitempty"`
	LocalInsights *LocalInsights `gorm:"serializer:json" json:"localInsights,omitempty"`
	IsVerified    bool           `gorm:"default:false" json:"isVerified"`
}
