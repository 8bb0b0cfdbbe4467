package db_models

// TravelDNA is the five-dimension personality profile derived from the
// onboarding quiz. Scores are clamped to [0,100]; Preferences holds the raw
// answer values in question order.
type TravelDNA struct {
	AdventureSeeker int      `json:"adventureSeeker"`
	Spontaneous     int      `json:"spontaneous"`
	Cultural        int      `json:"cultural"`
	Social          int      `json:"social"`
	Active          int      `json:"active"`
	Personality     string   `json:"personality"`
	Preferences     []string `json:"preferences"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	Country   string  `json:"country,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
}

type User struct {
	BaseModel
	Username        string     `gorm:"unique" json:"username"`
	PasswordHash    string     `json:"-"`
	TravelDNA       *TravelDNA `gorm:"serializer:json" json:"travelDNA,omitempty"`
	CurrentLocation *GeoPoint  `gorm:"serializer:json" json:"currentLocation,omitempty"`
}
