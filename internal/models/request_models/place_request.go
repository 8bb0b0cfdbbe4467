package request_models

import "travelmate/internal/models/db_models"

type AddLocalPlaceRequest struct {
	Name          string                   `json:"name" binding:"required"`
	Category      string                   `json:"category" binding:"required"`
	Location      *db_models.PlaceLocation `json:"location" binding:"required"`
	DiscoveredBy  string                   `json:"discoveredBy" binding:"required"`
	Popularity    int                      `json:"popularity"`
	CrowdData     *db_models.CrowdData     `json:"crowdData,omitempty"`
	LocalInsights *db_models.LocalInsights `json:"localInsights,omitempty"`
	IsVerified    bool                     `json:"isVerified"`
}

type UpdateCrowdDataRequest struct {
	CrowdData db_models.CrowdData `json:"crowdData" binding:"required"`
}
