package request_models

import "travelmate/internal/models/db_models"

type UpdateLocationRequest struct {
	Location db_models.GeoPoint `json:"location" binding:"required"`
}
