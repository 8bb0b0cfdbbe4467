package request_models

// UpdateItineraryItemRequest is a partial update; omitted fields stay as they
// are. Skip sets isCompleted, favorite toggles isFavorited.
type UpdateItineraryItemRequest struct {
	IsCompleted *bool `json:"isCompleted,omitempty"`
	IsFavorited *bool `json:"isFavorited,omitempty"`
}
