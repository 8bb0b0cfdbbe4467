package utils

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrItineraryItemNotFound = errors.New("itinerary item not found")
	ErrPlaceNotFound         = errors.New("local place not found")
	ErrUsernameAlreadyTaken  = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrLocationUnavailable   = errors.New("location unavailable")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")
)
