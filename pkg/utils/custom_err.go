package utils

import "errors"

var (
	ErrGeocodeFailure       = errors.New("could not geocode starting location")
	ErrSourceUnavailable    = errors.New("place source unavailable")
	ErrInvalidStart         = errors.New("invalid start coordinate")
	ErrInvalidInput         = errors.New("invalid input")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrDatabaseError        = errors.New("database error")
	ErrItineraryUnavailable = errors.New("itinerary generator unavailable")
	ErrUnauthorized         = errors.New("unauthorized")
)
