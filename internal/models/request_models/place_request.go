package request_models

import "github.com/google/uuid"

type CreatePlaceRequest struct {
	Name       string   `json:"name" binding:"required"`
	Address    string   `json:"address"`
	Latitude   float64  `json:"latitude" binding:"required"`
	Longitude  float64  `json:"longitude" binding:"required"`
	Popularity *float64 `json:"popularity"`
	PriceTier  *float64 `json:"price_tier"`
	Category   string   `json:"category"`
	Tags       string   `json:"tags"`
}

type UpdatePlaceRequest struct {
	ID         uuid.UUID `json:"id" binding:"required"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Popularity *float64  `json:"popularity"`
	PriceTier  *float64  `json:"price_tier"`
	Category   string    `json:"category"`
	Tags       string    `json:"tags"`
}
