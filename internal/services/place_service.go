package services

import (
	"context"
	"github.com/google/uuid"
	"log"
	"weekendwish/internal/models/db_models"
	"weekendwish/internal/models/request_models"
	"weekendwish/internal/repositories"
	"weekendwish/pkg/utils"
)

type PlaceServiceInterface interface {
	CreatePlace(ctx context.Context, req request_models.CreatePlaceRequest) error
	UpdatePlace(ctx context.Context, req request_models.UpdatePlaceRequest) error
	DeletePlace(ctx context.Context, id uuid.UUID) error
	ListPlaces(ctx context.Context, page, pageSize int) ([]db_models.Place, error)
}

type PlaceService struct {
	placeRepository repositories.PlaceRepository
}

func NewPlaceService(placeRepository repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepository: placeRepository,
	}
}

func (p *PlaceService) CreatePlace(ctx context.Context, req request_models.CreatePlaceRequest) error {
	newPlace := &db_models.Place{
		Name:       req.Name,
		Address:    req.Address,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Popularity: req.Popularity,
		PriceTier:  req.PriceTier,
		Category:   req.Category,
		Tags:       req.Tags,
	}

	if _, err := p.placeRepository.CreatePlace(ctx, newPlace); err != nil {
		log.Printf("Error creating place: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PlaceService) UpdatePlace(ctx context.Context, req request_models.UpdatePlaceRequest) error {
	existing, err := p.placeRepository.GetByID(ctx, req.ID.String())
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return utils.ErrDatabaseError
	}

	if existing == nil {
		return utils.ErrPlaceNotFound
	}

	existing.Name = req.Name
	existing.Address = req.Address
	existing.Latitude = req.Latitude
	existing.Longitude = req.Longitude
	existing.Popularity = req.Popularity
	existing.PriceTier = req.PriceTier
	existing.Category = req.Category
	existing.Tags = req.Tags

	if err := p.placeRepository.UpdatePlace(ctx, existing); err != nil {
		log.Printf("Error updating place: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PlaceService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	existing, err := p.placeRepository.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching place: %v", err)
		return utils.ErrDatabaseError
	}

	if existing == nil {
		return utils.ErrPlaceNotFound
	}

	if err := p.placeRepository.Delete(ctx, id); err != nil {
		log.Printf("Error deleting place: %v", err)
		return utils.ErrDatabaseError
	}

	return nil
}

func (p *PlaceService) ListPlaces(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	places, err := p.placeRepository.List(ctx, page, pageSize)
	if err != nil {
		log.Printf("Error listing places: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return places, nil
}
