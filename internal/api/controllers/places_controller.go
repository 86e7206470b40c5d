package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"strconv"
	"weekendwish/internal/models/request_models"
	"weekendwish/internal/services"
	"weekendwish/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

func (p *PlacesController) ListPlaces(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	places, err := p.placeService.ListPlaces(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlacesController) CreatePlace(c *gin.Context) {
	var req request_models.CreatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Name and coordinates are required")
		return
	}

	if err := p.placeService.CreatePlace(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place created successfully")
}

func (p *PlacesController) UpdatePlace(c *gin.Context) {
	var req request_models.UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	if err := p.placeService.UpdatePlace(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place updated successfully")
}

func (p *PlacesController) DeletePlace(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid place ID")
		return
	}

	if err := p.placeService.DeletePlace(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Place deleted successfully")
}
