package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"weekendwish/internal/models/request_models"
	"weekendwish/internal/services"
	"weekendwish/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

func (r *RecommendController) Recommend(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "starting location missing")
		return
	}

	result, err := r.recommendService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations fetched successfully")
}
