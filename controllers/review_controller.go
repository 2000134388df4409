package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/middleware"
	"stayease-backend/services"
)

type ReviewController struct {
	ReviewSvc *services.ReviewService
	Log       *logrus.Logger
}

func NewReviewController(svc *services.ReviewService, log *logrus.Logger) *ReviewController {
	return &ReviewController{ReviewSvc: svc, Log: log}
}

// GET /api/properties/:id/reviews
func (rc *ReviewController) ListForProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	summary, err := rc.ReviewSvc.ListForProperty(c.Request.Context(), id)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// POST /api/properties/:id/reviews
func (rc *ReviewController) Create(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := rc.ReviewSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// PUT /api/reviews/:id
func (rc *ReviewController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	review, err := rc.ReviewSvc.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		respondError(c, rc.Log, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// DELETE /api/reviews/:id
func (rc *ReviewController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := rc.ReviewSvc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, rc.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
