package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/middleware"
	"stayease-backend/services"
)

type PropertyController struct {
	PropertySvc *services.PropertyService
	Log         *logrus.Logger
}

func NewPropertyController(svc *services.PropertyService, log *logrus.Logger) *PropertyController {
	return &PropertyController{PropertySvc: svc, Log: log}
}

// GET /api/properties
func (pc *PropertyController) List(c *gin.Context) {
	var q dto.PropertyQuery
	if !bindQuery(c, &q) {
		return
	}
	page, err := pc.PropertySvc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /api/properties/:id
func (pc *PropertyController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	property, err := pc.PropertySvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// POST /api/properties
func (pc *PropertyController) Create(c *gin.Context) {
	var req dto.PropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	property, err := pc.PropertySvc.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// PUT /api/properties/:id
func (pc *PropertyController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PropertyRequest
	if !bindJSON(c, &req) {
		return
	}
	property, err := pc.PropertySvc.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

// DELETE /api/properties/:id
func (pc *PropertyController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := pc.PropertySvc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/properties/:id/quote?checkIn=&checkOut=
func (pc *PropertyController) Quote(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var q dto.QuoteQuery
	if !bindQuery(c, &q) {
		return
	}
	quote, err := pc.PropertySvc.Quote(c.Request.Context(), id, q)
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// POST /api/properties/:id/photos
func (pc *PropertyController) AddPhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.PhotoRequest
	if !bindJSON(c, &req) {
		return
	}
	photo, err := pc.PropertySvc.AddPhoto(c.Request.Context(), middleware.CurrentUserID(c), id, req.URL)
	if err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// DELETE /api/properties/:id/photos/:photoId
func (pc *PropertyController) RemovePhoto(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	photoID, ok := parseID(c, "photoId")
	if !ok {
		return
	}
	if err := pc.PropertySvc.RemovePhoto(c.Request.Context(), middleware.CurrentUserID(c), id, photoID); err != nil {
		respondError(c, pc.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
