package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/middleware"
	"stayease-backend/services"
)

type BookingController struct {
	BookingSvc *services.BookingService
	Log        *logrus.Logger
}

func NewBookingController(svc *services.BookingService, log *logrus.Logger) *BookingController {
	return &BookingController{BookingSvc: svc, Log: log}
}

// GET /api/bookings
func (bc *BookingController) List(c *gin.Context) {
	bookings, err := bc.BookingSvc.ListForRenter(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GET /api/bookings/:id
func (bc *BookingController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	booking, err := bc.BookingSvc.Get(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GET /api/properties/:id/bookings
func (bc *BookingController) ListForProperty(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	bookings, err := bc.BookingSvc.ListForProperty(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// POST /api/bookings
func (bc *BookingController) Create(c *gin.Context) {
	var req dto.BookingRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.BookingSvc.Create(c.Request.Context(), middleware.CurrentUserID(c), req)
	if err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// PUT /api/bookings/:id
func (bc *BookingController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.BookingUpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.BookingSvc.Update(c.Request.Context(), middleware.CurrentUserID(c), id, req)
	if err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// PATCH /api/bookings/:id/status
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.BookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	booking, err := bc.BookingSvc.UpdateStatus(c.Request.Context(), middleware.CurrentUserID(c), id, req.Status)
	if err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DELETE /api/bookings/:id
func (bc *BookingController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := bc.BookingSvc.Delete(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		respondError(c, bc.Log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
