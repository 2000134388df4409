package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/dto"
	"stayease-backend/services"
)

type WaitlistController struct {
	WaitlistSvc *services.WaitlistService
	Log         *logrus.Logger
}

func NewWaitlistController(svc *services.WaitlistService, log *logrus.Logger) *WaitlistController {
	return &WaitlistController{WaitlistSvc: svc, Log: log}
}

// POST /api/waitlist
func (wc *WaitlistController) Join(c *gin.Context) {
	var req dto.WaitlistRequest
	if !bindJSON(c, &req) {
		return
	}
	entry, err := wc.WaitlistSvc.Join(c.Request.Context(), req)
	if err != nil {
		respondError(c, wc.Log, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}
