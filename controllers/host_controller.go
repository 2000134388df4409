package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"stayease-backend/middleware"
	"stayease-backend/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HostController serves the "my listings" views of a host.
type HostController struct {
	PropertySvc *services.PropertyService
	ExportSvc   *services.ExportService
	Log         *logrus.Logger
}

func NewHostController(properties *services.PropertyService, exports *services.ExportService, log *logrus.Logger) *HostController {
	return &HostController{PropertySvc: properties, ExportSvc: exports, Log: log}
}

// GET /api/host/properties
func (hc *HostController) Properties(c *gin.Context) {
	properties, err := hc.PropertySvc.ListByHost(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, hc.Log, err)
		return
	}
	c.JSON(http.StatusOK, properties)
}

// GET /api/host/bookings/export
func (hc *HostController) ExportBookings(c *gin.Context) {
	buf, err := hc.ExportSvc.HostBookingsWorkbook(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, hc.Log, err)
		return
	}
	filename := fmt.Sprintf("stayease-bookings-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
