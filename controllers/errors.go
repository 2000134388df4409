package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"stayease-backend/middleware"
	"stayease-backend/services"
	"stayease-backend/utils"
)

// respondError maps a service error onto the HTTP status and error body.
// Unexpected errors are logged and answered with a generic 500.
func respondError(c *gin.Context, log *logrus.Logger, err error) {
	var (
		ve *services.ValidationError
		de *services.DateError
	)
	switch {
	case errors.As(err, &ve):
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "request validation failed", ve.Fields)
	case errors.As(err, &de):
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error."+de.Code, de.Error(),
			[]services.FieldError{{Field: de.Field(), Rule: de.Code, Message: de.Error()}})
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "error.invalidCredentials", "invalid username or password")
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "authentication required")
	case errors.Is(err, services.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "you are not allowed to modify this resource")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", "resource not found")
	case errors.Is(err, services.ErrUnavailable):
		utils.JSONError(c, http.StatusConflict, "error.unavailable", err.Error())
	case errors.Is(err, services.ErrDuplicate):
		utils.JSONError(c, http.StatusBadRequest, "error.duplicate", "resource already exists")
	default:
		_ = c.Error(err)
		log.WithError(err).WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"user_id": middleware.CurrentUserID(c),
		}).Error("unhandled error")
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal server error")
	}
}

// respondBindError answers malformed or invalid input with field details.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "request body or query is malformed")
		return
	}

	fields := make([]services.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, services.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	utils.JSONErrorDetails(c, http.StatusBadRequest, "error.validation", "request validation failed", fields)
}

func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		respondBindError(c, err)
		return false
	}
	return true
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONErrorDetails(c, http.StatusBadRequest, "error.invalidId", "invalid "+name,
			[]services.FieldError{{Field: name, Rule: "numeric", Message: "must be a positive integer"}})
		return 0, false
	}
	return uint(id), true
}
