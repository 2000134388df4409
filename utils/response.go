package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the payload under the "error" key of every failed response.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func JSONError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": ErrorBody{Code: code, Message: message}})
}

func JSONErrorDetails(c *gin.Context, status int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(status, gin.H{"error": ErrorBody{Code: code, Message: message, Details: details}})
}
