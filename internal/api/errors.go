package api

import (
	"alcyxob/workout-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// FieldErrorResponse names one rejected request field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func abortWithValidationError(c *gin.Context, fields []service.FieldError) {
	resp := make([]FieldErrorResponse, len(fields))
	for i, f := range fields {
		resp[i] = FieldErrorResponse{Field: f.Field, Message: f.Message}
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":  "Validation error",
		"fields": resp,
	})
}

// bindJSON decodes the body into req and writes a 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	if fields, ok := bindingFieldErrors(err); ok {
		abortWithValidationError(c, fields)
	} else {
		abortWithError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	return false
}

// handleServiceError maps service errors to a status code. Anything
// unexpected is logged and reported as failedMsg with a 500.
func handleServiceError(c *gin.Context, err error, failedMsg string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abortWithValidationError(c, validationErr.Fields)
	case errors.Is(err, service.ErrCompletedWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found")
	default:
		log.WithFields(log.Fields{
			"request_id": c.GetString(ContextRequestIDKey),
			"path":       c.FullPath(),
		}).WithError(err).Error(failedMsg)
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, failedMsg)
	}
}
