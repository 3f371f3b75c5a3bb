package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-status-service/internal/domain"
	"user-status-service/internal/response"
)

// handleServiceError maps service layer errors to HTTP responses
func handleServiceError(c *gin.Context, logger *zap.Logger, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, vErr.Message)
		return
	case errors.Is(err, domain.ErrStatusNotFound):
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "User status not found")
		return
	case errors.Is(err, domain.ErrStatusConflict), errors.Is(err, domain.ErrUniqueConstraintViolation):
		response.SendError(c, http.StatusConflict, response.ErrCodeConflict, "User status was modified concurrently, retry the request")
		return
	}

	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, mapErrorCodeToHTTPStatus(appErr.Code), appErr.Code, appErr.Message)
		return
	}

	logger.Error("Unhandled service error",
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString(response.RequestIDKey)),
		zap.Error(err),
	)
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound:
		return http.StatusNotFound
	case response.ErrCodeConflict:
		return http.StatusConflict
	case response.ErrCodeValidation:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
