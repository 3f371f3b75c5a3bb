package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-status-service/internal/dto"
	"user-status-service/internal/middleware"
	"user-status-service/internal/response"
	"user-status-service/internal/service"
)

type StatusHandler struct {
	statusService service.StatusService
	logger        *zap.Logger
}

func NewStatusHandler(statusService service.StatusService, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		logger:        logger,
	}
}

// ListStatuses godoc
// @Summary      List user statuses
// @Description  Lists stored statuses ordered by creation of the row
// @Tags         statuses
// @Produce      json
// @Param        limit  query int false "Maximum number of statuses"
// @Param        offset query int false "Number of statuses to skip"
// @Success      200 {object} response.SuccessResponse{data=[]dto.StatusResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /statuses [get]
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	var query dto.ListStatusesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid pagination parameters")
		return
	}

	statuses, err := h.statusService.FindAll(c.Request.Context(), query.Limit, query.Offset)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.NewStatusResponses(statuses))
}

// GetStatus godoc
// @Summary      Get the status of a user
// @Tags         statuses
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.SuccessResponse{data=dto.StatusResponse}
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /statuses/{userId} [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	h.sendStatus(c, c.Param("userId"))
}

// GetMyStatus godoc
// @Summary      Get the caller's status
// @Tags         user_status
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.StatusResponse}
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /user_status [get]
func (h *StatusHandler) GetMyStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}
	h.sendStatus(c, userID)
}

// SetMyStatus godoc
// @Summary      Set the caller's status
// @Description  Creates the caller's status or overwrites it. Omitted optional fields are cleared.
// @Tags         user_status
// @Accept       json
// @Produce      json
// @Param        request body dto.SetStatusRequest true "New status"
// @Success      200 {object} response.SuccessResponse{data=dto.StatusResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /user_status [put]
func (h *StatusHandler) SetMyStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	status, err := h.statusService.SetStatus(c.Request.Context(), userID, req.StatusType, req.StatusIcon, req.Message, req.ClearAt)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, dto.NewStatusResponse(status))
}

// ClearMyStatus godoc
// @Summary      Clear the caller's status
// @Tags         user_status
// @Produce      json
// @Success      204 "Status removed"
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      500 {object} response.ErrorResponse
// @Security     BearerAuth
// @Router       /user_status [delete]
func (h *StatusHandler) ClearMyStatus(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return
	}

	removed, err := h.statusService.RemoveUserStatus(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if !removed {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "User status not found")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *StatusHandler) sendStatus(c *gin.Context, userID string) {
	status, err := h.statusService.FindByUserID(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	response.SendSuccess(c, http.StatusOK, dto.NewStatusResponse(status))
}
