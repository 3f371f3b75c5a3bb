package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"user-status-service/internal/dto"
	"user-status-service/internal/emoji"
	"user-status-service/internal/response"
)

type CapabilitiesHandler struct {
	emoji emoji.Validator
}

func NewCapabilitiesHandler(validator emoji.Validator) *CapabilitiesHandler {
	return &CapabilitiesHandler{emoji: validator}
}

// GetCapabilities godoc
// @Summary      Status feature capabilities
// @Description  Tells clients whether statuses are enabled and whether status icons are accepted
// @Tags         capabilities
// @Produce      json
// @Success      200 {object} response.SuccessResponse{data=dto.CapabilitiesResponse}
// @Router       /capabilities [get]
func (h *CapabilitiesHandler) GetCapabilities(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, dto.CapabilitiesResponse{
		UserStatus: dto.UserStatusCapability{
			Enabled:       true,
			SupportsEmoji: h.emoji.PlatformSupportsEmoji(),
		},
	})
}
