package dto

import "user-status-service/internal/domain"

// SetStatusRequest represents the request to set the caller's status
// @Description statusType is one of available, busy, unavailable.
// @Description statusIcon must be a single character, message at most 80 characters, clearAt a future unix timestamp.
type SetStatusRequest struct {
	StatusType string  `json:"statusType" example:"busy"`
	StatusIcon *string `json:"statusIcon,omitempty" example:"📱"`
	Message    *string `json:"message,omitempty" example:"In a phone call"`
	ClearAt    *int64  `json:"clearAt,omitempty" example:"1767225600"`
}

// ListStatusesQuery holds the pagination query of the status listing
type ListStatusesQuery struct {
	Limit  *int `form:"limit" binding:"omitempty,min=1"`
	Offset *int `form:"offset" binding:"omitempty,min=0"`
}

// StatusResponse represents a stored user status
type StatusResponse struct {
	UserID     string  `json:"userId" example:"john.doe"`
	StatusType string  `json:"statusType" example:"busy"`
	StatusIcon *string `json:"statusIcon" example:"📱"`
	Message    *string `json:"message" example:"In a phone call"`
	ClearAt    *int64  `json:"clearAt" example:"1767225600"`
	CreatedAt  int64   `json:"createdAt" example:"1767222000"`
}

// NewStatusResponse converts a stored status
func NewStatusResponse(status *domain.UserStatus) StatusResponse {
	return StatusResponse{
		UserID:     status.UserID,
		StatusType: string(status.StatusType),
		StatusIcon: status.StatusIcon,
		Message:    status.Message,
		ClearAt:    status.ClearAt,
		CreatedAt:  status.CreatedAt,
	}
}

// NewStatusResponses converts a list of stored statuses
func NewStatusResponses(statuses []*domain.UserStatus) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, NewStatusResponse(s))
	}
	return out
}

// CapabilitiesResponse advertises the status feature to clients
type CapabilitiesResponse struct {
	UserStatus UserStatusCapability `json:"user_status"`
}

// UserStatusCapability describes what the status feature supports on this deployment
type UserStatusCapability struct {
	Enabled       bool `json:"enabled" example:"true"`
	SupportsEmoji bool `json:"supports_emoji" example:"true"`
}
