package domain

import "github.com/rivo/uniseg"

// StatusType represents the presence state a user has chosen
type StatusType string

const (
	StatusTypeAvailable   StatusType = "available"
	StatusTypeBusy        StatusType = "busy"
	StatusTypeUnavailable StatusType = "unavailable"
)

// MaxMessageLength is the maximum number of user-perceived characters in a status message
const MaxMessageLength = 80

// AllowedStatusTypes lists every status type a record may carry
var AllowedStatusTypes = []StatusType{
	StatusTypeAvailable,
	StatusTypeBusy,
	StatusTypeUnavailable,
}

// IsValid reports whether the status type is one of AllowedStatusTypes
func (t StatusType) IsValid() bool {
	switch t {
	case StatusTypeAvailable, StatusTypeBusy, StatusTypeUnavailable:
		return true
	default:
		return false
	}
}

// UserStatus is the single current status row of a user.
// CreatedAt is refreshed on every successful write, so it reads as "last modified at".
type UserStatus struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string     `gorm:"type:varchar(255);not null;uniqueIndex:user_status_uid_ix" json:"userId"`
	StatusType StatusType `gorm:"type:varchar(255);not null" json:"statusType"`
	StatusIcon *string    `gorm:"type:varchar(255)" json:"statusIcon"`
	Message    *string    `gorm:"type:text" json:"message"`
	CreatedAt  int64      `gorm:"not null;autoCreateTime:false" json:"createdAt"`
	ClearAt    *int64     `gorm:"index:user_status_clear_at_ix" json:"clearAt"`
}

// TableName specifies the table name for UserStatus
func (UserStatus) TableName() string {
	return "user_status"
}

// Apply returns a new record that keeps the identity of s (ID and UserID) and carries
// the given status fields. s itself is left untouched.
func (s UserStatus) Apply(statusType StatusType, statusIcon, message *string, clearAt *int64, now int64) UserStatus {
	return UserStatus{
		ID:         s.ID,
		UserID:     s.UserID,
		StatusType: statusType,
		StatusIcon: cloneString(statusIcon),
		Message:    cloneString(message),
		CreatedAt:  now,
		ClearAt:    cloneInt64(clearAt),
	}
}

// WithID returns a copy of s bound to the given identifier
func (s UserStatus) WithID(id uint) UserStatus {
	s.ID = id
	return s
}

// IsNew reports whether the record has not been persisted yet
func (s UserStatus) IsNew() bool {
	return s.ID == 0
}

// IsExpired reports whether the record is past its clearAt time
func (s UserStatus) IsExpired(now int64) bool {
	return s.ClearAt != nil && *s.ClearAt <= now
}

// MessageLength counts user-perceived characters (grapheme clusters), not bytes
func MessageLength(message string) int {
	return uniseg.GraphemeClusterCount(message)
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
