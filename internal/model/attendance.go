package model

import "time"

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

// ValidAction reports whether action is a known attendance action.
func ValidAction(action string) bool {
	return action == ActionCheckIn || action == ActionCheckOut
}

// AttendanceLog is append-only. The composite unique index backs the
// at-most-one check-in and check-out per user per calendar day rule, so a
// race past the handler's pre-check still cannot produce a duplicate row.
type AttendanceLog struct {
	ID        string    `json:"log_id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"user_id" gorm:"size:36;not null;uniqueIndex:idx_attendance_user_action_date"`
	Action    string    `json:"action" gorm:"size:16;not null;uniqueIndex:idx_attendance_user_action_date"`
	Timestamp time.Time `json:"timestamp"`
	Location  string    `json:"location"`
	Date      string    `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_user_action_date"` // YYYY-MM-DD, derived server-side
	CreatedAt time.Time `json:"-"`
}
