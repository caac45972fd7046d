package model

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

const (
	DurationFullDay      = "full_day"
	DurationHalfDay      = "half_day"
	DurationWorkFromHome = "work_from_home"
)

// ValidDecision reports whether status is a valid terminal decision.
func ValidDecision(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// ValidDuration reports whether d is a known leave duration kind.
func ValidDuration(d string) bool {
	switch d {
	case DurationFullDay, DurationHalfDay, DurationWorkFromHome:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID           string     `json:"request_id" gorm:"primaryKey;size:36"`
	UserID       string     `json:"user_id" gorm:"size:36;index;not null"`
	LeaveTypeID  string     `json:"leave_type_id" gorm:"size:36;not null"`
	StartDate    string     `json:"start_date"`
	EndDate      string     `json:"end_date"`
	DurationType string     `json:"duration_type" gorm:"size:16"`
	Reason       string     `json:"reason"`
	Status       string     `json:"status" gorm:"size:16;default:pending"`
	ManagerID    *string    `json:"manager_id" gorm:"size:36"`
	AppliedAt    time.Time  `json:"applied_at"`
	ApprovedAt   *time.Time `json:"approved_at"`
	ApprovedBy   *string    `json:"approved_by" gorm:"size:36"`
	CreatedAt    time.Time  `json:"-"`
}

type ExpenseRequest struct {
	ID          string     `json:"request_id" gorm:"primaryKey;size:36"`
	UserID      string     `json:"user_id" gorm:"size:36;index;not null"`
	CategoryID  string     `json:"category_id" gorm:"size:36;not null"`
	Amount      float64    `json:"amount"`
	ExpenseDate string     `json:"expense_date"`
	Description string     `json:"description"`
	Status      string     `json:"status" gorm:"size:16;default:pending"`
	ManagerID   *string    `json:"manager_id" gorm:"size:36"`
	SubmittedAt time.Time  `json:"submitted_at"`
	ApprovedAt  *time.Time `json:"approved_at"`
	ApprovedBy  *string    `json:"approved_by" gorm:"size:36"`
	ReceiptPath string     `json:"receipt_path"`
	CreatedAt   time.Time  `json:"-"`
}
