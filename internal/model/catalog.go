package model

import "time"

type LeaveType struct {
	ID               string    `json:"type_id" gorm:"primaryKey;size:36"`
	Name             string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description      string    `json:"description"`
	MaxDaysPerYear   int       `json:"max_days_per_year"`
	CarryForwardDays int       `json:"carry_forward_days"`
	IsPaid           bool      `json:"is_paid" gorm:"default:true"`
	RequiresApproval bool      `json:"requires_approval" gorm:"default:true"`
	SupportsHalfDay  bool      `json:"supports_half_day" gorm:"default:true"`
	SupportsWFH      bool      `json:"supports_wfh"`
	CreatedAt        time.Time `json:"created_at"`
}

type ExpenseCategory struct {
	ID                string    `json:"category_id" gorm:"primaryKey;size:36"`
	Name              string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description       string    `json:"description"`
	MaxAmountPerMonth float64   `json:"max_amount_per_month"`
	RequiresReceipt   bool      `json:"requires_receipt"`
	CreatedAt         time.Time `json:"created_at"`
}
