package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleEmployee, RoleManager, RoleHR, RoleAdmin:
		return true
	}
	return false
}

// BalanceMap maps a leave type id to the remaining days for that type.
// Stored as a JSON column.
type BalanceMap map[string]float64

func (m BalanceMap) Value() (driver.Value, error) {
	if m == nil {
		m = BalanceMap{}
	}
	return json.Marshal(m)
}

func (m *BalanceMap) Scan(value interface{}) error {
	if value == nil {
		*m = BalanceMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into BalanceMap", value)
	}
	if len(data) == 0 {
		*m = BalanceMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}

type User struct {
	ID            string     `json:"user_id" gorm:"primaryKey;size:36"`
	Email         string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string     `json:"-" gorm:"not null"`
	FullName      string     `json:"full_name"`
	EmployeeID    string     `json:"employee_id"`
	DepartmentID  string     `json:"department_id" gorm:"size:36"`
	Role          string     `json:"role" gorm:"size:16;default:employee"`
	Phone         string     `json:"phone"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	LeaveBalances BalanceMap `json:"leave_balances" gorm:"type:json"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Department struct {
	ID          string    `json:"dept_id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	Description string    `json:"description"`
	ManagerID   *string   `json:"manager_id" gorm:"size:36"`
	CreatedAt   time.Time `json:"created_at"`
}
