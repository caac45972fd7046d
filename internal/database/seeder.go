package database

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/model"
)

// SeedAll creates the default department, admin user, leave types and
// expense categories. Every record is existence-checked, so running the
// seeder repeatedly (or on every startup) is safe.
func SeedAll(db *gorm.DB) error {
	now := time.Now().UTC()

	// 1. Default department, referenced by the admin user
	dept := model.Department{
		ID:          "dept_001",
		Name:        "Administration",
		Description: "Administrative Department",
		CreatedAt:   now,
	}
	if err := db.Where(model.Department{ID: dept.ID}).FirstOrCreate(&dept).Error; err != nil {
		return err
	}

	// 2. Default admin account
	var adminCount int64
	if err := db.Model(&model.User{}).Where("email = ?", "admin@company.com").Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		hash, err := auth.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin := model.User{
			ID:            uuid.NewString(),
			Email:         "admin@company.com",
			PasswordHash:  hash,
			FullName:      "System Administrator",
			EmployeeID:    "EMP001",
			DepartmentID:  dept.ID,
			Role:          model.RoleAdmin,
			IsActive:      true,
			LeaveBalances: model.BalanceMap{},
			CreatedAt:     now,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("seeded default admin user admin@company.com")
	}

	// 3. Default leave types
	leaveTypes := []model.LeaveType{
		{Name: "Casual Leave", Description: "Casual leave for personal work", MaxDaysPerYear: 12, CarryForwardDays: 5, IsPaid: true, RequiresApproval: true, SupportsHalfDay: true},
		{Name: "Sick Leave", Description: "Medical leave", MaxDaysPerYear: 10, CarryForwardDays: 0, IsPaid: true, RequiresApproval: true, SupportsHalfDay: true},
		{Name: "Work From Home", Description: "Remote work arrangement", MaxDaysPerYear: 50, CarryForwardDays: 0, IsPaid: true, RequiresApproval: true, SupportsWFH: true},
		{Name: "Annual Leave", Description: "Yearly vacation leave", MaxDaysPerYear: 21, CarryForwardDays: 10, IsPaid: true, RequiresApproval: true, SupportsHalfDay: true},
	}
	for _, leaveType := range leaveTypes {
		leaveType.ID = uuid.NewString()
		leaveType.CreatedAt = now
		if err := db.Where(model.LeaveType{Name: leaveType.Name}).FirstOrCreate(&leaveType).Error; err != nil {
			return err
		}
	}

	// 4. Default expense categories
	categories := []model.ExpenseCategory{
		{Name: "Travel", Description: "Travel expenses", MaxAmountPerMonth: 10000, RequiresReceipt: true},
		{Name: "Food", Description: "Meal expenses", MaxAmountPerMonth: 5000, RequiresReceipt: true},
		{Name: "Office Supplies", Description: "Office supply expenses", MaxAmountPerMonth: 3000, RequiresReceipt: false},
		{Name: "Client Meetings", Description: "Client meeting expenses", MaxAmountPerMonth: 8000, RequiresReceipt: true},
		{Name: "Miscellaneous", Description: "Other work-related expenses", MaxAmountPerMonth: 2000, RequiresReceipt: false},
	}
	for _, category := range categories {
		category.ID = uuid.NewString()
		category.CreatedAt = now
		if err := db.Where(model.ExpenseCategory{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}

	return nil
}
