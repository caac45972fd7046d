package handler

import (
	"github.com/gofiber/fiber/v2"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/repository"
)

type ReportHandler struct {
	repo         repository.ReportRepository
	typeRepo     repository.LeaveTypeRepository
	categoryRepo repository.ExpenseCategoryRepository
}

func NewReportHandler(repo repository.ReportRepository, typeRepo repository.LeaveTypeRepository, categoryRepo repository.ExpenseCategoryRepository) *ReportHandler {
	return &ReportHandler{repo: repo, typeRepo: typeRepo, categoryRepo: categoryRepo}
}

// TypeSummary annotates a leave-type group with its display name.
type TypeSummary struct {
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name"`
	Count         int64  `json:"count"`
}

// LeaveSummary returns all-time counts grouped by status and by leave type.
// Zero-count groups are omitted, matching a GROUP BY over existing rows.
func (h *ReportHandler) LeaveSummary(c *fiber.Ctx) error {
	statusRows, err := h.repo.LeaveCountsByStatus()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	byStatus := make(map[string]int64, len(statusRows))
	for _, row := range statusRows {
		byStatus[row.Status] = row.Count
	}

	typeRows, err := h.repo.LeaveCountsByType()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	types, err := h.typeRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	typeNames := make(map[string]string, len(types))
	for _, leaveType := range types {
		typeNames[leaveType.ID] = leaveType.Name
	}

	byType := make([]TypeSummary, 0, len(typeRows))
	for _, row := range typeRows {
		byType = append(byType, TypeSummary{
			LeaveTypeID:   row.LeaveTypeID,
			LeaveTypeName: displayName(typeNames, row.LeaveTypeID),
			Count:         row.Count,
		})
	}

	return c.JSON(fiber.Map{
		"by_status": byStatus,
		"by_type":   byType,
	})
}

// StatusSummary carries the count and amount sum of one status group.
type StatusSummary struct {
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// CategorySummary annotates an expense-category group with its display name.
type CategorySummary struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Count        int64   `json:"count"`
	TotalAmount  float64 `json:"total_amount"`
}

// ExpenseSummary returns all-time counts and amount sums grouped by status
// and by category.
func (h *ReportHandler) ExpenseSummary(c *fiber.Ctx) error {
	statusRows, err := h.repo.ExpenseTotalsByStatus()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	byStatus := make(map[string]StatusSummary, len(statusRows))
	for _, row := range statusRows {
		byStatus[row.Status] = StatusSummary{Count: row.Count, TotalAmount: row.TotalAmount}
	}

	categoryRows, err := h.repo.ExpenseTotalsByCategory()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	byCategory := make([]CategorySummary, 0, len(categoryRows))
	for _, row := range categoryRows {
		byCategory = append(byCategory, CategorySummary{
			CategoryID:   row.CategoryID,
			CategoryName: displayName(categoryNames, row.CategoryID),
			Count:        row.Count,
			TotalAmount:  row.TotalAmount,
		})
	}

	return c.JSON(fiber.Map{
		"by_status":   byStatus,
		"by_category": byCategory,
	})
}
