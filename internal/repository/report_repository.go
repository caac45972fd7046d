package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type TypeCount struct {
	LeaveTypeID string `json:"leave_type_id"`
	Count       int64  `json:"count"`
}

type StatusTotal struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type CategoryTotal struct {
	CategoryID  string  `json:"category_id"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type ReportRepository interface {
	LeaveCountsByStatus() ([]StatusCount, error)
	LeaveCountsByType() ([]TypeCount, error)
	ExpenseTotalsByStatus() ([]StatusTotal, error)
	ExpenseTotalsByCategory() ([]CategoryTotal, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db}
}

func (r *reportRepository) LeaveCountsByStatus() ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&model.LeaveRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) LeaveCountsByType() ([]TypeCount, error) {
	var rows []TypeCount
	err := r.db.Model(&model.LeaveRequest{}).
		Select("leave_type_id, COUNT(*) AS count").
		Group("leave_type_id").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) ExpenseTotalsByStatus() ([]StatusTotal, error) {
	var rows []StatusTotal
	err := r.db.Model(&model.ExpenseRequest{}).
		Select("status, COUNT(*) AS count, SUM(amount) AS total_amount").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *reportRepository) ExpenseTotalsByCategory() ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := r.db.Model(&model.ExpenseRequest{}).
		Select("category_id, COUNT(*) AS count, SUM(amount) AS total_amount").
		Group("category_id").
		Scan(&rows).Error
	return rows, err
}
