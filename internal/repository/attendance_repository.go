package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(log *model.AttendanceLog) error
	FindByUserActionDate(userID, action, date string) (*model.AttendanceLog, error)
	GetByUserID(userID string) ([]model.AttendanceLog, error)
	GetAll() ([]model.AttendanceLog, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(log *model.AttendanceLog) error {
	return r.db.Create(log).Error
}

// FindByUserActionDate looks up one action for one user on one calendar day.
// Check-in and check-out are queried independently so the absence of one
// never blocks the other.
func (r *attendanceRepository) FindByUserActionDate(userID, action, date string) (*model.AttendanceLog, error) {
	var log model.AttendanceLog
	err := r.db.Where("user_id = ? AND action = ? AND date = ?", userID, action, date).First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *attendanceRepository) GetByUserID(userID string) ([]model.AttendanceLog, error) {
	var logs []model.AttendanceLog
	err := r.db.Where("user_id = ?", userID).Order("timestamp desc").Find(&logs).Error
	return logs, err
}

func (r *attendanceRepository) GetAll() ([]model.AttendanceLog, error) {
	var logs []model.AttendanceLog
	err := r.db.Order("timestamp desc").Find(&logs).Error
	return logs, err
}
