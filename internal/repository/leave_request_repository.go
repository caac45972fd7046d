package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRequestRepository interface {
	Create(request *model.LeaveRequest) error
	FindByID(id string) (*model.LeaveRequest, error)
	GetByUserID(userID string) ([]model.LeaveRequest, error)
	GetAll() ([]model.LeaveRequest, error)
	Update(request *model.LeaveRequest) error
}

type leaveRequestRepository struct {
	db *gorm.DB
}

func NewLeaveRequestRepository(db *gorm.DB) LeaveRequestRepository {
	return &leaveRequestRepository{db}
}

func (r *leaveRequestRepository) Create(request *model.LeaveRequest) error {
	return r.db.Create(request).Error
}

func (r *leaveRequestRepository) FindByID(id string) (*model.LeaveRequest, error) {
	var request model.LeaveRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *leaveRequestRepository) GetByUserID(userID string) ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	err := r.db.Where("user_id = ?", userID).Order("applied_at desc").Find(&requests).Error
	return requests, err
}

func (r *leaveRequestRepository) GetAll() ([]model.LeaveRequest, error) {
	var requests []model.LeaveRequest
	err := r.db.Order("applied_at desc").Find(&requests).Error
	return requests, err
}

func (r *leaveRequestRepository) Update(request *model.LeaveRequest) error {
	return r.db.Save(request).Error
}
