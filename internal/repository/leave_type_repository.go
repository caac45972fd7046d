package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveTypeRepository interface {
	Create(leaveType *model.LeaveType) error
	GetAll() ([]model.LeaveType, error)
	FindByID(id string) (*model.LeaveType, error)
	FindByName(name string) (*model.LeaveType, error)
	Delete(id string) error
}

type leaveTypeRepository struct {
	db *gorm.DB
}

func NewLeaveTypeRepository(db *gorm.DB) LeaveTypeRepository {
	return &leaveTypeRepository{db}
}

func (r *leaveTypeRepository) Create(leaveType *model.LeaveType) error {
	return r.db.Create(leaveType).Error
}

func (r *leaveTypeRepository) GetAll() ([]model.LeaveType, error) {
	var types []model.LeaveType
	err := r.db.Order("created_at asc").Find(&types).Error
	return types, err
}

func (r *leaveTypeRepository) FindByID(id string) (*model.LeaveType, error) {
	var leaveType model.LeaveType
	err := r.db.Where("id = ?", id).First(&leaveType).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

func (r *leaveTypeRepository) FindByName(name string) (*model.LeaveType, error) {
	var leaveType model.LeaveType
	err := r.db.Where("name = ?", name).First(&leaveType).Error
	if err != nil {
		return nil, err
	}
	return &leaveType, nil
}

func (r *leaveTypeRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.LeaveType{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
