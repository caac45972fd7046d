package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(department *model.Department) error
	GetAll() ([]model.Department, error)
	FindByID(id string) (*model.Department, error)
	FindByName(name string) (*model.Department, error)
}

type departmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db}
}

func (r *departmentRepository) Create(department *model.Department) error {
	return r.db.Create(department).Error
}

func (r *departmentRepository) GetAll() ([]model.Department, error) {
	var departments []model.Department
	err := r.db.Order("created_at asc").Find(&departments).Error
	return departments, err
}

func (r *departmentRepository) FindByID(id string) (*model.Department, error) {
	var department model.Department
	err := r.db.Where("id = ?", id).First(&department).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByName(name string) (*model.Department, error) {
	var department model.Department
	err := r.db.Where("name = ?", name).First(&department).Error
	if err != nil {
		return nil, err
	}
	return &department, nil
}
