package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type ExpenseRequestRepository interface {
	Create(request *model.ExpenseRequest) error
	FindByID(id string) (*model.ExpenseRequest, error)
	GetByUserID(userID string) ([]model.ExpenseRequest, error)
	GetAll() ([]model.ExpenseRequest, error)
	Update(request *model.ExpenseRequest) error
}

type expenseRequestRepository struct {
	db *gorm.DB
}

func NewExpenseRequestRepository(db *gorm.DB) ExpenseRequestRepository {
	return &expenseRequestRepository{db}
}

func (r *expenseRequestRepository) Create(request *model.ExpenseRequest) error {
	return r.db.Create(request).Error
}

func (r *expenseRequestRepository) FindByID(id string) (*model.ExpenseRequest, error) {
	var request model.ExpenseRequest
	err := r.db.Where("id = ?", id).First(&request).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *expenseRequestRepository) GetByUserID(userID string) ([]model.ExpenseRequest, error) {
	var requests []model.ExpenseRequest
	err := r.db.Where("user_id = ?", userID).Order("submitted_at desc").Find(&requests).Error
	return requests, err
}

func (r *expenseRequestRepository) GetAll() ([]model.ExpenseRequest, error) {
	var requests []model.ExpenseRequest
	err := r.db.Order("submitted_at desc").Find(&requests).Error
	return requests, err
}

func (r *expenseRequestRepository) Update(request *model.ExpenseRequest) error {
	return r.db.Save(request).Error
}
