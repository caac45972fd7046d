package repository

import (
	"hrms-backend/internal/model"

	"gorm.io/gorm"
)

type ExpenseCategoryRepository interface {
	Create(category *model.ExpenseCategory) error
	GetAll() ([]model.ExpenseCategory, error)
	FindByID(id string) (*model.ExpenseCategory, error)
	FindByName(name string) (*model.ExpenseCategory, error)
}

type expenseCategoryRepository struct {
	db *gorm.DB
}

func NewExpenseCategoryRepository(db *gorm.DB) ExpenseCategoryRepository {
	return &expenseCategoryRepository{db}
}

func (r *expenseCategoryRepository) Create(category *model.ExpenseCategory) error {
	return r.db.Create(category).Error
}

func (r *expenseCategoryRepository) GetAll() ([]model.ExpenseCategory, error) {
	var categories []model.ExpenseCategory
	err := r.db.Order("created_at asc").Find(&categories).Error
	return categories, err
}

func (r *expenseCategoryRepository) FindByID(id string) (*model.ExpenseCategory, error) {
	var category model.ExpenseCategory
	err := r.db.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *expenseCategoryRepository) FindByName(name string) (*model.ExpenseCategory, error) {
	var category model.ExpenseCategory
	err := r.db.Where("name = ?", name).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}
