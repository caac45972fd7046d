package handler

import (
	"github.com/stretchr/testify/mock"

	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *model.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetAll() ([]model.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockLeaveTypeRepository is a mock implementation of repository.LeaveTypeRepository.
type MockLeaveTypeRepository struct {
	mock.Mock
}

func (m *MockLeaveTypeRepository) Create(leaveType *model.LeaveType) error {
	args := m.Called(leaveType)
	return args.Error(0)
}

func (m *MockLeaveTypeRepository) GetAll() ([]model.LeaveType, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) FindByID(id string) (*model.LeaveType, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) FindByName(name string) (*model.LeaveType, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveType), args.Error(1)
}

func (m *MockLeaveTypeRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockLeaveRequestRepository is a mock implementation of repository.LeaveRequestRepository.
type MockLeaveRequestRepository struct {
	mock.Mock
}

func (m *MockLeaveRequestRepository) Create(request *model.LeaveRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) FindByID(id string) (*model.LeaveRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) GetByUserID(userID string) ([]model.LeaveRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) GetAll() ([]model.LeaveRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) Update(request *model.LeaveRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

// MockExpenseCategoryRepository is a mock implementation of repository.ExpenseCategoryRepository.
type MockExpenseCategoryRepository struct {
	mock.Mock
}

func (m *MockExpenseCategoryRepository) Create(category *model.ExpenseCategory) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockExpenseCategoryRepository) GetAll() ([]model.ExpenseCategory, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindByID(id string) (*model.ExpenseCategory, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseCategoryRepository) FindByName(name string) (*model.ExpenseCategory, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExpenseCategory), args.Error(1)
}

// MockExpenseRequestRepository is a mock implementation of repository.ExpenseRequestRepository.
type MockExpenseRequestRepository struct {
	mock.Mock
}

func (m *MockExpenseRequestRepository) Create(request *model.ExpenseRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

func (m *MockExpenseRequestRepository) FindByID(id string) (*model.ExpenseRequest, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ExpenseRequest), args.Error(1)
}

func (m *MockExpenseRequestRepository) GetByUserID(userID string) ([]model.ExpenseRequest, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseRequest), args.Error(1)
}

func (m *MockExpenseRequestRepository) GetAll() ([]model.ExpenseRequest, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ExpenseRequest), args.Error(1)
}

func (m *MockExpenseRequestRepository) Update(request *model.ExpenseRequest) error {
	args := m.Called(request)
	return args.Error(0)
}

// MockAttendanceRepository is a mock implementation of repository.AttendanceRepository.
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(log *model.AttendanceLog) error {
	args := m.Called(log)
	return args.Error(0)
}

func (m *MockAttendanceRepository) FindByUserActionDate(userID, action, date string) (*model.AttendanceLog, error) {
	args := m.Called(userID, action, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AttendanceLog), args.Error(1)
}

func (m *MockAttendanceRepository) GetByUserID(userID string) ([]model.AttendanceLog, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceLog), args.Error(1)
}

func (m *MockAttendanceRepository) GetAll() ([]model.AttendanceLog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AttendanceLog), args.Error(1)
}

// MockReportRepository is a mock implementation of repository.ReportRepository.
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) LeaveCountsByStatus() ([]repository.StatusCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusCount), args.Error(1)
}

func (m *MockReportRepository) LeaveCountsByType() ([]repository.TypeCount, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TypeCount), args.Error(1)
}

func (m *MockReportRepository) ExpenseTotalsByStatus() ([]repository.StatusTotal, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.StatusTotal), args.Error(1)
}

func (m *MockReportRepository) ExpenseTotalsByCategory() ([]repository.CategoryTotal, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.CategoryTotal), args.Error(1)
}

// MockDepartmentRepository is a mock implementation of repository.DepartmentRepository.
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) Create(department *model.Department) error {
	args := m.Called(department)
	return args.Error(0)
}

func (m *MockDepartmentRepository) GetAll() ([]model.Department, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByID(id string) (*model.Department, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindByName(name string) (*model.Department, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Department), args.Error(1)
}
