package handler

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
)

func setupAdminApp(actor *model.User, userRepo *MockUserRepository, deptRepo *MockDepartmentRepository) *fiber.App {
	hdl := NewAdminHandler(userRepo, deptRepo)

	app := fiber.New()
	api := app.Group("/api/admin", asUser(actor))
	api.Get("/users", hdl.GetUsers)
	api.Get("/departments", hdl.GetDepartments)
	api.Post("/departments", middleware.Role(model.RoleAdmin, model.RoleHR), hdl.CreateDepartment)
	return app
}

func TestCreateDepartment(t *testing.T) {
	deptRepo := new(MockDepartmentRepository)
	deptRepo.On("FindByName", "Engineering").Return(nil, gorm.ErrRecordNotFound)

	var created *model.Department
	deptRepo.On("Create", mock.AnythingOfType("*model.Department")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*model.Department)
	}).Return(nil)

	admin := &model.User{ID: "root", Role: model.RoleAdmin}
	app := setupAdminApp(admin, new(MockUserRepository), deptRepo)
	resp := performJSON(t, app, http.MethodPost, "/api/admin/departments", fiber.Map{
		"name":        "Engineering",
		"description": "Product engineering",
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, created)
	assert.Equal(t, "Engineering", created.Name)
	assert.NotEmpty(t, created.ID)
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	deptRepo := new(MockDepartmentRepository)
	deptRepo.On("FindByName", "Administration").Return(&model.Department{ID: "dept_001", Name: "Administration"}, nil)

	admin := &model.User{ID: "root", Role: model.RoleAdmin}
	app := setupAdminApp(admin, new(MockUserRepository), deptRepo)
	resp := performJSON(t, app, http.MethodPost, "/api/admin/departments", fiber.Map{
		"name": "Administration",
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	deptRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateDepartmentRequiresAdminOrHR(t *testing.T) {
	deptRepo := new(MockDepartmentRepository)

	app := setupAdminApp(manager("boss"), new(MockUserRepository), deptRepo)
	resp := performJSON(t, app, http.MethodPost, "/api/admin/departments", fiber.Map{
		"name": "Engineering",
	})

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	deptRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestGetUsersOmitsPasswordHash(t *testing.T) {
	userRepo := new(MockUserRepository)
	userRepo.On("GetAll").Return([]model.User{
		{ID: "u1", Email: "alice@co.com", PasswordHash: "secret-hash", Role: model.RoleEmployee},
	}, nil)

	admin := &model.User{ID: "root", Role: model.RoleAdmin}
	app := setupAdminApp(admin, userRepo, new(MockDepartmentRepository))
	resp := performJSON(t, app, http.MethodGet, "/api/admin/users", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	decodeBody(t, resp, &body)
	require.Len(t, body, 1)
	assert.NotContains(t, body[0], "password_hash")
	assert.Equal(t, "alice@co.com", body[0]["email"])
}
