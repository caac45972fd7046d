package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

func SetupAdminRoutes(app *fiber.App, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repository.NewUserRepository(db)
	deptRepo := repository.NewDepartmentRepository(db)
	typeRepo := repository.NewLeaveTypeRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	hdl := handler.NewAdminHandler(userRepo, deptRepo)
	leaveHdl := handler.NewLeaveHandler(leaveRepo, typeRepo, userRepo)

	api := app.Group("/api/admin", middleware.Auth(tokens, userRepo))

	api.Get("/users", hdl.GetUsers)
	api.Get("/departments", hdl.GetDepartments)
	api.Post("/departments", middleware.Role(model.RoleAdmin, model.RoleHR), hdl.CreateDepartment)
	api.Delete("/leave-types/:id", middleware.Role(model.RoleAdmin, model.RoleHR), leaveHdl.DeleteLeaveType)
}
