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

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repository.NewUserRepository(db)
	typeRepo := repository.NewLeaveTypeRepository(db)
	leaveRepo := repository.NewLeaveRequestRepository(db)
	hdl := handler.NewLeaveHandler(leaveRepo, typeRepo, userRepo)

	api := app.Group("/api/leave", middleware.Auth(tokens, userRepo))

	api.Get("/types", hdl.GetLeaveTypes)
	api.Post("/types", middleware.Role(model.RoleAdmin, model.RoleHR), hdl.CreateLeaveType)
	api.Post("/request", hdl.Apply)
	api.Get("/requests", hdl.List)
	api.Put("/requests/:id", middleware.Role(model.RoleManager, model.RoleAdmin), hdl.Decide)
}
