package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repository.NewUserRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewAttendanceHandler(attendanceRepo, userRepo)

	api := app.Group("/api/attendance", middleware.Auth(tokens, userRepo))

	api.Post("/log", hdl.Log)
	api.Get("/logs", hdl.History)
	api.Get("/status", hdl.Status)
}
