package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repository.NewUserRepository(db)
	reportRepo := repository.NewReportRepository(db)
	typeRepo := repository.NewLeaveTypeRepository(db)
	categoryRepo := repository.NewExpenseCategoryRepository(db)
	hdl := handler.NewReportHandler(reportRepo, typeRepo, categoryRepo)

	api := app.Group("/api/reports", middleware.Auth(tokens, userRepo))

	api.Get("/leave-summary", hdl.LeaveSummary)
	api.Get("/expense-summary", hdl.ExpenseSummary)
}
