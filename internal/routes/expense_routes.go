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

func SetupExpenseRoutes(app *fiber.App, db *gorm.DB, tokens *auth.TokenService, uploadDir string) {
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewExpenseCategoryRepository(db)
	expenseRepo := repository.NewExpenseRequestRepository(db)
	hdl := handler.NewExpenseHandler(expenseRepo, categoryRepo, userRepo, uploadDir)

	api := app.Group("/api/expense", middleware.Auth(tokens, userRepo))

	api.Get("/categories", hdl.GetCategories)
	api.Post("/request", hdl.Submit)
	api.Get("/requests", hdl.List)
	api.Put("/requests/:id", middleware.Role(model.RoleManager, model.RoleAdmin), hdl.Decide)
	api.Post("/upload-receipt/:id", hdl.UploadReceipt)
}
