package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms-backend/internal/auth"
	"hrms-backend/internal/handler"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/repository"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, tokens *auth.TokenService) {
	userRepo := repository.NewUserRepository(db)
	hdl := handler.NewAuthHandler(userRepo, tokens)

	api := app.Group("/api/auth")

	api.Post("/register", hdl.Register)
	api.Post("/login", hdl.Login)
	api.Get("/me", middleware.Auth(tokens, userRepo), hdl.Me)
}
