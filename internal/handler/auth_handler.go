package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/auth"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

type AuthHandler struct {
	repo   repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthHandler(repo repository.UserRepository, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{repo: repo, tokens: tokens}
}

type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name"`
	EmployeeID   string `json:"employee_id"`
	DepartmentID string `json:"department_id"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "email and password are required"})
	}

	if req.Role == "" {
		req.Role = model.RoleEmployee
	}
	if !model.ValidRole(req.Role) {
		return apperrors.Handle(c, apperrors.ErrInvalidRole)
	}

	// 1. Reject duplicate emails up front
	if _, err := h.repo.FindByEmail(req.Email); err == nil {
		return apperrors.Handle(c, apperrors.ErrDuplicateEmail)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Handle(c, err)
	}

	// 2. Hash the password
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.Handle(c, err)
	}

	// 3. Store the user
	user := model.User{
		ID:            uuid.NewString(),
		Email:         req.Email,
		PasswordHash:  hash,
		FullName:      req.FullName,
		EmployeeID:    req.EmployeeID,
		DepartmentID:  req.DepartmentID,
		Role:          req.Role,
		Phone:         req.Phone,
		IsActive:      true,
		LeaveBalances: model.BalanceMap{},
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.repo.Create(&user); err != nil {
		// Lost race against a concurrent registration with the same email
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Handle(c, apperrors.ErrDuplicateEmail)
		}
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User registered successfully",
		"user_id": user.ID,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	// 1. Find user by email
	user, err := h.repo.FindByEmail(req.Email)
	if err != nil {
		return apperrors.Handle(c, apperrors.ErrInvalidCredentials)
	}

	// 2. Verify password against the stored hash
	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		return apperrors.Handle(c, apperrors.ErrInvalidCredentials)
	}

	// 3. Issue the bearer token
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
		"user": fiber.Map{
			"user_id":     user.ID,
			"email":       user.Email,
			"full_name":   user.FullName,
			"role":        user.Role,
			"employee_id": user.EmployeeID,
		},
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return apperrors.Handle(c, apperrors.ErrInvalidToken)
	}

	return c.JSON(fiber.Map{
		"user_id":     user.ID,
		"email":       user.Email,
		"full_name":   user.FullName,
		"role":        user.Role,
		"employee_id": user.EmployeeID,
	})
}
