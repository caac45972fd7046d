package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

type AdminHandler struct {
	userRepo repository.UserRepository
	deptRepo repository.DepartmentRepository
}

func NewAdminHandler(userRepo repository.UserRepository, deptRepo repository.DepartmentRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo, deptRepo: deptRepo}
}

func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) GetDepartments(c *fiber.Ctx) error {
	departments, err := h.deptRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	return c.JSON(departments)
}

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id"`
}

func (h *AdminHandler) CreateDepartment(c *fiber.Ctx) error {
	var req CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	if _, err := h.deptRepo.FindByName(req.Name); err == nil {
		return apperrors.Handle(c, apperrors.ErrDuplicateName)
	}

	department := model.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.deptRepo.Create(&department); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Department created successfully",
		"dept_id": department.ID,
	})
}
