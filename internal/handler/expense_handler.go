package handler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

type ExpenseHandler struct {
	repo         repository.ExpenseRequestRepository
	categoryRepo repository.ExpenseCategoryRepository
	userRepo     repository.UserRepository
	uploadDir    string
}

func NewExpenseHandler(repo repository.ExpenseRequestRepository, categoryRepo repository.ExpenseCategoryRepository, userRepo repository.UserRepository, uploadDir string) *ExpenseHandler {
	return &ExpenseHandler{repo: repo, categoryRepo: categoryRepo, userRepo: userRepo, uploadDir: uploadDir}
}

func (h *ExpenseHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	return c.JSON(categories)
}

type SubmitExpenseRequest struct {
	CategoryID  string  `json:"category_id"`
	Amount      float64 `json:"amount"`
	ExpenseDate string  `json:"expense_date"`
	Description string  `json:"description"`
	ManagerID   *string `json:"manager_id"`
}

func (h *ExpenseHandler) Submit(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req SubmitExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if req.Amount <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "amount must be positive"})
	}

	// The category must resolve at creation time
	if _, err := h.categoryRepo.FindByID(req.CategoryID); err != nil {
		return apperrors.Handle(c, apperrors.ErrCategoryNotFound)
	}

	request := model.ExpenseRequest{
		ID:          uuid.NewString(),
		UserID:      actor.ID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
		Description: req.Description,
		Status:      model.StatusPending,
		ManagerID:   req.ManagerID,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.repo.Create(&request); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Expense request submitted successfully",
		"request_id": request.ID,
	})
}

// ExpenseRequestResponse is an expense request enriched with requester and
// category display fields for list views.
type ExpenseRequestResponse struct {
	model.ExpenseRequest
	UserName     string `json:"user_name"`
	EmployeeID   string `json:"employee_id"`
	CategoryName string `json:"category_name"`
}

func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var requests []model.ExpenseRequest
	var err error
	if actor.Role == model.RoleEmployee {
		requests, err = h.repo.GetByUserID(actor.ID)
	} else {
		requests, err = h.repo.GetAll()
	}
	if err != nil {
		return apperrors.Handle(c, err)
	}

	users, err := h.userRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	userNames := make(map[string]string, len(users))
	employeeIDs := make(map[string]string, len(users))
	for _, user := range users {
		userNames[user.ID] = user.FullName
		employeeIDs[user.ID] = user.EmployeeID
	}

	categories, err := h.categoryRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	categoryNames := make(map[string]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	response := make([]ExpenseRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, ExpenseRequestResponse{
			ExpenseRequest: request,
			UserName:       userNames[request.UserID],
			EmployeeID:     employeeIDs[request.UserID],
			CategoryName:   displayName(categoryNames, request.CategoryID),
		})
	}
	return c.JSON(response)
}

func (h *ExpenseHandler) Decide(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	status := c.Query("status")
	if !model.ValidDecision(status) {
		return apperrors.Handle(c, apperrors.ErrInvalidStatus)
	}

	request, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return apperrors.Handle(c, apperrors.ErrRequestNotFound)
	}

	now := time.Now().UTC()
	request.Status = status
	request.ApprovedBy = &actor.ID
	request.ApprovedAt = &now
	if err := h.repo.Update(request); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Expense request " + status,
	})
}

func (h *ExpenseHandler) UploadReceipt(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	// The expense must exist and belong to the caller
	request, err := h.repo.FindByID(c.Params("id"))
	if err != nil || request.UserID != actor.ID {
		return apperrors.Handle(c, apperrors.ErrRequestNotFound)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "receipt file is required"})
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") && contentType != "application/pdf" {
		return apperrors.Handle(c, apperrors.ErrInvalidFileType)
	}

	receiptDir := filepath.Join(h.uploadDir, "receipts")
	if err := os.MkdirAll(receiptDir, 0o755); err != nil {
		return apperrors.Handle(c, err)
	}

	filename := fmt.Sprintf("%s_%d%s", request.ID, time.Now().Unix(), filepath.Ext(file.Filename))
	if err := c.SaveFile(file, filepath.Join(receiptDir, filename)); err != nil {
		return apperrors.Handle(c, err)
	}

	// Store the retrievable path, served statically under /uploads
	request.ReceiptPath = "/uploads/receipts/" + filename
	if err := h.repo.Update(request); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message":      "Receipt uploaded successfully",
		"receipt_path": request.ReceiptPath,
	})
}
