package handler

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

type LeaveHandler struct {
	repo     repository.LeaveRequestRepository
	typeRepo repository.LeaveTypeRepository
	userRepo repository.UserRepository
}

func NewLeaveHandler(repo repository.LeaveRequestRepository, typeRepo repository.LeaveTypeRepository, userRepo repository.UserRepository) *LeaveHandler {
	return &LeaveHandler{repo: repo, typeRepo: typeRepo, userRepo: userRepo}
}

func (h *LeaveHandler) GetLeaveTypes(c *fiber.Ctx) error {
	types, err := h.typeRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	return c.JSON(types)
}

type CreateLeaveTypeRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	MaxDaysPerYear   int    `json:"max_days_per_year"`
	CarryForwardDays int    `json:"carry_forward_days"`
	IsPaid           *bool  `json:"is_paid"`
	RequiresApproval *bool  `json:"requires_approval"`
}

func (h *LeaveHandler) CreateLeaveType(c *fiber.Ctx) error {
	var req CreateLeaveTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}

	// Catalog names are unique
	if _, err := h.typeRepo.FindByName(req.Name); err == nil {
		return apperrors.Handle(c, apperrors.ErrDuplicateName)
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}
	requiresApproval := true
	if req.RequiresApproval != nil {
		requiresApproval = *req.RequiresApproval
	}

	leaveType := model.LeaveType{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Description:      req.Description,
		MaxDaysPerYear:   req.MaxDaysPerYear,
		CarryForwardDays: req.CarryForwardDays,
		IsPaid:           isPaid,
		RequiresApproval: requiresApproval,
		SupportsHalfDay:  true,
		SupportsWFH:      strings.EqualFold(req.Name, "work from home"),
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.typeRepo.Create(&leaveType); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Leave type created successfully",
		"type_id": leaveType.ID,
	})
}

type ApplyLeaveRequest struct {
	LeaveTypeID  string  `json:"leave_type_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	DurationType string  `json:"duration_type"`
	Reason       string  `json:"reason"`
	ManagerID    *string `json:"manager_id"`
}

func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req ApplyLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if !model.ValidDuration(req.DurationType) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "duration_type must be full_day, half_day or work_from_home"})
	}

	// The leave type must resolve at creation time
	if _, err := h.typeRepo.FindByID(req.LeaveTypeID); err != nil {
		return apperrors.Handle(c, apperrors.ErrLeaveTypeNotFound)
	}

	request := model.LeaveRequest{
		ID:           uuid.NewString(),
		UserID:       actor.ID,
		LeaveTypeID:  req.LeaveTypeID,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DurationType: req.DurationType,
		Reason:       req.Reason,
		Status:       model.StatusPending,
		ManagerID:    req.ManagerID,
		AppliedAt:    time.Now().UTC(),
	}
	if err := h.repo.Create(&request); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message":    "Leave request submitted successfully",
		"request_id": request.ID,
	})
}

// LeaveRequestResponse is a leave request enriched with requester and
// catalog display fields for list views.
type LeaveRequestResponse struct {
	model.LeaveRequest
	UserName      string `json:"user_name"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeName string `json:"leave_type_name"`
}

func (h *LeaveHandler) List(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	// Employees see only their own requests; manager/hr/admin see all
	var requests []model.LeaveRequest
	var err error
	if actor.Role == model.RoleEmployee {
		requests, err = h.repo.GetByUserID(actor.ID)
	} else {
		requests, err = h.repo.GetAll()
	}
	if err != nil {
		return apperrors.Handle(c, err)
	}

	userNames, employeeIDs, err := h.userDisplayMaps()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	typeNames, err := h.typeNameMap()
	if err != nil {
		return apperrors.Handle(c, err)
	}

	response := make([]LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		response = append(response, LeaveRequestResponse{
			LeaveRequest:  request,
			UserName:      userNames[request.UserID],
			EmployeeID:    employeeIDs[request.UserID],
			LeaveTypeName: displayName(typeNames, request.LeaveTypeID),
		})
	}
	return c.JSON(response)
}

func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	status := c.Query("status")
	if !model.ValidDecision(status) {
		return apperrors.Handle(c, apperrors.ErrInvalidStatus)
	}

	request, err := h.repo.FindByID(c.Params("id"))
	if err != nil {
		return apperrors.Handle(c, apperrors.ErrRequestNotFound)
	}

	// Status, approver and timestamp are set together. A second decision
	// overwrites the first; rejecting transitions out of a terminal state
	// is an open stakeholder question (see DESIGN.md).
	now := time.Now().UTC()
	request.Status = status
	request.ApprovedBy = &actor.ID
	request.ApprovedAt = &now
	if err := h.repo.Update(request); err != nil {
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Leave request " + status,
	})
}

func (h *LeaveHandler) DeleteLeaveType(c *fiber.Ctx) error {
	if err := h.typeRepo.Delete(c.Params("id")); err != nil {
		return apperrors.Handle(c, apperrors.ErrLeaveTypeNotFound)
	}
	return c.JSON(fiber.Map{"message": "Leave type deleted successfully"})
}

func (h *LeaveHandler) userDisplayMaps() (map[string]string, map[string]string, error) {
	users, err := h.userRepo.GetAll()
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(users))
	employeeIDs := make(map[string]string, len(users))
	for _, user := range users {
		names[user.ID] = user.FullName
		employeeIDs[user.ID] = user.EmployeeID
	}
	return names, employeeIDs, nil
}

func (h *LeaveHandler) typeNameMap() (map[string]string, error) {
	types, err := h.typeRepo.GetAll()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(types))
	for _, leaveType := range types {
		names[leaveType.ID] = leaveType.Name
	}
	return names, nil
}

// displayName falls back to "Unknown" when the catalog entry was deleted
// after requests referencing it were created.
func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return "Unknown"
}
