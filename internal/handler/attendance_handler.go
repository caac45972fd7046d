package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"hrms-backend/internal/apperrors"
	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
	"hrms-backend/internal/repository"
)

type AttendanceHandler struct {
	repo     repository.AttendanceRepository
	userRepo repository.UserRepository
}

func NewAttendanceHandler(repo repository.AttendanceRepository, userRepo repository.UserRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, userRepo: userRepo}
}

type LogAttendanceRequest struct {
	Action   string `json:"action"`
	Location string `json:"location"`
}

func (h *AttendanceHandler) Log(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var req LogAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if !model.ValidAction(req.Action) {
		return apperrors.Handle(c, apperrors.ErrInvalidAction)
	}

	// 1. At most one log per (user, action, calendar day)
	now := time.Now()
	today := now.Format("2006-01-02")
	if _, err := h.repo.FindByUserActionDate(actor.ID, req.Action, today); err == nil {
		return apperrors.Handle(c, apperrors.ErrDuplicateAttendance)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Handle(c, err)
	}

	// 2. Append the log
	log := model.AttendanceLog{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		Action:    req.Action,
		Timestamp: now.UTC(),
		Location:  req.Location,
		Date:      today,
	}
	if err := h.repo.Create(&log); err != nil {
		// Lost race between the pre-check and the insert; the unique
		// index keeps the invariant
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Handle(c, apperrors.ErrDuplicateAttendance)
		}
		return apperrors.Handle(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Attendance logged successfully",
		"log_id":  log.ID,
	})
}

func (h *AttendanceHandler) Status(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)
	today := time.Now().Format("2006-01-02")

	// Check-in and check-out are looked up independently; the absence of
	// one does not block the other
	response := fiber.Map{
		"checked_in":     false,
		"checked_out":    false,
		"check_in_time":  nil,
		"check_out_time": nil,
	}
	if checkIn, err := h.repo.FindByUserActionDate(actor.ID, model.ActionCheckIn, today); err == nil {
		response["checked_in"] = true
		response["check_in_time"] = checkIn.Timestamp
	}
	if checkOut, err := h.repo.FindByUserActionDate(actor.ID, model.ActionCheckOut, today); err == nil {
		response["checked_out"] = true
		response["check_out_time"] = checkOut.Timestamp
	}

	return c.JSON(response)
}

// AttendanceLogResponse is an attendance log enriched with the user's
// display name for the all-users view.
type AttendanceLogResponse struct {
	model.AttendanceLog
	UserName string `json:"user_name"`
}

func (h *AttendanceHandler) History(c *fiber.Ctx) error {
	actor := middleware.CurrentUser(c)

	var logs []model.AttendanceLog
	var err error
	if actor.Role == model.RoleEmployee {
		logs, err = h.repo.GetByUserID(actor.ID)
	} else {
		logs, err = h.repo.GetAll()
	}
	if err != nil {
		return apperrors.Handle(c, err)
	}

	users, err := h.userRepo.GetAll()
	if err != nil {
		return apperrors.Handle(c, err)
	}
	userNames := make(map[string]string, len(users))
	for _, user := range users {
		userNames[user.ID] = user.FullName
	}

	response := make([]AttendanceLogResponse, 0, len(logs))
	for _, log := range logs {
		response = append(response, AttendanceLogResponse{
			AttendanceLog: log,
			UserName:      userNames[log.UserID],
		})
	}
	return c.JSON(response)
}
