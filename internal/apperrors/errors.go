package apperrors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrDuplicateEmail is returned when registering an already used email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("incorrect email or password")
	// ErrInvalidToken is returned for a missing, malformed or expired token.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrForbidden is returned when the actor's role is not permitted.
	ErrForbidden = errors.New("not authorized to perform this action")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrLeaveTypeNotFound is returned when a leave type id does not resolve.
	ErrLeaveTypeNotFound = errors.New("leave type not found")
	// ErrCategoryNotFound is returned when an expense category id does not resolve.
	ErrCategoryNotFound = errors.New("expense category not found")
	// ErrRequestNotFound is returned when a leave/expense request id does not resolve.
	ErrRequestNotFound = errors.New("request not found")
	// ErrDepartmentNotFound is returned when a department id does not resolve.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDuplicateName is returned when a catalog entry name is already taken.
	ErrDuplicateName = errors.New("name already exists")
	// ErrDuplicateAttendance is returned on a second same-day check-in or check-out.
	ErrDuplicateAttendance = errors.New("action already logged for today")
	// ErrInvalidStatus is returned for a decision outside approved/rejected.
	ErrInvalidStatus = errors.New("status must be approved or rejected")
	// ErrInvalidAction is returned for an attendance action outside check_in/check_out.
	ErrInvalidAction = errors.New("action must be check_in or check_out")
	// ErrInvalidFileType is returned when a receipt is neither an image nor a PDF.
	ErrInvalidFileType = errors.New("receipt must be an image or PDF file")
	// ErrInvalidRole is returned for an unknown role on registration.
	ErrInvalidRole = errors.New("invalid role")
)

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError pairs a domain error with its HTTP representation.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// MapToHTTP maps a domain error to its HTTP error.
func MapToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return &HTTPError{http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS"}
	case errors.Is(err, ErrInvalidToken):
		return &HTTPError{http.StatusUnauthorized, err.Error(), "INVALID_TOKEN"}
	case errors.Is(err, ErrForbidden):
		return &HTTPError{http.StatusForbidden, err.Error(), "FORBIDDEN"}
	case errors.Is(err, ErrUserNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "USER_NOT_FOUND"}
	case errors.Is(err, ErrLeaveTypeNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "LEAVE_TYPE_NOT_FOUND"}
	case errors.Is(err, ErrCategoryNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND"}
	case errors.Is(err, ErrRequestNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "REQUEST_NOT_FOUND"}
	case errors.Is(err, ErrDepartmentNotFound):
		return &HTTPError{http.StatusNotFound, err.Error(), "DEPARTMENT_NOT_FOUND"}
	case errors.Is(err, ErrDuplicateEmail):
		return &HTTPError{http.StatusBadRequest, err.Error(), "DUPLICATE_EMAIL"}
	case errors.Is(err, ErrDuplicateName):
		return &HTTPError{http.StatusBadRequest, err.Error(), "DUPLICATE_NAME"}
	case errors.Is(err, ErrDuplicateAttendance):
		return &HTTPError{http.StatusBadRequest, err.Error(), "DUPLICATE_ACTION"}
	case errors.Is(err, ErrInvalidStatus):
		return &HTTPError{http.StatusBadRequest, err.Error(), "INVALID_STATUS"}
	case errors.Is(err, ErrInvalidAction):
		return &HTTPError{http.StatusBadRequest, err.Error(), "INVALID_ACTION"}
	case errors.Is(err, ErrInvalidFileType):
		return &HTTPError{http.StatusBadRequest, err.Error(), "INVALID_FILE_TYPE"}
	case errors.Is(err, ErrInvalidRole):
		return &HTTPError{http.StatusBadRequest, err.Error(), "INVALID_ROLE"}
	default:
		return &HTTPError{http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR"}
	}
}

// Handle writes the mapped error response. Unauthenticated responses carry
// the WWW-Authenticate challenge required for bearer auth.
func Handle(c *fiber.Ctx, err error) error {
	httpErr := MapToHTTP(err)
	if httpErr.StatusCode == http.StatusUnauthorized {
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	}
	return c.Status(httpErr.StatusCode).JSON(ErrorResponse{Error: httpErr.Message, Code: httpErr.Code})
}
