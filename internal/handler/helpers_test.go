package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"hrms-backend/internal/middleware"
	"hrms-backend/internal/model"
)

// asUser stands in for the Auth middleware in handler tests, injecting the
// actor directly into the request context.
func asUser(user *model.User) fiber.Handler {
	return func(c *fiber.Ctx) error {
		middleware.SetCurrentUser(c, user)
		return c.Next()
	}
}

func employee(id string) *model.User {
	return &model.User{ID: id, Email: id + "@co.com", FullName: "Test Employee", EmployeeID: "EMP100", Role: model.RoleEmployee, IsActive: true}
}

func manager(id string) *model.User {
	return &model.User{ID: id, Email: id + "@co.com", FullName: "Test Manager", EmployeeID: "EMP200", Role: model.RoleManager, IsActive: true}
}

func performJSON(t *testing.T, app *fiber.App, method, target string, payload interface{}) *http.Response {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
