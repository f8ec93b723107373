package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"app error keeps message", NewAppError(500, "Error fetching freelancers", errors.New("dial tcp")), 500, "Error fetching freelancers"},
		{"app error default message", NewAppError(404, "", nil), 404, "Not Found"},
		{"app error without status", NewAppError(0, "x", nil), 500, "Internal Server Error"},
		{"fiber client error", fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed"), 405, "Method Not Allowed"},
		{"fiber server error hidden", fiber.NewError(fiber.StatusBadGateway, "upstream exploded"), 500, "Internal Server Error"},
		{"plain error hidden", errors.New("secret detail"), 500, "Internal Server Error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := normalizeError(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestErrorMiddleware_RecoversPanic(t *testing.T) {
	app := fiber.New()
	app.Use(NewErrorMiddleware(nil).Middleware())
	app.Get("/boom", func(c fiber.Ctx) error {
		panic("boom")
	})
	app.Get("/plain", func(c fiber.Ctx) error {
		return errors.New("leaky internal detail")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, string(body))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/plain", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "leaky")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewAppError(500, "msg", cause)
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "msg: cause", err.Error())

	var nilErr *AppError
	assert.Equal(t, "", nilErr.Error())
}
