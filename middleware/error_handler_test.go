package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	filestorage "talent-tracker-backend/lib/file-storage"
	apimodels "talent-tracker-backend/models/api"
)

func newTestApp(isDevelopment bool) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(isDevelopment)})
	app.Use(fiberRecover.New())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("db password leaked") })
	app.Get("/panic", func(c *fiber.Ctx) error { panic("unexpected") })
	app.Post("/upload", func(c *fiber.Ctx) error { return fiber.ErrRequestEntityTooLarge })
	app.Get("/bad", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusBadRequest, "bad input") })
	app.Use(NotFound())
	return app
}

func readResponse(t *testing.T, app *fiber.App, method, path string) (int, apimodels.Response) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	result := apimodels.Response{}
	require.NoError(t, json.Unmarshal(body, &result))
	return resp.StatusCode, result
}

func TestErrorHandler(t *testing.T) {
	t.Run(`production hides error detail`, func(t *testing.T) {
		status, resp := readResponse(t, newTestApp(false), fiber.MethodGet, "/boom")
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.False(t, resp.Success)
		require.Equal(t, "Internal server error", resp.Message)
		require.Equal(t, "Something went wrong", resp.Error)
	})

	t.Run(`development shows error detail`, func(t *testing.T) {
		status, resp := readResponse(t, newTestApp(true), fiber.MethodGet, "/boom")
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.Equal(t, "db password leaked", resp.Error)
	})

	t.Run(`panic becomes 500`, func(t *testing.T) {
		status, resp := readResponse(t, newTestApp(false), fiber.MethodGet, "/panic")
		require.Equal(t, fiber.StatusInternalServerError, status)
		require.False(t, resp.Success)
	})

	t.Run(`client errors keep status`, func(t *testing.T) {
		status, resp := readResponse(t, newTestApp(false), fiber.MethodGet, "/bad")
		require.Equal(t, fiber.StatusBadRequest, status)
		require.Equal(t, "bad input", resp.Message)
	})

	t.Run(`oversized body is a rejected file`, func(t *testing.T) {
		status, resp := readResponse(t, newTestApp(false), fiber.MethodPost, "/upload")
		require.Equal(t, fiber.StatusBadRequest, status)
		require.False(t, resp.Success)
		require.Equal(t, filestorage.MsgUploadFailed, resp.Message)
		require.Equal(t, filestorage.ErrTooLarge.Error(), resp.Error)
	})

	t.Run(`unknown route check`, func(t *testing.T) {
		status, resp := readResponse(t, newTestApp(false), fiber.MethodDelete, "/nowhere")
		require.Equal(t, fiber.StatusNotFound, status)
		require.Equal(t, "Route not found", resp.Message)
		require.Equal(t, "Cannot DELETE /nowhere", resp.Error)
	})
}
