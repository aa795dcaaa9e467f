package fiberlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func TestFiberLog(t *testing.T) {
	t.Run(`request id generated and logged`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{Logger: newTestLogger(buf), Tags: []string{TagStatus, TagMethod, TagPath, RequestID}}))
		app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.NoError(t, err)
		rid := resp.Header.Get(HeaderRequestID)
		require.NotEmpty(t, rid)

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "info", entry["level"])
		require.Equal(t, "/ping", entry[TagPath])
		require.Equal(t, rid, entry[RequestID])
		require.EqualValues(t, 200, entry[TagStatus])
	})

	t.Run(`incoming request id kept, errors logged with status`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{Logger: newTestLogger(buf), Tags: []string{TagStatus, RequestID}}))
		app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

		req := httptest.NewRequest(fiber.MethodGet, "/missing", nil)
		req.Header.Set(HeaderRequestID, "req-1")
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		require.Equal(t, "req-1", resp.Header.Get(HeaderRequestID))

		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		require.Equal(t, "warning", entry["level"])
		require.EqualValues(t, 404, entry[TagStatus])
	})

	t.Run(`multipart body not logged`, func(t *testing.T) {
		buf := &bytes.Buffer{}
		app := fiber.New()
		app.Use(New(Config{Logger: newTestLogger(buf), Tags: []string{TagBody}}))
		app.Post("/upload", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusCreated) })

		req := httptest.NewRequest(fiber.MethodPost, "/upload", strings.NewReader("--x\r\n"))
		req.Header.Set(fiber.HeaderContentType, "multipart/form-data; boundary=x")
		_, err := app.Test(req)
		require.NoError(t, err)
		require.NotContains(t, buf.String(), `"body"`)
	})

	require.Equal(t, "abc...", truncate("abcdef", 3))
	require.Equal(t, "abc", truncate("abc", 0))
}
