package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals(RequestIDKey).(string)
		return c.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	id := resp.Header.Get(fiber.HeaderXRequestID)
	require.Len(t, id, 27)
	require.Equal(t, id, string(body))

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "upstream-id")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "upstream-id", resp.Header.Get(fiber.HeaderXRequestID))
}

func newETagApp() *fiber.App {
	app := fiber.New()
	app.Use(NewETag())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("hello")
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString("missing")
	})
	return app
}

func TestETag(t *testing.T) {
	app := newETagApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tag := resp.Header.Get(fiber.HeaderETag)
	require.True(t, strings.HasPrefix(tag, `W/"`), tag)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, tag)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotModified, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, `W/"stale"`)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestETag_IfNoneMatchList(t *testing.T) {
	app := newETagApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	tag := resp.Header.Get(fiber.HeaderETag)
	require.NotEmpty(t, tag)

	cases := []struct {
		name   string
		match  string
		status int
	}{
		{"current tag last in list", `W/"other", ` + tag, fiber.StatusNotModified},
		{"strong form of current tag", `"other",` + strings.TrimPrefix(tag, "W/"), fiber.StatusNotModified},
		{"any", "*", fiber.StatusNotModified},
		{"only stale tags", `W/"other", W/"older"`, fiber.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			req.Header.Set(fiber.HeaderIfNoneMatch, tc.match)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if tc.status == fiber.StatusNotModified {
				require.Empty(t, body)
			} else {
				require.Equal(t, "hello", string(body))
			}
		})
	}
}

func TestETag_SkipsErrors(t *testing.T) {
	app := newETagApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Empty(t, resp.Header.Get(fiber.HeaderETag))
}
