package handler

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/PaperMC/website/internal/pkg/errs"
	"github.com/PaperMC/website/internal/site"
	"github.com/PaperMC/website/internal/view"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newErrorApp(t *testing.T) *fiber.App {
	t.Helper()
	content, err := site.Default()
	require.NoError(t, err)

	app := fiber.New(fiber.Config{
		Views:        view.NewEngine(),
		ViewsLayout:  view.LayoutBase,
		ErrorHandler: NewErrorHandler(content),
	})
	for _, prefix := range []string{"/api", "/page"} {
		g := app.Group(prefix)
		g.Get("/biz", func(c *fiber.Ctx) error {
			return errs.ErrUpstreamUnavailable.Wrap(errors.New("status 500"))
		})
		g.Get("/wrapped", func(c *fiber.Ctx) error {
			return errors.WithMessage(errs.ErrProjectNotFound.WithDetails("folia"), "lookup")
		})
		g.Get("/fiber", func(c *fiber.Ctx) error {
			return fiber.ErrMethodNotAllowed
		})
		g.Get("/boom", func(c *fiber.Ctx) error {
			return errors.New("boom")
		})
	}
	return app
}

func TestError(t *testing.T) {
	app := newErrorApp(t)

	cases := []struct {
		path        string
		status      int
		contentType string
		body        string
	}{
		{"/api/biz", fiber.StatusBadGateway, fiber.MIMEApplicationJSON, `"code":8004`},
		{"/api/wrapped", fiber.StatusNotFound, fiber.MIMEApplicationJSON, `"data":"folia"`},
		{"/api/fiber", fiber.StatusMethodNotAllowed, fiber.MIMETextPlainCharsetUTF8, "Method Not Allowed"},
		{"/api/boom", fiber.StatusInternalServerError, fiber.MIMEApplicationJSON, `"code":-1`},
		{"/page/biz", fiber.StatusBadGateway, fiber.MIMETextHTMLCharsetUTF8, "downloads api unavailable"},
		{"/page/wrapped", fiber.StatusNotFound, fiber.MIMETextHTMLCharsetUTF8, "project not found"},
		{"/page/fiber", fiber.StatusMethodNotAllowed, fiber.MIMETextHTMLCharsetUTF8, "<h1>405</h1>"},
		{"/page/boom", fiber.StatusInternalServerError, fiber.MIMETextHTMLCharsetUTF8, "unexpected error"},
		{"/nope", fiber.StatusNotFound, fiber.MIMETextHTMLCharsetUTF8, "<title>Not Found | "},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.path, nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
			require.Equal(t, tc.contentType, resp.Header.Get(fiber.HeaderContentType))
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			require.Contains(t, string(body), tc.body)
			require.NotContains(t, string(body), "boom")
		})
	}
}
