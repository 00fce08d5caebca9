package rest

import (
	"net/http"
	"strings"

	"github.com/PaperMC/website/internal/interfaces/rest/handler"
	"github.com/PaperMC/website/internal/middleware"
	"github.com/PaperMC/website/internal/site"
	"github.com/PaperMC/website/internal/view"
	"github.com/PaperMC/website/internal/wire"
	"github.com/bytedance/sonic"
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"go.uber.org/zap"
)

const (
	AppName   = "papermc-website"
	BodyLimit = 64 * 1024

	assetsPrefix = "/assets"
	assetsMaxAge = 24 * 60 * 60
)

func NewRouter(views fiber.Views, content *site.Content) *fiber.App {

	router := fiber.New(fiber.Config{
		AppName:     AppName,
		BodyLimit:   BodyLimit,
		ProxyHeader: fiber.HeaderXForwardedFor,

		JSONEncoder: sonic.Marshal,
		JSONDecoder: sonic.Unmarshal,

		Views:       views,
		ViewsLayout: view.LayoutBase,

		ErrorHandler: handler.NewErrorHandler(content),
	})

	return router
}

func InitRoutes(router *fiber.App, handlerSet *wire.HandlerSet) {

	router.Use(middleware.NewRequestID())

	router.Use(fiberzap.New(fiberzap.Config{
		Logger: zap.L(),
		Fields: []string{"requestId", "ip", "latency", "status", "method", "url"},
		SkipURIs: []string{
			"/metrics",
			"/health",
		},
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), assetsPrefix)
		},
	}))

	router.Use(assetsPrefix, filesystem.New(filesystem.Config{
		Root:   http.FS(view.Assets()),
		MaxAge: assetsMaxAge,
	}))

	router.Use(middleware.NewETag())

	r := router.Group("/")

	handlerSet.PageHandler.Register(r)

	handlerSet.DownloadHandler.Register(r)

	handlerSet.MetricsHandler.Register(r)

	handlerSet.HealthCheckHandler.Register(r)
}
