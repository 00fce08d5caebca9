package provider

import (
	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/download"
	"github.com/PaperMC/website/internal/interfaces/rest/handler"
	"github.com/google/wire"
)

var HandlerSet = wire.NewSet(
	NewResolver,
	handler.NewPageHandler,
	handler.NewDownloadHandler,
	handler.NewMetricsHandler,
	handler.NewHealthCheckHandler,
)

// NewResolver builds download links against the configured downloads API.
func NewResolver(conf *config.Config) (*download.Resolver, error) {
	return download.NewResolver(conf.Upstream.BaseURL)
}
