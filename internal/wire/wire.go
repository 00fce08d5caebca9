//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/PaperMC/website/internal/cache"
	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/interfaces/rest/handler"
	"github.com/PaperMC/website/internal/provider"
	"github.com/PaperMC/website/internal/site"
	"github.com/PaperMC/website/internal/vercomp"
	"github.com/google/wire"
	"github.com/juju/clock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type HandlerSet struct {
	PageHandler        *handler.PageHandler
	DownloadHandler    *handler.DownloadHandler
	MetricsHandler     *handler.MetricsHandler
	HealthCheckHandler *handler.HealthCheckHandler
}

func NewHandlerSet(
	logger *zap.Logger,
	conf *config.Config,
	content *site.Content,
	clk clock.Clock,
	rdb *redis.Client,
	cg *cache.ReleaseCacheGroup,
	verComparator *vercomp.VersionComparator,
) (*HandlerSet, error) {
	panic(wire.Build(
		provider.RepoSet,
		provider.LogicSet,
		provider.HandlerSet,
		wire.Struct(new(HandlerSet), "*"),
	))
}
