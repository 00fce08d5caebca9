package main

import (
	"context"
	"errors"
	"os"

	"github.com/PaperMC/website/internal/application"
	"github.com/PaperMC/website/internal/cache"
	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/db"
	"github.com/PaperMC/website/internal/interfaces/rest"
	"github.com/PaperMC/website/internal/logger"
	"github.com/PaperMC/website/internal/pkg/restserver"
	"github.com/PaperMC/website/internal/site"
	"github.com/PaperMC/website/internal/vercomp"
	"github.com/PaperMC/website/internal/view"
	"github.com/PaperMC/website/internal/wire"
	"github.com/jessevdk/go-flags"
	"github.com/juju/clock"
	"go.uber.org/zap"

	_ "github.com/PaperMC/website/internal/banner"
)

type options struct {
	Config string `short:"c" long:"config" description:"Path to the config file, config.yaml in . or ./config when empty"`
	Port   int    `short:"p" long:"port" description:"Port to listen on, overrides server.port"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	conf := setUpConfigAndLog(opts)

	rdb, err := db.NewRedis(conf)
	if err != nil {
		zap.L().Fatal("failed to connect to redis",
			zap.Error(err),
		)
	}

	content, err := site.Default()
	if err != nil {
		zap.L().Fatal("failed to load site content",
			zap.Error(err),
		)
	}

	cg, err := cache.NewReleaseCacheGroup(conf)
	if err != nil {
		zap.L().Fatal("failed to create release cache",
			zap.Error(err),
		)
	}

	// deps
	var (
		verComparator = vercomp.NewComparator()
		engine        = view.NewEngine()
	)
	if err := engine.Load(); err != nil {
		zap.L().Fatal("failed to load templates",
			zap.Error(err),
		)
	}

	handlerSet, err := wire.NewHandlerSet(zap.L(), conf, content, clock.WallClock, rdb, cg, verComparator)
	if err != nil {
		zap.L().Fatal("failed to build handlers",
			zap.Error(err),
		)
	}

	router := rest.NewRouter(engine, content)
	rest.InitRoutes(router, handlerSet)

	app := application.New(zap.L())
	app.WithShutdownTimeout(conf.Server.ShutdownTimeout)
	app.AddAdapter(restserver.NewAdapter(router, conf.Server.Port))
	if rdb != nil {
		app.AddAdapter(cache.NewEvictSubscriber(zap.L(), rdb, cg, conf.Redis.EvictChannel))
	}

	zap.L().Info("starting server",
		zap.Int("port", conf.Server.Port),
		zap.String("upstream", conf.Upstream.BaseURL),
		zap.Bool("redis", rdb != nil),
	)
	app.Run(context.Background())
}

func setUpConfigAndLog(opts options) *config.Config {
	config.GConfig = config.New(opts.Config)
	if opts.Port > 0 {
		config.GConfig.Server.Port = opts.Port
	}
	zap.ReplaceGlobals(logger.New(config.GConfig))
	config.Watch()
	return config.GConfig
}
