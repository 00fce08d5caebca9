package db

import (
	"context"
	"time"

	"github.com/PaperMC/website/internal/config"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// NewRedis connects to the configured Redis. Redis is optional: without an
// address it returns a nil client and no error.
func NewRedis(conf *config.Config) (*redis.Client, error) {
	if conf.Redis.Addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Redis.Addr,
		DB:       conf.Redis.DB,
		Username: conf.Redis.Username,
		Password: conf.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, errors.WithMessage(err, "failed to ping redis")
	}
	return rdb, nil
}
