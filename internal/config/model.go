package config

import "time"

type (
	Config struct {
		Server   ServerConfig   `mapstructure:"server"`
		Log      LogConfig      `mapstructure:"log"`
		Upstream UpstreamConfig `mapstructure:"upstream"`
		Cache    CacheConfig    `mapstructure:"cache"`
		Redis    RedisConfig    `mapstructure:"redis"`
		Site     SiteConfig     `mapstructure:"site"`
	}
	ServerConfig struct {
		Port            int           `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	}

	// LogConfig writes to stdout, File additionally enables a rotated JSON
	// log file.
	LogConfig struct {
		Level      string `mapstructure:"level"`
		File       string `mapstructure:"file"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
	}

	// UpstreamConfig points at the downloads API that supplies project,
	// version and build metadata.
	UpstreamConfig struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	}

	CacheConfig struct {
		TTL      time.Duration `mapstructure:"ttl"`
		Capacity int64         `mapstructure:"capacity"`
	}

	// RedisConfig is optional, an empty Addr disables visitor stats and
	// cross-instance cache eviction.
	RedisConfig struct {
		Addr         string `mapstructure:"addr"`
		Username     string `mapstructure:"username"`
		Password     string `mapstructure:"password"`
		DB           int    `mapstructure:"db"`
		EvictChannel string `mapstructure:"evict_channel"`
	}

	SiteConfig struct {
		BaseURL          string `mapstructure:"base_url"`
		VerifyBuildOrder bool   `mapstructure:"verify_build_order"`
	}
)
