package config

const (
	DefaultPort       = 8000
	DefaultConfigName = "config"
	DefaultConfigType = "yaml"
	EnvPrefix         = "PAPERMC"

	DefaultAPIBase        = "https://api.papermc.io"
	DefaultRequestTimeout = "10s"
	DefaultCacheTTL       = "5m"
	DefaultLogLevel       = "info"
	DefaultShutdown       = "5s"
)

const (
	ServerPortKey        = "server.port"
	ServerShutdownKey    = "server.shutdown_timeout"
	LogLevelKey          = "log.level"
	UpstreamBaseKey      = "upstream.base_url"
	UpstreamTimeoutKey   = "upstream.timeout"
	CacheTTLKey          = "cache.ttl"
	CacheCapacityKey     = "cache.capacity"
	SiteBaseURLKey       = "site.base_url"
	SiteVerifyOrderKey   = "site.verify_build_order"
	RedisEvictChannelKey = "redis.evict_channel"
)
