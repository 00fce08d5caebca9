package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	GConfig *Config

	vp *viper.Viper
	mu sync.Mutex
)

// New loads the configuration from path, or from config.yaml in the working
// directory or ./config when path is empty. A missing file is not fatal,
// every key has a default and can be set from PAPERMC_* environment variables.
func New(path string) *Config {
	v, c, err := Load(path)
	if err != nil {
		log.Fatalf("Failed to load config, %v", err)
	}
	vp = v
	return c
}

func Load(path string) (*viper.Viper, *Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType(DefaultConfigType)
		v.AddConfigPath(".")
		v.AddConfigPath("config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, nil, err
		}
		log.Printf("No config file found, using defaults")
	}

	var c = new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, nil, err
	}
	return v, c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ServerPortKey, DefaultPort)
	v.SetDefault(ServerShutdownKey, DefaultShutdown)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(UpstreamBaseKey, DefaultAPIBase)
	v.SetDefault(UpstreamTimeoutKey, DefaultRequestTimeout)
	v.SetDefault(CacheTTLKey, DefaultCacheTTL)
	v.SetDefault(CacheCapacityKey, 1000)
	v.SetDefault(SiteBaseURLKey, "https://papermc.io")
	v.SetDefault(SiteVerifyOrderKey, true)
	v.SetDefault(RedisEvictChannelKey, "evict")
}
