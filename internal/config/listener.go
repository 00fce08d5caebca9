package config

import (
	"log"
	"reflect"

	"github.com/fsnotify/fsnotify"
)

type KeyListener struct {
	Key      string
	Listener func(any)
}

var listeners []KeyListener

// RegisterKeyListener adds l to the listeners notified by Watch.
func RegisterKeyListener(l KeyListener) {
	mu.Lock()
	defer mu.Unlock()
	listeners = append(listeners, l)
}

// Watch reloads the config file on change and notifies the listeners whose
// key changed value.
func Watch() {
	if vp == nil || vp.ConfigFileUsed() == "" {
		return
	}
	vp.OnConfigChange(func(e fsnotify.Event) {
		triggerUpdate()
	})
	vp.WatchConfig()
}

func triggerUpdate() {
	mu.Lock()
	defer mu.Unlock()

	var (
		origin      = *GConfig
		originValue = make([]any, 0, len(listeners))
	)
	for _, l := range listeners {
		originValue = append(originValue, reflectValue(&origin, l.Key))
	}

	var next = new(Config)
	if err := vp.Unmarshal(next); err != nil {
		log.Printf("failed to dynamic update config file, %v\n", err)
		return
	}
	GConfig = next

	for i, l := range listeners {
		val := vp.Get(l.Key)
		if !reflect.DeepEqual(val, originValue[i]) && l.Listener != nil {
			l.Listener(val)
		}
	}
}

func reflectValue(c *Config, key string) any {
	switch key {
	case LogLevelKey:
		return c.Log.Level
	case SiteVerifyOrderKey:
		return c.Site.VerifyBuildOrder
	default:
		return nil
	}
}
