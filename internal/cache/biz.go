package cache

import (
	"context"
	"strings"
	"sync"

	"github.com/PaperMC/website/internal/config"
	"github.com/PaperMC/website/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ReleaseCacheGroup struct {
	// values are shared between readers, don't modify them

	// key: projectId
	ProjectCache *Cache[*model.Project]
	// key: projectId:version
	BuildsCache *Cache[[]model.Build]
}

func (g *ReleaseCacheGroup) GetCacheKey(elems ...string) string {
	return strings.Join(elems, ":")
}

func (g *ReleaseCacheGroup) EvictAll() {
	g.ProjectCache.EvictAll()
	g.BuildsCache.EvictAll()
}

// EvictProject drops a project and the builds of its cached latest version.
func (g *ReleaseCacheGroup) EvictProject(id string) {
	if p, ok := g.ProjectCache.Get(id); ok && p != nil {
		g.BuildsCache.Delete(g.GetCacheKey(id, p.LatestVersion))
	}
	g.ProjectCache.Delete(id)
}

// Evict handles one eviction message: a project id evicts that project, an
// empty payload or "*" evicts everything.
func (g *ReleaseCacheGroup) Evict(payload string) {
	payload = strings.TrimSpace(payload)
	if payload == "" || payload == EvictAllPayload {
		g.EvictAll()
		return
	}
	g.EvictProject(payload)
}

func NewReleaseCacheGroup(conf *config.Config) (*ReleaseCacheGroup, error) {
	projects, err := NewCache[*model.Project](conf.Cache.Capacity, conf.Cache.TTL)
	if err != nil {
		return nil, err
	}
	builds, err := NewCache[[]model.Build](conf.Cache.Capacity, conf.Cache.TTL)
	if err != nil {
		return nil, err
	}
	return &ReleaseCacheGroup{
		ProjectCache: projects,
		BuildsCache:  builds,
	}, nil
}

const EvictAllPayload = "*"

// EvictSubscriber evicts the group whenever a message is published on the
// eviction channel, letting a release pipeline invalidate every instance.
type EvictSubscriber struct {
	logger  *zap.Logger
	rdb     *redis.Client
	group   *ReleaseCacheGroup
	channel string

	mu      sync.Mutex
	sub     *redis.PubSub
	stopped bool
}

func NewEvictSubscriber(logger *zap.Logger, rdb *redis.Client, group *ReleaseCacheGroup, channel string) *EvictSubscriber {
	return &EvictSubscriber{
		logger:  logger,
		rdb:     rdb,
		group:   group,
		channel: channel,
	}
}

// Start blocks until Stop closes the subscription. It returns at once when
// Stop already ran.
func (s *EvictSubscriber) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.sub = s.rdb.Subscribe(ctx, s.channel)
	ch := s.sub.Channel()
	s.mu.Unlock()

	for msg := range ch {
		s.group.Evict(msg.Payload)
		s.logger.Info("cache evict",
			zap.String("channel", msg.Channel),
			zap.String("payload", msg.Payload),
		)
	}
	return nil
}

func (s *EvictSubscriber) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.sub == nil {
		return nil
	}
	return s.sub.Close()
}
