package repo

import (
	"context"
	"strings"
	"time"

	"github.com/juju/clock"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const visitorQueue = 100

type visit struct {
	project string
	ip      string
	at      time.Time
}

// Visitors counts the distinct visitors of each project's download page per
// day in a Redis HyperLogLog.
type Visitors struct {
	logger *zap.Logger
	clock  clock.Clock
	ch     chan visit
}

// VisitorKey is the HyperLogLog holding the distinct visitors of a project's
// download page on the day of at.
func VisitorKey(project string, at time.Time) string {
	return strings.Join([]string{
		"visitors",
		project,
		at.UTC().Format(time.DateOnly),
	}, ":")
}

// NewVisitors returns a recorder writing to rdb. Recording is a no-op when
// rdb is nil.
func NewVisitors(logger *zap.Logger, clk clock.Clock, rdb *redis.Client) *Visitors {
	v := &Visitors{
		logger: logger,
		clock:  clk,
	}
	if rdb == nil {
		return v
	}

	v.ch = make(chan visit, visitorQueue)
	go func() {
		for vis := range v.ch {
			_, err := rdb.PFAdd(context.Background(), VisitorKey(vis.project, vis.at), vis.ip).Result()
			if err != nil {
				logger.Warn("Update visitors error",
					zap.String("project", vis.project),
					zap.Error(err),
				)
			}
		}
	}()
	return v
}

// Record queues a visit of ip to project. Visits are dropped rather than
// delaying the request when the queue is full.
func (v *Visitors) Record(project, ip string) {
	if v.ch == nil {
		return
	}
	select {
	case v.ch <- visit{
		project: strings.Clone(project),
		ip:      strings.Clone(ip),
		at:      v.clock.Now(),
	}:
	default:
	}
}
