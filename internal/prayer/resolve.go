package prayer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Tiliavir/hyprkit/internal/model"
	"github.com/Tiliavir/hyprkit/internal/storage"
	"github.com/Tiliavir/hyprkit/internal/timecalc"
)

// Fetcher retrieves today's schedule from a remote source.
type Fetcher interface {
	Fetch(ctx context.Context) (model.Schedule, error)
}

// Resolver ties a Fetcher to a cache Store and produces a status record.
type Resolver struct {
	Fetcher Fetcher
	Store   storage.Store
	Logger  *zap.Logger
	// Now defaults to time.Now.
	Now       func() time.Time
	Countdown bool
}

// Schedule makes one live fetch attempt and falls back to the cached
// schedule on any error. A successful fetch overwrites the cache. ok is false
// when neither source produced a schedule.
func (r *Resolver) Schedule(ctx context.Context) (model.Schedule, bool) {
	log := r.logger()

	s, err := r.Fetcher.Fetch(ctx)
	if err == nil {
		if err := r.Store.Save(s); err != nil {
			log.Warn("could not update prayer times cache", zap.Error(err))
		}
		return s, true
	}
	log.Warn("prayer times fetch failed, using cache", zap.Error(err))

	cached, found, err := r.Store.Load()
	if err != nil {
		log.Warn("prayer times cache unreadable", zap.Error(err))
		return model.Schedule{}, false
	}
	if !found || len(cached.Events) == 0 {
		log.Debug("no cached prayer times")
		return model.Schedule{}, false
	}
	return cached, true
}

// Resolve returns the record to print: the formatted schedule, or ErrorRecord.
func (r *Resolver) Resolve(ctx context.Context) model.StatusRecord {
	s, ok := r.Schedule(ctx)
	if !ok {
		return ErrorRecord()
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	clock := timecalc.Clock(now())

	current, next := Select(s, clock)
	r.logger().Debug("selected prayer",
		zap.String("now", clock),
		zap.String("current", current.Name),
		zap.String("next", next.Name))

	return Format(s, current, next, FormatOptions{Countdown: r.Countdown, Now: clock})
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
