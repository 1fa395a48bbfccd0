package workspace

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
)

// Registry keeps one Workspace per user and drops those idle past ttl.
type Registry struct {
	src   ScheduleSource
	clock timezone.Clock
	ttl   time.Duration
	log   *zap.Logger

	mu    sync.Mutex
	items map[string]*Workspace
}

func NewRegistry(src ScheduleSource, clock timezone.Clock, ttl time.Duration, log *zap.Logger) *Registry {
	return &Registry{
		src:   src,
		clock: clock,
		ttl:   ttl,
		log:   logger.OrNop(log),
		items: make(map[string]*Workspace),
	}
}

// Get returns the workspace for key, creating it on first use.
func (r *Registry) Get(key string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.items[key]
	if !ok {
		w = New(r.src, r.clock, r.log.With(zap.String("workspace", key)))
		r.items[key] = w
	}
	w.touch()
	return w
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep removes idle workspaces and returns how many went.
func (r *Registry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for key, w := range r.items {
		if w.idleSince().Before(cutoff) {
			delete(r.items, key)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				r.log.Debug("swept idle workspaces", zap.Int("count", n), zap.Int("remaining", r.Len()))
			}
		}
	}
}
