package wizard

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/logger"
)

type session struct {
	ctrl     *Controller
	lastSeen time.Time
}

// Registry hands out one controller per session owner, hydrating it from
// the store the first time the owner shows up.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*session

	kv      service.KeyValueStore
	ids     profile.IDGenerator
	timeout time.Duration
	logger  logger.Logger
	now     func() time.Time
}

func NewRegistry(kv service.KeyValueStore, ids profile.IDGenerator, timeout time.Duration, log logger.Logger) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*session),
		kv:       kv,
		ids:      ids,
		timeout:  timeout,
		logger:   log,
		now:      time.Now,
	}
}

// Store returns the profile store of an owner without creating a session.
func (r *Registry) Store(ownerID uuid.UUID) *ProfileStore {
	return NewProfileStore(r.kv, ScopedKey(ownerID, NamespaceProfile), r.timeout, r.logger)
}

// Controller returns the owner's controller, hydrating it from the store on
// first use. When the store cannot be read no session is created, so the
// next request retries instead of overwriting the stored profile.
func (r *Registry) Controller(ctx context.Context, ownerID uuid.UUID) (*Controller, error) {
	if ctrl, ok := r.lookup(ownerID); ok {
		return ctrl, nil
	}

	// r.mu is not held during hydration
	store := r.Store(ownerID)
	p, err := store.LoadOrNew(ctx)
	if err != nil {
		return nil, apperror.NewUnavailable("profile store is unavailable", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[ownerID]; ok {
		s.lastSeen = r.now()
		return s.ctrl, nil
	}
	ctrl := NewController(p, r.ids, store)
	r.sessions[ownerID] = &session{ctrl: ctrl, lastSeen: r.now()}
	r.logger.Debug("Wizard session started", zap.String("owner_id", ownerID.String()))
	return ctrl, nil
}

func (r *Registry) lookup(ownerID uuid.UUID) (*Controller, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[ownerID]
	if !ok {
		return nil, false
	}
	s.lastSeen = r.now()
	return s.ctrl, true
}

// Evict drops sessions idle for longer than idle. The profile survives in
// the store; only the active step is lost.
func (r *Registry) Evict(idle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-idle)
	n := 0
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
