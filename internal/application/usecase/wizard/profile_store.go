package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/logger"
	"github.com/khoahotran/cvos/pkg/metrics"
)

// ProfileStore persists one profile under a fixed key. Save never reports
// errors to its caller: losing persistence does not end the session.
type ProfileStore struct {
	kv      service.KeyValueStore
	key     string
	timeout time.Duration
	logger  logger.Logger
}

func NewProfileStore(kv service.KeyValueStore, key string, timeout time.Duration, log logger.Logger) *ProfileStore {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &ProfileStore{kv: kv, key: key, timeout: timeout, logger: log.With(zap.String("key", key))}
}

// Save overwrites the stored profile.
func (s *ProfileStore) Save(ctx context.Context, p profile.Profile) {
	data, err := profile.Encode(p)
	if err != nil {
		metrics.ProfileSaves.WithLabelValues("error").Inc()
		s.logger.Error("Failed to encode profile", err)
		return
	}

	// the write must not be lost because the triggering request went away
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		metrics.ProfileSaves.WithLabelValues("error").Inc()
		s.logger.Warn("Failed to persist profile", zap.Error(err))
		return
	}
	metrics.ProfileSaves.WithLabelValues("ok").Inc()
}

// Load returns the stored profile. It reports false with a nil error when
// nothing usable is stored: an absent key, or data of an outdated shape,
// which is discarded. A store failure is returned as an error so that the
// stored profile is never mistaken for an absent one.
func (s *ProfileStore) Load(ctx context.Context) (profile.Profile, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			metrics.ProfileLoads.WithLabelValues("miss").Inc()
			return profile.Profile{}, false, nil
		}
		metrics.ProfileLoads.WithLabelValues("error").Inc()
		s.logger.Warn("Failed to read stored profile", zap.Error(err))
		return profile.Profile{}, false, fmt.Errorf("read stored profile: %w", err)
	}

	p, err := profile.Decode([]byte(raw))
	if err != nil {
		metrics.ProfileLoads.WithLabelValues("discarded").Inc()
		s.logger.Info("Discarding stored profile with unexpected shape", zap.Error(err))
		return profile.Profile{}, false, nil
	}
	metrics.ProfileLoads.WithLabelValues("hit").Inc()
	return p, true, nil
}

// LoadOrNew falls back to the empty profile when nothing usable is stored.
// Store failures are passed through.
func (s *ProfileStore) LoadOrNew(ctx context.Context) (profile.Profile, error) {
	p, ok, err := s.Load(ctx)
	if err != nil {
		return profile.Profile{}, err
	}
	if !ok {
		return profile.New(), nil
	}
	return p, nil
}

// OnProfileChanged writes every change through to the store.
func (s *ProfileStore) OnProfileChanged(ctx context.Context, p profile.Profile) {
	s.Save(ctx, p)
}
