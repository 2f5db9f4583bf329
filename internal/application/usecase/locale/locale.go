package locale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/i18n"
	"github.com/khoahotran/cvos/pkg/logger"
)

// LocaleUseCase keeps the language preference of each owner.
type LocaleUseCase struct {
	kv      service.KeyValueStore
	timeout time.Duration
	logger  logger.Logger
}

func NewLocaleUseCase(kv service.KeyValueStore, timeout time.Duration, log logger.Logger) *LocaleUseCase {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &LocaleUseCase{kv: kv, timeout: timeout, logger: log}
}

// Get returns the stored locale, or the default one when nothing valid is stored.
func (uc *LocaleUseCase) Get(ctx context.Context, ownerID uuid.UUID) i18n.Locale {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	raw, err := uc.kv.Get(ctx, wizard.ScopedKey(ownerID, wizard.NamespaceLanguage))
	if err != nil {
		if !errors.Is(err, service.ErrKeyNotFound) {
			uc.logger.Warn("Failed to read language preference", zap.Error(err))
		}
		return i18n.DefaultLocale
	}
	l, err := i18n.ParseLocale(raw)
	if err != nil {
		return i18n.DefaultLocale
	}
	return l
}

// Set validates and stores the preference. A store failure is logged and
// the locale still applies to the current request.
func (uc *LocaleUseCase) Set(ctx context.Context, ownerID uuid.UUID, raw string) (i18n.Locale, error) {
	l, err := i18n.ParseLocale(raw)
	if err != nil {
		return "", apperror.NewInvalidInput("unsupported locale", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.timeout)
	defer cancel()
	if err := uc.kv.Set(ctx, wizard.ScopedKey(ownerID, wizard.NamespaceLanguage), string(l)); err != nil {
		uc.logger.Warn("Failed to persist language preference", zap.Error(err))
	}
	return l, nil
}
