package export

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/domain/export"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/i18n"
	"github.com/khoahotran/cvos/pkg/logger"
)

type RequestExportUseCase struct {
	publisher service.ExportPublisher
	logger    logger.Logger
}

func NewRequestExportUseCase(p service.ExportPublisher, log logger.Logger) *RequestExportUseCase {
	return &RequestExportUseCase{publisher: p, logger: log}
}

type RequestExportInput struct {
	OwnerID uuid.UUID
	Profile profile.Profile
	Locale  i18n.Locale
}

// Execute snapshots the profile into an export event for the worker.
func (uc *RequestExportUseCase) Execute(ctx context.Context, in RequestExportInput) error {
	req := export.Request{
		EventType:   export.EventTypeRequested,
		OwnerID:     in.OwnerID,
		Profile:     in.Profile,
		Locale:      string(in.Locale),
		RequestedAt: time.Now().UTC(),
	}
	if err := uc.publisher.PublishExportRequested(ctx, req); err != nil {
		return apperror.NewInternal("failed to queue export", err)
	}
	uc.logger.Info("Export requested", zap.String("owner_id", in.OwnerID.String()))
	return nil
}
