package export

import (
	"bytes"
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/domain/export"
	"github.com/khoahotran/cvos/internal/domain/preview"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/i18n"
	"github.com/khoahotran/cvos/pkg/logger"
	"github.com/khoahotran/cvos/pkg/metrics"
)

type ProcessExportUseCase struct {
	html     service.DocumentRenderer
	pdf      service.PDFRenderer
	uploader service.Uploader
	kv       service.KeyValueStore
	folder   string
	logger   logger.Logger
}

func NewProcessExportUseCase(
	html service.DocumentRenderer,
	pdf service.PDFRenderer,
	u service.Uploader,
	kv service.KeyValueStore,
	folder string,
	log logger.Logger,
) *ProcessExportUseCase {
	return &ProcessExportUseCase{html: html, pdf: pdf, uploader: u, kv: kv, folder: folder, logger: log}
}

// Execute renders the snapshot, uploads the PDF and records its URL under
// the owner's export key. Unknown event types are skipped.
func (uc *ProcessExportUseCase) Execute(ctx context.Context, req export.Request) (string, error) {
	l := uc.logger.With(zap.String("owner_id", req.OwnerID.String()), zap.String("event_type", req.EventType))
	if req.EventType != export.EventTypeRequested {
		l.Warn("Skipping unknown export event")
		metrics.ExportsProcessed.WithLabelValues("skipped").Inc()
		return "", nil
	}
	l.Info("Worker UseCase processing export")

	doc := preview.Project(req.Profile.Normalize())
	page, err := uc.html.RenderDocument(doc, i18n.NewContext(i18n.Locale(req.Locale)))
	if err != nil {
		metrics.ExportsProcessed.WithLabelValues("error").Inc()
		return "", apperror.NewInternal("failed to render preview html", err)
	}

	data, err := uc.pdf.RenderHTMLToPDF(ctx, page)
	if err != nil {
		metrics.ExportsProcessed.WithLabelValues("error").Inc()
		return "", apperror.NewInternal("failed to render pdf", err)
	}

	publicID := req.OwnerID.String() + "-cv"
	url, err := uc.uploader.Upload(ctx, bytes.NewReader(data), uc.folder, publicID)
	if err != nil {
		metrics.ExportsProcessed.WithLabelValues("error").Inc()
		return "", apperror.NewInternal("failed to upload pdf", err)
	}

	setCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := uc.kv.Set(setCtx, wizard.ScopedKey(req.OwnerID, wizard.NamespaceExport), url); err != nil {
		metrics.ExportsProcessed.WithLabelValues("error").Inc()
		return "", apperror.NewInternal("failed to record export url", err)
	}

	metrics.ExportsProcessed.WithLabelValues("ok").Inc()
	l.Info("Successfully exported profile", zap.String("url", url), zap.Int("bytes", len(data)))
	return url, nil
}
