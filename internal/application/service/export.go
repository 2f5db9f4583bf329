package service

import (
	"context"

	"github.com/khoahotran/cvos/internal/domain/export"
	"github.com/khoahotran/cvos/internal/domain/preview"
	"github.com/khoahotran/cvos/pkg/i18n"
)

// PDFRenderer turns a self-contained HTML document into PDF bytes.
type PDFRenderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type ExportPublisher interface {
	PublishExportRequested(ctx context.Context, req export.Request) error
}

// DocumentRenderer renders a projected profile to a standalone HTML page.
type DocumentRenderer interface {
	RenderDocument(doc preview.Document, tc i18n.Context) (string, error)
}
