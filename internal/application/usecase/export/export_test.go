package export

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/application/service"
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/domain/export"
	"github.com/khoahotran/cvos/internal/domain/preview"
	"github.com/khoahotran/cvos/internal/domain/profile"
	"github.com/khoahotran/cvos/pkg/apperror"
	"github.com/khoahotran/cvos/pkg/i18n"
	"github.com/khoahotran/cvos/pkg/logger"
)

type memKV map[string]string

func (m memKV) Get(_ context.Context, key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", service.ErrKeyNotFound
	}
	return v, nil
}

func (m memKV) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

type capturePublisher struct {
	got []export.Request
	err error
}

func (p *capturePublisher) PublishExportRequested(_ context.Context, req export.Request) error {
	p.got = append(p.got, req)
	return p.err
}

type htmlStub struct{ locale i18n.Locale }

func (h *htmlStub) RenderDocument(doc preview.Document, tc i18n.Context) (string, error) {
	h.locale = tc.Locale
	return "<h1>" + doc.Header.Name + "</h1>", nil
}

type pdfStub struct{ err error }

func (p pdfStub) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	return []byte("%PDF " + html), p.err
}

type uploaderStub struct {
	body     string
	publicID string
}

func (u *uploaderStub) Upload(_ context.Context, file io.Reader, folder, publicID string) (string, error) {
	b, _ := io.ReadAll(file)
	u.body = string(b)
	u.publicID = publicID
	return "https://res.cloudinary.com/demo/raw/upload/" + folder + "/" + publicID + ".pdf", nil
}

func (u *uploaderStub) Delete(context.Context, string) error { return nil }

func TestRequestExport_PublishesSnapshot(t *testing.T) {
	pub := &capturePublisher{}
	uc := NewRequestExportUseCase(pub, logger.NewNop())
	owner := uuid.New()
	p := profile.New()
	p.FullName = "Jane Doe"

	require.NoError(t, uc.Execute(context.Background(), RequestExportInput{OwnerID: owner, Profile: p, Locale: i18n.LocaleEN}))
	require.Len(t, pub.got, 1)
	assert.Equal(t, export.EventTypeRequested, pub.got[0].EventType)
	assert.Equal(t, owner, pub.got[0].OwnerID)
	assert.Equal(t, "Jane Doe", pub.got[0].Profile.FullName)
	assert.Equal(t, "en", pub.got[0].Locale)
}

func TestRequestExport_PublishFailure(t *testing.T) {
	uc := NewRequestExportUseCase(&capturePublisher{err: errors.New("broker down")}, logger.NewNop())
	err := uc.Execute(context.Background(), RequestExportInput{OwnerID: uuid.New(), Profile: profile.New()})
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestProcessExport_RendersUploadsAndRecords(t *testing.T) {
	kv := memKV{}
	html := &htmlStub{}
	up := &uploaderStub{}
	uc := NewProcessExportUseCase(html, pdfStub{}, up, kv, "cvos/exports", logger.NewNop())
	owner := uuid.New()
	p := profile.New()
	p.FullName = "Jane Doe"

	url, err := uc.Execute(context.Background(), export.Request{
		EventType: export.EventTypeRequested,
		OwnerID:   owner,
		Profile:   p,
		Locale:    "ru",
	})
	require.NoError(t, err)

	assert.Equal(t, "%PDF <h1>Jane Doe</h1>", up.body)
	assert.Equal(t, owner.String()+"-cv", up.publicID)
	assert.Equal(t, i18n.LocaleRU, html.locale)
	assert.Equal(t, url, kv[wizard.ScopedKey(owner, wizard.NamespaceExport)])

	got, err := NewGetExportUseCase(kv).Execute(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, url, got)
}

func TestProcessExport_SkipsUnknownEvents(t *testing.T) {
	up := &uploaderStub{}
	uc := NewProcessExportUseCase(&htmlStub{}, pdfStub{}, up, memKV{}, "f", logger.NewNop())
	url, err := uc.Execute(context.Background(), export.Request{EventType: "profile.deleted", OwnerID: uuid.New()})
	require.NoError(t, err)
	assert.Empty(t, url)
	assert.Empty(t, up.publicID)
}

func TestProcessExport_RenderFailure(t *testing.T) {
	kv := memKV{}
	uc := NewProcessExportUseCase(&htmlStub{}, pdfStub{err: errors.New("chrome crashed")}, &uploaderStub{}, kv, "f", logger.NewNop())
	_, err := uc.Execute(context.Background(), export.Request{EventType: export.EventTypeRequested, OwnerID: uuid.New(), Profile: profile.New()})
	assert.ErrorIs(t, err, apperror.ErrInternal)
	assert.Empty(t, kv)
}

func TestGetExport_NotFound(t *testing.T) {
	_, err := NewGetExportUseCase(memKV{}).Execute(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
