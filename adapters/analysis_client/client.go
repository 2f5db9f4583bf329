package analysis_client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/pkg/logger"
)

const pdfMIME = "application/pdf"

// maxResponseSize bounds how much of a response body is read.
const maxResponseSize = 4 << 20

type hostKey struct{}

// WithRequestHost records the host the user reached the site on. The client
// uses it to pick the backend when no base URL is configured.
func WithRequestHost(ctx context.Context, host string) context.Context {
	return context.WithValue(ctx, hostKey{}, host)
}

func requestHost(ctx context.Context) string {
	h, _ := ctx.Value(hostKey{}).(string)
	return h
}

// ResolveBaseURL returns the analysis backend for a request that reached
// the site on host.
func ResolveBaseURL(cfg config.Config, host string) string {
	if u := strings.TrimSpace(cfg.Analysis.BaseURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	if isLocalHost(host) {
		return strings.TrimRight(cfg.Analysis.LocalURL, "/")
	}
	return strings.TrimRight(cfg.Analysis.DefaultRemoteURL, "/")
}

func isLocalHost(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	switch strings.ToLower(host) {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

type httpClient struct {
	cfg    config.Config
	http   *http.Client
	logger logger.Logger
}

func NewClient(cfg config.Config, log logger.Logger) analysis.Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.Analysis.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		logger: log,
	}
}

// Analyze uploads one PDF. Size and type are checked locally first so that
// a rejected file never leaves the process.
func (c *httpClient) Analyze(ctx context.Context, file analysis.Upload, mode analysis.Mode) (*analysis.Result, error) {
	data, err := readUpload(file)
	if err != nil {
		return nil, analysis.NewValidationError(err)
	}

	body, contentType, err := multipartBody(file.Filename, data)
	if err != nil {
		return nil, &analysis.RequestError{Kind: analysis.KindTransport, Err: err}
	}

	url := ResolveBaseURL(c.cfg, requestHost(ctx)) + mode.Path()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, &analysis.RequestError{Kind: analysis.KindTransport, Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	l := c.logger.With(zap.String("url", url), zap.String("mode", string(mode)))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &analysis.RequestError{Kind: analysis.KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &analysis.RequestError{Kind: analysis.KindTransport, Err: err}
	}
	l.Debug("Analysis backend responded", zap.Int("status", resp.StatusCode), zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &analysis.RequestError{
			Kind:   analysis.KindProtocol,
			Status: resp.StatusCode,
			Detail: parseDetail(raw),
		}
	}
	return decodeResult(resp.StatusCode, raw)
}

func readUpload(file analysis.Upload) ([]byte, error) {
	if file.Size > analysis.MaxFileSize {
		return nil, analysis.ErrFileTooLarge
	}
	if file.Content == nil {
		return nil, analysis.ErrEmptyFile
	}
	data, err := io.ReadAll(io.LimitReader(file.Content, analysis.MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	switch {
	case len(data) == 0:
		return nil, analysis.ErrEmptyFile
	case len(data) > analysis.MaxFileSize:
		return nil, analysis.ErrFileTooLarge
	case !mimetype.Detect(data).Is(pdfMIME):
		return nil, analysis.ErrUnsupportedType
	}
	return data, nil
}

func multipartBody(filename string, data []byte) (io.Reader, string, error) {
	if filename == "" {
		filename = "cv.pdf"
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", mime.FormatMediaType("form-data", map[string]string{
		"name":     "file",
		"filename": filename,
	}))
	h.Set("Content-Type", pdfMIME)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", errors.Join(errors.New("close multipart writer"), err)
	}
	return &buf, w.FormDataContentType(), nil
}
