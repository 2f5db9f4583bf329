package analysis_client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/config"
	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/pkg/logger"
)

const samplePDF = "%PDF-1.4\n1 0 obj << /Type /Catalog >> endobj\ntrailer << /Root 1 0 R >>\n%%EOF\n"

func pdfUpload() analysis.Upload {
	return analysis.Upload{Filename: "cv.pdf", Size: int64(len(samplePDF)), Content: strings.NewReader(samplePDF)}
}

func testConfig(baseURL string) config.Config {
	var cfg config.Config
	cfg.Analysis.BaseURL = baseURL
	cfg.Analysis.LocalURL = "http://localhost:8000"
	cfg.Analysis.DefaultRemoteURL = "https://api.cv.raido.com.co"
	cfg.Analysis.Timeout = 5 * time.Second
	return cfg
}

type backend struct {
	*httptest.Server
	hits     atomic.Int32
	lastPath atomic.Value
}

func newBackend(t *testing.T, status int, body string) *backend {
	t.Helper()
	b := &backend{}
	b.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.hits.Add(1)
		b.lastPath.Store(r.URL.Path)

		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		assert.Equal(t, "application/pdf", hdr.Header.Get("Content-Type"))
		assert.Equal(t, "cv.pdf", hdr.Filename)
		data, _ := io.ReadAll(f)
		assert.Equal(t, samplePDF, string(data))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(b.Close)
	return b
}

func TestAnalyze_Success(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"score":82,"strengths":["Clear layout"],"summary":"Good"}`)
	c := NewClient(testConfig(srv.URL), logger.NewNop())

	res, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeFast)
	require.NoError(t, err)

	assert.Equal(t, 82, res.Score)
	assert.Equal(t, []string{"Clear layout"}, res.Strengths)
	assert.Equal(t, "Good", res.Summary)
	assert.Equal(t, []string{}, res.Sections)
	assert.Equal(t, []string{}, res.Issues)
	assert.Equal(t, []string{"Clear layout"}, res.Highlights())
	assert.Equal(t, "/analyze", srv.lastPath.Load())
}

func TestAnalyze_AIModeMapsEveryField(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{
		"score": 140.4,
		"sections_found": ["Experience"],
		"weaknesses": ["No metrics"],
		"issues": ["Two columns"],
		"improvements": ["Quantify results"],
		"keywords_detected": ["Go", "Kubernetes"],
		"summary": "Solid",
		"raw_analysis": "free text",
		"text_length": 1200,
		"metrics": {"word_count": 350, "bullet_count": 12, "readability_score": 61.5}
	}`)
	c := NewClient(testConfig(srv.URL+"/"), logger.NewNop())

	res, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeAI)
	require.NoError(t, err)

	assert.Equal(t, "/analyze-with-ai", srv.lastPath.Load())
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, []string{"No metrics", "Two columns"}, res.Issues)
	assert.Equal(t, []string{"Go", "Kubernetes"}, res.Keywords)
	assert.Equal(t, "free text", res.RawAnalysis)
	assert.Equal(t, 1200, res.TextLength)
	require.NotNil(t, res.Metrics)
	assert.Equal(t, 12, res.Metrics.BulletCount)
}

func TestAnalyze_ServerErrorCarriesDetail(t *testing.T) {
	srv := newBackend(t, http.StatusInternalServerError, `{"detail":"internal error"}`)
	c := NewClient(testConfig(srv.URL), logger.NewNop())

	_, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeFast)

	var reqErr *analysis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, analysis.KindProtocol, reqErr.Kind)
	assert.Equal(t, 500, reqErr.Status)
	assert.Equal(t, "internal error", reqErr.UserMessage())
}

func TestAnalyze_ServerErrorWithoutDetail(t *testing.T) {
	srv := newBackend(t, http.StatusUnprocessableEntity, `{"detail":[{"loc":["body","file"],"msg":"field required"}]}`)
	c := NewClient(testConfig(srv.URL), logger.NewNop())

	_, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeFast)

	var reqErr *analysis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, analysis.KindProtocol, reqErr.Kind)
	assert.Empty(t, reqErr.Detail)
	assert.Contains(t, reqErr.UserMessage(), "422")
}

func TestAnalyze_AIErrorPayload(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"error":"quota exceeded"}`)
	c := NewClient(testConfig(srv.URL), logger.NewNop())

	_, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeAI)

	var reqErr *analysis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, analysis.KindProtocol, reqErr.Kind)
	assert.Equal(t, "quota exceeded", reqErr.UserMessage())
}

func TestAnalyze_DecodeErrors(t *testing.T) {
	for name, body := range map[string]string{
		"html":         `<html>oops</html>`,
		"empty":        ``,
		"wrong shape":  `{"score":"high"}`,
		"array root":   `[1,2,3]`,
		"bad sections": `{"score":10,"sections_found":"Experience"}`,
		"empty object": `{}`,
		"no score":     `{"summary":"Solid CV","strengths":["Go"]}`,
		"null score":   `{"score":null}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := newBackend(t, http.StatusOK, body)
			c := NewClient(testConfig(srv.URL), logger.NewNop())

			_, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeFast)

			var reqErr *analysis.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, analysis.KindDecode, reqErr.Kind)
		})
	}
}

func TestAnalyze_RejectsBeforeAnyRequest(t *testing.T) {
	big := bytes.Repeat([]byte("a"), 6<<20)
	copy(big, samplePDF)

	cases := []struct {
		name string
		file analysis.Upload
		want error
	}{
		{name: "declared too large", file: analysis.Upload{Filename: "cv.pdf", Size: 6 << 20, Content: bytes.NewReader(big)}, want: analysis.ErrFileTooLarge},
		{name: "undeclared too large", file: analysis.Upload{Filename: "cv.pdf", Content: bytes.NewReader(big)}, want: analysis.ErrFileTooLarge},
		{name: "not a pdf", file: analysis.Upload{Filename: "cv.pdf", Size: 5, Content: strings.NewReader("hello world")}, want: analysis.ErrUnsupportedType},
		{name: "empty", file: analysis.Upload{Filename: "cv.pdf", Content: strings.NewReader("")}, want: analysis.ErrEmptyFile},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newBackend(t, http.StatusOK, `{"score":1}`)
			c := NewClient(testConfig(srv.URL), logger.NewNop())

			_, err := c.Analyze(context.Background(), tc.file, analysis.ModeFast)

			var reqErr *analysis.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, analysis.KindValidation, reqErr.Kind)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, srv.hits.Load())
		})
	}
}

func TestAnalyze_TransportFailure(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c := NewClient(testConfig(url), logger.NewNop())
	_, err := c.Analyze(context.Background(), pdfUpload(), analysis.ModeFast)

	var reqErr *analysis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, analysis.KindTransport, reqErr.Kind)
}

func TestAnalyze_CanceledContext(t *testing.T) {
	srv := newBackend(t, http.StatusOK, `{"score":1}`)
	c := NewClient(testConfig(srv.URL), logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Analyze(ctx, pdfUpload(), analysis.ModeFast)

	var reqErr *analysis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, analysis.KindTransport, reqErr.Kind)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveBaseURL(t *testing.T) {
	deployed := testConfig("")
	configured := testConfig("https://backend.example.com/")

	cases := []struct {
		name string
		cfg  config.Config
		host string
		want string
	}{
		{name: "configured wins", cfg: configured, host: "localhost:3000", want: "https://backend.example.com"},
		{name: "localhost", cfg: deployed, host: "localhost:3000", want: "http://localhost:8000"},
		{name: "loopback v4", cfg: deployed, host: "127.0.0.1", want: "http://localhost:8000"},
		{name: "loopback v6", cfg: deployed, host: "[::1]:3000", want: "http://localhost:8000"},
		{name: "deployed host", cfg: deployed, host: "cv.raido.com.co", want: "https://api.cv.raido.com.co"},
		{name: "no host", cfg: deployed, host: "", want: "https://api.cv.raido.com.co"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveBaseURL(tc.cfg, tc.host))
		})
	}
}

func TestAnalyze_UsesRequestHostWhenUnconfigured(t *testing.T) {
	cfg := testConfig("")
	srv := newBackend(t, http.StatusOK, `{"score":5}`)
	cfg.Analysis.LocalURL = srv.URL

	c := NewClient(cfg, logger.NewNop())
	res, err := c.Analyze(WithRequestHost(context.Background(), "localhost:3000"), pdfUpload(), analysis.ModeFast)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Score)
}
