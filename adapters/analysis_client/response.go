package analysis_client

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/khoahotran/cvos/internal/domain/analysis"
)

//go:embed response.schema.json
var responseSchemaJSON string

var responseSchema = mustSchema(responseSchemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("analysis response schema: %v", err))
	}
	return schema
}

type wireMetrics struct {
	WordCount        int     `json:"word_count"`
	BulletCount      int     `json:"bullet_count"`
	ReadabilityScore float64 `json:"readability_score"`
}

// wireResponse is the union of what the fast and the AI endpoints return.
type wireResponse struct {
	Score            *float64     `json:"score"`
	SectionsFound    []string     `json:"sections_found"`
	Strengths        []string     `json:"strengths"`
	Weaknesses       []string     `json:"weaknesses"`
	Issues           []string     `json:"issues"`
	Improvements     []string     `json:"improvements"`
	KeywordsDetected []string     `json:"keywords_detected"`
	Summary          string       `json:"summary"`
	RawAnalysis      string       `json:"raw_analysis"`
	TextLength       int          `json:"text_length"`
	Error            string       `json:"error"`
	Metrics          *wireMetrics `json:"metrics"`
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// decodeResult validates body against the response schema and maps it into
// the display model. The AI endpoint reports its own failures as a 200 with
// an "error" member and no score; any other body without a score is not a
// result.
func decodeResult(status int, body []byte) (*analysis.Result, error) {
	if !json.Valid(body) {
		return nil, &analysis.RequestError{Kind: analysis.KindDecode, Status: status, Err: fmt.Errorf("response is not JSON")}
	}
	res, err := responseSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, &analysis.RequestError{Kind: analysis.KindDecode, Status: status, Err: err}
	}
	if !res.Valid() {
		return nil, &analysis.RequestError{Kind: analysis.KindDecode, Status: status, Err: schemaError(res.Errors())}
	}

	var w wireResponse
	if err := json.Unmarshal(body, &w); err != nil {
		return nil, &analysis.RequestError{Kind: analysis.KindDecode, Status: status, Err: err}
	}
	if w.Score == nil && w.Error != "" {
		return nil, &analysis.RequestError{Kind: analysis.KindProtocol, Status: status, Detail: w.Error}
	}
	if w.Score == nil {
		return nil, &analysis.RequestError{Kind: analysis.KindDecode, Status: status, Err: fmt.Errorf("response has no score")}
	}
	return w.toResult(), nil
}

func (w wireResponse) toResult() *analysis.Result {
	r := &analysis.Result{
		Sections:     orEmpty(w.SectionsFound),
		Strengths:    orEmpty(w.Strengths),
		Issues:       append(orEmpty(w.Weaknesses), w.Issues...),
		Improvements: orEmpty(w.Improvements),
		Keywords:     orEmpty(w.KeywordsDetected),
		Summary:      w.Summary,
		RawAnalysis:  w.RawAnalysis,
		TextLength:   w.TextLength,
	}
	if w.Score != nil {
		r.Score = clampScore(*w.Score)
	}
	if w.Metrics != nil {
		r.Metrics = &analysis.Metrics{
			WordCount:        w.Metrics.WordCount,
			BulletCount:      w.Metrics.BulletCount,
			ReadabilityScore: w.Metrics.ReadabilityScore,
		}
	}
	return r
}

// parseDetail extracts a string "detail" member from an error body.
func parseDetail(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(eb.Detail, &s); err != nil {
		return ""
	}
	return s
}

func clampScore(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, f))))
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func schemaError(errs []gojsonschema.ResultError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("unexpected response shape: %s", strings.Join(msgs, "; "))
}
