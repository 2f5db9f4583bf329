package analysis

import (
	"context"
	"fmt"
	"io"
)

// MaxFileSize is the largest CV accepted for analysis.
const MaxFileSize = 5 << 20

// Mode selects the backend endpoint.
type Mode string

const (
	ModeFast Mode = "fast"
	ModeAI   Mode = "ai"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeFast:
		return ModeFast, nil
	case ModeAI:
		return ModeAI, nil
	}
	return "", fmt.Errorf("unknown analysis mode %q", s)
}

// Path returns the endpoint path segment for the mode.
func (m Mode) Path() string {
	if m == ModeAI {
		return "/analyze-with-ai"
	}
	return "/analyze"
}

// Upload is the file handed to the analysis backend.
type Upload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type Metrics struct {
	WordCount        int     `json:"word_count"`
	BulletCount      int     `json:"bullet_count"`
	ReadabilityScore float64 `json:"readability_score"`
}

// Result is the display model of an analysis. Every optional list is
// non-nil so renderers can iterate without checks.
type Result struct {
	Score        int      `json:"score"`
	Sections     []string `json:"sections"`
	Strengths    []string `json:"strengths"`
	Issues       []string `json:"issues"`
	Improvements []string `json:"improvements"`
	Keywords     []string `json:"keywords"`
	Summary      string   `json:"summary"`
	RawAnalysis  string   `json:"raw_analysis,omitempty"`
	TextLength   int      `json:"text_length,omitempty"`
	Metrics      *Metrics `json:"metrics,omitempty"`
}

// Highlights is what the result card lists under "detected sections":
// the detected sections, or the strengths when the backend sent none.
func (r Result) Highlights() []string {
	if len(r.Sections) > 0 {
		return r.Sections
	}
	return r.Strengths
}

// Client sends a CV to the analysis backend.
type Client interface {
	Analyze(ctx context.Context, file Upload, mode Mode) (*Result, error)
}
