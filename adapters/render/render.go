package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/khoahotran/cvos/internal/domain/analysis"
	"github.com/khoahotran/cvos/internal/domain/preview"
	"github.com/khoahotran/cvos/pkg/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	PageHome      = "home"
	PageChecker   = "checker"
	PageDashboard = "dashboard"
	PagePreview   = "preview"
	PageLogin     = "login"
	PagePricing   = "pricing"
)

var pageNames = []string{PageHome, PageChecker, PageDashboard, PagePreview, PageLogin, PagePricing}

// shared is parsed into every page set.
var shared = []string{"templates/layout.html", "templates/cv.html", "templates/wizard.js.html"}

// Page is the data every layout page receives. Data holds the page-specific
// view.
type Page struct {
	Title         string
	Path          string
	I18n          i18n.Context
	Languages     []i18n.Language
	Authenticated bool
	Data          any
}

// CVView feeds the "cv" partial.
type CVView struct {
	Doc  preview.Document
	I18n i18n.Context
}

type CheckerView struct {
	Mode   string
	Result *analysis.Result
	Error  string
}

type LoginView struct {
	Error string
}

type Renderer struct {
	pages    map[string]*template.Template
	document *template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		files := append([]string{"templates/" + name + ".html"}, shared...)
		t, err := template.New(name).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", name, err)
		}
		r.pages[name] = t
	}

	doc, err := template.New("document").ParseFS(templateFS, "templates/document.html", "templates/cv.html")
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	r.document = doc
	return r, nil
}

// Render writes a full page. Output is buffered so a template failure never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	if p.Languages == nil {
		p.Languages = i18n.Languages()
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderDocument renders a standalone, print-ready CV page.
func (r *Renderer) RenderDocument(doc preview.Document, tc i18n.Context) (string, error) {
	var buf bytes.Buffer
	if err := r.document.ExecuteTemplate(&buf, "document", CVView{Doc: doc, I18n: tc}); err != nil {
		return "", fmt.Errorf("render document: %w", err)
	}
	return buf.String(), nil
}
