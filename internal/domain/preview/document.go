package preview

import (
	"strings"

	"github.com/khoahotran/cvos/internal/domain/profile"
)

// SectionKind identifies a section of the rendered CV.
type SectionKind string

const (
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionCertifications SectionKind = "certifications"
	SectionSkills         SectionKind = "skills"
	SectionLanguages      SectionKind = "languages"
	SectionInterests      SectionKind = "interests"
)

type Contact struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type Header struct {
	Name     string    `json:"name"`
	Title    string    `json:"title"`
	Contacts []Contact `json:"contacts"`
}

// Item is one entry of a section: a heading line, an optional subheading,
// a meta line (location and period) and free-text body lines.
type Item struct {
	Heading    string   `json:"heading"`
	Subheading string   `json:"subheading,omitempty"`
	Meta       string   `json:"meta,omitempty"`
	Lines      []string `json:"lines,omitempty"`
}

type Section struct {
	Kind     SectionKind `json:"kind"`
	TitleKey string      `json:"title_key"`
	Items    []Item      `json:"items,omitempty"`
	Tags     []string    `json:"tags,omitempty"`
}

// Document is the read-only rendering model of a profile.
type Document struct {
	Header   Header    `json:"header"`
	Summary  []string  `json:"summary,omitempty"`
	Sections []Section `json:"sections"`
}

// Section returns the section of the given kind, if present.
func (d Document) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Project turns a profile into a Document. It never mutates p and always
// returns the same document for the same profile.
func Project(p profile.Profile) Document {
	doc := Document{
		Header: Header{
			Name:     strings.TrimSpace(p.FullName),
			Title:    strings.TrimSpace(p.Title),
			Contacts: contacts(p),
		},
		Summary:  lines(p.Summary),
		Sections: []Section{},
	}

	if items := experienceItems(p.Experience); len(items) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionExperience, TitleKey: "preview.experience", Items: items})
	}
	if items := educationItems(p.Education); len(items) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionEducation, TitleKey: "preview.education", Items: items})
	}
	if items := certificationItems(p.Certifications); len(items) > 0 {
		doc.Sections = append(doc.Sections, Section{Kind: SectionCertifications, TitleKey: "preview.certifications", Items: items})
	}
	for _, t := range []struct {
		kind  SectionKind
		key   string
		value string
	}{
		{SectionSkills, "preview.skills", p.Skills},
		{SectionLanguages, "preview.languages", p.Languages},
		{SectionInterests, "preview.interests", p.Interests},
	} {
		if ts := tags(t.value); len(ts) > 0 {
			doc.Sections = append(doc.Sections, Section{Kind: t.kind, TitleKey: t.key, Tags: ts})
		}
	}
	return doc
}

func contacts(p profile.Profile) []Contact {
	out := []Contact{}
	for _, c := range []Contact{
		{Kind: "email", Value: p.Email},
		{Kind: "phone", Value: p.Phone},
		{Kind: "location", Value: p.Location},
		{Kind: "website", Value: p.Website},
		{Kind: "github", Value: p.Github},
	} {
		c.Value = strings.TrimSpace(c.Value)
		if c.Value != "" {
			out = append(out, c)
		}
	}
	return out
}

func experienceItems(entries []profile.Experience) []Item {
	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		item := Item{
			Heading:    strings.TrimSpace(e.Position),
			Subheading: strings.TrimSpace(e.Company),
			Meta:       meta(e.Location, e.StartDate, e.EndDate),
			Lines:      bullets(e.Description),
		}
		if !item.empty() {
			out = append(out, item)
		}
	}
	return out
}

func educationItems(entries []profile.Education) []Item {
	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		item := Item{
			Heading:    strings.TrimSpace(e.Institution),
			Subheading: strings.TrimSpace(e.Degree),
			Meta:       meta(e.Location, e.StartDate, e.EndDate),
			Lines:      lines(e.Description),
		}
		if !item.empty() {
			out = append(out, item)
		}
	}
	return out
}

func certificationItems(entries []profile.Certification) []Item {
	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		item := Item{
			Heading:    strings.TrimSpace(e.Name),
			Subheading: strings.TrimSpace(e.Issuer),
			Meta:       strings.TrimSpace(e.Date),
		}
		if !item.empty() {
			out = append(out, item)
		}
	}
	return out
}

func (i Item) empty() bool {
	return i.Heading == "" && i.Subheading == "" && i.Meta == "" && len(i.Lines) == 0
}

func meta(location, start, end string) string {
	location = strings.TrimSpace(location)
	period := period(start, end)
	switch {
	case location == "":
		return period
	case period == "":
		return location
	}
	return location + " · " + period
}

func period(start, end string) string {
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return end
	case end == "":
		return start + " – "
	}
	return start + " – " + end
}

func lines(text string) []string {
	var out []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// bullets strips the leading list markers people type into achievement lists.
func bullets(text string) []string {
	out := lines(text)
	for i, l := range out {
		out[i] = strings.TrimSpace(strings.TrimLeft(l, "-*•"))
	}
	return out
}

func tags(text string) []string {
	var out []string
	for _, t := range strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == '\n' || r == ';' }) {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
