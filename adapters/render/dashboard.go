package render

import (
	"github.com/khoahotran/cvos/internal/application/usecase/wizard"
	"github.com/khoahotran/cvos/internal/domain/preview"
	"github.com/khoahotran/cvos/internal/domain/profile"
	domainwizard "github.com/khoahotran/cvos/internal/domain/wizard"
	"github.com/khoahotran/cvos/pkg/i18n"
)

type FieldView struct {
	Name      string
	Value     string
	Multiline bool
}

type EntryView struct {
	ID     string
	Fields []FieldView
}

type CollectionView struct {
	Name    string
	Entries []EntryView
}

// DashboardView lays out the editors of the active step.
type DashboardView struct {
	State       wizard.State
	Fields      []FieldView
	Collections []CollectionView
	Preview     *CVView
}

var stepFields = map[domainwizard.Step][]profile.Field{
	domainwizard.StepPersonal: {
		profile.FieldFullName, profile.FieldTitle, profile.FieldEmail, profile.FieldPhone,
		profile.FieldLocation, profile.FieldWebsite, profile.FieldGithub, profile.FieldSummary,
	},
	domainwizard.StepSkills: {profile.FieldSkills, profile.FieldLanguages, profile.FieldInterests},
}

var stepCollections = map[domainwizard.Step][]profile.Collection{
	domainwizard.StepEducation:  {profile.CollectionEducation},
	domainwizard.StepExperience: {profile.CollectionExperience},
	domainwizard.StepSkills:     {profile.CollectionCertifications},
}

func multiline(name string) bool {
	switch name {
	case string(profile.FieldSummary), string(profile.FieldSkills), string(profile.EntryDescription):
		return true
	}
	return false
}

func NewDashboardView(st wizard.State, tc i18n.Context) DashboardView {
	v := DashboardView{State: st}
	p := st.Profile

	for _, f := range stepFields[st.Step] {
		val, _ := p.Get(f)
		v.Fields = append(v.Fields, FieldView{Name: string(f), Value: val, Multiline: multiline(string(f))})
	}
	for _, c := range stepCollections[st.Step] {
		v.Collections = append(v.Collections, CollectionView{Name: string(c), Entries: entries(p, c)})
	}
	if st.Step == domainwizard.StepPreview {
		v.Preview = &CVView{Doc: preview.Project(p), I18n: tc}
	}
	return v
}

func entries(p profile.Profile, c profile.Collection) []EntryView {
	var out []EntryView
	add := func(id string, values map[profile.EntryField]string) {
		ev := EntryView{ID: id}
		for _, f := range profile.EntryFields(c) {
			ev.Fields = append(ev.Fields, FieldView{Name: string(f), Value: values[f], Multiline: multiline(string(f))})
		}
		out = append(out, ev)
	}
	switch c {
	case profile.CollectionEducation:
		for _, e := range p.Education {
			add(e.ID, map[profile.EntryField]string{
				profile.EntryInstitution: e.Institution, profile.EntryDegree: e.Degree, profile.EntryLocation: e.Location,
				profile.EntryStartDate: e.StartDate, profile.EntryEndDate: e.EndDate, profile.EntryDescription: e.Description,
			})
		}
	case profile.CollectionExperience:
		for _, e := range p.Experience {
			add(e.ID, map[profile.EntryField]string{
				profile.EntryCompany: e.Company, profile.EntryPosition: e.Position, profile.EntryLocation: e.Location,
				profile.EntryStartDate: e.StartDate, profile.EntryEndDate: e.EndDate, profile.EntryDescription: e.Description,
			})
		}
	case profile.CollectionCertifications:
		for _, e := range p.Certifications {
			add(e.ID, map[profile.EntryField]string{
				profile.EntryName: e.Name, profile.EntryIssuer: e.Issuer, profile.EntryDate: e.Date,
			})
		}
	}
	return out
}
