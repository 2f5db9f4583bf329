package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cvos/internal/domain/profile"
)

func TestProject_EducationScenario(t *testing.T) {
	p := profile.New()
	p, err := profile.AddEntry(p, profile.CollectionEducation, "edu-1")
	require.NoError(t, err)
	p, err = profile.UpdateEntry(p, profile.CollectionEducation, "edu-1", profile.EntryInstitution, "MIT")
	require.NoError(t, err)
	p, err = profile.UpdateEntry(p, profile.CollectionEducation, "edu-1", profile.EntryDegree, "BSc")
	require.NoError(t, err)

	doc := Project(p)

	sec, ok := doc.Section(SectionEducation)
	require.True(t, ok)
	require.Len(t, sec.Items, 1)
	assert.Equal(t, "MIT", sec.Items[0].Heading)
	assert.Equal(t, "BSc", sec.Items[0].Subheading)
	assert.Equal(t, "preview.education", sec.TitleKey)
}

func TestProject_IsDeterministicAndPure(t *testing.T) {
	p := profile.New()
	p.FullName = "Jane Doe"
	p.Skills = "Go, Kubernetes,  Terraform"
	p, _ = profile.AddEntry(p, profile.CollectionExperience, "e1")
	p, _ = profile.UpdateEntry(p, profile.CollectionExperience, "e1", profile.EntryDescription, "- Cut latency by 40%\n\n- Led migration")
	before := p.Clone()

	first := Project(p)
	second := Project(p)

	assert.Equal(t, first, second)
	assert.Equal(t, before, p)
}

func TestProject_EmptyProfile(t *testing.T) {
	doc := Project(profile.New())
	assert.Empty(t, doc.Sections)
	assert.Empty(t, doc.Header.Contacts)
	assert.Empty(t, doc.Summary)
}

func TestProject_SectionOrderAndEntryOrder(t *testing.T) {
	p := profile.New()
	p.Languages = "English; Spanish"
	p.Interests = "Climbing"
	p.Skills = "Go\nSQL"
	for _, id := range []string{"c1", "c2"} {
		p, _ = profile.AddEntry(p, profile.CollectionCertifications, id)
		p, _ = profile.UpdateEntry(p, profile.CollectionCertifications, id, profile.EntryName, "Cert "+id)
	}
	p, _ = profile.AddEntry(p, profile.CollectionExperience, "x1")
	p, _ = profile.UpdateEntry(p, profile.CollectionExperience, "x1", profile.EntryCompany, "Acme")
	p, _ = profile.AddEntry(p, profile.CollectionEducation, "ed")
	p, _ = profile.UpdateEntry(p, profile.CollectionEducation, "ed", profile.EntryDegree, "MSc")

	doc := Project(p)

	kinds := []SectionKind{}
	for _, s := range doc.Sections {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []SectionKind{
		SectionExperience, SectionEducation, SectionCertifications,
		SectionSkills, SectionLanguages, SectionInterests,
	}, kinds)

	certs, _ := doc.Section(SectionCertifications)
	assert.Equal(t, "Cert c1", certs.Items[0].Heading)
	assert.Equal(t, "Cert c2", certs.Items[1].Heading)

	skills, _ := doc.Section(SectionSkills)
	assert.Equal(t, []string{"Go", "SQL"}, skills.Tags)
	langs, _ := doc.Section(SectionLanguages)
	assert.Equal(t, []string{"English", "Spanish"}, langs.Tags)
}

func TestProject_BlankEntriesAreSkipped(t *testing.T) {
	p := profile.New()
	p, _ = profile.AddEntry(p, profile.CollectionExperience, "blank")

	_, ok := Project(p).Section(SectionExperience)
	assert.False(t, ok)
}

func TestProject_ExperienceDetails(t *testing.T) {
	p := profile.New()
	p, _ = profile.AddEntry(p, profile.CollectionExperience, "x")
	for f, v := range map[profile.EntryField]string{
		profile.EntryPosition:    "SRE",
		profile.EntryCompany:     "Acme",
		profile.EntryLocation:    "Bogotá",
		profile.EntryStartDate:   "2020",
		profile.EntryDescription: "• Built CI\n* Owned on-call",
	} {
		p, _ = profile.UpdateEntry(p, profile.CollectionExperience, "x", f, v)
	}

	sec, ok := Project(p).Section(SectionExperience)
	require.True(t, ok)
	item := sec.Items[0]
	assert.Equal(t, "SRE", item.Heading)
	assert.Equal(t, "Acme", item.Subheading)
	assert.Equal(t, "Bogotá · 2020 – ", item.Meta)
	assert.Equal(t, []string{"Built CI", "Owned on-call"}, item.Lines)
}

func TestProject_Contacts(t *testing.T) {
	p := profile.New()
	p.Github = "github.com/jane"
	p.Email = " jane@example.com "

	doc := Project(p)
	assert.Equal(t, []Contact{
		{Kind: "email", Value: "jane@example.com"},
		{Kind: "github", Value: "github.com/jane"},
	}, doc.Header.Contacts)
}
