package profile

import (
	"errors"
	"fmt"
)

// Field names a scalar field of a Profile. The value doubles as the JSON key.
type Field string

const (
	FieldFullName  Field = "full_name"
	FieldTitle     Field = "title"
	FieldEmail     Field = "email"
	FieldPhone     Field = "phone"
	FieldLocation  Field = "location"
	FieldWebsite   Field = "website"
	FieldGithub    Field = "github"
	FieldSummary   Field = "summary"
	FieldSkills    Field = "skills"
	FieldLanguages Field = "languages"
	FieldInterests Field = "interests"
)

// Collection names one of the ordered entry lists of a Profile.
type Collection string

const (
	CollectionEducation      Collection = "education"
	CollectionExperience     Collection = "experience"
	CollectionCertifications Collection = "certifications"
)

// SummaryBudget is the advisory character budget shown next to the summary.
const SummaryBudget = 500

var (
	ErrUnknownField      = errors.New("unknown profile field")
	ErrUnknownCollection = errors.New("unknown profile collection")
	ErrInvalidID         = errors.New("invalid entry id")
)

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// Profile is the candidate CV aggregate edited by the wizard.
// Every key is always present when serialized; collections are never nil
// once a Profile went through New, Normalize or any update operation.
type Profile struct {
	FullName  string `json:"full_name"`
	Title     string `json:"title"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website"`
	Github    string `json:"github"`
	Summary   string `json:"summary"`
	Skills    string `json:"skills"`
	Languages string `json:"languages"`
	Interests string `json:"interests"`

	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Certifications []Certification `json:"certifications"`
}

// New returns the default, all-empty profile.
func New() Profile {
	return Profile{
		Education:      []Education{},
		Experience:     []Experience{},
		Certifications: []Certification{},
	}
}

// ScalarFields lists every scalar field in display order.
func ScalarFields() []Field {
	return []Field{
		FieldFullName, FieldTitle, FieldEmail, FieldPhone, FieldLocation, FieldWebsite,
		FieldGithub, FieldSummary, FieldSkills, FieldLanguages, FieldInterests,
	}
}

// Collections lists the entry collections in storage order.
func Collections() []Collection {
	return []Collection{CollectionEducation, CollectionExperience, CollectionCertifications}
}

func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCollection, s)
}

func (p *Profile) scalar(f Field) *string {
	switch f {
	case FieldFullName:
		return &p.FullName
	case FieldTitle:
		return &p.Title
	case FieldEmail:
		return &p.Email
	case FieldPhone:
		return &p.Phone
	case FieldLocation:
		return &p.Location
	case FieldWebsite:
		return &p.Website
	case FieldGithub:
		return &p.Github
	case FieldSummary:
		return &p.Summary
	case FieldSkills:
		return &p.Skills
	case FieldLanguages:
		return &p.Languages
	case FieldInterests:
		return &p.Interests
	}
	return nil
}

// Get returns the value of a scalar field.
func (p Profile) Get(f Field) (string, error) {
	ptr := p.scalar(f)
	if ptr == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	return *ptr, nil
}

// Clone returns a deep copy. The copy never shares backing arrays with p.
func (p Profile) Clone() Profile {
	out := p
	out.Education = make([]Education, len(p.Education))
	copy(out.Education, p.Education)
	out.Experience = make([]Experience, len(p.Experience))
	copy(out.Experience, p.Experience)
	out.Certifications = make([]Certification, len(p.Certifications))
	copy(out.Certifications, p.Certifications)
	return out
}

// Normalize fills absent collections with empty ones.
func (p Profile) Normalize() Profile {
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Certifications == nil {
		p.Certifications = []Certification{}
	}
	return p
}

// Validate checks the identifier invariants of every collection.
func (p Profile) Validate() error {
	if err := validateIDs(CollectionEducation, p.Education); err != nil {
		return err
	}
	if err := validateIDs(CollectionExperience, p.Experience); err != nil {
		return err
	}
	return validateIDs(CollectionCertifications, p.Certifications)
}

func validateIDs[T entry[T]](c Collection, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		id := it.EntryID()
		if id == "" {
			return fmt.Errorf("%w: %s[%d] has no id", ErrInvalidID, c, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: %s has duplicate id %q", ErrInvalidID, c, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
