package profile

import "fmt"

// UpdateField returns a copy of p with one scalar field replaced.
func UpdateField(p Profile, f Field, value string) (Profile, error) {
	out := p.Clone()
	ptr := out.scalar(f)
	if ptr == nil {
		return p, fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
	*ptr = value
	return out, nil
}

// AddEntry returns a copy of p with an empty entry identified by id appended to c.
func AddEntry(p Profile, c Collection, id string) (Profile, error) {
	if id == "" {
		return p, fmt.Errorf("%w: empty id", ErrInvalidID)
	}
	out := p.Clone()
	dup := false
	switch c {
	case CollectionEducation:
		dup = indexOf(out.Education, id) >= 0
		out.Education = append(out.Education, Education{ID: id})
	case CollectionExperience:
		dup = indexOf(out.Experience, id) >= 0
		out.Experience = append(out.Experience, Experience{ID: id})
	case CollectionCertifications:
		dup = indexOf(out.Certifications, id) >= 0
		out.Certifications = append(out.Certifications, Certification{ID: id})
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	if dup {
		return p, fmt.Errorf("%w: %q already exists in %s", ErrInvalidID, id, c)
	}
	return out, nil
}

// RemoveEntry returns a copy of p without the entry identified by id.
// A missing id leaves the profile unchanged.
func RemoveEntry(p Profile, c Collection, id string) (Profile, error) {
	out := p.Clone()
	switch c {
	case CollectionEducation:
		out.Education = without(out.Education, id)
	case CollectionExperience:
		out.Experience = without(out.Experience, id)
	case CollectionCertifications:
		out.Certifications = without(out.Certifications, id)
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	return out, nil
}

// UpdateEntry returns a copy of p with one field of one entry replaced.
// A missing id leaves the profile unchanged; a field that does not belong to
// the collection's entry type is an error.
func UpdateEntry(p Profile, c Collection, id string, f EntryField, value string) (Profile, error) {
	out := p.Clone()
	ok := false
	switch c {
	case CollectionEducation:
		out.Education, ok = withEntryField(out.Education, id, f, value)
	case CollectionExperience:
		out.Experience, ok = withEntryField(out.Experience, id, f, value)
	case CollectionCertifications:
		out.Certifications, ok = withEntryField(out.Certifications, id, f, value)
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownCollection, c)
	}
	if !ok {
		return p, fmt.Errorf("%w: %q is not a %s field", ErrUnknownField, f, c)
	}
	return out, nil
}
