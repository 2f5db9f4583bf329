package profile

// EntryField names one field of an education, experience or certification entry.
type EntryField string

const (
	EntryInstitution EntryField = "institution"
	EntryDegree      EntryField = "degree"
	EntryCompany     EntryField = "company"
	EntryPosition    EntryField = "position"
	EntryLocation    EntryField = "location"
	EntryStartDate   EntryField = "start_date"
	EntryEndDate     EntryField = "end_date"
	EntryDescription EntryField = "description"
	EntryName        EntryField = "name"
	EntryIssuer      EntryField = "issuer"
	EntryDate        EntryField = "date"
)

// EntryFields lists the editable fields of the collection's entry type.
func EntryFields(c Collection) []EntryField {
	switch c {
	case CollectionEducation:
		return []EntryField{EntryInstitution, EntryDegree, EntryLocation, EntryStartDate, EntryEndDate, EntryDescription}
	case CollectionExperience:
		return []EntryField{EntryCompany, EntryPosition, EntryLocation, EntryStartDate, EntryEndDate, EntryDescription}
	case CollectionCertifications:
		return []EntryField{EntryName, EntryIssuer, EntryDate}
	}
	return nil
}

type entry[T any] interface {
	EntryID() string
	with(f EntryField, value string) (T, bool)
}

func (e Education) EntryID() string     { return e.ID }
func (e Experience) EntryID() string    { return e.ID }
func (e Certification) EntryID() string { return e.ID }

func (e Education) with(f EntryField, v string) (Education, bool) {
	switch f {
	case EntryInstitution:
		e.Institution = v
	case EntryDegree:
		e.Degree = v
	case EntryLocation:
		e.Location = v
	case EntryStartDate:
		e.StartDate = v
	case EntryEndDate:
		e.EndDate = v
	case EntryDescription:
		e.Description = v
	default:
		return e, false
	}
	return e, true
}

func (e Experience) with(f EntryField, v string) (Experience, bool) {
	switch f {
	case EntryCompany:
		e.Company = v
	case EntryPosition:
		e.Position = v
	case EntryLocation:
		e.Location = v
	case EntryStartDate:
		e.StartDate = v
	case EntryEndDate:
		e.EndDate = v
	case EntryDescription:
		e.Description = v
	default:
		return e, false
	}
	return e, true
}

func (e Certification) with(f EntryField, v string) (Certification, bool) {
	switch f {
	case EntryName:
		e.Name = v
	case EntryIssuer:
		e.Issuer = v
	case EntryDate:
		e.Date = v
	default:
		return e, false
	}
	return e, true
}

func indexOf[T entry[T]](items []T, id string) int {
	for i, it := range items {
		if it.EntryID() == id {
			return i
		}
	}
	return -1
}

func without[T entry[T]](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.EntryID() != id {
			out = append(out, it)
		}
	}
	return out
}

func withEntryField[T entry[T]](items []T, id string, f EntryField, v string) ([]T, bool) {
	var zero T
	if _, ok := zero.with(f, v); !ok {
		return items, false
	}
	i := indexOf(items, id)
	if i < 0 {
		return items, true
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i], _ = out[i].with(f, v)
	return out, true
}
