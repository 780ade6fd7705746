package core

// Field names the attribute of an entity that contained the query substring.
// It is recorded on every match for ranking and for UI badges.
type Field string

const (
	FieldName        Field = "name" // display name, or title for blog posts
	FieldCity        Field = "city"
	FieldCountry     Field = "country"
	FieldCategory    Field = "category"
	FieldTag         Field = "tag"
	FieldDescription Field = "description"
	FieldOther       Field = "other"
)

// Weight returns the ranking precedence of the field: a name match beats a
// city match, which beats a country match, which beats everything else.
// Lower weights sort first.
func (f Field) Weight() int {
	switch f {
	case FieldName:
		return 0
	case FieldCity:
		return 1
	case FieldCountry:
		return 2
	default:
		return 3
	}
}

func (f Field) String() string {
	return string(f)
}
