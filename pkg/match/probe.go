package match

import (
	"github.com/rihla/rihla/pkg/core"
)

// Probe pairs a field tag with an extractor for the values behind it. The
// probe list for a kind is ordered: the first probe containing the query is
// the recorded matched field, so declaration order IS the field priority.
type Probe struct {
	Field core.Field

	// Exact probes match the trimmed query by plain substring containment
	// instead of lower-casing both sides. Voucher numbers are numeric, so
	// case folding would be meaningless there.
	Exact bool

	Extract func(core.Entity) []string
}

// ProbesFor returns the fixed, ordered probe list for a kind. Unknown kinds
// have no probes and never match.
func ProbesFor(kind core.Kind) []Probe {
	switch kind {
	case core.KindHotel:
		return hotelProbes
	case core.KindTour:
		return tourProbes
	case core.KindPackage:
		return packageProbes
	case core.KindBlog:
		return blogProbes
	case core.KindCity:
		return cityProbes
	case core.KindCountry:
		return countryProbes
	case core.KindOffice:
		return officeProbes
	case core.KindDirectClient:
		return directClientProbes
	case core.KindVoucher:
		return voucherProbes
	case core.KindUser:
		return userProbes
	default:
		return nil
	}
}

func one(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

var hotelProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.Hotel).Name)
	}},
	{Field: core.FieldCity, Extract: func(e core.Entity) []string {
		return one(e.(*core.Hotel).City)
	}},
	{Field: core.FieldCountry, Extract: func(e core.Entity) []string {
		return one(e.(*core.Hotel).Country)
	}},
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return e.(*core.Hotel).Translations.Name.Values(core.AltLocales()...)
	}},
	{Field: core.FieldDescription, Extract: func(e core.Entity) []string {
		return e.(*core.Hotel).Translations.Description.Values(core.AltLocales()...)
	}},
}

var tourProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.Tour).Name)
	}},
	{Field: core.FieldCity, Extract: func(e core.Entity) []string {
		return one(e.(*core.Tour).City)
	}},
	{Field: core.FieldCountry, Extract: func(e core.Entity) []string {
		return one(e.(*core.Tour).Country)
	}},
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return e.(*core.Tour).Translations.Name.Values(core.AltLocales()...)
	}},
	{Field: core.FieldDescription, Extract: func(e core.Entity) []string {
		return e.(*core.Tour).Translations.Description.Values(core.AltLocales()...)
	}},
}

var packageProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.Package).Name)
	}},
	{Field: core.FieldCountry, Extract: func(e core.Entity) []string {
		return e.(*core.Package).Countries
	}},
	{Field: core.FieldCity, Extract: func(e core.Entity) []string {
		return e.(*core.Package).Cities
	}},
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return e.(*core.Package).Translations.Name.Values(core.AltLocales()...)
	}},
	{Field: core.FieldDescription, Extract: func(e core.Entity) []string {
		return e.(*core.Package).Translations.Description.Values(core.AltLocales()...)
	}},
}

// Blog excerpts and bodies are deliberately not probed: matching on post
// content made nearly every query return the whole blog.
var blogProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.Blog).Title)
	}},
	{Field: core.FieldCategory, Extract: func(e core.Entity) []string {
		return one(e.(*core.Blog).Category)
	}},
	{Field: core.FieldTag, Extract: func(e core.Entity) []string {
		return e.(*core.Blog).Tags
	}},
	{Field: core.FieldCountry, Extract: func(e core.Entity) []string {
		return one(e.(*core.Blog).Country)
	}},
}

var cityProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.City).Name)
	}},
	{Field: core.FieldCountry, Extract: func(e core.Entity) []string {
		return one(e.(*core.City).Country)
	}},
}

var countryProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.Country).Name)
	}},
}

var officeProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.Office).Name)
	}},
	{Field: core.FieldOther, Extract: func(e core.Entity) []string {
		return one(e.(*core.Office).Location)
	}},
}

var directClientProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.DirectClient).Name)
	}},
}

var voucherProbes = []Probe{
	{Field: core.FieldOther, Exact: true, Extract: func(e core.Entity) []string {
		return one(e.(*core.Voucher).Number)
	}},
}

var userProbes = []Probe{
	{Field: core.FieldName, Extract: func(e core.Entity) []string {
		return one(e.(*core.User).Username)
	}},
}
