// Package derive synthesizes the searchable collections that do not exist as
// first-class API resources: destination countries, cities scanned out of the
// primary collections, and direct clients extracted from vouchers.
package derive

import (
	"strings"

	"github.com/rihla/rihla/pkg/core"
)

// placeholderImage is used when neither the city nor its country has a known
// picture.
const placeholderImage = "/img/destinations/placeholder.jpg"

// staticDestinations is the fixed seed list of destination countries. It is
// always present regardless of network state and forms the floor of the
// country collection.
var staticDestinations = []core.Country{
	{Name: "Turkey", Image: "/img/destinations/turkey.jpg"},
	{Name: "Egypt", Image: "/img/destinations/egypt.jpg"},
	{Name: "United Arab Emirates", Image: "/img/destinations/uae.jpg"},
	{Name: "Saudi Arabia", Image: "/img/destinations/saudi-arabia.jpg"},
	{Name: "Jordan", Image: "/img/destinations/jordan.jpg"},
	{Name: "Lebanon", Image: "/img/destinations/lebanon.jpg"},
	{Name: "Morocco", Image: "/img/destinations/morocco.jpg"},
	{Name: "Tunisia", Image: "/img/destinations/tunisia.jpg"},
	{Name: "Greece", Image: "/img/destinations/greece.jpg"},
	{Name: "Italy", Image: "/img/destinations/italy.jpg"},
	{Name: "Spain", Image: "/img/destinations/spain.jpg"},
	{Name: "France", Image: "/img/destinations/france.jpg"},
}

// cityImages maps well-known city names to curated imagery. Unknown cities
// fall back to their country's destination image, then to the placeholder.
var cityImages = map[string]string{
	"istanbul":   "/img/cities/istanbul.jpg",
	"antalya":    "/img/cities/antalya.jpg",
	"trabzon":    "/img/cities/trabzon.jpg",
	"cappadocia": "/img/cities/cappadocia.jpg",
	"cairo":      "/img/cities/cairo.jpg",
	"sharm el sheikh": "/img/cities/sharm-el-sheikh.jpg",
	"dubai":      "/img/cities/dubai.jpg",
	"abu dhabi":  "/img/cities/abu-dhabi.jpg",
	"riyadh":     "/img/cities/riyadh.jpg",
	"jeddah":     "/img/cities/jeddah.jpg",
	"amman":      "/img/cities/amman.jpg",
	"petra":      "/img/cities/petra.jpg",
	"beirut":     "/img/cities/beirut.jpg",
	"marrakesh":  "/img/cities/marrakesh.jpg",
	"paris":      "/img/cities/paris.jpg",
	"rome":       "/img/cities/rome.jpg",
	"barcelona":  "/img/cities/barcelona.jpg",
	"athens":     "/img/cities/athens.jpg",
}

// Destinations returns the static destination countries as entities, in seed
// order.
func Destinations() []core.Entity {
	entities := make([]core.Entity, 0, len(staticDestinations))
	for i := range staticDestinations {
		country := staticDestinations[i]
		entities = append(entities, &country)
	}
	return entities
}

// DestinationNames returns the seed country names, in order. The city builder
// issues one authoritative lookup per name.
func DestinationNames() []string {
	names := make([]string, 0, len(staticDestinations))
	for _, country := range staticDestinations {
		names = append(names, country.Name)
	}
	return names
}

// imageFor picks a picture for a (city, country) pair: known city first, then
// the country's destination image, then the placeholder.
func imageFor(city, country string) string {
	if img, ok := cityImages[strings.ToLower(strings.TrimSpace(city))]; ok {
		return img
	}
	for _, dest := range staticDestinations {
		if strings.EqualFold(dest.Name, country) {
			return dest.Image
		}
	}
	return placeholderImage
}
