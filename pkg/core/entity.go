package core

// Entity is a read-only snapshot record pulled from a remote source or
// synthesized from other collections. The engine never mutates entities.
//
// Key must be stable across refetches of the same record so that callers can
// correlate results between searches. Display is the human-facing name (the
// title, for blog posts). Ref is the identifier handed to the navigation
// collaborator when a result is selected; the engine itself performs no
// routing.
type Entity interface {
	Key() string
	Kind() Kind
	Display() string
	Ref() string
}

// Selection is the handoff produced when a result is picked. It carries just
// enough for an external navigator to route on.
type Selection struct {
	Kind Kind   `json:"kind"`
	Ref  string `json:"ref"`
}

// Hotel is a bookable property with a location and locale-translated copy.
type Hotel struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	City         string         `json:"city"`
	Country      string         `json:"country"`
	Stars        int            `json:"stars,omitempty"`
	Image        string         `json:"image,omitempty"`
	Translations TranslationSet `json:"translations,omitempty"`
}

func (h *Hotel) Key() string     { return "hotel-" + h.ID }
func (h *Hotel) Kind() Kind      { return KindHotel }
func (h *Hotel) Display() string { return h.Name }
func (h *Hotel) Ref() string     { return h.Slug }

// Tour is a guided activity anchored to a single city and country.
type Tour struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	City         string         `json:"city"`
	Country      string         `json:"country"`
	Image        string         `json:"image,omitempty"`
	Translations TranslationSet `json:"translations,omitempty"`
}

func (t *Tour) Key() string     { return "tour-" + t.ID }
func (t *Tour) Kind() Kind      { return KindTour }
func (t *Tour) Display() string { return t.Name }
func (t *Tour) Ref() string     { return t.Slug }

// Package is a multi-destination bundle; it may span several countries and
// cities.
type Package struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Slug         string         `json:"slug"`
	Countries    []string       `json:"countries,omitempty"`
	Cities       []string       `json:"cities,omitempty"`
	Image        string         `json:"image,omitempty"`
	Translations TranslationSet `json:"translations,omitempty"`
}

func (p *Package) Key() string     { return "package-" + p.ID }
func (p *Package) Kind() Kind      { return KindPackage }
func (p *Package) Display() string { return p.Name }
func (p *Package) Ref() string     { return p.Slug }

// Blog is a published marketing post. Excerpt and body are carried for
// display but deliberately never probed by the matcher; matching on post
// bodies produced overly broad results.
type Blog struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Country  string   `json:"country,omitempty"`
	Excerpt  string   `json:"excerpt,omitempty"`
}

func (b *Blog) Key() string     { return "blog-" + b.ID }
func (b *Blog) Kind() Kind      { return KindBlog }
func (b *Blog) Display() string { return b.Title }
func (b *Blog) Ref() string     { return b.Slug }

// City is a destination, either synthesized by scanning hotel/tour/package
// collections or fetched from the per-country cities endpoint. The counts are
// only present on authoritative (API-sourced) rows.
type City struct {
	Name       string `json:"name"`
	Country    string `json:"country"`
	Image      string `json:"image,omitempty"`
	TourCount  int    `json:"tour_count,omitempty"`
	HotelCount int    `json:"hotel_count,omitempty"`
}

func (c *City) Key() string     { return "city-" + c.Name + "-" + c.Country }
func (c *City) Kind() Kind      { return KindCity }
func (c *City) Display() string { return c.Name }
func (c *City) Ref() string     { return c.Name }

// Country is a destination country from the static seed list.
type Country struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

func (c *Country) Key() string     { return "country-" + c.Name }
func (c *Country) Kind() Kind      { return KindCountry }
func (c *Country) Display() string { return c.Name }
func (c *Country) Ref() string     { return c.Name }

// Office is a partner agency in the back-office directory.
type Office struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
}

func (o *Office) Key() string     { return "office-" + o.ID }
func (o *Office) Kind() Kind      { return KindOffice }
func (o *Office) Display() string { return o.Name }
func (o *Office) Ref() string     { return o.ID }

// DirectClient is a walk-in client synthesized from vouchers that have no
// office reference.
type DirectClient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d *DirectClient) Key() string     { return d.ID }
func (d *DirectClient) Kind() Kind      { return KindDirectClient }
func (d *DirectClient) Display() string { return d.Name }
func (d *DirectClient) Ref() string     { return d.ID }

// Voucher is a booking voucher. Number is numeric and matched by plain
// substring containment against the trimmed query.
type Voucher struct {
	ID         string `json:"id"`
	Number     string `json:"voucher_number"`
	ClientName string `json:"client_name,omitempty"`
	OfficeID   string `json:"office_id,omitempty"`
}

func (v *Voucher) Key() string     { return "voucher-" + v.ID }
func (v *Voucher) Kind() Kind      { return KindVoucher }
func (v *Voucher) Display() string { return v.Number }
func (v *Voucher) Ref() string     { return v.ID }

// User is a back-office account. Only admins may search users.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (u *User) Key() string     { return "user-" + u.ID }
func (u *User) Kind() Kind      { return KindUser }
func (u *User) Display() string { return u.Username }
func (u *User) Ref() string     { return u.ID }
