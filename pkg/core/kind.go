package core

// Kind identifies a record category. Public search and back-office search
// operate on disjoint kind sets; a session is configured with one or the
// other, never a mix.
type Kind string

const (
	KindHotel   Kind = "hotel"
	KindTour    Kind = "tour"
	KindPackage Kind = "package"
	KindBlog    Kind = "blog"
	KindCity    Kind = "city"
	KindCountry Kind = "country"

	KindOffice       Kind = "office"
	KindDirectClient Kind = "direct_client"
	KindVoucher      Kind = "voucher"
	KindUser         Kind = "user"
)

// PublicKinds returns the kinds searched by the public search bar, in
// aggregation order.
func PublicKinds() []Kind {
	return []Kind{KindHotel, KindTour, KindPackage, KindBlog, KindCity, KindCountry}
}

// InternalKinds returns the kinds searched by the back-office search bar.
// The order is the fixed concatenation priority of internal results:
// offices first, then direct clients, vouchers and users.
func InternalKinds() []Kind {
	return []Kind{KindOffice, KindDirectClient, KindVoucher, KindUser}
}

// Destination reports whether the kind represents a place. Destination kinds
// rank before content kinds in public search.
func (k Kind) Destination() bool {
	return k == KindCity || k == KindCountry
}

func (k Kind) String() string {
	return string(k)
}
