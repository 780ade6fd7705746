package cmd

import (
	"testing"

	"github.com/rihla/rihla/pkg/core"
)

func TestKindLabel(t *testing.T) {
	tests := []struct {
		kind core.Kind
		want string
	}{
		{core.KindHotel, "Hotel"},
		{core.KindDirectClient, "Direct Client"},
		{core.KindVoucher, "Voucher"},
	}
	for _, tt := range tests {
		if got := kindLabel(tt.kind); got != tt.want {
			t.Errorf("kindLabel(%q) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestFetchedKindsExcludeDerived(t *testing.T) {
	for _, kind := range fetchedKinds {
		if kind == core.KindCity || kind == core.KindCountry || kind == core.KindDirectClient {
			t.Errorf("derived kind %q must not be fetched from a registry source", kind)
		}
	}
}
