package users

import (
	"testing"

	"github.com/rihla/rihla/pkg/core"
)

func TestEnabledRequiresAdminAndToken(t *testing.T) {
	proto := &Source{}

	tests := []struct {
		name     string
		settings core.SourceSettings
		want     bool
	}{
		{"admin with token", core.SourceSettings{Admin: true, Token: "t"}, true},
		{"admin without token", core.SourceSettings{Admin: true}, false},
		{"token without admin", core.SourceSettings{Token: "t"}, false},
		{"neither", core.SourceSettings{}, false},
	}

	for _, tt := range tests {
		if got := proto.Enabled(tt.settings); got != tt.want {
			t.Errorf("%s: Enabled = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGatedSourceIsSkippedNotErrored(t *testing.T) {
	registry := core.GlobalRegistry()

	// Without admin credentials CreateSource is a silent no-op; the users
	// collection simply never loads.
	if err := registry.CreateSource(core.KindUser, core.SourceSettings{Endpoint: "http://example.test/api/users"}); err != nil {
		t.Fatalf("expected a silent skip, got %v", err)
	}
	if _, ok := registry.Source(core.KindUser); ok {
		t.Fatal("gated source must not be instantiated")
	}
}
