package core

import (
	"context"
)

// Source fetches one remote collection kind. Implementations live under
// pkg/sources and register themselves during init() via
// RegisterSourcePrototype, mirroring how the engine discovers them at
// startup.
//
// Fetch returns the full collection snapshot for the kind. Implementations
// should respect context cancellation and return transport and shape errors
// to the caller; the catalog, not the source, decides the recovery policy
// (substitute an empty snapshot and log).
type Source interface {
	// Kind returns the collection kind this source provides.
	Kind() Kind

	// Name returns the instance name, used for logging and the source
	// inventory. Usually the kind string.
	Name() string

	// Fetch retrieves the full collection from the remote endpoint.
	Fetch(ctx context.Context) ([]Entity, error)

	// Enabled reports whether the source should be fetched at all for the
	// given settings. The users source returns false without an admin role
	// and a token, so the expected-failure round trip is never attempted.
	Enabled(settings SourceSettings) bool

	// Factory creates a configured instance of this source type.
	Factory(settings SourceSettings) (Source, error)

	// Close releases any resources held by the source.
	Close() error
}

// SourceSettings carries everything a source factory needs: the resolved
// endpoint URL plus the credential and role flags for authenticated kinds.
type SourceSettings struct {
	Endpoint string
	Token    string
	Admin    bool
}
