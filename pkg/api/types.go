package api

import (
	"time"

	"github.com/rihla/rihla/pkg/match"
)

// ResultResponse is one search hit on the wire. Record carries the concrete
// entity so clients can render kind-specific cards.
type ResultResponse struct {
	Kind         string      `json:"kind"`
	Key          string      `json:"key"`
	Display      string      `json:"display"`
	Ref          string      `json:"ref"`
	MatchedField string      `json:"matched_field"`
	Record       interface{} `json:"record"`
}

type SearchResponse struct {
	Query   string           `json:"query"`
	Count   int              `json:"count"`
	Results []ResultResponse `json:"results"`
}

type KindInfo struct {
	Kind  string `json:"kind"`
	Count int    `json:"count"`
}

type ListKindsResponse struct {
	Kinds []KindInfo `json:"kinds"`
	Count int        `json:"count"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// LiveFrame is a server-to-client frame on the live search socket. Type is
// "hello" once after the upgrade, then "results" after every completed
// matching pass (including passes re-run on catalog updates).
type LiveFrame struct {
	Type    string           `json:"type"`
	Session string           `json:"session,omitempty"`
	Query   string           `json:"query,omitempty"`
	State   string           `json:"state,omitempty"`
	Count   int              `json:"count,omitempty"`
	Results []ResultResponse `json:"results,omitempty"`
}

// liveInput is a client-to-server frame: the raw search bar value.
type liveInput struct {
	Q string `json:"q"`
}

func toResultResponses(results []match.Result) []ResultResponse {
	out := make([]ResultResponse, len(results))
	for i, result := range results {
		out[i] = ResultResponse{
			Kind:         result.Kind.String(),
			Key:          result.Entity.Key(),
			Display:      result.Entity.Display(),
			Ref:          result.Entity.Ref(),
			MatchedField: result.Field.String(),
			Record:       result.Entity,
		}
	}
	return out
}
