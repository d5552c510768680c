package model

import "encoding/json"

// ConvertRequestBody is the POST /convert payload: one tab text per source
// file, with optional per-source part overrides ("bass"/"melody", "" = auto)
// and optional config overrides layered over the server's config.
type ConvertRequestBody struct {
	Tabs          []string        `json:"tabs"`
	PartOverrides []string        `json:"part_overrides,omitempty"`
	Config        json.RawMessage `json:"config,omitempty"`
}

type ConvertResponse struct {
	RequestId  string `json:"request_id"`
	Tab        string `json:"tab"`
	Unplayable int    `json:"unplayable"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
