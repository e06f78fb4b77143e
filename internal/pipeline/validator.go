package pipeline

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"streamseo/internal/models"
)

// Shape validation errors. Any of these aborts the run before a single
// artifact is written.
var (
	ErrInvalidJSON     = errors.New("catalogue body is not valid JSON")
	ErrMissingEvents   = errors.New("catalogue missing top-level \"events\" object")
	ErrMissingStreams  = errors.New("catalogue missing \"events.streams\"")
	ErrStreamsNotArray = errors.New("\"events.streams\" is not an array")
)

// Validator shape-checks and decodes raw catalogue bodies.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ParseCatalogue decodes a raw body into a Catalogue, failing fast when
// the expected `events.streams` array shape is missing.
func (v *Validator) ParseCatalogue(raw []byte) (*models.Catalogue, error) {
	var probe struct {
		Events *struct {
			Streams json.RawMessage `json:"streams"`
		} `json:"events"`
	}

	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidJSON, err)
	}

	if probe.Events == nil {
		return nil, ErrMissingEvents
	}

	if probe.Events.Streams == nil {
		return nil, ErrMissingStreams
	}

	if trimmed := bytes.TrimSpace(probe.Events.Streams); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrStreamsNotArray
	}

	var catalogue models.Catalogue
	if err := json.Unmarshal(raw, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to decode catalogue records: %w", err)
	}

	return &catalogue, nil
}
