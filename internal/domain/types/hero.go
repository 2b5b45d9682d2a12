package types

import (
	"encoding/json"
	"strconv"
)

// HeroID is the backend-assigned identifier of a hero. Zero means "not yet
// created".
type HeroID int

// String returns the decimal form of the identifier.
func (id HeroID) String() string { return strconv.Itoa(int(id)) }

// Hero is the only record the backend serves.
type Hero struct {
	ID   HeroID `json:"id,omitempty"`
	Name string `json:"name"`
}

// Ack is the opaque acknowledgement of a delete or update. Body is whatever the
// backend returned and may be empty; a nil *Ack means the call failed.
type Ack struct {
	Body json.RawMessage `json:"body,omitempty"`
}
