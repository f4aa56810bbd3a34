package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// State is the playback state reported by a participant.
type State string

const (
	StatePlaying State = "playing"
	StatePaused  State = "paused"
	StateStopped State = "stopped"
	StateUnknown State = "unknown"
)

// Status is one participant's playback state at query time.
// Produced fresh on every query; never cached across intents.
type Status struct {
	State      State
	Elapsed    float64
	Fullscreen bool
}

// Playing reports whether the participant is actively advancing.
func (s Status) Playing() bool {
	return s.State == StatePlaying
}

// Paused reports whether the participant is suspended mid-media.
func (s Status) Paused() bool {
	return s.State == StatePaused
}

// statusDocument mirrors the wire shape of the remote status resource.
// Only the fields the controller consumes are decoded; everything else is ignored.
type statusDocument struct {
	State      string      `json:"state"`
	Time       json.Number `json:"time"`
	Fullscreen flexBool    `json:"fullscreen"`
}

// flexBool tolerates the two encodings seen across player builds: a JSON boolean or 0/1.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	var asBool bool
	if err := json.Unmarshal(trimmed, &asBool); err == nil {
		*b = flexBool(asBool)
		return nil
	}

	var asNumber float64
	if err := json.Unmarshal(trimmed, &asNumber); err == nil {
		*b = asNumber != 0
		return nil
	}

	return fmt.Errorf("fullscreen: cannot decode %q as bool or number", trimmed)
}

// parseStatus decodes a status document, coercing absent fields to safe values:
// missing time is 0, missing fullscreen is false, and an unrecognized state is unknown.
func parseStatus(r io.Reader) (Status, error) {
	var doc statusDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Status{}, fmt.Errorf("decode status: %w", err)
	}

	status := Status{
		State:      StateUnknown,
		Fullscreen: bool(doc.Fullscreen),
	}

	switch State(doc.State) {
	case StatePlaying, StatePaused, StateStopped:
		status.State = State(doc.State)
	}

	if elapsed, err := doc.Time.Float64(); err == nil && elapsed >= 0 {
		status.Elapsed = elapsed
	}

	return status, nil
}
