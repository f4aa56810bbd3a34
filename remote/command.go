package remote

import (
	"fmt"
	"net/url"
	"strconv"
)

// Command is a single one-shot instruction understood by the players' remote-control interface.
type Command struct {
	name  string
	input string
	val   string
}

// Values encodes the command as the query parameters expected by the remote interface.
func (c Command) Values() url.Values {
	values := url.Values{}
	values.Set("command", c.name)
	if c.input != "" {
		values.Set("input", c.input)
	}
	if c.val != "" {
		values.Set("val", c.val)
	}
	return values
}

// String renders the command for trails and logs.
func (c Command) String() string {
	switch {
	case c.input != "":
		return fmt.Sprintf("%s(%s)", c.name, c.input)
	case c.val != "":
		return fmt.Sprintf("%s(%s)", c.name, c.val)
	default:
		return c.name
	}
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}

// Enqueue appends the given media to the player's playlist without starting it.
func Enqueue(path string) Command {
	return Command{name: "in_enqueue", input: path}
}

// PlayNext advances the player to the next (just enqueued) playlist entry.
func PlayNext() Command {
	return Command{name: "pl_next"}
}

// Play starts or resumes playback of the current playlist entry.
func Play() Command {
	return Command{name: "pl_play"}
}

// Pause toggles the player's pause state. Callers must check the current
// state first: issuing it to a paused player resumes playback.
func Pause() Command {
	return Command{name: "pl_pause"}
}

// Stop halts playback entirely.
func Stop() Command {
	return Command{name: "pl_stop"}
}

// SeekTo moves playback to an absolute position in seconds.
func SeekTo(seconds float64) Command {
	return Command{name: "seek", val: formatSeconds(seconds)}
}

// SetRate changes the playback speed multiplier.
func SetRate(rate float64) Command {
	return Command{name: "rate", val: formatSeconds(rate)}
}

// ToggleFullscreen flips the player's fullscreen state.
func ToggleFullscreen() Command {
	return Command{name: "fullscreen"}
}

// LoadAndPlay replaces the current media with the given path and starts playback immediately.
func LoadAndPlay(path string) Command {
	return Command{name: "in_play", input: path}
}

// Outcome reports whether a fire-and-forget command reached the participant's transport.
// Delivery says nothing about whether the player honored the command.
type Outcome int

const (
	Sent Outcome = iota
	TransportFailed
)

func (o Outcome) String() string {
	if o == Sent {
		return "sent"
	}
	return "transport failed"
}
