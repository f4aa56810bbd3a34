package server

import (
	"github.com/duet-cli/duet/controller"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

// Request is the JSON body of a control request. Fields beyond the command
// are optional; the controller decides which ones a given command needs.
type Request struct {
	Command    string `json:"command" jsonschema:"required,description=Control command to execute"`
	MasterFile string `json:"masterFile,omitempty" jsonschema:"description=Media path for the master participant"`
	SlaveFile  string `json:"slaveFile,omitempty" jsonschema:"description=Media path for the slave participant"`
	SeekValue  string `json:"seekValue,omitempty" jsonschema:"description=Absolute seek position in seconds"`
	Speed      string `json:"speed,omitempty" jsonschema:"description=Playback rate multiplier"`
}

// Intent converts the wire request into a control intent.
func (r Request) Intent() controller.Intent {
	return controller.Intent{
		Command:    controller.Command(r.Command),
		MasterFile: r.MasterFile,
		SlaveFile:  r.SlaveFile,
		SeekValue:  r.SeekValue,
		Speed:      r.Speed,
	}
}

// Response carries exactly one of a human-readable outcome message or an
// error description, never both.
type Response struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Schema renders the JSON schema of the control request body.
func Schema() []byte {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	schema := reflector.Reflect(Request{})
	schema.Title = "Duet control request"

	return lo.Must(schema.MarshalJSON())
}
