package controller

import (
	"fmt"

	"github.com/duet-cli/duet/selection"
)

// Command enumerates the closed set of control intents.
type Command string

const (
	CommandPlay        Command = "play"
	CommandPause       Command = "pause"
	CommandStop        Command = "stop"
	CommandSeek        Command = "seek"
	CommandSkipForward Command = "skip-forward"
	CommandSkipBack    Command = "skip-back"
	CommandWake        Command = "wake"
	CommandSpeed       Command = "speed"
	CommandSpeedReset  Command = "speed-reset"
	CommandSync        Command = "sync"
	CommandSave        Command = "save"
	CommandFullscreen  Command = "fullscreen"
)

// Commands lists every accepted intent identifier.
func Commands() []Command {
	return []Command{
		CommandPlay, CommandPause, CommandStop, CommandSeek,
		CommandSkipForward, CommandSkipBack, CommandWake,
		CommandSpeed, CommandSpeedReset, CommandSync,
		CommandSave, CommandFullscreen,
	}
}

// Intent is one stateless control request. Nothing of it persists past its handling.
type Intent struct {
	Command    Command
	MasterFile string
	SlaveFile  string
	SeekValue  string
	Speed      string
}

// Dispatch routes an intent to its handler, producing exactly one outcome
// message or one error, never both.
func (c *Controller) Dispatch(in Intent) (string, error) {
	if in.Command == CommandSave {
		return c.SaveSelection(in.MasterFile, in.SlaveFile)
	}

	sel, err := c.Resolve(in.MasterFile, in.SlaveFile)
	if err != nil {
		return "", err
	}

	switch in.Command {
	case CommandPlay:
		return c.Play(sel)
	case CommandPause:
		return c.Pause()
	case CommandStop:
		return c.Stop()
	case CommandSeek:
		return c.SeekAbsolute(in.SeekValue)
	case CommandSkipForward:
		return c.SkipRelative(c.policy.SkipStep)
	case CommandSkipBack:
		return c.SkipRelative(-c.policy.SkipStep)
	case CommandWake:
		return c.WakeUp(sel)
	case CommandSpeed:
		return c.SetSpeed(in.Speed)
	case CommandSpeedReset:
		return c.ResetSpeed()
	case CommandSync:
		return c.Sync(sel)
	case CommandFullscreen:
		return c.SetFullscreen()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, in.Command)
	}
}

// Resolve merges caller-supplied media paths with the persisted selection.
// Caller paths win; anything still empty afterwards fails the intent before
// a single command is issued.
func (c *Controller) Resolve(masterFile, slaveFile string) (selection.Selection, error) {
	stored, err := c.store.Load()
	if err != nil {
		return selection.Selection{}, err
	}

	sel := selection.Selection{Master: masterFile, Slave: slaveFile}
	if sel.Master == "" {
		sel.Master = stored.Master
	}
	if sel.Slave == "" {
		sel.Slave = stored.Slave
	}

	if !sel.Complete() {
		return sel, ErrNoSelection
	}

	return sel, nil
}
