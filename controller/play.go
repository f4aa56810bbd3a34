package controller

import (
	"fmt"
	"strings"

	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/selection"
	"github.com/samber/mo"
)

// Play starts or resumes synchronized playback. A cold start (neither
// participant paused) loads the selection from scratch; a resume goes
// straight to the play command. Either way the fullscreen state of both
// participants is fixed up afterwards.
func (c *Controller) Play(sel selection.Selection) (string, error) {
	masterStatus, slaveStatus := c.statuses()
	resume := isPaused(masterStatus) || isPaused(slaveStatus)

	if !resume {
		c.each(remote.Enqueue(sel.Master), remote.Enqueue(sel.Slave))
		c.broadcast(remote.PlayNext())
		c.broadcast(remote.SetRate(1.0))
		c.broadcast(remote.SeekTo(0))
		c.settle(c.policy.SettleDelay)
	}

	c.broadcast(remote.Play())
	c.settle(c.policy.CommandDelay)

	report := c.ensureFullscreen()

	if resume {
		return "resumed playback on both participants; " + report, nil
	}
	return "started playback from the top on both participants; " + report, nil
}

// WakeUp performs a cold bring-up when no media is loaded at all: load the
// selection, normalize rate and position, let the players buffer, then play.
func (c *Controller) WakeUp(sel selection.Selection) (string, error) {
	c.each(remote.Enqueue(sel.Master), remote.Enqueue(sel.Slave))
	c.settle(c.policy.CommandDelay)
	c.broadcast(remote.PlayNext())
	c.broadcast(remote.SetRate(1.0))
	c.broadcast(remote.SeekTo(0))
	c.settle(c.policy.SettleDelay)
	c.broadcast(remote.Play())
	c.settle(c.policy.CommandDelay)

	return "woke both participants from a cold start; " + c.ensureFullscreen(), nil
}

// SetFullscreen re-queries both participants after a short settle and
// enables fullscreen on any that is not already in it.
func (c *Controller) SetFullscreen() (string, error) {
	c.settle(c.policy.CommandDelay)
	return c.ensureFullscreen(), nil
}

// ensureFullscreen queries both participants and toggles fullscreen only on
// those not already fullscreen, reporting the per-participant before/after.
func (c *Controller) ensureFullscreen() string {
	masterStatus, slaveStatus := c.statuses()
	return strings.Join([]string{
		c.fixFullscreen(c.master, masterStatus),
		c.fixFullscreen(c.slave, slaveStatus),
	}, ", ")
}

func (c *Controller) fixFullscreen(p remote.Participant, st mo.Option[remote.Status]) string {
	status, ok := st.Get()
	if !ok {
		return fmt.Sprintf("%s fullscreen unknown", p.Role)
	}
	if status.Fullscreen {
		return fmt.Sprintf("%s already fullscreen", p.Role)
	}

	c.send(p, remote.ToggleFullscreen())
	return fmt.Sprintf("%s fullscreen was off, now on", p.Role)
}

func isPaused(st mo.Option[remote.Status]) bool {
	status, ok := st.Get()
	return ok && status.Paused()
}
