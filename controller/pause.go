package controller

import (
	"fmt"
	"strings"

	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/util"
)

// Pause aligns both participants on the leading playback position before
// suspending them, so neither loses ground. The pause command itself is a
// toggle on the remote side, so only participants actually playing receive it.
func (c *Controller) Pause() (string, error) {
	masterStatus, slaveStatus := c.statuses()

	m, mOK := masterStatus.Get()
	s, sOK := slaveStatus.Get()
	if !mOK || !sOK {
		return "", ErrStatusGone
	}

	maxTime := util.Max(m.Elapsed, s.Elapsed)
	c.broadcast(remote.SeekTo(maxTime))

	var paused []string
	if m.Playing() {
		c.send(c.master, remote.Pause())
		paused = append(paused, string(remote.RoleMaster))
	}
	if s.Playing() {
		c.send(c.slave, remote.Pause())
		paused = append(paused, string(remote.RoleSlave))
	}

	if len(paused) == 0 {
		return fmt.Sprintf("aligned both participants at %.1fs; nothing was playing", maxTime), nil
	}
	return fmt.Sprintf("aligned both participants at %.1fs and paused %s", maxTime, strings.Join(paused, " and ")), nil
}

// Stop unconditionally halts both participants. The command is
// fire-and-forget, so this always succeeds at the protocol level.
func (c *Controller) Stop() (string, error) {
	c.broadcast(remote.Stop())
	return "stop issued to both participants", nil
}
