package controller

import (
	"fmt"
	"math"

	"github.com/duet-cli/duet/log"
	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/selection"
	"github.com/samber/mo"
)

// Sync corrects playback drift between the participants. It polls both
// statuses with bounded retry, recovers a single unreachable participant by
// reloading its media, brings stalled participants back into a comparable
// state, and finally re-seeks the lagging participant just ahead of the
// leader. Small drift within the tolerance is left alone.
func (c *Controller) Sync(sel selection.Selection) (string, error) {
	masterStatus, slaveStatus := c.poller.Poll(c.master, c.slave, c.policy.Attempts)

	if masterStatus.IsAbsent() && slaveStatus.IsAbsent() {
		log.Failure("sync: both participants unreachable")
		return "", ErrBothUnreachable
	}

	var err error
	if masterStatus.IsAbsent() {
		if masterStatus, err = c.recoverParticipant(c.master, sel); err != nil {
			return "", err
		}
	}
	if slaveStatus.IsAbsent() {
		if slaveStatus, err = c.recoverParticipant(c.slave, sel); err != nil {
			return "", err
		}
	}

	masterStatus = c.reloadIfIdle(c.master, sel, masterStatus)
	slaveStatus = c.reloadIfIdle(c.slave, sel, slaveStatus)

	m := masterStatus.MustGet()
	s := slaveStatus.MustGet()

	drift := math.Abs(m.Elapsed - s.Elapsed)
	if drift <= c.policy.Tolerance {
		return fmt.Sprintf("in sync: %.1fs drift is within the %.1fs tolerance", drift, c.policy.Tolerance), nil
	}

	// Only the laggard moves; the leader is left untouched. The lead offset
	// compensates for the latency of delivering the seek itself.
	behind, ahead := c.master, s
	if m.Elapsed > s.Elapsed {
		behind, ahead = c.slave, m
	}
	target := ahead.Elapsed + c.policy.Lead

	c.send(behind, remote.SeekTo(target))
	c.broadcast(remote.Play())

	return fmt.Sprintf("corrected %.1fs drift: moved %s ahead to %.1fs, playback resumed on both", drift, behind.Role, target), nil
}

// recoverParticipant attempts to bring an unreachable participant back by
// reloading its selected media. Failure to produce a status afterwards is
// terminal for the intent.
func (c *Controller) recoverParticipant(p remote.Participant, sel selection.Selection) (mo.Option[remote.Status], error) {
	c.send(p, remote.LoadAndPlay(sel.PathFor(p.Role)))
	c.settle(c.policy.SettleDelay)

	status := c.console.Query(p)
	if status.IsAbsent() {
		log.Failure("sync: %s still unreachable after media reload", p.Role)
		return status, fmt.Errorf("%s unreachable: media reload failed", p.Role)
	}

	return status, nil
}

// reloadIfIdle reloads the selection on a participant that is not actively
// playing, so both elapsed positions are comparable before computing drift.
// When the follow-up query comes back empty the last known status is kept.
func (c *Controller) reloadIfIdle(p remote.Participant, sel selection.Selection, st mo.Option[remote.Status]) mo.Option[remote.Status] {
	status, ok := st.Get()
	if !ok || status.Playing() {
		return st
	}

	c.send(p, remote.LoadAndPlay(sel.PathFor(p.Role)))
	c.settle(c.policy.CommandDelay)

	if fresh := c.console.Query(p); fresh.IsPresent() {
		return fresh
	}
	return st
}
