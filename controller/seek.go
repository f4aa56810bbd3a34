package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/util"
)

// SeekAbsolute moves both participants to the same absolute position.
// The raw value is rejected before any command is issued unless it parses
// to a finite number.
func (c *Controller) SeekAbsolute(raw string) (string, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return "", ErrInvalidSeek
	}

	c.broadcast(remote.SeekTo(value))
	return fmt.Sprintf("seeked both participants to %.1fs", value), nil
}

// SkipRelative moves each participant relative to its own current position,
// clamped at zero. Requires both statuses to be available.
func (c *Controller) SkipRelative(delta float64) (string, error) {
	masterStatus, slaveStatus := c.statuses()

	m, mOK := masterStatus.Get()
	s, sOK := slaveStatus.Get()
	if !mOK || !sOK {
		return "", ErrStatusGone
	}

	masterTarget := util.Max(0, m.Elapsed+delta)
	slaveTarget := util.Max(0, s.Elapsed+delta)
	c.each(remote.SeekTo(masterTarget), remote.SeekTo(slaveTarget))

	return fmt.Sprintf("skipped master to %.1fs and slave to %.1fs", masterTarget, slaveTarget), nil
}
