package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/duet-cli/duet/remote"
)

// SetSpeed applies the same playback rate to both participants. The raw
// value must parse to a finite number greater than zero.
func (c *Controller) SetSpeed(raw string) (string, error) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsInf(rate, 0) || math.IsNaN(rate) || rate <= 0 {
		return "", ErrInvalidSpeed
	}

	c.broadcast(remote.SetRate(rate))
	c.settle(c.policy.CommandDelay)

	return fmt.Sprintf("playback rate set to %s on both participants", strconv.FormatFloat(rate, 'f', -1, 64)), nil
}

// ResetSpeed restores normal playback rate on both participants.
func (c *Controller) ResetSpeed() (string, error) {
	c.broadcast(remote.SetRate(1.0))
	c.settle(c.policy.CommandDelay)

	return "playback rate reset to 1 on both participants", nil
}
