// Package controller implements the synchronization state machine coordinating both participants.
//
// Each control intent is a self-contained procedure over the participants'
// current status: nothing persists across intents except the media selection.
// Commands are fire-and-forget; a participant ignoring one is only observed
// through the next status query.
package controller

import (
	"sync"
	"time"

	"github.com/duet-cli/duet/key"
	"github.com/duet-cli/duet/log"
	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/selection"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// Policy bundles the tunable constants of the synchronization behavior.
// Tolerance and Lead default to 0.5s and 1.0s; changing them changes how
// aggressively drift is corrected, not the command sequences themselves.
type Policy struct {
	Tolerance    float64
	Lead         float64
	Attempts     int
	RetryDelay   time.Duration
	CommandDelay time.Duration
	SettleDelay  time.Duration
	SkipStep     float64
}

// PolicyFromConfig resolves the policy from the global configuration.
func PolicyFromConfig() Policy {
	return Policy{
		Tolerance:    viper.GetFloat64(key.SyncTolerance),
		Lead:         viper.GetFloat64(key.SyncLead),
		Attempts:     viper.GetInt(key.SyncAttempts),
		RetryDelay:   viper.GetDuration(key.SyncRetryDelay),
		CommandDelay: viper.GetDuration(key.PlayerCommandDelay),
		SettleDelay:  viper.GetDuration(key.PlayerSettleDelay),
		SkipStep:     float64(viper.GetInt(key.PlayerSkipStep)),
	}
}

// Controller executes control intents against the two participants.
type Controller struct {
	master  remote.Participant
	slave   remote.Participant
	console remote.Console
	poller  *remote.Poller
	store   *selection.Store
	policy  Policy
}

// New assembles a Controller over the given transport, store and policy.
func New(master, slave remote.Participant, console remote.Console, store *selection.Store, policy Policy) *Controller {
	return &Controller{
		master:  master,
		slave:   slave,
		console: console,
		poller:  remote.NewPoller(console, policy.RetryDelay),
		store:   store,
		policy:  policy,
	}
}

// send issues one fire-and-forget command and records it on the operational trail.
func (c *Controller) send(p remote.Participant, cmd remote.Command) remote.Outcome {
	outcome := c.console.Send(p, cmd)
	if outcome == remote.Sent {
		log.Action("%s %s", p.Role, cmd)
	} else {
		log.Failure("%s %s: not delivered", p.Role, cmd)
	}
	return outcome
}

// broadcast issues the same command to both participants concurrently.
// Deliveries are independent: one failing does not block or roll back the other.
func (c *Controller) broadcast(cmd remote.Command) {
	c.each(cmd, cmd)
}

// each issues one command per participant concurrently.
func (c *Controller) each(masterCmd, slaveCmd remote.Command) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.send(c.master, masterCmd)
	}()
	go func() {
		defer wg.Done()
		c.send(c.slave, slaveCmd)
	}()
	wg.Wait()
}

// statuses performs one concurrent status query of both participants.
func (c *Controller) statuses() (masterStatus, slaveStatus mo.Option[remote.Status]) {
	return c.poller.Snapshot(c.master, c.slave)
}

// settle suspends the intent's control flow for a fixed window, giving the
// remote players time to apply the preceding commands. These are deliberate
// pacing points, not timeouts.
func (c *Controller) settle(d time.Duration) {
	time.Sleep(d)
}

// participant returns the Participant carrying the given role.
func (c *Controller) participant(role remote.Role) remote.Participant {
	if role == remote.RoleSlave {
		return c.slave
	}
	return c.master
}
