package remote

import (
	"sync"
	"time"

	"github.com/samber/mo"
)

// Poller fetches participant status on demand. Both participants are always
// queried concurrently; retry rounds are bounded and separated by a fixed delay.
type Poller struct {
	console Console
	delay   time.Duration
}

// NewPoller returns a Poller polling through the given console.
func NewPoller(console Console, delay time.Duration) *Poller {
	return &Poller{console: console, delay: delay}
}

// Snapshot performs a single concurrent status query of both participants.
func (p *Poller) Snapshot(master, slave Participant) (mo.Option[Status], mo.Option[Status]) {
	var (
		wg           sync.WaitGroup
		masterStatus mo.Option[Status]
		slaveStatus  mo.Option[Status]
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		masterStatus = p.console.Query(master)
	}()
	go func() {
		defer wg.Done()
		slaveStatus = p.console.Query(slave)
	}()
	wg.Wait()

	return masterStatus, slaveStatus
}

// Poll repeats Snapshot for up to attempts rounds, keeping the freshest
// defined status per participant and stopping early once both are defined.
// Reachability is tracked independently: one participant answering never
// masks the other's silence.
func (p *Poller) Poll(master, slave Participant, attempts int) (mo.Option[Status], mo.Option[Status]) {
	lastMaster := mo.None[Status]()
	lastSlave := mo.None[Status]()

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			time.Sleep(p.delay)
		}

		m, s := p.Snapshot(master, slave)
		if m.IsPresent() {
			lastMaster = m
		}
		if s.IsPresent() {
			lastSlave = s
		}

		if lastMaster.IsPresent() && lastSlave.IsPresent() {
			break
		}
	}

	return lastMaster, lastSlave
}
