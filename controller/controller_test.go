package controller

import (
	"fmt"
	"sync"
	"testing"

	"github.com/duet-cli/duet/filesystem"
	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/selection"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

// fakeConsole records every issued command and answers queries from
// per-role response queues. The last queued answer repeats once the
// queue is drained, so repeated snapshots see a stable player.
type fakeConsole struct {
	mu      sync.Mutex
	answers map[remote.Role][]mo.Option[remote.Status]
	issued  []string
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{answers: map[remote.Role][]mo.Option[remote.Status]{}}
}

func (f *fakeConsole) answer(role remote.Role, statuses ...mo.Option[remote.Status]) {
	f.answers[role] = statuses
}

func (f *fakeConsole) Send(p remote.Participant, cmd remote.Command) remote.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued = append(f.issued, fmt.Sprintf("%s %s", p.Role, cmd))
	return remote.Sent
}

func (f *fakeConsole) Query(p remote.Participant) mo.Option[remote.Status] {
	f.mu.Lock()
	defer f.mu.Unlock()

	queue := f.answers[p.Role]
	switch len(queue) {
	case 0:
		return mo.None[remote.Status]()
	case 1:
		return queue[0]
	default:
		f.answers[p.Role] = queue[1:]
		return queue[0]
	}
}

func (f *fakeConsole) sends() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.issued...)
}

func (f *fakeConsole) sent(line string) bool {
	return indexOf(f.sends(), line) >= 0
}

func indexOf(lines []string, target string) int {
	for i, line := range lines {
		if line == target {
			return i
		}
	}
	return -1
}

func playing(elapsed float64) mo.Option[remote.Status] {
	return mo.Some(remote.Status{State: remote.StatePlaying, Elapsed: elapsed, Fullscreen: true})
}

func paused(elapsed float64) mo.Option[remote.Status] {
	return mo.Some(remote.Status{State: remote.StatePaused, Elapsed: elapsed, Fullscreen: true})
}

func stopped() mo.Option[remote.Status] {
	return mo.Some(remote.Status{State: remote.StateStopped})
}

func absent() mo.Option[remote.Status] {
	return mo.None[remote.Status]()
}

func testPolicy() Policy {
	return Policy{Tolerance: 0.5, Lead: 1.0, Attempts: 3, SkipStep: 10}
}

func newTestController(console *fakeConsole) (*Controller, *selection.Store) {
	filesystem.SetMemMapFs()
	store := selection.NewStore("/config/selection.conf")
	master := remote.Participant{Role: remote.RoleMaster, BaseURL: "http://master"}
	slave := remote.Participant{Role: remote.RoleSlave, BaseURL: "http://slave"}
	return New(master, slave, console, store, testPolicy()), store
}

var testSelection = selection.Selection{Master: "a.mp4", Slave: "b.mp4"}

func TestSetSpeed(t *testing.T) {
	Convey("Given both participants", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)

		Convey("A valid rate reaches both participants and nobody else", func() {
			msg, err := ctrl.SetSpeed("1.5")
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "1.5")

			sends := console.sends()
			So(sends, ShouldHaveLength, 2)
			So(console.sent("master rate(1.5)"), ShouldBeTrue)
			So(console.sent("slave rate(1.5)"), ShouldBeTrue)
		})

		Convey("Invalid rates are rejected before any command", func() {
			for _, raw := range []string{"", "abc", "0", "-2", "inf", "nan"} {
				_, err := ctrl.SetSpeed(raw)
				So(err, ShouldEqual, ErrInvalidSpeed)
			}
			So(console.sends(), ShouldBeEmpty)
		})

		Convey("ResetSpeed restores rate 1 without validation", func() {
			_, err := ctrl.ResetSpeed()
			So(err, ShouldBeNil)
			So(console.sent("master rate(1)"), ShouldBeTrue)
			So(console.sent("slave rate(1)"), ShouldBeTrue)
		})
	})
}

func TestSeekAbsolute(t *testing.T) {
	Convey("Given both participants", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)

		Convey("Non-numeric or absent values issue zero commands", func() {
			for _, raw := range []string{"", "abc", "nan", "+inf"} {
				_, err := ctrl.SeekAbsolute(raw)
				So(err, ShouldEqual, ErrInvalidSeek)
			}
			So(console.sends(), ShouldBeEmpty)
		})

		Convey("A finite value seeks both participants", func() {
			msg, err := ctrl.SeekAbsolute("42.5")
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "42.5")
			So(console.sent("master seek(42.5)"), ShouldBeTrue)
			So(console.sent("slave seek(42.5)"), ShouldBeTrue)
		})
	})
}

func TestPause(t *testing.T) {
	Convey("Given both participants playing at 12.3s and 9.8s", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(12.3))
		console.answer(remote.RoleSlave, playing(9.8))

		Convey("Both are seeked to the leading position before any pause", func() {
			_, err := ctrl.Pause()
			So(err, ShouldBeNil)

			sends := console.sends()
			masterSeek := indexOf(sends, "master seek(12.3)")
			slaveSeek := indexOf(sends, "slave seek(12.3)")
			masterPause := indexOf(sends, "master pl_pause")
			slavePause := indexOf(sends, "slave pl_pause")

			So(masterSeek, ShouldBeGreaterThanOrEqualTo, 0)
			So(slaveSeek, ShouldBeGreaterThanOrEqualTo, 0)
			So(masterPause, ShouldBeGreaterThan, masterSeek)
			So(masterPause, ShouldBeGreaterThan, slaveSeek)
			So(slavePause, ShouldBeGreaterThan, masterSeek)
			So(slavePause, ShouldBeGreaterThan, slaveSeek)
		})
	})

	Convey("Given master playing at 5.0s and slave already paused at 4.0s", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(5.0))
		console.answer(remote.RoleSlave, paused(4.0))

		Convey("Both are aligned but only master receives a pause", func() {
			_, err := ctrl.Pause()
			So(err, ShouldBeNil)
			So(console.sent("master seek(5)"), ShouldBeTrue)
			So(console.sent("slave seek(5)"), ShouldBeTrue)
			So(console.sent("master pl_pause"), ShouldBeTrue)
			So(console.sent("slave pl_pause"), ShouldBeFalse)
		})
	})

	Convey("Given an unavailable status", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(5.0))

		Convey("Pause fails without issuing commands", func() {
			_, err := ctrl.Pause()
			So(err, ShouldEqual, ErrStatusGone)
			So(console.sends(), ShouldBeEmpty)
		})
	})
}

func TestSkipRelative(t *testing.T) {
	Convey("Given master at 5.0s and slave at 15.0s", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(5.0))
		console.answer(remote.RoleSlave, playing(15.0))

		Convey("Each participant moves relative to its own position, clamped at zero", func() {
			msg, err := ctrl.SkipRelative(-10)
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "0.0s")
			So(console.sent("master seek(0)"), ShouldBeTrue)
			So(console.sent("slave seek(5)"), ShouldBeTrue)
		})
	})
}

func TestPlay(t *testing.T) {
	Convey("Given neither participant paused (cold start)", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, stopped())
		console.answer(remote.RoleSlave, stopped())

		Convey("The full enqueue, advance, rate-reset, seek-zero, play sequence runs in order", func() {
			msg, err := ctrl.Play(testSelection)
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "started playback")

			sends := console.sends()
			for _, role := range []string{"master", "slave"} {
				path := map[string]string{"master": "a.mp4", "slave": "b.mp4"}[role]
				enqueue := indexOf(sends, fmt.Sprintf("%s in_enqueue(%s)", role, path))
				next := indexOf(sends, role+" pl_next")
				rate := indexOf(sends, role+" rate(1)")
				seek := indexOf(sends, role+" seek(0)")
				play := indexOf(sends, role+" pl_play")

				So(enqueue, ShouldBeGreaterThanOrEqualTo, 0)
				So(next, ShouldBeGreaterThan, enqueue)
				So(rate, ShouldBeGreaterThan, next)
				So(seek, ShouldBeGreaterThan, rate)
				So(play, ShouldBeGreaterThan, seek)
			}
		})

		Convey("A stopped participant out of fullscreen is toggled into it", func() {
			console.answer(remote.RoleSlave, mo.Some(remote.Status{State: remote.StateStopped}))
			_, err := ctrl.Play(testSelection)
			So(err, ShouldBeNil)
			So(console.sent("slave fullscreen"), ShouldBeTrue)
		})
	})

	Convey("Given one participant paused (resume)", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, paused(30))
		console.answer(remote.RoleSlave, playing(30))

		Convey("Playback resumes without reloading anything", func() {
			msg, err := ctrl.Play(testSelection)
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "resumed")

			sends := console.sends()
			So(indexOf(sends, "master pl_play"), ShouldBeGreaterThanOrEqualTo, 0)
			So(indexOf(sends, "slave pl_play"), ShouldBeGreaterThanOrEqualTo, 0)
			So(console.sent("master in_enqueue(a.mp4)"), ShouldBeFalse)
			So(console.sent("master seek(0)"), ShouldBeFalse)
		})
	})
}

func TestWakeUp(t *testing.T) {
	Convey("WakeUp loads, normalizes and starts both participants", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(0))
		console.answer(remote.RoleSlave, playing(0))

		msg, err := ctrl.WakeUp(testSelection)
		So(err, ShouldBeNil)
		So(msg, ShouldContainSubstring, "woke both participants")

		sends := console.sends()
		So(indexOf(sends, "master in_enqueue(a.mp4)"), ShouldBeGreaterThanOrEqualTo, 0)
		So(indexOf(sends, "slave in_enqueue(b.mp4)"), ShouldBeGreaterThanOrEqualTo, 0)
		So(indexOf(sends, "master pl_play"), ShouldBeGreaterThan, indexOf(sends, "master seek(0)"))
	})
}

func TestSync(t *testing.T) {
	Convey("Given drift within tolerance", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(100.0))
		console.answer(remote.RoleSlave, playing(100.2))

		Convey("No commands are issued at all", func() {
			msg, err := ctrl.Sync(testSelection)
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "in sync")
			So(console.sends(), ShouldBeEmpty)
		})
	})

	Convey("Given the slave lagging 6 seconds behind", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(50.0))
		console.answer(remote.RoleSlave, playing(44.0))

		Convey("Only the slave is moved, one second ahead of the master", func() {
			msg, err := ctrl.Sync(testSelection)
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "51.0s")

			So(console.sent("slave seek(51)"), ShouldBeTrue)
			So(console.sent("master seek(51)"), ShouldBeFalse)
			So(console.sent("master pl_play"), ShouldBeTrue)
			So(console.sent("slave pl_play"), ShouldBeTrue)
		})
	})

	Convey("Given both participants unreachable", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)

		Convey("Sync fails naming both", func() {
			_, err := ctrl.Sync(testSelection)
			So(err, ShouldEqual, ErrBothUnreachable)
			So(console.sends(), ShouldBeEmpty)
		})
	})

	Convey("Given only the slave unreachable", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(50.0))

		Convey("A successful recovery reload brings it back into the drift computation", func() {
			console.answer(remote.RoleSlave, absent(), absent(), absent(), playing(44.0))

			_, err := ctrl.Sync(testSelection)
			So(err, ShouldBeNil)
			So(console.sent("slave in_play(b.mp4)"), ShouldBeTrue)
			So(console.sent("slave seek(51)"), ShouldBeTrue)
		})

		Convey("A failed recovery reload names the participant", func() {
			console.answer(remote.RoleSlave, absent())

			_, err := ctrl.Sync(testSelection)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "slave unreachable")
		})
	})

	Convey("Given a stalled participant", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)
		console.answer(remote.RoleMaster, playing(50.0))
		console.answer(remote.RoleSlave, stopped(), playing(49.8))

		Convey("Its media is reloaded before drift is computed", func() {
			msg, err := ctrl.Sync(testSelection)
			So(err, ShouldBeNil)
			So(console.sent("slave in_play(b.mp4)"), ShouldBeTrue)
			So(msg, ShouldContainSubstring, "in sync")
		})
	})
}

func TestSaveSelection(t *testing.T) {
	Convey("Given a selection store", t, func() {
		console := newFakeConsole()
		ctrl, store := newTestController(console)

		Convey("A missing path is rejected and the store stays untouched", func() {
			So(store.Save(selection.Selection{Master: "old.mp4", Slave: "old2.mp4"}), ShouldBeNil)

			_, err := ctrl.SaveSelection("", "b.mp4")
			So(err, ShouldEqual, ErrMissingPaths)

			sel, loadErr := store.Load()
			So(loadErr, ShouldBeNil)
			So(sel.Master, ShouldEqual, "old.mp4")
			So(sel.Slave, ShouldEqual, "old2.mp4")
		})

		Convey("A complete selection is persisted and confirmed", func() {
			msg, err := ctrl.SaveSelection("a.mp4", "b.mp4")
			So(err, ShouldBeNil)
			So(msg, ShouldContainSubstring, "a.mp4")

			sel, loadErr := store.Load()
			So(loadErr, ShouldBeNil)
			So(sel, ShouldResemble, selection.Selection{Master: "a.mp4", Slave: "b.mp4"})
		})
	})
}

func TestDispatch(t *testing.T) {
	Convey("Given an empty path store", t, func() {
		console := newFakeConsole()
		ctrl, _ := newTestController(console)

		Convey("Intents needing a selection fail before touching the transport", func() {
			_, err := ctrl.Dispatch(Intent{Command: CommandPlay})
			So(err, ShouldEqual, ErrNoSelection)
			So(console.sends(), ShouldBeEmpty)
		})

		Convey("Save is exempt from resolution", func() {
			_, err := ctrl.Dispatch(Intent{Command: CommandSave, MasterFile: "a.mp4", SlaveFile: "b.mp4"})
			So(err, ShouldBeNil)
		})
	})

	Convey("Given a populated path store", t, func() {
		console := newFakeConsole()
		ctrl, store := newTestController(console)
		So(store.Save(selection.Selection{Master: "a.mp4", Slave: "b.mp4"}), ShouldBeNil)

		Convey("Caller paths take precedence over stored ones", func() {
			sel, err := ctrl.Resolve("override.mp4", "")
			So(err, ShouldBeNil)
			So(sel.Master, ShouldEqual, "override.mp4")
			So(sel.Slave, ShouldEqual, "b.mp4")
		})

		Convey("Skip intents derive their delta from the policy step", func() {
			console.answer(remote.RoleMaster, playing(20))
			console.answer(remote.RoleSlave, playing(20))

			_, err := ctrl.Dispatch(Intent{Command: CommandSkipBack})
			So(err, ShouldBeNil)
			So(console.sent("master seek(10)"), ShouldBeTrue)
		})

		Convey("An unknown command is rejected", func() {
			_, err := ctrl.Dispatch(Intent{Command: Command("rewind")})
			So(err, ShouldNotBeNil)
		})
	})
}
