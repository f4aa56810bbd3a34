package remote

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

// fakePlayer is an httptest stand-in for one player's remote-control interface.
type fakePlayer struct {
	status   string
	password string
	commands []string
	lastAuth bool
}

func (f *fakePlayer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		f.lastAuth = ok && user == "" && pass == f.password
		if !f.lastAuth {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if cmd := r.URL.Query().Get("command"); cmd != "" {
			f.commands = append(f.commands, r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(f.status))
	})
}

func TestClient(t *testing.T) {
	Convey("Given a reachable player", t, func() {
		player := &fakePlayer{password: "s3cret", status: `{"state":"playing","time":42,"fullscreen":true}`}
		server := httptest.NewServer(player.handler())
		defer server.Close()

		client := NewClient("s3cret")
		participant := Participant{Role: RoleMaster, BaseURL: server.URL}

		Convey("Query decodes the status document", func() {
			status, ok := client.Query(participant).Get()
			So(ok, ShouldBeTrue)
			So(status.State, ShouldEqual, StatePlaying)
			So(status.Elapsed, ShouldEqual, 42.0)
			So(status.Fullscreen, ShouldBeTrue)
			So(player.lastAuth, ShouldBeTrue)
		})

		Convey("Send encodes the command as query parameters", func() {
			outcome := client.Send(participant, SeekTo(51))
			So(outcome, ShouldEqual, Sent)
			So(player.commands, ShouldHaveLength, 1)
			So(player.commands[0], ShouldContainSubstring, "command=seek")
			So(player.commands[0], ShouldContainSubstring, "val=51")
		})

		Convey("Send carries the media path for load commands", func() {
			client.Send(participant, LoadAndPlay("/media/a.mp4"))
			So(player.commands[0], ShouldContainSubstring, "command=in_play")
			So(player.commands[0], ShouldContainSubstring, "input=%2Fmedia%2Fa.mp4")
		})
	})

	Convey("Given a player rejecting the credential", t, func() {
		player := &fakePlayer{password: "other", status: `{}`}
		server := httptest.NewServer(player.handler())
		defer server.Close()

		client := NewClient("s3cret")
		participant := Participant{Role: RoleSlave, BaseURL: server.URL}

		Convey("Send degrades to TransportFailed", func() {
			So(client.Send(participant, Play()), ShouldEqual, TransportFailed)
		})

		Convey("Query yields absence", func() {
			So(client.Query(participant).IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given an unreachable endpoint", t, func() {
		client := NewClient("s3cret")
		participant := Participant{Role: RoleSlave, BaseURL: "http://127.0.0.1:1"}

		Convey("Send degrades to TransportFailed", func() {
			So(client.Send(participant, Stop()), ShouldEqual, TransportFailed)
		})

		Convey("Query yields absence", func() {
			So(client.Query(participant).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestParseStatus(t *testing.T) {
	Convey("Status parsing", t, func() {
		Convey("Coerces a 0/1 fullscreen flag", func() {
			status, err := parseStatus(strings.NewReader(`{"state":"paused","time":7.5,"fullscreen":1}`))
			So(err, ShouldBeNil)
			So(status.Paused(), ShouldBeTrue)
			So(status.Elapsed, ShouldEqual, 7.5)
			So(status.Fullscreen, ShouldBeTrue)
		})

		Convey("Defaults absent fields to safe values", func() {
			status, err := parseStatus(strings.NewReader(`{}`))
			So(err, ShouldBeNil)
			So(status.State, ShouldEqual, StateUnknown)
			So(status.Elapsed, ShouldEqual, 0.0)
			So(status.Fullscreen, ShouldBeFalse)
		})

		Convey("Maps unrecognized states to unknown", func() {
			status, err := parseStatus(strings.NewReader(`{"state":"buffering","time":3}`))
			So(err, ShouldBeNil)
			So(status.State, ShouldEqual, StateUnknown)
			So(status.Elapsed, ShouldEqual, 3.0)
		})

		Convey("Rejects an undecodable document", func() {
			_, err := parseStatus(strings.NewReader(`<html>`))
			So(err, ShouldNotBeNil)
		})
	})
}
