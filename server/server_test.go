package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/duet-cli/duet/controller"
	. "github.com/smartystreets/goconvey/convey"
)

type stubDispatcher struct {
	intents []controller.Intent
	message string
	err     error
}

func (s *stubDispatcher) Dispatch(in controller.Intent) (string, error) {
	s.intents = append(s.intents, in)
	return s.message, s.err
}

func post(handler http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/control", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	So(json.NewDecoder(rec.Body).Decode(&resp), ShouldBeNil)
	return resp
}

func TestControlEndpoint(t *testing.T) {
	Convey("Given the control endpoint", t, func() {
		Convey("A successful command answers with a message and no error", func() {
			dispatcher := &stubDispatcher{message: "stop issued to both participants"}
			rec := post(NewMux(dispatcher), `{"command": "stop"}`)

			So(rec.Code, ShouldEqual, http.StatusOK)
			resp := decode(t, rec)
			So(resp.Message, ShouldEqual, "stop issued to both participants")
			So(resp.Error, ShouldBeEmpty)
		})

		Convey("A failed command still answers 200, with the error in the body", func() {
			dispatcher := &stubDispatcher{err: controller.ErrNoSelection}
			rec := post(NewMux(dispatcher), `{"command": "play"}`)

			So(rec.Code, ShouldEqual, http.StatusOK)
			resp := decode(t, rec)
			So(resp.Error, ShouldEqual, controller.ErrNoSelection.Error())
			So(resp.Message, ShouldBeEmpty)
		})

		Convey("Every request field reaches the dispatcher as an intent", func() {
			dispatcher := &stubDispatcher{message: "ok"}
			post(NewMux(dispatcher), `{"command": "save", "masterFile": "a.mp4", "slaveFile": "b.mp4", "seekValue": "10", "speed": "1.5"}`)

			So(dispatcher.intents, ShouldHaveLength, 1)
			So(dispatcher.intents[0], ShouldResemble, controller.Intent{
				Command:    controller.CommandSave,
				MasterFile: "a.mp4",
				SlaveFile:  "b.mp4",
				SeekValue:  "10",
				Speed:      "1.5",
			})
		})

		Convey("A malformed body is rejected before dispatch", func() {
			dispatcher := &stubDispatcher{}
			rec := post(NewMux(dispatcher), `{"command": `)

			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode(t, rec).Error, ShouldContainSubstring, "malformed")
			So(dispatcher.intents, ShouldBeEmpty)
		})

		Convey("Non-POST methods are rejected", func() {
			dispatcher := &stubDispatcher{}
			req := httptest.NewRequest(http.MethodGet, "/control", nil)
			rec := httptest.NewRecorder()
			NewMux(dispatcher).ServeHTTP(rec, req)

			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(dispatcher.intents, ShouldBeEmpty)
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("The health endpoint reports ok", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		NewMux(&stubDispatcher{}).ServeHTTP(rec, req)

		So(rec.Code, ShouldEqual, http.StatusOK)
		So(rec.Body.String(), ShouldContainSubstring, `"status":"ok"`)
	})
}

func TestSchemaEndpoint(t *testing.T) {
	Convey("The schema endpoint describes the request body", t, func() {
		req := httptest.NewRequest(http.MethodGet, "/schema", nil)
		rec := httptest.NewRecorder()
		NewMux(&stubDispatcher{}).ServeHTTP(rec, req)

		So(rec.Code, ShouldEqual, http.StatusOK)

		var schema map[string]any
		So(json.NewDecoder(rec.Body).Decode(&schema), ShouldBeNil)
		So(schema["properties"], ShouldNotBeNil)

		properties := schema["properties"].(map[string]any)
		So(properties, ShouldContainKey, "command")
		So(properties, ShouldContainKey, "masterFile")
	})
}
