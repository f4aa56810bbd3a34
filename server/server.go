// Package server exposes the control endpoint over HTTP.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/duet-cli/duet/controller"
	"github.com/duet-cli/duet/key"
	"github.com/duet-cli/duet/log"
	"github.com/spf13/viper"
)

// Dispatcher executes one control intent, producing exactly one outcome
// message or one error. *controller.Controller satisfies it.
type Dispatcher interface {
	Dispatch(controller.Intent) (string, error)
}

type server struct {
	dispatcher Dispatcher
}

// NewMux builds the HTTP routes over the given dispatcher.
func NewMux(dispatcher Dispatcher) http.Handler {
	s := &server{dispatcher: dispatcher}

	mux := http.NewServeMux()
	mux.HandleFunc("/control", s.handleControl)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/schema", s.handleSchema)
	return mux
}

// handleControl decodes one control request, dispatches it and reports the
// outcome. Command failures still answer 200: the response body, not the
// status code, carries the outcome.
func (s *server) handleControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, Response{Error: "control requests must be POST"})
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Error: fmt.Sprintf("malformed request body: %v", err)})
		return
	}

	message, err := s.dispatcher.Dispatch(req.Intent())
	if err != nil {
		writeJSON(w, http.StatusOK, Response{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, Response{Message: message})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(Schema())
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// Run serves the control endpoint until SIGINT or SIGTERM, then shuts down
// gracefully with a bounded drain window.
func Run(dispatcher Dispatcher) error {
	addr := net.JoinHostPort(
		viper.GetString(key.ServerHost),
		viper.GetString(key.ServerPort),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewMux(dispatcher),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		log.Infof("control endpoint listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-done:
	}

	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("graceful shutdown failed: %v", err)
		return srv.Close()
	}

	log.Info("control endpoint stopped")
	return nil
}
