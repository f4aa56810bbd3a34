// Package log provides a thread-safe, structured logging infrastructure with filesystem-based persistence.
package log

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/duet-cli/duet/filesystem"
	"github.com/duet-cli/duet/key"
	"github.com/duet-cli/duet/where"
	"github.com/spf13/viper"
)

// trailMu serializes appends so that interleaved intents never produce torn lines.
var trailMu sync.Mutex

// Action appends a timestamped line describing an issued control action to the action trail.
func Action(format string, args ...interface{}) {
	appendTrail(where.Actions(), format, args...)
}

// Failure appends a timestamped line describing an operational failure to the failure trail.
func Failure(format string, args ...interface{}) {
	appendTrail(where.Failures(), format, args...)
}

func appendTrail(path string, format string, args ...interface{}) {
	if !viper.GetBool(key.LogsTrail) {
		return
	}

	trailMu.Lock()
	defer trailMu.Unlock()

	f, err := filesystem.API().OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		Warnf("open trail %s: %v", path, err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
	if _, err := f.WriteString(line); err != nil {
		Warnf("append trail %s: %v", path, err)
	}
}
