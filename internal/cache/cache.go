// Package cache prunes expired entries from the localized cache directory.
package cache

import (
	"path/filepath"
	"time"

	"github.com/duet-cli/duet/filesystem"
	"github.com/duet-cli/duet/where"
)

// TTL is the retention window for cached files and dated diagnostic logs.
const TTL = 7 * 24 * time.Hour

// CollectGarbage initializes an asynchronous background task to prune expired
// cache entries and stale dated log files from the filesystem.
func CollectGarbage() {
	go func() {
		prune(where.Cache())
		prune(where.Logs())
	}()
}

// prune removes regular files whose last modification exceeds the TTL.
// The operational trail files are exempt; they are rotated, not expired.
func prune(dir string) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return
	}

	trails := map[string]bool{
		filepath.Base(where.Actions()):  true,
		filepath.Base(where.Failures()): true,
	}

	for _, info := range entries {
		if info.IsDir() || trails[info.Name()] {
			continue
		}
		if time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(filepath.Join(dir, info.Name()))
		}
	}
}
