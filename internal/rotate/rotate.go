// Package rotate caps the size of the append-only operational trail files.
package rotate

import (
	"bytes"

	"github.com/duet-cli/duet/filesystem"
	"github.com/duet-cli/duet/where"
)

const (
	// maxTrailSize is the size at which a trail file is rotated.
	maxTrailSize = 1 << 20

	// keepSize is how much of the newest tail survives a rotation.
	keepSize = 256 << 10
)

// Trails initializes an asynchronous background task that truncates oversized
// trail files down to their newest entries.
func Trails() {
	go func() {
		rotate(where.Actions())
		rotate(where.Failures())
	}()
}

// rotate keeps the newest keepSize bytes of the file, aligned to the first
// complete line, once the file grows past maxTrailSize.
func rotate(path string) {
	fs := filesystem.API()

	info, err := fs.Stat(path)
	if err != nil || info.Size() <= maxTrailSize {
		return
	}

	content, err := fs.ReadFile(path)
	if err != nil {
		return
	}

	tail := content[len(content)-keepSize:]
	if i := bytes.IndexByte(tail, '\n'); i >= 0 && i+1 < len(tail) {
		tail = tail[i+1:]
	}

	_ = fs.WriteFile(path, tail, 0644)
}
