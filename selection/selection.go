// Package selection implements the durable mapping from participant role to the currently selected media path.
//
// The record is a plain key=value file with one line per role. Writes are
// whole-record overwrites; last writer wins.
package selection

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/duet-cli/duet/filesystem"
	"github.com/duet-cli/duet/remote"
	"github.com/duet-cli/duet/where"
)

// File keys of the persisted record. Absent keys default to the empty string.
const (
	masterKey = "masterPath"
	slaveKey  = "slavePath"
)

// Selection holds the media paths currently chosen for both participants.
type Selection struct {
	Master string
	Slave  string
}

// Empty reports whether no path is selected for either participant.
func (s Selection) Empty() bool {
	return s.Master == "" && s.Slave == ""
}

// Complete reports whether both participants have a selected path.
func (s Selection) Complete() bool {
	return s.Master != "" && s.Slave != ""
}

// PathFor returns the selected media path for the given role.
func (s Selection) PathFor(role remote.Role) string {
	if role == remote.RoleSlave {
		return s.Slave
	}
	return s.Master
}

// Store persists the selection record at a fixed path through the filesystem abstraction.
type Store struct {
	path string
}

// NewStore returns a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore returns the Store at the application's standard selection path.
func DefaultStore() *Store {
	return NewStore(where.Selection())
}

// Load reads the persisted selection. A missing record yields a zero
// Selection without error; an unreadable one surfaces the underlying cause.
func (st *Store) Load() (Selection, error) {
	data, err := filesystem.API().ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Selection{}, nil
		}
		return Selection{}, fmt.Errorf("read selection record: %w", err)
	}

	var sel Selection
	for _, line := range strings.Split(string(data), "\n") {
		k, v, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found {
			continue
		}
		switch k {
		case masterKey:
			sel.Master = v
		case slaveKey:
			sel.Slave = v
		}
	}

	return sel, nil
}

// Save overwrites the whole record with the given selection.
func (st *Store) Save(sel Selection) error {
	if err := filesystem.API().MkdirAll(filepath.Dir(st.path), os.ModePerm); err != nil {
		return fmt.Errorf("prepare selection directory: %w", err)
	}

	content := fmt.Sprintf("%s=%s\n%s=%s\n", masterKey, sel.Master, slaveKey, sel.Slave)
	if err := filesystem.API().WriteFile(st.path, []byte(content), 0666); err != nil {
		return fmt.Errorf("write selection record: %w", err)
	}

	return nil
}
