// Package remote implements the client side of the players' HTTP remote-control protocol.
//
// Each participant exposes a VLC-style interface: a status document at
// /requests/status.json and one-shot commands issued as query parameters on
// the same resource, authenticated with a shared basic-auth secret.
package remote

import (
	"github.com/duet-cli/duet/key"
	"github.com/spf13/viper"
)

// Role distinguishes the two synchronized participants.
type Role string

const (
	RoleMaster Role = "master"
	RoleSlave  Role = "slave"
)

// Participant identifies one remote-controlled player. Fixed at process start; immutable.
type Participant struct {
	Role    Role
	BaseURL string
}

// Participants resolves both participant endpoints from the global configuration.
func Participants() (master, slave Participant) {
	master = Participant{Role: RoleMaster, BaseURL: viper.GetString(key.MasterURL)}
	slave = Participant{Role: RoleSlave, BaseURL: viper.GetString(key.SlaveURL)}
	return master, slave
}
