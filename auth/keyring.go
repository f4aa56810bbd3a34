// Package auth resolves the shared remote-control secret, optionally persisting it in the system keyring.
package auth

import (
	"errors"

	"github.com/duet-cli/duet/constant"
	"github.com/duet-cli/duet/key"
	"github.com/spf13/viper"
	"github.com/zalando/go-keyring"
)

const (
	service = "duet-cli"
	user    = "players-password"
)

// ErrNoPassword indicates that no shared secret could be resolved from any source.
var ErrNoPassword = errors.New("no players password configured (set " + key.PlayersPassword + " or run \"" + constant.Duet + " auth set\")")

// SetPassword persists the shared players password to the system keyring.
func SetPassword(password string) error {
	return keyring.Set(service, user, password)
}

// DeletePassword removes the shared players password from the system keyring.
func DeletePassword() error {
	return keyring.Delete(service, user)
}

// Password resolves the shared secret used by both players' remote-control interfaces.
// Resolution order: configuration (flag, environment, config file), then the system keyring.
// An empty result is a startup-fatal condition for every transport-touching command.
func Password() (string, error) {
	if pass := viper.GetString(key.PlayersPassword); pass != "" {
		return pass, nil
	}

	pass, err := keyring.Get(service, user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNoPassword
		}
		return "", err
	}
	if pass == "" {
		return "", ErrNoPassword
	}

	return pass, nil
}
