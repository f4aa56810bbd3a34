// Package main is the entry point for the duet application.
package main

import (
	"github.com/duet-cli/duet/cmd"
	"github.com/duet-cli/duet/config"
	"github.com/duet-cli/duet/internal/cache"
	"github.com/duet-cli/duet/internal/rotate"
	"github.com/duet-cli/duet/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Initialize asynchronous background maintenance of caches and trails.
	cache.CollectGarbage()
	rotate.Trails()

	cmd.Execute()
}
