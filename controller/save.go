package controller

import (
	"fmt"

	"github.com/duet-cli/duet/log"
	"github.com/duet-cli/duet/selection"
)

// SaveSelection overwrites the persisted media selection. Both paths are
// required; a rejected save leaves the stored record untouched. The record
// is read back immediately so the trail carries a confirmed state.
func (c *Controller) SaveSelection(masterFile, slaveFile string) (string, error) {
	if masterFile == "" || slaveFile == "" {
		return "", ErrMissingPaths
	}

	sel := selection.Selection{Master: masterFile, Slave: slaveFile}
	if err := c.store.Save(sel); err != nil {
		log.Failure("save selection: %v", err)
		return "", err
	}

	confirmed, err := c.store.Load()
	if err != nil {
		log.Failure("confirm selection: %v", err)
		return "", err
	}
	if confirmed != sel {
		return "", fmt.Errorf("selection readback mismatch: got master=%q slave=%q", confirmed.Master, confirmed.Slave)
	}

	log.Action("selection saved and confirmed: master=%s slave=%s", confirmed.Master, confirmed.Slave)
	return fmt.Sprintf("selection saved (master: %s, slave: %s)", masterFile, slaveFile), nil
}
