package service

import (
	"errors"
	"time"

	"github.com/hlx-protocol/hlx-go/pkg/command"
	"github.com/hlx-protocol/hlx-go/pkg/interaction"
	"github.com/hlx-protocol/hlx-go/pkg/log"
	"github.com/hlx-protocol/hlx-go/pkg/persist"
	"github.com/hlx-protocol/hlx-go/pkg/wire"
)

// configController runs the four configuration control commands and
// broadcasts their lifecycle: the announcement, progress at 0, 50 and
// 100 percent, then the terminal success or failure notification. A
// failed operation is reported with the failure notification, not the
// error response.
type configController struct {
	s *Server
}

func (c *configController) register() {
	cm := c.s.commands
	cm.MustRegister(command.ReqConfigLoad, c.load)
	cm.MustRegister(command.ReqConfigSave, c.save)
	cm.MustRegister(command.ReqConfigReset, c.reset)
	cm.MustRegister(command.ReqConfigQuery, c.query)
}

func (c *configController) load(interaction.Responder, string, *wire.Match) error {
	return c.run(command.ConfigOpLoad, func() error {
		state, err := c.s.store.Load()
		if err != nil {
			return err
		}
		c.s.repo.Restore(state)
		c.s.repo.ClearDirty()
		return nil
	})
}

func (c *configController) save(interaction.Responder, string, *wire.Match) error {
	return c.run(command.ConfigOpSave, func() error {
		if err := c.s.store.Save(c.s.repo.Snapshot()); err != nil {
			return err
		}
		c.s.repo.ClearDirty()
		return nil
	})
}

func (c *configController) reset(interaction.Responder, string, *wire.Match) error {
	return c.run(command.ConfigOpReset, func() error {
		c.s.repo.Reset()
		c.s.repo.MarkDirty()
		return nil
	})
}

// query has no work to do beyond confirming the current configuration
// is live; it still walks the full lifecycle.
func (c *configController) query(interaction.Responder, string, *wire.Match) error {
	return c.run(command.ConfigOpQuery, nil)
}

// run drives one operation through the lifecycle. Broadcasting keeps
// every client informed, including the initiator, whose exchange
// completes on the terminal notification.
func (c *configController) run(op command.ConfigOp, work func() error) error {
	broadcast := c.s.commands.Broadcast

	broadcast(command.ConfigWill(op))
	broadcast(command.ConfigProgress(op, 0, 2))

	if work != nil {
		if err := work(); err != nil {
			c.logFailure(op, err)
			broadcast(command.ConfigDidNot(op))
			return nil
		}
	}

	broadcast(command.ConfigProgress(op, 1, 2))
	broadcast(command.ConfigProgress(op, 2, 2))
	broadcast(command.ConfigDid(op))
	return nil
}

func (c *configController) logFailure(op command.ConfigOp, err error) {
	// A load without a backup blob is an expected failure, still
	// reported on the wire but not log-worthy as an error.
	if errors.Is(err, persist.ErrNoBackup) {
		return
	}
	c.s.logger.Log(log.Event{
		Timestamp: time.Now(),
		Layer:     log.LayerService,
		Category:  log.CategoryError,
		LocalRole: log.RoleServer,
		Error: &log.ErrorEventData{
			Layer:   log.LayerService,
			Message: op.Tag() + " failed",
			Context: err.Error(),
		},
	})
}
