package console

import (
	"context"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
)

// DeleteTarget is what the confirmation dialog holds: the record's backend
// id plus a resolved label for the "are you sure" copy.
type DeleteTarget struct {
	ID    string
	Label string
}

// DeleteController is the two-step deletion state machine for one screen:
// Idle, or Pending a confirmed target. It is deliberately decoupled from the
// mutation workflow: every list screen shows the same delete affordance,
// but whether the destructive call is actually made is decided here, against
// the entity type's capability descriptor, at confirm time.
type DeleteController struct {
	entity  catalog.EntityType
	gw      catalog.Gateway
	store   *Store
	log     core.Logger
	refresh []catalog.EntityType

	pending *DeleteTarget
}

func NewDeleteController(entity catalog.EntityType, gw catalog.Gateway, store *Store, log core.Logger, refresh ...catalog.EntityType) *DeleteController {
	if len(refresh) == 0 {
		refresh = []catalog.EntityType{entity}
	}
	return &DeleteController{entity: entity, gw: gw, store: store, log: log, refresh: refresh}
}

func (c *DeleteController) Pending() *DeleteTarget { return c.pending }

// RequestDelete moves Idle -> Pending(target); the destructive call waits
// for Confirm.
func (c *DeleteController) RequestDelete(id, label string) {
	c.pending = &DeleteTarget{ID: id, Label: label}
}

// Cancel returns to Idle without touching the backend.
func (c *DeleteController) Cancel() {
	c.pending = nil
}

// Confirm executes the pending deletion. For entity types the backend does
// not support deleting (assignments), the gateway is never called: the
// controller surfaces a CapabilityError synchronously and returns to Idle.
// A backend failure keeps the confirmation pending.
func (c *DeleteController) Confirm(ctx context.Context) error {
	if c.pending == nil {
		return ErrNothingPending
	}
	if !catalog.Capabilities(c.entity).Supports(catalog.OpDelete) {
		c.pending = nil
		return core.NewCapabilityError(c.entity.String(), string(catalog.OpDelete))
	}

	if err := c.gw.Delete(ctx, c.entity, c.pending.ID); err != nil {
		c.log.Debug("delete: confirm failed", c.entity, err)
		return err
	}

	c.store.Refresh(ctx, c.refresh...)
	c.pending = nil
	return nil
}
