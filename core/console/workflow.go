package console

import (
	"context"
	"errors"

	"github.com/aulahq/console/core"
	"github.com/aulahq/console/core/catalog"
)

var (
	// ErrNoOpenForm is returned by Submit when the controller is Closed.
	ErrNoOpenForm = errors.New("no form is open")
	// ErrNothingPending is returned by Confirm when no deletion is pending.
	ErrNothingPending = errors.New("no deletion is pending")
)

// FormMode is the modal state of a FormController.
type FormMode int

const (
	ModeClosed FormMode = iota
	ModeCreate
	ModeEdit
)

// Form is any payload the mutation workflow can carry as its draft.
type Form interface {
	Validate() error
}

// FormController is the mutation workflow state machine for one screen:
// Closed, or Open in Create/Edit mode holding a draft. It is screen-scoped,
// so at most one mutation is in flight per screen.
//
// Submit semantics follow the backend contract: a validation failure blocks
// before any call; a transport/auth failure keeps the modal open with the
// draft intact so the user can retry without re-entering data; success
// refreshes the affected collections exactly once and closes.
type FormController struct {
	entity  catalog.EntityType
	gw      catalog.Gateway
	store   *Store
	log     core.Logger
	refresh []catalog.EntityType

	mode   FormMode
	draft  Form
	editID string
}

func NewFormController(entity catalog.EntityType, gw catalog.Gateway, store *Store, log core.Logger, refresh ...catalog.EntityType) *FormController {
	if len(refresh) == 0 {
		refresh = []catalog.EntityType{entity}
	}
	return &FormController{entity: entity, gw: gw, store: store, log: log, refresh: refresh}
}

func (c *FormController) Mode() FormMode { return c.mode }
func (c *FormController) IsOpen() bool   { return c.mode != ModeClosed }

// Draft is the in-progress record; callers mutate it in place on every field
// change while the controller stays Open.
func (c *FormController) Draft() Form { return c.draft }

// OpenCreate opens the modal in Create mode around an empty draft.
func (c *FormController) OpenCreate(draft Form) error {
	if !catalog.Capabilities(c.entity).Supports(catalog.OpCreate) {
		return core.NewCapabilityError(c.entity.String(), string(catalog.OpCreate))
	}
	c.mode = ModeCreate
	c.draft = draft
	c.editID = ""
	return nil
}

// OpenEdit opens the modal in Edit mode around a draft prefilled from the
// existing record. Entity types without update capability (assignments)
// refuse here, regardless of what the screen offers.
func (c *FormController) OpenEdit(id string, draft Form) error {
	if !catalog.Capabilities(c.entity).Supports(catalog.OpUpdate) {
		return core.NewCapabilityError(c.entity.String(), string(catalog.OpUpdate))
	}
	c.mode = ModeEdit
	c.draft = draft
	c.editID = id
	return nil
}

// Cancel closes the modal and discards the draft.
func (c *FormController) Cancel() {
	c.mode = ModeClosed
	c.draft = nil
	c.editID = ""
}

// Submit validates the draft and sends it. The controller closes only on
// success; see the type comment for the failure semantics.
func (c *FormController) Submit(ctx context.Context) error {
	if c.mode == ModeClosed {
		return ErrNoOpenForm
	}
	if err := c.draft.Validate(); err != nil {
		return err
	}

	var err error
	switch c.mode {
	case ModeCreate:
		err = c.gw.Create(ctx, c.entity, c.draft)
	case ModeEdit:
		err = c.gw.Update(ctx, c.entity, c.editID, c.draft)
	}
	if err != nil {
		// stay open, keep the draft; the user retries
		c.log.Debug("form: submit failed", c.entity, err)
		return err
	}

	c.store.Refresh(ctx, c.refresh...)
	c.Cancel()
	return nil
}
