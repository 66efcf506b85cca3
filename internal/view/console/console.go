// Package console wires the member admin page: table refresh, modal-driven
// CRUD and the dashboard repaint that follows every mutation.
package console

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/nwssu/gymadmin/internal/view/dashview"
	"github.com/nwssu/gymadmin/internal/view/modal"
	"github.com/nwssu/gymadmin/internal/view/tableview"
	"github.com/nwssu/gymadmin/pkg/adminclient"
)

// ErrMutationInFlight rejects a mutation while a previous one is still
// running. Rapid double-clicks issue one request, not two.
var ErrMutationInFlight = errors.New("another change is still being saved")

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(message string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Controller drives the member admin page. One instance is built per page
// load and owns all its view state.
type Controller struct {
	client    *adminclient.Client
	dashboard *dashview.Renderer
	notifier  Notifier
	confirmer Confirmer
	logger    *zap.SugaredLogger

	table     *tableview.State
	addModal  *modal.Modal
	viewModal *modal.Modal
	editModal *modal.Modal

	form    adminclient.CreateForm
	viewing *adminclient.Member
	editing *adminclient.Member

	busy atomic.Bool
}

// Config collects the controller's collaborators. Dashboard may be nil on
// pages without chart widgets.
type Config struct {
	Client    *adminclient.Client
	Dashboard *dashview.Renderer
	Notifier  Notifier
	Confirmer Confirmer
	Logger    *zap.SugaredLogger

	AddSurface  modal.Surface
	ViewSurface modal.Surface
	EditSurface modal.Surface
}

// New creates a page controller with an empty table.
func New(cfg Config) *Controller {
	return &Controller{
		client:    cfg.Client,
		dashboard: cfg.Dashboard,
		notifier:  cfg.Notifier,
		confirmer: cfg.Confirmer,
		logger:    cfg.Logger,
		table:     tableview.NewState(nil),
		addModal:  modal.New(cfg.AddSurface),
		viewModal: modal.New(cfg.ViewSurface),
		editModal: modal.New(cfg.EditSurface),
	}
}

// Table exposes the filter/pagination state for control wiring.
func (c *Controller) Table() *tableview.State {
	return c.table
}

// AddModal returns the add dialog.
func (c *Controller) AddModal() *modal.Modal { return c.addModal }

// ViewModal returns the view dialog.
func (c *Controller) ViewModal() *modal.Modal { return c.viewModal }

// EditModal returns the edit dialog.
func (c *Controller) EditModal() *modal.Modal { return c.editModal }

// Form returns the add-member form as currently populated.
func (c *Controller) Form() adminclient.CreateForm {
	return c.form
}

// Viewing returns the member loaded into the view dialog, or nil.
func (c *Controller) Viewing() *adminclient.Member {
	return c.viewing
}

// Editing returns the member prefilled into the edit dialog, or nil.
func (c *Controller) Editing() *adminclient.Member {
	return c.editing
}

// RefreshTable re-fetches the authoritative member list and rebuilds the
// table, keeping the active filter.
func (c *Controller) RefreshTable(ctx context.Context) error {
	members, err := c.client.List(ctx)
	if err != nil {
		c.logger.Errorw("table refresh failed", "error", err)
		c.notifier.Alert("Failed to load members. Please try again.")
		return err
	}
	c.table.SetRows(members)
	return nil
}

// refreshAfterMutation reloads the table and, when a dashboard is bound,
// its counters and charts. Called before the originating modal closes so
// the user never sees stale data behind a closed dialog.
func (c *Controller) refreshAfterMutation(ctx context.Context) {
	if err := c.RefreshTable(ctx); err != nil {
		return
	}
	if c.dashboard != nil {
		if err := c.dashboard.Refresh(ctx); err != nil {
			c.logger.Errorw("dashboard refresh failed", "error", err)
		}
	}
}

func (c *Controller) beginMutation() error {
	if !c.busy.CompareAndSwap(false, true) {
		return ErrMutationInFlight
	}
	return nil
}

func (c *Controller) endMutation() {
	c.busy.Store(false)
}

// OpenAdd opens the add dialog with whatever the form last held.
func (c *Controller) OpenAdd() {
	c.addModal.Open()
}

// SetForm stores the add-member form fields as typed by the user.
func (c *Controller) SetForm(form adminclient.CreateForm) {
	c.form = form
}

// SubmitAdd sends the add form. On success the table and dashboard refresh
// first, then the dialog closes and the form clears. On failure the dialog
// stays open with the form intact.
func (c *Controller) SubmitAdd(ctx context.Context) error {
	if err := c.beginMutation(); err != nil {
		return err
	}
	defer c.endMutation()

	result, err := c.client.Create(ctx, c.form)
	if err != nil {
		c.logger.Errorw("add member failed", "error", err)
		c.notifier.Alert("Something went wrong. Please try again.")
		return err
	}
	if !result.Success {
		c.notifier.Alert(result.Error)
		return nil
	}

	c.refreshAfterMutation(ctx)
	c.addModal.Close()
	c.form = adminclient.CreateForm{}
	c.notifier.Alert(result.Message)
	return nil
}

// OpenView fetches one member and opens the view dialog. A missing member
// aborts with an alert and no open dialog.
func (c *Controller) OpenView(ctx context.Context, memberID int) error {
	member, err := c.client.Get(ctx, memberID)
	if err != nil {
		c.logger.Errorw("view member failed", "member_id", memberID, "error", err)
		c.notifier.Alert("Failed to load member details.")
		return err
	}
	c.viewing = member
	c.viewModal.Open()
	return nil
}

// OpenEdit fetches one member, prefills the edit form and opens the edit
// dialog.
func (c *Controller) OpenEdit(ctx context.Context, memberID int) error {
	member, err := c.client.Get(ctx, memberID)
	if err != nil {
		c.logger.Errorw("edit prefill failed", "member_id", memberID, "error", err)
		c.notifier.Alert("Failed to load member details.")
		return err
	}
	c.editing = member
	c.editModal.Open()
	return nil
}

// SubmitEdit sends a partial edit for the member loaded into the edit
// dialog. On success the table refreshes and the dialog closes; on failure
// the dialog state is untouched.
func (c *Controller) SubmitEdit(ctx context.Context, fields adminclient.UpdateFields) error {
	if c.editing == nil {
		return errors.New("no member loaded for editing")
	}
	if err := c.beginMutation(); err != nil {
		return err
	}
	defer c.endMutation()

	result, err := c.client.Update(ctx, c.editing.MemberID, fields)
	if err != nil {
		c.logger.Errorw("update member failed", "member_id", c.editing.MemberID, "error", err)
		c.notifier.Alert("Something went wrong. Please try again.")
		return err
	}
	if !result.Success {
		c.notifier.Alert(result.Error)
		return nil
	}

	// An edit never changes totals or chart buckets, so only the table
	// reloads; the dashboard repaint belongs to create and delete.
	_ = c.RefreshTable(ctx)
	c.editModal.Close()
	c.editing = nil
	return nil
}

// Delete asks for confirmation and, if given, removes the member and
// refreshes the table and dashboard. Declining issues no request.
func (c *Controller) Delete(ctx context.Context, memberID int) error {
	if !c.confirmer.Confirm("Are you sure you want to delete this member?") {
		return nil
	}
	if err := c.beginMutation(); err != nil {
		return err
	}
	defer c.endMutation()

	result, err := c.client.Delete(ctx, memberID)
	if err != nil {
		c.logger.Errorw("delete member failed", "member_id", memberID, "error", err)
		c.notifier.Alert("Something went wrong. Please try again.")
		return err
	}
	if !result.Success {
		c.notifier.Alert(result.Error)
		return nil
	}

	c.refreshAfterMutation(ctx)
	c.notifier.Alert(result.Message)
	return nil
}
