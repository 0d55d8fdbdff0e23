package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/client/store"
	"github.com/dmitrijs2005/gametracker/internal/client/views"
	"github.com/dmitrijs2005/gametracker/internal/logging"
)

// ErrNotConfirmed is returned by deletions the user did not confirm.
var ErrNotConfirmed = errors.New("deletion not confirmed")

type validatable interface {
	Validate() error
}

// base carries the collaborators shared by the workflows.
type base struct {
	gw     client.Client
	store  *store.Store
	notify Notifier
	log    logging.Logger
}

func newBase(gw client.Client, st *store.Store, n Notifier, log logging.Logger, component string) base {
	if n == nil {
		n = nopNotifier{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return base{gw: gw, store: st, notify: n, log: log.With("component", component)}
}

func (b base) success(ctx context.Context, msg string) {
	b.notify.Notify(ctx, Notice{Kind: NoticeSuccess, Message: msg})
}

func (b base) failure(ctx context.Context, msg string) {
	b.notify.Notify(ctx, Notice{Kind: NoticeError, Message: msg})
}

// afterMutation refreshes the affected lists. The mutation itself already
// succeeded, so refresh failures are reported but not returned.
func (b base) afterMutation(ctx context.Context, refreshers ...func(context.Context) error) {
	var errs []error
	for _, r := range refreshers {
		if err := r(ctx); err != nil && !errors.Is(err, store.ErrStaleResult) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		b.log.Warn(ctx, "refresh after mutation failed", "err", err)
		b.failure(ctx, "Saved, but the collection could not be refreshed: "+describe(errs[0]))
	}
}

// submit runs one pass of the form workflow: validate, send, then either
// close the form and refresh or reopen it with a failure notice.
func submit[T validatable](
	ctx context.Context,
	b base,
	ed *views.Editor[T],
	what string,
	save func(ctx context.Context, mode views.Mode, id string, in T) error,
	refresh []func(context.Context) error,
) error {
	if err := ed.Draft().Validate(); err != nil {
		if rerr := ed.Reject(describe(err)); rerr != nil {
			return rerr
		}
		b.failure(ctx, describe(err))
		return err
	}

	mode, id := ed.Mode(), ed.TargetID()
	in, err := ed.Submit()
	if err != nil {
		return err
	}

	if err := save(ctx, mode, id, in); err != nil {
		msg := fmt.Sprintf("Could not save the %s: %s", what, describe(err))
		_ = ed.Fail(msg)
		b.log.Error(ctx, "save failed", "what", what, "mode", mode.String(), "id", id, "err", err)
		b.failure(ctx, msg)
		return fmt.Errorf("save %s: %w", what, err)
	}

	_ = ed.Succeed()
	b.afterMutation(ctx, refresh...)
	return nil
}

func (b base) remove(ctx context.Context, what, id string, confirmed bool, del func(context.Context, string) error, refresh []func(context.Context) error) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := del(ctx, id); err != nil {
		msg := fmt.Sprintf("Could not delete the %s: %s", what, describe(err))
		b.log.Error(ctx, "delete failed", "what", what, "id", id, "err", err)
		b.failure(ctx, msg)
		return fmt.Errorf("delete %s: %w", what, err)
	}
	b.afterMutation(ctx, refresh...)
	return nil
}
