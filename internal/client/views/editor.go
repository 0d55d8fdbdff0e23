package views

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an Editor operation is not allowed in
// its current phase.
var ErrInvalidTransition = errors.New("invalid editor transition")

// Phase is the lifecycle position of an edit form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseEditing
	PhaseSubmitting
)

func (p Phase) String() string {
	switch p {
	case PhaseEditing:
		return "editing"
	case PhaseSubmitting:
		return "submitting"
	default:
		return "idle"
	}
}

// Mode tells whether a form creates a new record or replaces an existing one.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Editor is the state machine of one edit form:
//
//	idle -> editing -> submitting -> idle        (success)
//	                              -> editing     (failure, draft kept)
//	        editing -> idle                      (cancel)
//
// The zero value is an idle editor.
type Editor[T any] struct {
	phase    Phase
	mode     Mode
	targetID string
	draft    T
	notice   string
}

// Accessors.
func (e *Editor[T]) Phase() Phase     { return e.phase }
func (e *Editor[T]) Mode() Mode       { return e.mode }
func (e *Editor[T]) TargetID() string { return e.targetID }
func (e *Editor[T]) Draft() T         { return e.draft }
func (e *Editor[T]) Notice() string   { return e.notice }
func (e *Editor[T]) Open() bool       { return e.phase != PhaseIdle }
func (e *Editor[T]) Submitting() bool { return e.phase == PhaseSubmitting }

func (e *Editor[T]) invalid(op string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, op, e.phase)
}

// OpenCreate starts a create form with the given defaults.
func (e *Editor[T]) OpenCreate(defaults T) error {
	if e.phase != PhaseIdle {
		return e.invalid("open create")
	}
	*e = Editor[T]{phase: PhaseEditing, mode: ModeCreate, draft: defaults}
	return nil
}

// OpenEdit starts an edit form for id, pre-populated with current.
func (e *Editor[T]) OpenEdit(id string, current T) error {
	if e.phase != PhaseIdle {
		return e.invalid("open edit")
	}
	*e = Editor[T]{phase: PhaseEditing, mode: ModeEdit, targetID: id, draft: current}
	return nil
}

// Update applies fn to the draft.
func (e *Editor[T]) Update(fn func(*T)) error {
	if e.phase != PhaseEditing {
		return e.invalid("update")
	}
	fn(&e.draft)
	return nil
}

// Reject records a notice without leaving the editing phase, e.g. on a
// validation failure.
func (e *Editor[T]) Reject(notice string) error {
	if e.phase != PhaseEditing {
		return e.invalid("reject")
	}
	e.notice = notice
	return nil
}

// Submit moves to submitting and returns the draft to send.
func (e *Editor[T]) Submit() (T, error) {
	if e.phase != PhaseEditing {
		var zero T
		return zero, e.invalid("submit")
	}
	e.phase = PhaseSubmitting
	e.notice = ""
	return e.draft, nil
}

// Succeed closes the form.
func (e *Editor[T]) Succeed() error {
	if e.phase != PhaseSubmitting {
		return e.invalid("succeed")
	}
	*e = Editor[T]{}
	return nil
}

// Fail returns to editing with the draft preserved.
func (e *Editor[T]) Fail(notice string) error {
	if e.phase != PhaseSubmitting {
		return e.invalid("fail")
	}
	e.phase = PhaseEditing
	e.notice = notice
	return nil
}

// Cancel discards the form. A submission in flight cannot be cancelled.
func (e *Editor[T]) Cancel() error {
	if e.phase != PhaseEditing {
		return e.invalid("cancel")
	}
	*e = Editor[T]{}
	return nil
}
