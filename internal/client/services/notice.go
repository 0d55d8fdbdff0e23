package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gametracker/internal/client/client"
	"github.com/dmitrijs2005/gametracker/internal/models"
)

// NoticeKind tells success notices from failure notices.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

func (k NoticeKind) String() string {
	if k == NoticeError {
		return "error"
	}
	return "success"
}

// Notice is a transient user-facing message.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier receives the user-facing outcome of every workflow step.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notice) {}

// describe renders err for a notice.
func describe(err error) string {
	var ne *client.NetworkError
	if errors.As(err, &ne) {
		return ne.Summary()
	}
	var ve models.ValidationErrors
	if errors.As(err, &ve) {
		if len(ve) == 1 {
			return ve[0].String()
		}
		return ve.Error()
	}
	return err.Error()
}
