package entity

import (
	"log/slog"
	"time"
)

// View receives the user-facing side effects of table operations.
type View interface {
	Alert(msg string)
	ScrollToTop()
	ClearFileInput()
}

// Confirmer asks the user to accept or decline an action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// NopView discards every side effect.
type NopView struct{}

func (NopView) Alert(string)    {}
func (NopView) ScrollToTop()    {}
func (NopView) ClearFileInput() {}

// Deps are the collaborators shared by every table.
type Deps struct {
	View    View
	Confirm Confirmer
	Logger  *slog.Logger
	Now     func() time.Time
}

func (d Deps) withDefaults() Deps {
	if d.View == nil {
		d.View = NopView{}
	}
	if d.Confirm == nil {
		d.Confirm = ConfirmFunc(func(string) bool { return false })
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}
