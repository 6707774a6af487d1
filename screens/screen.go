// Package screens holds the ebitenui screens shown over the cover browser.
package screens

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/redmie/lutrisview/power"
)

// ScreenCallback provides callbacks for screen actions
type ScreenCallback interface {
	// ChooseExit ends the session with action
	ChooseExit(action power.Action)
	// CancelExit returns to the library
	CancelExit()
}

// FocusRestorer is implemented by screens that focus a button once built
type FocusRestorer interface {
	// GetPendingFocusButton returns the button that should receive focus
	GetPendingFocusButton() *widget.Button
	// ClearPendingFocus clears the pending focus state
	ClearPendingFocus()
}
