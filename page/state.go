// Package page holds the page-level state reducer and the controller that wires every
// interaction component to the input bus, the frame scheduler and the timers
package page

import (
	"errors"
	"time"

	"github.com/lixenwraith/archive/constants"
)

// ErrMessageRequired rejects a submit with an empty reason field
var ErrMessageRequired = errors.New("message is required")

// State is the page's UI flags in one place
// Mutated only through Reduce
type State struct {
	Booking string // Identity of the locked booking widget

	Loaded     bool
	LoadedAt   time.Time
	Unlocked   bool
	Selected   string
	Message    string
	Submitted  bool
	Redirected bool
}

// NewState returns the mount state for a page whose booking widget is booking
func NewState(booking string) State {
	return State{Booking: booking}
}

// Action is a discrete UI event dispatched to Reduce
type Action interface {
	action()
}

// Loaded marks the preload curtain lifted at At
type Loaded struct{ At time.Time }

// Unlock marks the gate passed
type Unlock struct{}

// Select focuses widget ID, an empty ID closes
type Select struct{ ID string }

// Close clears the focused widget
type Close struct{}

// EditMessage replaces the reason field text
type EditMessage struct{ Text string }

// Submit accepts the booking form
type Submit struct{}

// Redirected marks the post-submit redirect as done
type Redirected struct{}

func (Loaded) action()      {}
func (Unlock) action()      {}
func (Select) action()      {}
func (Close) action()       {}
func (EditMessage) action() {}
func (Submit) action()      {}
func (Redirected) action()  {}

// Reduce applies a to s and returns the next state
// Ignored actions return s unchanged with a nil error; only an empty submit is an error
func Reduce(s State, a Action) (State, error) {
	switch a := a.(type) {
	case Loaded:
		if !s.Loaded {
			s.Loaded = true
			s.LoadedAt = a.At
		}

	case Unlock:
		s.Unlocked = true

	case Select:
		if a.ID == "" {
			s.Selected = ""
			break
		}
		if !s.Loaded {
			break
		}
		if a.ID == s.Booking && !s.Unlocked {
			break
		}
		s.Selected = a.ID

	case Close:
		s.Selected = ""

	case EditMessage:
		if s.Submitted {
			break
		}
		s.Message = truncate(a.Text, constants.MessageMaxLength)

	case Submit:
		if s.Submitted || s.Selected != s.Booking || !s.Unlocked {
			break
		}
		if s.Message == "" {
			return s, ErrMessageRequired
		}
		s.Submitted = true

	case Redirected:
		if s.Submitted {
			s.Redirected = true
		}
	}
	return s, nil
}

// truncate limits text to n runes
func truncate(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n])
}
