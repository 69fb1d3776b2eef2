package events

// EventType identifies a bus event
type EventType int

const (
	// EventPointerMove carries the raw pointer position in pixels
	// Trigger: input.Service on any mouse motion
	// Consumer: pointer.Follower | Payload: *PointerPayload
	EventPointerMove EventType = iota

	// EventPointerOver carries the hovered element chain, leaf first
	// Trigger: input.Service when the hovered leaf changes
	// Consumer: pointer.Follower | Payload: *OverPayload
	EventPointerOver

	// EventPointerDown and EventPointerUp mark primary button transitions
	// Consumer: page.Controller (clicks), pointer.Follower | Payload: *PointerPayload
	EventPointerDown
	EventPointerUp

	// EventScroll carries a vertical wheel delta in pixels, positive scrolls down
	// Consumer: page.Controller (smooth scroll target) | Payload: *ScrollPayload
	EventScroll

	// EventKey carries a key press
	// Consumer: page.Controller (form, navigation) | Payload: *KeyPayload
	EventKey

	// EventResize carries the new viewport size in cells
	// Consumer: page.Controller (gallery layout) | Payload: *ResizePayload
	EventResize

	// EventQuit requests loop exit
	// Trigger: Ctrl+C, Esc with nothing expanded | Payload: nil
	EventQuit

	// EventPreloadReady fires once when the preload curtain lifts
	// Trigger: preload.Sequencer | Consumer: page.Controller | Payload: nil
	EventPreloadReady

	// EventGateUnlocked fires once when the quiz is passed
	// Trigger: gate.Machine | Consumer: page.Controller | Payload: nil
	EventGateUnlocked

	// EventGateFailed fires on every wrong answer
	// Consumer: audio cue | Payload: nil
	EventGateFailed

	// EventSubmitted fires when the booking form is accepted
	// Consumer: mail dispatch, audio cue | Payload: *SubmitPayload
	EventSubmitted
)

var eventTypeNames = [...]string{
	EventPointerMove:  "pointer_move",
	EventPointerOver:  "pointer_over",
	EventPointerDown:  "pointer_down",
	EventPointerUp:    "pointer_up",
	EventScroll:       "scroll",
	EventKey:          "key",
	EventResize:       "resize",
	EventQuit:         "quit",
	EventPreloadReady: "preload_ready",
	EventGateUnlocked: "gate_unlocked",
	EventGateFailed:   "gate_failed",
	EventSubmitted:    "submitted",
}

// String returns the snake_case event name
func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event is one bus message
type Event struct {
	Type    EventType
	Payload any
}
