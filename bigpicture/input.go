package bigpicture

import (
	"math"
	"time"

	"github.com/redmie/lutrisview/style"
)

// Control is a logical button, independent of the device it is on
type Control int

const (
	ControlLeft Control = iota
	ControlRight
	ControlLaunch
	ControlPaneForward
	ControlPaneBackward
	ControlBack
	ControlMenu

	controlCount
)

// EventKind distinguishes the raw input events a backend reports
type EventKind int

const (
	EventControlDown EventKind = iota
	EventControlUp
	EventStickMoved
	EventWheelScrolled
)

// Device is the kind of hardware that produced a control event
type Device int

const (
	DeviceKeyboard Device = iota
	DeviceGamepad
	DeviceMouse
)

// Event is one raw input change reported by an InputSource
type Event struct {
	Kind    EventKind
	Control Control // ControlDown, ControlUp
	Device  Device  // ControlDown: the device holding the control
	X       float64 // StickMoved: horizontal deflection in [-1, 1]
	Ticks   int     // WheelScrolled: positive is away from the user
}

// ControlDown reports that c was pressed
func ControlDown(c Control) Event {
	return Event{Kind: EventControlDown, Control: c}
}

// ControlUp reports that c was released
func ControlUp(c Control) Event {
	return Event{Kind: EventControlUp, Control: c}
}

// StickMoved reports the current horizontal stick position
func StickMoved(x float64) Event {
	return Event{Kind: EventStickMoved, X: x}
}

// WheelScrolled reports whole wheel ticks since the last poll
func WheelScrolled(ticks int) Event {
	return Event{Kind: EventWheelScrolled, Ticks: ticks}
}

// InputSource is a backend that reports pending input events once per frame
type InputSource interface {
	Poll() []Event
}

// Intent is an input action after normalization
type Intent int

const (
	IntentMoveNext Intent = iota
	IntentMovePrev
	IntentLaunch
	IntentPaneForward
	IntentPaneBackward
	IntentExitArmed
	IntentExitCancelled
	IntentExitConfirmed
	IntentOpenMenu
)

// String returns the string representation of the intent
func (i Intent) String() string {
	switch i {
	case IntentMoveNext:
		return "MoveNext"
	case IntentMovePrev:
		return "MovePrev"
	case IntentLaunch:
		return "Launch"
	case IntentPaneForward:
		return "PaneForward"
	case IntentPaneBackward:
		return "PaneBackward"
	case IntentExitArmed:
		return "ExitArmed"
	case IntentExitCancelled:
		return "ExitCancelled"
	case IntentExitConfirmed:
		return "ExitConfirmed"
	case IntentOpenMenu:
		return "OpenMenu"
	default:
		return "Unknown"
	}
}

// RouterTiming holds the thresholds the Router applies
type RouterTiming struct {
	RepeatDelay    time.Duration
	RepeatInterval time.Duration
	ExitHold       time.Duration
	LaunchCooldown time.Duration
	StickThreshold float64
	StickNeutral   float64
}

// DefaultRouterTiming returns the standard navigation timing
func DefaultRouterTiming() RouterTiming {
	return RouterTiming{
		RepeatDelay:    style.RepeatDelay,
		RepeatInterval: style.RepeatInterval,
		ExitHold:       style.ExitHold,
		LaunchCooldown: style.LaunchCooldown,
		StickThreshold: style.StickThreshold,
		StickNeutral:   style.StickNeutral,
	}
}

// hold tracks one direction held for repeat navigation
type hold struct {
	held       bool
	nextRepeat time.Time
}

// Router turns raw events into intents. It keeps hold timers, the
// force-exit timer, the stick arming flag and the launch cooldown.
// Time is passed in so behavior is reproducible in tests.
type Router struct {
	timing RouterTiming

	left  hold
	right hold

	exitHeld  bool
	exitStart time.Time
	exitFired bool

	stickArmed bool

	launched   bool
	lastLaunch time.Time
}

// NewRouter creates a router with the standard timing
func NewRouter() *Router {
	return NewRouterWithTiming(DefaultRouterTiming())
}

// NewRouterWithTiming creates a router with custom thresholds
func NewRouterWithTiming(timing RouterTiming) *Router {
	return &Router{
		timing:     timing,
		stickArmed: true,
	}
}

// Update applies events observed at now and returns the resulting
// intents in order. It should be called once per frame, with or without
// events, so hold timers advance.
func (r *Router) Update(now time.Time, events []Event) []Intent {
	var intents []Intent

	for _, ev := range events {
		switch ev.Kind {
		case EventControlDown:
			intents = r.press(intents, now, ev.Control)
		case EventControlUp:
			intents = r.release(intents, now, ev.Control)
		case EventStickMoved:
			intents = r.stick(intents, ev.X)
		case EventWheelScrolled:
			intents = wheel(intents, ev.Ticks)
		}
	}

	intents = r.repeat(intents, now, &r.left, IntentMovePrev)
	intents = r.repeat(intents, now, &r.right, IntentMoveNext)

	if r.exitHeld && !r.exitFired && now.Sub(r.exitStart) >= r.timing.ExitHold {
		r.exitFired = true
		intents = append(intents, IntentExitConfirmed)
	}

	return intents
}

func (r *Router) press(intents []Intent, now time.Time, c Control) []Intent {
	switch c {
	case ControlLeft:
		return r.startHold(intents, now, &r.left, IntentMovePrev)
	case ControlRight:
		return r.startHold(intents, now, &r.right, IntentMoveNext)
	case ControlLaunch:
		if r.launched && now.Sub(r.lastLaunch) < r.timing.LaunchCooldown {
			return intents
		}
		return append(intents, IntentLaunch)
	case ControlPaneForward:
		return append(intents, IntentPaneForward)
	case ControlPaneBackward:
		return append(intents, IntentPaneBackward)
	case ControlBack:
		if r.exitHeld {
			return intents
		}
		r.exitHeld = true
		r.exitStart = now
		r.exitFired = false
		return append(intents, IntentExitArmed)
	case ControlMenu:
		return append(intents, IntentOpenMenu)
	}
	return intents
}

func (r *Router) release(intents []Intent, now time.Time, c Control) []Intent {
	switch c {
	case ControlLeft:
		r.left.held = false
	case ControlRight:
		r.right.held = false
	case ControlBack:
		if !r.exitHeld {
			return intents
		}
		r.exitHeld = false
		if r.exitFired {
			return intents
		}
		// A release reported late still counts as a completed hold
		if now.Sub(r.exitStart) >= r.timing.ExitHold {
			r.exitFired = true
			return append(intents, IntentExitConfirmed)
		}
		return append(intents, IntentExitCancelled)
	}
	return intents
}

// startHold moves once and schedules the first repeat
func (r *Router) startHold(intents []Intent, now time.Time, h *hold, intent Intent) []Intent {
	if h.held {
		return intents
	}
	h.held = true
	h.nextRepeat = now.Add(r.timing.RepeatDelay)
	return append(intents, intent)
}

// repeat emits at most one move per update for a held direction
func (r *Router) repeat(intents []Intent, now time.Time, h *hold, intent Intent) []Intent {
	if !h.held || now.Before(h.nextRepeat) {
		return intents
	}
	h.nextRepeat = h.nextRepeat.Add(r.timing.RepeatInterval)
	// After a stalled frame, resume the cadence from now instead of
	// emitting a burst of catch-up moves
	if !now.Before(h.nextRepeat) {
		h.nextRepeat = now.Add(r.timing.RepeatInterval)
	}
	return append(intents, intent)
}

func (r *Router) stick(intents []Intent, x float64) []Intent {
	mag := math.Abs(x)
	if !r.stickArmed {
		if mag < r.timing.StickNeutral {
			r.stickArmed = true
		}
		return intents
	}
	if mag <= r.timing.StickThreshold {
		return intents
	}
	r.stickArmed = false
	if x > 0 {
		return append(intents, IntentMoveNext)
	}
	return append(intents, IntentMovePrev)
}

// wheel maps each tick to one move. Scrolling up moves left.
func wheel(intents []Intent, ticks int) []Intent {
	for ; ticks > 0; ticks-- {
		intents = append(intents, IntentMovePrev)
	}
	for ; ticks < 0; ticks++ {
		intents = append(intents, IntentMoveNext)
	}
	return intents
}

// MarkLaunched starts the launch cooldown
func (r *Router) MarkLaunched(now time.Time) {
	r.launched = true
	r.lastLaunch = now
}

// ExitArmed reports whether the back control is being held
func (r *Router) ExitArmed() bool {
	return r.exitHeld && !r.exitFired
}

// ExitProgress returns how far the force-exit hold has progressed, in
// [0, 1]. It is 0 when back is not held.
func (r *Router) ExitProgress(now time.Time) float64 {
	if !r.exitHeld || r.timing.ExitHold <= 0 {
		return 0
	}
	return clamp01(float64(now.Sub(r.exitStart)) / float64(r.timing.ExitHold))
}

// Reset forgets held controls, used when another screen takes input.
// The launch cooldown and stick arming are kept.
func (r *Router) Reset() {
	r.left = hold{}
	r.right = hold{}
	r.exitHeld = false
	r.exitFired = false
}
