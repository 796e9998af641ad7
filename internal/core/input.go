package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, Up, W, left click - the "activate" signal (flap or start)
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Escape - leave the current screen
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered since the previous step.
// The zero value is an empty frame and frames are compared and copied by value.
type InputFrame struct {
	bits uint32
}

// NewInputFrame returns an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf returns a frame holding the given actions.
func FrameOf(actions ...Action) InputFrame {
	var f InputFrame
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func (a Action) bit() uint32 {
	if a <= ActionNone || a > ActionPause {
		return 0
	}
	return 1 << uint(a)
}

// Set marks an action as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	f.bits |= a.bit()
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	b := a.bit()
	return b != 0 && f.bits&b != 0
}

// Merge adds every action of other.
func (f *InputFrame) Merge(other InputFrame) {
	f.bits |= other.bits
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return f.bits == 0
}

// Clear resets the frame for the next step.
func (f *InputFrame) Clear() {
	f.bits = 0
}
