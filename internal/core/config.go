package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Loading  bool // Assets are still being loaded
	Started  bool // A run has begun (false while waiting on the start prompt)
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// Event is something notable that happened during a step.
// Platforms use events to trigger sounds without inspecting game internals.
type Event int

const (
	EventNone  Event = iota
	EventFlap        // The player applied an upward impulse
	EventScore       // The score went up by one
	EventCrash       // The run ended
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the step.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
