package app

import "github.com/philipparndt/goobj/pkg/pipeline"

// Host is the window the viewer draws into.
// All methods are called from the frame loop goroutine.
type Host interface {
	pipeline.Canvas

	// Ticks returns milliseconds elapsed since the host was opened
	Ticks() uint64
	// PollEvents drains every input event queued since the last call
	PollEvents() []pipeline.Event
	// Clear starts a frame with a black background
	Clear()
	// Present shows the frame drawn since Clear
	Present() error
}
