package pipeline

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// FillMode selects how triangles are rasterized
type FillMode int

const (
	Wireframe FillMode = iota
	Filled
	Both
)

// Next returns the mode after m: Wireframe -> Filled -> Both -> Wireframe
func (m FillMode) Next() FillMode {
	switch m {
	case Wireframe:
		return Filled
	case Filled:
		return Both
	default:
		return Wireframe
	}
}

func (m FillMode) String() string {
	switch m {
	case Wireframe:
		return "wireframe"
	case Filled:
		return "filled"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("FillMode(%d)", int(m))
	}
}

// ParseFillMode parses the names produced by FillMode.String
func ParseFillMode(s string) (FillMode, error) {
	switch strings.ToLower(s) {
	case "wireframe":
		return Wireframe, nil
	case "filled":
		return Filled, nil
	case "both":
		return Both, nil
	default:
		return Wireframe, fmt.Errorf("unknown fill mode %q (expected wireframe, filled or both)", s)
	}
}

// EventKind identifies an input event
type EventKind int

const (
	EventQuit EventKind = iota
	EventKeyDown
	EventWheel
	EventButtonDown
	EventButtonUp
	EventMotion
)

// Key identifies the keys the viewer reacts to
type Key int

const (
	KeyOther Key = iota
	KeyEscape
	KeyTab
)

// Button identifies mouse buttons
type Button int

const (
	ButtonOther Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is one input event drained from the host.
// Key is set for EventKeyDown, Button for button events,
// DY for EventWheel and DX/DY for EventMotion.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	DX, DY float32
}

// AppState is the user-controlled part of the scene
type AppState struct {
	Offset   geometry.Vector3
	Fill     FillMode
	Dragging bool
}

// NewAppState returns the state a viewer starts with
func NewAppState(cfg Config, fill FillMode) AppState {
	return AppState{Offset: cfg.Offset, Fill: fill}
}

// Handle applies a frame's worth of events and returns the new state.
// running is false once a quit request or Escape has been seen; events
// after it are not applied.
func (s AppState) Handle(events []Event, cfg Config) (next AppState, running bool) {
	next = s
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			return next, false
		case EventKeyDown:
			switch ev.Key {
			case KeyEscape:
				return next, false
			case KeyTab:
				next.Fill = next.Fill.Next()
			}
		case EventWheel:
			next.Offset.Z += ev.DY / cfg.ZoomDivisor
		case EventButtonDown:
			if ev.Button == ButtonMiddle {
				next.Dragging = true
			}
		case EventButtonUp:
			if ev.Button == ButtonMiddle {
				next.Dragging = false
			}
		case EventMotion:
			if next.Dragging {
				next.Offset.X += ev.DX / cfg.PanDivisor
				next.Offset.Y += ev.DY / cfg.PanDivisor
			}
		}
	}
	return next, true
}
