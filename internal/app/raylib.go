package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/pipeline"
)

// RaylibHost is a Host backed by a raylib window
type RaylibHost struct{}

// OpenWindow opens a fixed-size raylib window and returns it as a Host.
// raylib keeps global state, so only one window may be open at a time.
func OpenWindow(cfg pipeline.Config, title string) *RaylibHost {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), title)
	// Escape is delivered as an ordinary key event instead of closing the window
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(60)
	return &RaylibHost{}
}

// Ready reports whether the window was created
func (h *RaylibHost) Ready() bool {
	return rl.IsWindowReady()
}

// Ticks returns milliseconds since the window opened
func (h *RaylibHost) Ticks() uint64 {
	return uint64(rl.GetTime() * 1000)
}

// PollEvents translates raylib's input state for the last frame into events
func (h *RaylibHost) PollEvents() []pipeline.Event {
	var events []pipeline.Event

	if rl.WindowShouldClose() {
		events = append(events, pipeline.Event{Kind: pipeline.EventQuit})
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		events = append(events, pipeline.Event{Kind: pipeline.EventKeyDown, Key: pipeline.KeyEscape})
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		events = append(events, pipeline.Event{Kind: pipeline.EventKeyDown, Key: pipeline.KeyTab})
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		events = append(events, pipeline.Event{Kind: pipeline.EventWheel, DY: wheel})
	}

	if rl.IsMouseButtonPressed(rl.MouseMiddleButton) {
		events = append(events, pipeline.Event{Kind: pipeline.EventButtonDown, Button: pipeline.ButtonMiddle})
	}
	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		events = append(events, pipeline.Event{Kind: pipeline.EventMotion, DX: delta.X, DY: delta.Y})
	}
	if rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		events = append(events, pipeline.Event{Kind: pipeline.EventButtonUp, Button: pipeline.ButtonMiddle})
	}

	return events
}

// Clear begins a frame
func (h *RaylibHost) Clear() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
}

// Present ends the frame and swaps buffers
func (h *RaylibHost) Present() error {
	rl.EndDrawing()
	return nil
}

// DrawLine draws a one pixel line
func (h *RaylibHost) DrawLine(x1, y1, x2, y2 float32, c color.NRGBA) error {
	rl.DrawLineV(rl.NewVector2(x1, y1), rl.NewVector2(x2, y2), toColor(c))
	return nil
}

// FillTriangle fills t; raylib only fills counter-clockwise triangles,
// so clockwise ones are flipped first.
func (h *RaylibHost) FillTriangle(t geometry.Triangle, c color.NRGBA) error {
	a := rl.NewVector2(t.A.X, t.A.Y)
	b := rl.NewVector2(t.B.X, t.B.Y)
	cc := rl.NewVector2(t.C.X, t.C.Y)
	if screenCross(t) > 0 {
		b, cc = cc, b
	}
	rl.DrawTriangle(a, b, cc, toColor(c))
	return nil
}

// Close closes the window
func (h *RaylibHost) Close() {
	rl.CloseWindow()
}

// screenCross returns the Z component of (B-A) x (C-A) in screen space.
// With Y pointing down, positive means clockwise for raylib.
func screenCross(t geometry.Triangle) float32 {
	return (t.B.X-t.A.X)*(t.C.Y-t.A.Y) - (t.B.Y-t.A.Y)*(t.C.X-t.A.X)
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
