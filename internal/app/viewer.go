// Package app runs the interactive mesh viewer.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/pipeline"
)

// Viewer owns the frame loop: it spins the mesh, draws it on a Host and
// applies the user's input between frames.
type Viewer struct {
	host     Host
	cfg      pipeline.Config
	mesh     *mesh.Mesh
	state    pipeline.AppState
	reloader *Reloader
	logger   *slog.Logger
	frames   uint64
}

// Option configures a Viewer
type Option func(*Viewer)

// WithLogger sets the logger used for state changes and reloads
func WithLogger(logger *slog.Logger) Option {
	return func(v *Viewer) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithReloader swaps in a fresh mesh whenever r has one ready
func WithReloader(r *Reloader) Option {
	return func(v *Viewer) {
		v.reloader = r
	}
}

// NewViewer creates a viewer for m that starts in the given fill mode
func NewViewer(host Host, m *mesh.Mesh, cfg pipeline.Config, fill pipeline.FillMode, opts ...Option) *Viewer {
	v := &Viewer{
		host:   host,
		cfg:    cfg,
		mesh:   m,
		state:  pipeline.NewAppState(cfg, fill),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// State returns the current user state
func (v *Viewer) State() pipeline.AppState {
	return v.state
}

// Mesh returns the mesh currently on screen
func (v *Viewer) Mesh() *mesh.Mesh {
	return v.mesh
}

// Frames returns the number of frames presented so far
func (v *Viewer) Frames() uint64 {
	return v.frames
}

// Tick draws one frame and then handles the input that arrived meanwhile.
// It returns false once the user asked to quit.
func (v *Viewer) Tick() (bool, error) {
	if v.reloader != nil {
		v.mesh = v.reloader.Reload(v.mesh)
	}

	theta := pipeline.Theta(v.host.Ticks())
	tris := pipeline.NewFrame(v.cfg, theta).Process(v.mesh, v.state.Offset)

	v.host.Clear()
	if err := pipeline.Draw(v.host, tris, v.state.Fill, v.cfg); err != nil {
		return false, fmt.Errorf("frame %d: %w", v.frames, err)
	}
	if err := v.host.Present(); err != nil {
		return false, fmt.Errorf("frame %d: failed to present: %w", v.frames, err)
	}
	v.frames++

	next, running := v.state.Handle(v.host.PollEvents(), v.cfg)
	if next.Fill != v.state.Fill {
		v.logger.Debug("fill mode changed", "from", v.state.Fill, "to", next.Fill)
	}
	v.state = next

	if !running {
		v.logger.Info("viewer stopped", "frames", v.frames)
	}
	return running, nil
}

// Run ticks until the user quits, ctx is done or drawing fails.
// A cancelled ctx stops the loop like a quit request.
func (v *Viewer) Run(ctx context.Context) error {
	v.logger.Info("viewer started",
		"mesh", v.mesh.Name,
		"triangles", v.mesh.TriangleCount(),
		"fill", v.state.Fill)

	for {
		if ctx.Err() != nil {
			v.logger.Info("viewer interrupted", "frames", v.frames)
			return nil
		}
		running, err := v.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}
