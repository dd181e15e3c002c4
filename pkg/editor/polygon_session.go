package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/philipparndt/gosketch/pkg/chain"
	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/mesh"
)

var (
	// ErrTriangulation is returned when a closed chain could not become a
	// polygon. The chain is discarded and the session is idle again.
	ErrTriangulation = errors.New("failed to triangulate polygon")
	// ErrNoPolygon is returned by polygon commands with nothing under the
	// pointer
	ErrNoPolygon = errors.New("no polygon at position")
	// ErrNoPinTarget is returned by PinAt without a second polygon below
	// the first
	ErrNoPinTarget = errors.New("no polygon to pin to")
)

// WithSnapTolerance sets the chain snap tolerance of a PolygonSession
func WithSnapTolerance(d float64) Option {
	return func(o *options) {
		o.snapTolerance = d
	}
}

// WithMaxVertices sets the chain capacity of a PolygonSession
func WithMaxVertices(n int) Option {
	return func(o *options) {
		o.maxVertices = n
	}
}

// PolygonSession draws vertex chains and turns closed ones into polygons
type PolygonSession struct {
	scene        *mesh.Scene
	triangulator mesh.Triangulator
	chain        *chain.Chain
	chainOpts    []chain.Option
	state        State
	logger       *slog.Logger
}

// NewPolygonSession creates a session that triangulates closed chains with t
func NewPolygonSession(t mesh.Triangulator, opts ...Option) *PolygonSession {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var chainOpts []chain.Option
	if o.snapTolerance > 0 {
		chainOpts = append(chainOpts, chain.WithSnapTolerance(o.snapTolerance))
	}
	if o.maxVertices > 0 {
		chainOpts = append(chainOpts, chain.WithMaxVertices(o.maxVertices))
	}

	return &PolygonSession{
		scene:        mesh.NewScene(),
		triangulator: t,
		chainOpts:    chainOpts,
		logger:       o.logger,
	}
}

// PointerDown starts a chain or adds a vertex to the open one. When the
// chain closes it is triangulated and added to the scene.
func (s *PolygonSession) PointerDown(ev PointerEvent) error {
	if ev.Button != ButtonLeft {
		return nil
	}

	if s.state == StateIdle {
		s.chain = chain.New(ev.Position, s.chainOpts...)
		s.state = StateDrawing
		s.logger.Debug("chain started", "x", ev.Position.X, "y", ev.Position.Y)
		return nil
	}

	outcome, err := s.chain.AddVertex(ev.Position)
	if err != nil {
		return err
	}
	if outcome != chain.OutcomeClosed {
		return nil
	}

	closed := s.chain
	s.chain = nil
	s.state = StateIdle

	polygon, err := mesh.FromChain(closed, s.triangulator)
	if err != nil {
		s.logger.Warn("chain discarded", "vertices", closed.Len(), "error", err)
		return fmt.Errorf("%w: %w", ErrTriangulation, err)
	}

	s.scene.Add(polygon)
	s.logger.Debug("polygon created", "id", polygon.ID(), "vertices", len(polygon.Vertices()))
	return nil
}

// PointerMove moves the pending vertex of the open chain
func (s *PolygonSession) PointerMove(ev PointerEvent) {
	if s.state != StateDrawing {
		return
	}
	_ = s.chain.MoveLastVertex(ev.Position)
}

// PointerUp is a no-op; chains are built from clicks
func (s *PolygonSession) PointerUp() {}

// Cancel discards the open chain. It reports whether there was one.
func (s *PolygonSession) Cancel() bool {
	if s.state != StateDrawing {
		return false
	}
	s.chain = nil
	s.state = StateIdle
	s.logger.Debug("chain cancelled")
	return true
}

// PinAt pins the topmost polygon at p to the polygon right below it
func (s *PolygonSession) PinAt(p geometry.Point2D) (*mesh.Pin, error) {
	under := s.scene.PolygonsAt(p)
	switch len(under) {
	case 0:
		return nil, ErrNoPolygon
	case 1:
		return nil, ErrNoPinTarget
	}

	pin, err := s.scene.Pin(p, under[1], under[0])
	if err != nil {
		return nil, fmt.Errorf("failed to pin polygon %d to %d: %w", under[0].ID(), under[1].ID(), err)
	}
	s.logger.Debug("polygon pinned", "child", under[0].ID(), "parent", under[1].ID())
	return pin, nil
}

// UnpinAt releases the topmost pinned polygon at p
func (s *PolygonSession) UnpinAt(p geometry.Point2D) error {
	target, err := s.pinnedAt(p)
	if err != nil {
		return err
	}
	if err := s.scene.Unpin(target); err != nil {
		return err
	}
	s.logger.Debug("polygon unpinned", "id", target.ID())
	return nil
}

// RotateAt turns the topmost pinned polygon at p around its pin
func (s *PolygonSession) RotateAt(p geometry.Point2D, rad float64) error {
	target, err := s.pinnedAt(p)
	if err != nil {
		return err
	}
	return s.scene.RotateAroundPin(target, rad)
}

func (s *PolygonSession) pinnedAt(p geometry.Point2D) (*mesh.Polygon, error) {
	under := s.scene.PolygonsAt(p)
	if len(under) == 0 {
		return nil, ErrNoPolygon
	}
	for _, polygon := range under {
		if polygon.Pinned() {
			return polygon, nil
		}
	}
	return nil, mesh.ErrNotPinned
}

// Chain returns the open chain, or nil
func (s *PolygonSession) Chain() *chain.Chain {
	return s.chain
}

// Scene returns the polygon scene
func (s *PolygonSession) Scene() *mesh.Scene {
	return s.scene
}

// State returns StateIdle or StateDrawing
func (s *PolygonSession) State() State {
	return s.state
}
