// Package chain builds polygon outlines one vertex at a time.
//
// A chain always stores one pending vertex after the last committed one. The
// pending vertex follows the cursor for live preview and becomes committed on
// the next AddVertex. Once a new vertex lands on the first vertex the chain
// closes and can no longer change.
package chain

import (
	"errors"
	"fmt"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

const (
	// DefaultSnapTolerance is the distance under which two vertices coincide
	DefaultSnapTolerance = 10.0
	// DefaultMaxVertices is the fixed storage size of a chain, pending
	// vertex included
	DefaultMaxVertices = 50

	// minClosingVertices is the number of committed vertices needed before
	// a chain may close (a triangle)
	minClosingVertices = 3
)

var (
	// ErrClosed is returned when mutating a closed chain
	ErrClosed = errors.New("chain is closed")
	// ErrFull is returned when a chain has no room for another vertex
	ErrFull = errors.New("chain vertex limit reached")
	// ErrOpen is returned when asking an open chain for its polygon
	ErrOpen = errors.New("chain is not closed")
)

// Outcome describes what AddVertex did
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeAppended
	OutcomeClosed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAppended:
		return "appended"
	case OutcomeClosed:
		return "closed"
	default:
		return "ignored"
	}
}

// Option configures a Chain
type Option func(*Chain)

// WithSnapTolerance sets the distance used for closing and for rejecting
// duplicate vertices
func WithSnapTolerance(tolerance float64) Option {
	return func(c *Chain) {
		c.snapTolerance = tolerance
	}
}

// WithMaxVertices sets the vertex capacity. Values below 4 are raised to 4,
// the smallest chain that can close.
func WithMaxVertices(n int) Option {
	return func(c *Chain) {
		c.maxVertices = max(n, minClosingVertices+1)
	}
}

// Chain is an incrementally built, eventually closed, vertex chain
type Chain struct {
	committed     []geometry.Point2D
	pending       geometry.Point2D
	closed        bool
	snapTolerance float64
	maxVertices   int
}

// New starts a chain at start. The first edge runs from start to a pending
// vertex at the same position.
func New(start geometry.Point2D, opts ...Option) *Chain {
	c := &Chain{
		pending:       start,
		snapTolerance: DefaultSnapTolerance,
		maxVertices:   DefaultMaxVertices,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.committed = make([]geometry.Point2D, 1, c.maxVertices)
	c.committed[0] = start
	return c
}

// AddVertex commits the vertex at p.
//
// When p is within the snap tolerance of the first vertex and the chain
// already forms a triangle, the pending vertex is set to exactly the first
// vertex and the chain closes. Otherwise, when p is farther than the
// tolerance from the last committed vertex, the pending vertex moves to p, is
// committed, and a new pending vertex is provisioned at p. Anything else is
// ignored.
func (c *Chain) AddVertex(p geometry.Point2D) (Outcome, error) {
	if c.closed {
		return OutcomeIgnored, ErrClosed
	}

	first := c.committed[0]
	last := c.committed[len(c.committed)-1]

	if p.Distance(first) <= c.snapTolerance && len(c.committed) >= minClosingVertices {
		c.pending = first
		c.closed = true
		return OutcomeClosed, nil
	}

	if p.Distance(last) > c.snapTolerance {
		if c.Len()+1 > c.maxVertices {
			return OutcomeIgnored, fmt.Errorf("%w (%d vertices)", ErrFull, c.maxVertices)
		}
		c.committed = append(c.committed, p)
		c.pending = p
		return OutcomeAppended, nil
	}

	return OutcomeIgnored, nil
}

// MoveLastVertex moves the pending vertex. Committed vertices are untouched.
func (c *Chain) MoveLastVertex(p geometry.Point2D) error {
	if c.closed {
		return ErrClosed
	}
	c.pending = p
	return nil
}

// IsClosed reports whether the chain has closed
func (c *Chain) IsClosed() bool {
	return c.closed
}

// Len returns the number of stored vertices, pending vertex included
func (c *Chain) Len() int {
	return len(c.committed) + 1
}

// SnapTolerance returns the closing and duplicate distance
func (c *Chain) SnapTolerance() float64 {
	return c.snapTolerance
}

// MaxVertices returns the vertex capacity
func (c *Chain) MaxVertices() int {
	return c.maxVertices
}

// First returns the first vertex
func (c *Chain) First() geometry.Point2D {
	return c.committed[0]
}

// Pending returns the vertex that follows the cursor. On a closed chain it
// equals the first vertex.
func (c *Chain) Pending() geometry.Point2D {
	return c.pending
}

// Committed returns a copy of the committed vertices
func (c *Chain) Committed() []geometry.Point2D {
	out := make([]geometry.Point2D, len(c.committed))
	copy(out, c.committed)
	return out
}

// Vertices returns the committed vertices followed by the pending one, the
// polyline a renderer should draw
func (c *Chain) Vertices() []geometry.Point2D {
	out := make([]geometry.Point2D, 0, c.Len())
	out = append(out, c.committed...)
	return append(out, c.pending)
}

// Polygon returns the outline of a closed chain without the repeated
// closing vertex
func (c *Chain) Polygon() ([]geometry.Point2D, error) {
	if !c.closed {
		return nil, ErrOpen
	}
	return c.Committed(), nil
}
