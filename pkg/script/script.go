// Package script replays recorded editing sessions from YAML files.
//
//	mode: segments
//	near: 5
//	steps:
//	  - down: [0, 0]
//	  - move: [10, 10]
//	  - up: true
//	  - down: [0, 10]
//	    ctrl: true
//	  - move: [10, 0]
//	  - up: true
//
// Coordinates are in working space. Body drags use the difference between
// successive move positions as the pixel delta.
package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"gopkg.in/yaml.v3"
)

// Mode selects the session a script drives
type Mode string

const (
	ModeSegments Mode = "segments"
	ModePolygons Mode = "polygons"
)

// ErrInvalidStep is returned for steps without exactly one action
var ErrInvalidStep = errors.New("invalid step")

// Vec is a point written as [x, y]
type Vec [2]float64

// Point converts v to a working space point
func (v Vec) Point() geometry.Point2D {
	return geometry.NewPoint2D(v[0], v[1])
}

// Rotate turns the pinned polygon under At by Degrees
type Rotate struct {
	At      Vec     `yaml:"at"`
	Degrees float64 `yaml:"degrees"`
}

// Step is a single input event
type Step struct {
	Down   *Vec    `yaml:"down,omitempty"`
	Ctrl   bool    `yaml:"ctrl,omitempty"`
	Move   *Vec    `yaml:"move,omitempty"`
	Up     bool    `yaml:"up,omitempty"`
	Delete bool    `yaml:"delete,omitempty"`
	Hover  *Vec    `yaml:"hover,omitempty"`
	Cancel bool    `yaml:"cancel,omitempty"`
	Pin    *Vec    `yaml:"pin,omitempty"`
	Unpin  *Vec    `yaml:"unpin,omitempty"`
	Rotate *Rotate `yaml:"rotate,omitempty"`
}

// Action returns the name of the step's action
func (s Step) Action() string {
	switch {
	case s.Down != nil:
		return "down"
	case s.Move != nil:
		return "move"
	case s.Up:
		return "up"
	case s.Delete:
		return "delete"
	case s.Hover != nil:
		return "hover"
	case s.Cancel:
		return "cancel"
	case s.Pin != nil:
		return "pin"
	case s.Unpin != nil:
		return "unpin"
	case s.Rotate != nil:
		return "rotate"
	default:
		return ""
	}
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Down != nil, s.Move != nil, s.Up, s.Delete, s.Hover != nil,
		s.Cancel, s.Pin != nil, s.Unpin != nil, s.Rotate != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Script is a parsed replay file
type Script struct {
	Mode  Mode    `yaml:"mode"`
	Near  float64 `yaml:"near,omitempty"`
	Snap  float64 `yaml:"snap,omitempty"`
	Steps []Step  `yaml:"steps"`
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses a script document
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	if s.Mode == "" {
		s.Mode = ModeSegments
	}
	if s.Mode != ModeSegments && s.Mode != ModePolygons {
		return nil, fmt.Errorf("unknown mode %q", s.Mode)
	}
	if s.Near < 0 || s.Snap < 0 {
		return nil, errors.New("near and snap must not be negative")
	}

	for i, step := range s.Steps {
		if n := step.actions(); n != 1 {
			return nil, fmt.Errorf("%w %d: expected one action, got %d", ErrInvalidStep, i+1, n)
		}
		if step.Ctrl && step.Down == nil {
			return nil, fmt.Errorf("%w %d: ctrl only applies to down", ErrInvalidStep, i+1)
		}
	}
	return &s, nil
}

// Marshal encodes the script as YAML
func (s *Script) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
