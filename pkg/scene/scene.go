package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/chazu/curvekit/pkg/curve"
	"github.com/chazu/curvekit/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

var (
	ErrEmptyName      = errors.New("scene: curve name is empty")
	ErrDuplicateName  = errors.New("scene: duplicate curve name")
	ErrNotFound       = errors.New("scene: no such curve")
	ErrBadSampleCount = errors.New("scene: sample count must be positive")
)

// Entry is one named curve in a scene.
type Entry struct {
	ID    ID
	Name  string
	Curve curve.ParametricCurves
}

// Target returns the curve behind the combined projection interface.
func (e *Entry) Target() curve.ProjectionTargetCurve {
	return curve.ToDynamic(e.Curve)
}

// Scene is an ordered set of named curves.
type Scene struct {
	entries []*Entry
	byID    map[ID]*Entry
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{byID: make(map[ID]*Entry)}
}

// Add appends a curve under name and returns its ID.
func (s *Scene) Add(name string, c curve.ParametricCurves) (ID, error) {
	if name == "" {
		return ZeroID, ErrEmptyName
	}
	id := NewID(name)
	if _, ok := s.byID[id]; ok {
		return ZeroID, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	e := &Entry{ID: id, Name: name, Curve: c}
	s.entries = append(s.entries, e)
	s.byID[id] = e
	return id, nil
}

// Get returns the entry with the given ID, or nil.
func (s *Scene) Get(id ID) *Entry {
	return s.byID[id]
}

// Lookup returns the entry with the given name, or nil.
func (s *Scene) Lookup(name string) *Entry {
	return s.byID[NewID(name)]
}

// MustLookup returns the entry with the given name, or panics.
func (s *Scene) MustLookup(name string) *Entry {
	e := s.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("scene: no curve named %q", name))
	}
	return e
}

// Names returns curve names in insertion order.
func (s *Scene) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns the entries in insertion order.
func (s *Scene) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of curves.
func (s *Scene) Len() int {
	return len(s.entries)
}

// Hit is the result of a nearest-curve query.
type Hit struct {
	ID       ID
	Name     string
	Point    geom.Position3
	Distance geom.Length
}

// Nearest projects p onto every curve and returns the closest one. Ties go
// to the curve added first. It reports false for an empty scene.
func (s *Scene) Nearest(p geom.Position3) (Hit, bool) {
	var best Hit
	found := false
	bestAbs := math.Inf(1)
	for _, e := range s.entries {
		target := e.Target()
		d := curve.SignedDistance[v3.Vec](target, p)
		if math.Abs(d) < bestAbs {
			bestAbs = math.Abs(d)
			best = Hit{
				ID:       e.ID,
				Name:     e.Name,
				Point:    target.Project(p).Point,
				Distance: d,
			}
			found = true
		}
	}
	return best, found
}

// Sample evaluates the curve with the given ID at n parameters. Periodic
// curves are sampled evenly over one period starting at 0, limited curves
// evenly over their limits, and unrestricted curves at t = 0, 1, ..., n-1.
func (s *Scene) Sample(id ID, n int) ([]geom.Position3, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSampleCount, n)
	}
	e := s.Get(id)
	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id.Short())
	}
	target := e.Target()

	param := func(i int) geom.Parameter { return geom.Parameter(i) }
	if period, ok := target.Period(); ok {
		param = func(i int) geom.Parameter { return period * float64(i) / float64(n) }
	} else if lim, ok := target.Limits(); ok && n > 1 {
		param = func(i int) geom.Parameter {
			return lim.Min + (lim.Max-lim.Min)*float64(i)/float64(n-1)
		}
	} else if ok {
		param = func(int) geom.Parameter { return lim.Min }
	}

	points := make([]geom.Position3, n)
	for i := range points {
		points[i] = curve.XYZ(target, param(i))
	}
	return points, nil
}
