package curve

import "fmt"

// Kind enumerates the curves that can be held in a ParametricCurves.
type Kind int

const (
	KindRay    Kind = iota // Ray3
	KindCircle             // ParametricCircle
)

func (k Kind) String() string {
	switch k {
	case KindRay:
		return "ray"
	case KindCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParametricCurves holds one curve out of the closed set of 3D curve
// kinds. It is a plain value; use ToDynamic where a heterogeneous
// collection needs a single interface type.
type ParametricCurves struct {
	kind   Kind
	ray    Ray3
	circle ParametricCircle
}

// FromRay wraps a ray.
func FromRay(r Ray3) ParametricCurves {
	return ParametricCurves{kind: KindRay, ray: r}
}

// FromCircle wraps a parametric circle.
func FromCircle(c ParametricCircle) ParametricCurves {
	return ParametricCurves{kind: KindCircle, circle: c}
}

// Kind reports which curve is held.
func (c ParametricCurves) Kind() Kind { return c.kind }

// Ray returns the held ray, if any.
func (c ParametricCurves) Ray() (Ray3, bool) {
	return c.ray, c.kind == KindRay
}

// Circle returns the held circle, if any.
func (c ParametricCurves) Circle() (ParametricCircle, bool) {
	return c.circle, c.kind == KindCircle
}

// ToDynamic erases the concrete kind of c behind ProjectionTargetCurve.
// The zero ParametricCurves holds a zero Ray3.
func ToDynamic(c ParametricCurves) ProjectionTargetCurve {
	switch c.kind {
	case KindRay:
		return c.ray
	case KindCircle:
		return c.circle
	}
	panic(fmt.Sprintf("curve: unknown curve kind %d", int(c.kind)))
}
