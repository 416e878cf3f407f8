package curve

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chazu/curvekit/pkg/geom"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var approx = cmpopts.EquateApprox(0, 1e-12)

func randVec3(r *rand.Rand, scale float64) v3.Vec {
	return v3.Vec{
		X: (r.Float64()*2 - 1) * scale,
		Y: (r.Float64()*2 - 1) * scale,
		Z: (r.Float64()*2 - 1) * scale,
	}
}

func TestCircle2ProjectCenter(t *testing.T) {
	c := NewCircle2(2, v2.Vec{})
	proj := c.Project(v2.Vec{})

	assert.Equal(t, v2.Vec{X: 2}, proj.Point)
	require.True(t, proj.HasNormal)
	assert.Equal(t, v2.Vec{X: 1}, proj.Normal.Vec())
}

func TestCircle2ProjectOffsetCenter(t *testing.T) {
	center := v2.Vec{X: 3, Y: -1}
	c := NewCircle2(1.5, center)
	proj := c.Project(center)
	assert.Equal(t, center.Add(v2.Vec{X: 1.5}), proj.Point)
}

func TestCircle2Project(t *testing.T) {
	c := NewCircle2(5, v2.Vec{X: 1, Y: 1})

	tests := []struct {
		name   string
		p      v2.Vec
		want   v2.Vec
		normal v2.Vec
		dist   float64
	}{
		{"outside", v2.Vec{X: 1, Y: 11}, v2.Vec{X: 1, Y: 6}, v2.Vec{Y: 1}, 5},
		{"inside", v2.Vec{X: 4, Y: 5}, v2.Vec{X: 4, Y: 5}, v2.Vec{X: 0.6, Y: 0.8}, 0},
		{"near center", v2.Vec{X: 0, Y: 1}, v2.Vec{X: -4, Y: 1}, v2.Vec{X: -1}, -4},
		{"on circle", v2.Vec{X: 6, Y: 1}, v2.Vec{X: 6, Y: 1}, v2.Vec{X: 1}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := c.Project(tt.p)
			assert.True(t, geom.SamePosition(proj.Point, tt.want, 1e-12), "point %v, want %v", proj.Point, tt.want)
			require.True(t, proj.HasNormal)
			assert.True(t, geom.SameVector(proj.Normal.Vec(), tt.normal, 1e-12), "normal %v, want %v", proj.Normal.Vec(), tt.normal)
			assert.InDelta(t, tt.dist, c.CalculateSignedDistance(tt.p), 1e-12)
			assert.InDelta(t, tt.dist, DeriveSignedDistance[v2.Vec](c, tt.p), 1e-12)
		})
	}
}

func TestCircle2SignedDistanceAtCenter(t *testing.T) {
	c := NewCircle2(2, v2.Vec{X: -1, Y: 4})
	assert.Equal(t, -2.0, SignedDistance[v2.Vec](c, c.Center()))
	assert.Equal(t, -2.0, DeriveSignedDistance[v2.Vec](c, c.Center()))
}

func TestCircle2AxisIsZ(t *testing.T) {
	var c Circle[v2.Vec] = NewCircle2(1, v2.Vec{})
	assert.Equal(t, v3.Vec{Z: 1}, c.AxisDirection().Vec())
}

func TestProjectedPointsLieOnCircle(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))

	c2 := NewCircle2(3, v2.Vec{X: 1, Y: -2})
	for i := 0; i < 200; i++ {
		p := v2.Vec{X: (r.Float64()*2 - 1) * 20, Y: (r.Float64()*2 - 1) * 20}
		got := c2.Project(p).Point.Sub(c2.Center()).Length()
		assert.InDelta(t, c2.Radius(), got, 1e-12, "p=%v", p)
	}

	c3 := NewCircle3(2.5, v3.Vec{X: 4, Y: 0, Z: -1}, geom.NewDirection(v3.Vec{X: 1, Y: 2, Z: -0.5}))
	pc := NewParametricCircle(
		geom.RotationAbout(geom.NewDirection(v3.Vec{X: 1, Y: 1}), 0.7).Then(geom.Translation(v3.Vec{X: -3, Y: 2, Z: 8})),
		4,
	)
	for i := 0; i < 200; i++ {
		p := randVec3(r, 20)
		for _, c := range []Circle[v3.Vec]{c3, pc} {
			proj := ProjectCircle3(c, p)
			off := proj.Point.Sub(c.Center())
			assert.InDelta(t, c.Radius(), off.Length(), 1e-12, "p=%v", p)
			assert.InDelta(t, 0, c.AxisDirection().Dot(off), 1e-12, "projection must lie in the circle plane")
			assert.False(t, proj.HasNormal)
		}
	}
}

func TestCircle3Project(t *testing.T) {
	c := NewCircle3(2, v3.Vec{X: 1, Y: 1, Z: 1}, geom.Z3())

	tests := []struct {
		name string
		p    v3.Vec
		want v3.Vec
		dist float64
	}{
		{"above plane", v3.Vec{X: 4, Y: 1, Z: 5}, v3.Vec{X: 3, Y: 1, Z: 1}, 5},
		{"in plane inside", v3.Vec{X: 1, Y: 0, Z: 1}, v3.Vec{X: 1, Y: -1, Z: 1}, 1},
		{"on axis", v3.Vec{X: 1, Y: 1, Z: 7}, v3.Vec{X: 3, Y: 1, Z: 1}, math.Sqrt(40)},
		{"at center", v3.Vec{X: 1, Y: 1, Z: 1}, v3.Vec{X: 3, Y: 1, Z: 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proj := c.Project(tt.p)
			assert.False(t, proj.HasNormal)
			assert.True(t, geom.SamePosition(proj.Point, tt.want, 1e-12), "point %v, want %v", proj.Point, tt.want)
			assert.InDelta(t, tt.dist, SignedDistance[v3.Vec](c, tt.p), 1e-12)
		})
	}
}

func TestCircle3OnAxisFallback(t *testing.T) {
	tests := []struct {
		name string
		axis v3.Vec
		want v3.Vec
	}{
		{"z axis", v3.Vec{Z: 1}, v3.Vec{X: 1}},
		{"negative y axis", v3.Vec{Y: -1}, v3.Vec{X: 1}},
		{"x axis", v3.Vec{X: 1}, v3.Vec{Y: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			axis := geom.NewDirection(tt.axis)
			center := v3.Vec{X: -2, Y: 5, Z: 0.5}
			c := NewCircle3(3, center, axis)
			onAxis := center.Add(axis.Scale(-4))

			proj := c.Project(onAxis)
			want := center.Add(tt.want.MulScalar(3))
			assert.True(t, geom.SamePosition(proj.Point, want, 1e-12), "point %v, want %v", proj.Point, want)

			fallback := center.Add(geom.Perpendicular(axis).Scale(3))
			assert.True(t, geom.SamePosition(proj.Point, fallback, 1e-12))
		})
	}
}

func TestParametricCircleAccessors(t *testing.T) {
	tr := geom.RotationAbout(geom.X3(), math.Pi/2).Then(geom.Translation(v3.Vec{X: 1, Y: 2, Z: 3}))
	c := NewParametricCircle(tr, 2)

	assert.Equal(t, 2.0, c.Radius())
	assert.Equal(t, v3.Vec{X: 1, Y: 2, Z: 3}, c.Center())
	assert.Empty(t, cmp.Diff(v3.Vec{Y: -1}, c.AxisDirection().Vec(), approx))
	assert.Equal(t, tr, c.Transform())
}

func TestParametricCircleAll(t *testing.T) {
	tr := geom.RotationAbout(geom.X3(), math.Pi/2).Then(geom.Translation(v3.Vec{X: 1, Y: 2, Z: 3}))
	c := NewParametricCircle(tr, 2)

	tests := []struct {
		name    string
		t       float64
		pos     v3.Vec
		tangent v3.Vec
	}{
		{"zero", 0, v3.Vec{X: 3, Y: 2, Z: 3}, v3.Vec{Z: 2}},
		// The tangent is (r sin t, r cos t, 0) locally, not the derivative.
		{"quarter", math.Pi / 2, v3.Vec{X: 1, Y: 2, Z: 5}, v3.Vec{X: 2}},
		{"half", math.Pi, v3.Vec{X: -1, Y: 2, Z: 3}, v3.Vec{Z: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, tangent := c.All(tt.t)
			if diff := cmp.Diff(tt.pos, pos, approx); diff != "" {
				t.Errorf("position mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.tangent, tangent, approx); diff != "" {
				t.Errorf("tangent mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, pos, c.XYZ(tt.t))
			assert.Equal(t, pos, XYZ(c, tt.t))
		})
	}
}

func TestParametricCircleTangentScale(t *testing.T) {
	c := NewParametricCircle(geom.Identity3(), 3)
	for _, tp := range []float64{0, 0.4, 1, 2.5, -7} {
		_, tangent := c.All(tp)
		assert.InDelta(t, 3, tangent.Length(), 1e-12, "t=%v", tp)
	}
}

func TestParametricCirclePeriodic(t *testing.T) {
	c := NewParametricCircle(
		geom.RotationAbout(geom.NewDirection(v3.Vec{X: 0.2, Y: -1, Z: 0.4}), 1.1).Then(geom.Translation(v3.Vec{X: 5})),
		1.75,
	)
	period, ok := c.Period()
	require.True(t, ok)
	assert.Equal(t, 2*math.Pi, period)
	_, limited := c.Limits()
	assert.False(t, limited)
	assert.True(t, c.Closed())

	for _, tp := range []float64{-3, 0, 0.5, 2, 10} {
		p0, t0 := c.All(tp)
		p1, t1 := c.All(tp + period)
		assert.True(t, geom.SamePosition(p0, p1, 1e-12), "t=%v", tp)
		assert.True(t, geom.SameVector(t0, t1, 1e-12), "t=%v", tp)
	}
}

func TestParametricCirclePointsProjectToThemselves(t *testing.T) {
	c := NewParametricCircle(geom.RotationAbout(geom.Y3(), -0.3).Then(geom.Translation(v3.Vec{Y: -4})), 2)
	for _, tp := range []float64{0, 1, 2, 3, 4, 5, 6} {
		pos := c.XYZ(tp)
		assert.True(t, geom.SamePosition(c.Project(pos).Point, pos, 1e-12), "t=%v", tp)
	}
}

func TestParametricCircleMatchesCircle3(t *testing.T) {
	tr := geom.RotationAbout(geom.X3(), math.Pi/2).Then(geom.Translation(v3.Vec{X: 1, Y: 2, Z: 3}))
	pc := NewParametricCircle(tr, 2)
	c3 := NewCircle3(2, v3.Vec{X: 1, Y: 2, Z: 3}, geom.NewDirection(v3.Vec{Y: -1}))

	r := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 50; i++ {
		p := randVec3(r, 10)
		if diff := cmp.Diff(c3.Project(p).Point, pc.Project(p).Point, approx); diff != "" {
			t.Errorf("p=%v (-circle3 +parametric):\n%s", p, diff)
		}
	}
}

func TestNegativeRadiusIsNotValidated(t *testing.T) {
	c := NewCircle2(-1, v2.Vec{})
	assert.Equal(t, v2.Vec{X: -1}, c.Project(v2.Vec{X: 2}).Point)
	assert.Equal(t, 3.0, c.CalculateSignedDistance(v2.Vec{X: 2}))
}
