package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/curvekit/pkg/curve"
	"github.com/chazu/curvekit/pkg/geom"
	"github.com/chazu/curvekit/pkg/scene"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms curvekit Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: signed-distance -> signed_distance
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec2 wraps a 2D position or vector.
type sexpVec2 struct {
	v v2.Vec
}

func (s *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", s.v.X, s.v.Y)
}
func (s *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpVec3 wraps a 3D position or vector.
type sexpVec3 struct {
	v v3.Vec
}

func (s *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", s.v.X, s.v.Y, s.v.Z)
}
func (s *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpCurve2 wraps a planar curve.
type sexpCurve2 struct {
	kind string
	pr   curve.UntrimmedProjector[v2.Vec]
}

func (s *sexpCurve2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s)", s.kind)
}
func (s *sexpCurve2) Type() *zygo.RegisteredType { return nil }

// sexpCurve3 wraps a space curve. Only ray3 and parametric-circle values
// are parametric and can be stored in the scene.
type sexpCurve3 struct {
	kind       string
	name       string // set once registered with defcurve
	pr         curve.UntrimmedProjector[v3.Vec]
	pc         curve.ParametricCurves
	parametric bool
}

func (s *sexpCurve3) SexpString(ps *zygo.PrintState) string {
	if s.name != "" {
		return fmt.Sprintf("(curve %q)", s.name)
	}
	return fmt.Sprintf("(%s)", s.kind)
}
func (s *sexpCurve3) Type() *zygo.RegisteredType { return nil }

// toGo converts the final value of a script into a plain Go value.
func toGo(s zygo.Sexp) any {
	switch v := s.(type) {
	case *zygo.SexpFloat:
		return v.Val
	case *zygo.SexpInt:
		return v.Val
	case *zygo.SexpBool:
		return v.Val
	case *zygo.SexpStr:
		return v.S
	case *sexpVec2:
		return v.v
	case *sexpVec3:
		return v.v
	case *sexpCurve2:
		return v.pr
	case *sexpCurve3:
		if v.parametric {
			return curve.ToDynamic(v.pc)
		}
		return v.pr
	}
	if s == zygo.SexpNull {
		return nil
	}
	return s.SexpString(nil)
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			result.positional = append(result.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			result.kw[name] = args[i+1]
			i++
		} else {
			result.kw[name] = zygo.SexpNull
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toVec2(s zygo.Sexp) (v2.Vec, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.v, nil
	}
	return v2.Vec{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.v, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toDirection3 normalizes a vec3 argument, rejecting zero vectors.
func toDirection3(s zygo.Sexp) (geom.Direction3, error) {
	v, err := toVec3(s)
	if err != nil {
		return geom.Direction3{}, err
	}
	d, ok := geom.TryNewDirection(v, geom.DivOverflow)
	if !ok {
		return geom.Direction3{}, fmt.Errorf("direction %s has zero length", s.SexpString(nil))
	}
	return d, nil
}

// toDirection2 normalizes a vec2 argument, rejecting zero vectors.
func toDirection2(s zygo.Sexp) (geom.Direction2, error) {
	v, err := toVec2(s)
	if err != nil {
		return geom.Direction2{}, err
	}
	d, ok := geom.TryNewDirection(v, geom.DivOverflow)
	if !ok {
		return geom.Direction2{}, fmt.Errorf("direction %s has zero length", s.SexpString(nil))
	}
	return d, nil
}

// toParametric extracts a curve that can be evaluated at a parameter.
func toParametric(s zygo.Sexp) (curve.ProjectionTargetCurve, error) {
	c, ok := s.(*sexpCurve3)
	if !ok {
		return nil, fmt.Errorf("expected ray3 or parametric-circle, got %s", s.SexpString(nil))
	}
	if !c.parametric {
		return nil, fmt.Errorf("%s is not parametric; use parametric-circle", c.kind)
	}
	return curve.ToDynamic(c.pc), nil
}

// twoArgs checks the arity of a builtin taking exactly two arguments.
func twoArgs(name string, args []zygo.Sexp) error {
	if len(args) != 2 {
		return fmt.Errorf("%s requires exactly 2 arguments, got %d", name, len(args))
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs all curvekit builtins into a zygomys environment.
// defcurve populates the provided scene during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (vec2 1 2)
	// -----------------------------------------------------------------------
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpVec2{v: v2.Vec{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: y: %w", err)
		}
		z, err := toFloat64(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec3: z: %w", err)
		}
		return &sexpVec3{v: v3.Vec{X: x, Y: y, Z: z}}, nil
	})

	// -----------------------------------------------------------------------
	// (ray2 (vec2 0 0) (vec2 1 1)) ; direction is normalized
	// -----------------------------------------------------------------------
	env.AddFunction("ray2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		p, err := toVec2(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ray2: point: %w", err)
		}
		d, err := toDirection2(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ray2: direction: %w", err)
		}
		return &sexpCurve2{kind: "ray2", pr: curve.NewRay2(p, d)}, nil
	})

	// -----------------------------------------------------------------------
	// (ray3 (vec3 0 0 0) (vec3 1 1 1))
	// -----------------------------------------------------------------------
	env.AddFunction("ray3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		p, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ray3: point: %w", err)
		}
		d, err := toDirection3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ray3: direction: %w", err)
		}
		r := curve.NewRay3(p, d)
		return &sexpCurve3{kind: "ray3", pr: r, pc: curve.FromRay(r), parametric: true}, nil
	})

	// -----------------------------------------------------------------------
	// (circle2 2 (vec2 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("circle2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		r, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle2: radius: %w", err)
		}
		c, err := toVec2(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle2: center: %w", err)
		}
		return &sexpCurve2{kind: "circle2", pr: curve.NewCircle2(r, c)}, nil
	})

	// -----------------------------------------------------------------------
	// (circle3 2 (vec3 0 0 0) (vec3 0 0 1))
	// -----------------------------------------------------------------------
	env.AddFunction("circle3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("circle3 requires exactly 3 arguments, got %d", len(args))
		}
		r, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle3: radius: %w", err)
		}
		c, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle3: center: %w", err)
		}
		axis, err := toDirection3(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("circle3: axis: %w", err)
		}
		return &sexpCurve3{kind: "circle3", pr: curve.NewCircle3(r, c, axis)}, nil
	})

	// -----------------------------------------------------------------------
	// (parametric-circle 2 :at (vec3 1 0 0) :axis (vec3 0 1 0))
	// -----------------------------------------------------------------------
	env.AddFunction("parametric_circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("parametric-circle requires a radius")
		}
		r, err := toFloat64(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("parametric-circle: radius: %w", err)
		}

		tr := geom.Identity3()
		if v, ok := pa.kw["axis"]; ok {
			axis, err := toDirection3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("parametric-circle: axis: %w", err)
			}
			tr = geom.RotationFromZ(axis)
		}
		if v, ok := pa.kw["at"]; ok {
			at, err := toVec3(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("parametric-circle: at: %w", err)
			}
			tr = tr.Then(geom.Translation(at))
		}

		c := curve.NewParametricCircle(tr, r)
		return &sexpCurve3{kind: "parametric-circle", pr: c, pc: curve.FromCircle(c), parametric: true}, nil
	})

	// -----------------------------------------------------------------------
	// (defcurve "hoop" (parametric-circle 2))
	// -----------------------------------------------------------------------
	env.AddFunction("defcurve", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		curveName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defcurve: name: %w", err)
		}
		c, ok := args[1].(*sexpCurve3)
		if !ok || !c.parametric {
			return zygo.SexpNull, fmt.Errorf("defcurve: expected ray3 or parametric-circle, got %s", args[1].SexpString(nil))
		}
		if _, err := sc.Add(curveName, c.pc); err != nil {
			return zygo.SexpNull, fmt.Errorf("defcurve: %w", err)
		}
		named := *c
		named.name = curveName
		return &named, nil
	})

	// -----------------------------------------------------------------------
	// (curve "hoop")
	// -----------------------------------------------------------------------
	env.AddFunction("curve", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("curve requires a name argument")
		}
		curveName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("curve: name: %w", err)
		}
		e := sc.Lookup(curveName)
		if e == nil {
			return zygo.SexpNull, fmt.Errorf("curve: no curve named %q", curveName)
		}
		return &sexpCurve3{
			kind:       e.Curve.Kind().String(),
			name:       e.Name,
			pr:         e.Target(),
			pc:         e.Curve,
			parametric: true,
		}, nil
	})

	// -----------------------------------------------------------------------
	// (project c p), (normal c p), (signed-distance c p)
	// -----------------------------------------------------------------------
	env.AddFunction("project", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		switch c := args[0].(type) {
		case *sexpCurve2:
			p, err := toVec2(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("project: %w", err)
			}
			return &sexpVec2{v: c.pr.Project(p).Point}, nil
		case *sexpCurve3:
			p, err := toVec3(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("project: %w", err)
			}
			return &sexpVec3{v: c.pr.Project(p).Point}, nil
		}
		return zygo.SexpNull, fmt.Errorf("project: expected curve, got %s", args[0].SexpString(nil))
	})

	env.AddFunction("normal", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		switch c := args[0].(type) {
		case *sexpCurve2:
			p, err := toVec2(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("normal: %w", err)
			}
			proj := c.pr.Project(p)
			if !proj.HasNormal {
				return zygo.SexpNull, nil
			}
			return &sexpVec2{v: proj.Normal.Vec()}, nil
		case *sexpCurve3:
			// Space curves have no preferred side.
			return zygo.SexpNull, nil
		}
		return zygo.SexpNull, fmt.Errorf("normal: expected curve, got %s", args[0].SexpString(nil))
	})

	env.AddFunction("signed_distance", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if err := twoArgs(name, args); err != nil {
			return zygo.SexpNull, err
		}
		switch c := args[0].(type) {
		case *sexpCurve2:
			p, err := toVec2(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("signed-distance: %w", err)
			}
			return &zygo.SexpFloat{Val: curve.SignedDistance(c.pr, p)}, nil
		case *sexpCurve3:
			p, err := toVec3(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("signed-distance: %w", err)
			}
			return &zygo.SexpFloat{Val: curve.SignedDistance(c.pr, p)}, nil
		}
		return zygo.SexpNull, fmt.Errorf("signed-distance: expected curve, got %s", args[0].SexpString(nil))
	})

	// -----------------------------------------------------------------------
	// (xyz c t), (tangent c t), (period c), (closed c)
	// -----------------------------------------------------------------------
	env.AddFunction("xyz", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		c, t, err := curveAndParameter(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpVec3{v: curve.XYZ(c, t)}, nil
	})

	env.AddFunction("tangent", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		c, t, err := curveAndParameter(name, args)
		if err != nil {
			return zygo.SexpNull, err
		}
		_, tangent := c.All(t)
		return &sexpVec3{v: tangent}, nil
	})

	env.AddFunction("period", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("period requires a curve argument")
		}
		c, err := toParametric(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("period: %w", err)
		}
		p, ok := c.Period()
		if !ok {
			return zygo.SexpNull, nil
		}
		return &zygo.SexpFloat{Val: p}, nil
	})

	env.AddFunction("closed", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("closed requires a curve argument")
		}
		c, err := toParametric(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("closed: %w", err)
		}
		return &zygo.SexpBool{Val: c.Closed()}, nil
	})

	// -----------------------------------------------------------------------
	// (nearest (vec3 1 2 3)) ; name of the closest defcurve
	// -----------------------------------------------------------------------
	env.AddFunction("nearest", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("nearest requires a point argument")
		}
		p, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("nearest: %w", err)
		}
		hit, ok := sc.Nearest(p)
		if !ok {
			return zygo.SexpNull, nil
		}
		return &zygo.SexpStr{S: hit.Name}, nil
	})
}

// curveAndParameter extracts the (curve t) arguments of xyz and tangent.
func curveAndParameter(name string, args []zygo.Sexp) (curve.ProjectionTargetCurve, geom.Parameter, error) {
	if err := twoArgs(name, args); err != nil {
		return nil, 0, err
	}
	c, err := toParametric(args[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", name, err)
	}
	t, err := toFloat64(args[1])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: parameter: %w", name, err)
	}
	return c, t, nil
}
