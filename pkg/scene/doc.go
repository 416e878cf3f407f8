// Package scene holds a named collection of heterogeneous 3D curves and
// answers queries across all of them. Curves are stored as
// curve.ParametricCurves and queried through curve.ProjectionTargetCurve.
// A scene is built once and then only read; concurrent reads are safe.
package scene
