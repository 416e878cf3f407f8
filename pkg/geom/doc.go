// Package geom is the linear-algebra foundation of curvekit.
// Positions and vectors are the sdfx v2/v3 vector types; this package adds
// unit directions, rigid transforms, closed ranges and the epsilon
// comparisons used to check computed results.
package geom
