package trace

import "github.com/achilleasa/go-pathtrace/types"

// World is implemented by the scene container a ray is traced against.
// Out of scope here beyond this interface (spec.md section 1); a real
// implementation typically dispatches into a kdtree.Tree over scene
// primitives.
type World interface {
	Trace(r *Ray) (*Spectrum, error)
}

// Ray is the active ray state threaded through material evaluation. It
// carries a refraction wavelength for dispersive index lookups and a
// depth counter that bounds recursive daughter-ray spawning.
type Ray struct {
	Origin               types.Point3
	Direction            types.Vector3
	RefractionWavelength float64

	depth    int
	maxDepth int
	binCount int
}

// NewRay starts a primary ray at depth 0.
func NewRay(origin types.Point3, direction types.Vector3, refractionWavelength float64, binCount, maxDepth int) *Ray {
	return &Ray{
		Origin:               origin,
		Direction:            direction,
		RefractionWavelength: refractionWavelength,
		binCount:             binCount,
		maxDepth:             maxDepth,
	}
}

// Depth reports how many times this ray has been spawned from an
// ancestor primary ray (0 for the primary ray itself).
func (r *Ray) Depth() int { return r.depth }

// NewSpectrum returns a zero-valued spectrum sized to match this trace's
// bin count.
func (r *Ray) NewSpectrum() *Spectrum {
	return NewSpectrum(r.binCount)
}

// SpawnDaughter creates a new ray one depth level below r, originating at
// origin and travelling in direction. The depth counter is propagated so
// that recursive reflection/refraction chains terminate at maxDepth: once
// exceeded, Trace returns a zero spectrum immediately without consulting
// the world.
func (r *Ray) SpawnDaughter(origin types.Point3, direction types.Vector3) *Ray {
	return &Ray{
		Origin:               origin,
		Direction:            direction,
		RefractionWavelength: r.RefractionWavelength,
		depth:                r.depth + 1,
		maxDepth:             r.maxDepth,
		binCount:             r.binCount,
	}
}

// Trace traces r against world, unless it has exceeded its configured
// depth limit, in which case it returns a zero spectrum without invoking
// world. This is what terminates the material's recursive ray spawning.
func (r *Ray) Trace(world World) (*Spectrum, error) {
	if r.depth > r.maxDepth {
		return r.NewSpectrum(), nil
	}
	return world.Trace(r)
}
