package material

import (
	"fmt"
	"math"

	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
)

// defaultCutoff is the importance-culling threshold below which a
// reflected or transmitted contribution is skipped without tracing it.
const defaultCutoff = 1e-6

// DielectricOptions configures a Dielectric material.
type DielectricOptions struct {
	// Index evaluates the wavelength-dependent index of refraction.
	// Required.
	Index Function1D

	// Transmission is reserved for bulk attenuation; currently unused
	// (EvaluateVolume passes its input through unchanged). Optional.
	Transmission Function2D

	// Cutoff is the importance-culling threshold. Zero selects the
	// default of 1e-6.
	Cutoff float64
}

// Dielectric implements the smooth dielectric interface: given a ray hit
// on a surface, it produces reflected and transmitted daughter rays,
// weights their traced radiance by the Fresnel coefficients, and handles
// total internal reflection.
type Dielectric struct {
	kind         BxdfKind
	index        Function1D
	transmission Function2D
	cutoff       float64
}

// NewDielectric validates opts and builds a Dielectric material.
func NewDielectric(opts DielectricOptions) (*Dielectric, error) {
	if opts.Index == nil {
		return nil, fmt.Errorf("%w: index function is required", ErrInvalidArgument)
	}
	if opts.Cutoff < 0 {
		return nil, fmt.Errorf("%w: cutoff must be >= 0, got %v", ErrInvalidArgument, opts.Cutoff)
	}

	cutoff := opts.Cutoff
	if cutoff == 0 {
		cutoff = defaultCutoff
	}

	return &Dielectric{
		kind:         BxdfDielectric,
		index:        opts.Index,
		transmission: opts.Transmission,
		cutoff:       cutoff,
	}, nil
}

// Kind reports BxdfDielectric.
func (d *Dielectric) Kind() BxdfKind { return d.kind }

// Cutoff returns the importance-culling threshold.
func (d *Dielectric) Cutoff() float64 { return d.cutoff }

// SurfaceHit bundles the geometric state of a ray/surface intersection
// the material needs to evaluate reflection and refraction, all supplied
// in the primitive's local space except Ray itself (world space) and the
// two transforms used to move between the spaces.
type SurfaceHit struct {
	// Ray is the incident ray, in world space.
	Ray *trace.Ray

	// Normal is the surface normal at the hit, in local space, pointing
	// outwards from the material on both sides.
	Normal types.Normal3

	// Exiting is true when the ray is leaving the material (travelling
	// from inside to outside), false when entering.
	Exiting bool

	// InsidePoint and OutsidePoint are the hit point offset to either
	// side of the surface, in local space, used as daughter-ray origins
	// to avoid immediate self-intersection.
	InsidePoint  types.Point3
	OutsidePoint types.Point3

	// LocalToWorld and WorldToLocal transform between the primitive's
	// local space and world space.
	LocalToWorld types.AffineMatrix
	WorldToLocal types.AffineMatrix

	// World is traced against for the daughter rays' radiance.
	World trace.World
}

// EvaluateSurface implements the dielectric interface algorithm described
// in spec section 4.3: it computes the reflected and (if not totally
// internally reflected) transmitted directions in local space, weights
// their traced contributions by the Fresnel reflectance/transmittance,
// and returns the accumulated spectrum.
func (d *Dielectric) EvaluateSurface(hit SurfaceHit) (*trace.Spectrum, error) {
	incident := hit.WorldToLocal.TransformVector(hit.Ray.Direction).Normalize()
	normal := hit.Normal.Normalize()

	c1 := -normal.Dot(incident)

	lambda := hit.Ray.RefractionWavelength
	n := d.index.Index(lambda)

	var n1, n2 float64
	if hit.Exiting {
		n1, n2 = n, 1
	} else {
		n1, n2 = 1, n
	}

	gamma := n1 / n2
	c2t := 1 - gamma*gamma*(1-c1*c1)

	reflectedDir := incident.Add(normal.AsVector().Scale(2 * c1))

	if c2t <= 0 {
		return d.totalInternalReflection(hit, reflectedDir)
	}

	return d.reflectAndRefract(hit, incident, normal, reflectedDir, n1, n2, gamma, c1, c2t)
}

func (d *Dielectric) totalInternalReflection(hit SurfaceHit, reflectedDirLocal types.Vector3) (*trace.Spectrum, error) {
	worldDir := hit.LocalToWorld.TransformVector(reflectedDirLocal).Normalize()

	var originLocal types.Point3
	if hit.Exiting {
		originLocal = hit.InsidePoint
	} else {
		originLocal = hit.OutsidePoint
	}
	worldOrigin := hit.LocalToWorld.TransformPoint(originLocal)

	daughter := hit.Ray.SpawnDaughter(worldOrigin, worldDir)
	return daughter.Trace(hit.World)
}

func (d *Dielectric) reflectAndRefract(
	hit SurfaceHit,
	incident types.Vector3,
	normal types.Normal3,
	reflectedDirLocal types.Vector3,
	n1, n2, gamma, c1, c2t float64,
) (*trace.Spectrum, error) {
	// See DESIGN.md "transmitted-direction sign" for why this is the
	// opposite of a literal plus-when-exiting reading: it's the only
	// assignment consistent with the worked normal-incidence numbers.
	sign := 1.0
	if hit.Exiting {
		sign = -1.0
	}
	ct := gamma*c1 + sign*math.Sqrt(c2t)
	transmittedDirLocal := incident.Scale(gamma).Add(normal.AsVector().Scale(ct))

	// cosine of the transmitted direction against the normal, computed
	// before the world-space transform, as required by the Fresnel
	// formula below.
	cosT := -normal.Dot(transmittedDirLocal)

	r := FresnelReflectance(n1, c1, n2, cosT)
	t := 1 - r

	worldReflectedDir := hit.LocalToWorld.TransformVector(reflectedDirLocal).Normalize()
	worldTransmittedDir := hit.LocalToWorld.TransformVector(transmittedDirLocal).Normalize()
	worldInside := hit.LocalToWorld.TransformPoint(hit.InsidePoint)
	worldOutside := hit.LocalToWorld.TransformPoint(hit.OutsidePoint)

	var reflectedOrigin, transmittedOrigin types.Point3
	if hit.Exiting {
		reflectedOrigin, transmittedOrigin = worldInside, worldOutside
	} else {
		reflectedOrigin, transmittedOrigin = worldOutside, worldInside
	}

	reflectedRay := hit.Ray.SpawnDaughter(reflectedOrigin, worldReflectedDir)

	var result *trace.Spectrum
	if r > d.cutoff {
		spec, err := reflectedRay.Trace(hit.World)
		if err != nil {
			return nil, err
		}
		result = spec.MulScalar(r)
	} else {
		result = reflectedRay.NewSpectrum()
	}

	if t > d.cutoff {
		transmittedRay := hit.Ray.SpawnDaughter(transmittedOrigin, worldTransmittedDir)
		spec, err := transmittedRay.Trace(hit.World)
		if err != nil {
			return nil, err
		}
		if err := result.AddArray(spec.MulScalar(t).Bins); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// FresnelReflectance computes the unpolarised Fresnel reflectance for a
// dielectric interface from the incident/transmitted cosines and the two
// media's indices of refraction.
func FresnelReflectance(n1, c1, n2, ct float64) float64 {
	rs := (n1*c1 - n2*ct) / (n1*c1 + n2*ct)
	rp := (n1*ct - n2*c1) / (n1*ct + n2*c1)
	return 0.5 * (rs*rs + rp*rp)
}

// EvaluateVolume passes the input spectrum through unchanged. Bulk
// absorption is reserved (Transmission) but not yet activated; see
// DESIGN.md.
func (d *Dielectric) EvaluateVolume(input *trace.Spectrum, distance float64) *trace.Spectrum {
	return input
}
