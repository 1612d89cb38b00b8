package material

import (
	"math"
	"testing"

	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
)

// recordingWorld traces every ray it's given and returns a spectrum with
// every bin set to 1, so scaling by r/t is directly observable.
type recordingWorld struct {
	traced []*trace.Ray
}

func (w *recordingWorld) Trace(r *trace.Ray) (*trace.Spectrum, error) {
	w.traced = append(w.traced, r)
	sf := r.NewSpectrum()
	for i := range sf.Bins {
		sf.Bins[i] = 1
	}
	return sf, nil
}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func approxVec(a, b types.Vector3, eps float64) bool {
	return approx(a.X, b.X, eps) && approx(a.Y, b.Y, eps) && approx(a.Z, b.Z, eps)
}

func constantIndex(n float64) Function1D {
	return Function1DFunc(func(float64) float64 { return n })
}

func newOneBinRay(dir types.Vector3) *trace.Ray {
	return trace.NewRay(types.PointXYZ(0, 0, 0), dir, 550, 1, 8)
}

func TestDielectricSnellAtNormalIncidence(t *testing.T) {
	mat, err := NewDielectric(DielectricOptions{Index: constantIndex(1.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	world := &recordingWorld{}
	ray := newOneBinRay(types.XYZ(0, 0, 1))

	hit := SurfaceHit{
		Ray:          ray,
		Normal:       types.NormalXYZ(0, 0, 1),
		Exiting:      false,
		InsidePoint:  types.PointXYZ(0, 0, -1e-4),
		OutsidePoint: types.PointXYZ(0, 0, 1e-4),
		LocalToWorld: types.Identity(),
		WorldToLocal: types.Identity(),
		World:        world,
	}

	spec, err := mat.EvaluateSurface(hit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(world.traced) != 2 {
		t.Fatalf("expected both a reflected and a transmitted ray to be traced, got %d", len(world.traced))
	}

	reflected := world.traced[0]
	transmitted := world.traced[1]

	if !approxVec(reflected.Direction, types.XYZ(0, 0, -1), 1e-9) {
		t.Fatalf("expected reflected direction (0,0,-1), got %v", reflected.Direction)
	}
	if !approxVec(transmitted.Direction, types.XYZ(0, 0, 1), 1e-9) {
		t.Fatalf("expected transmitted direction (0,0,1), got %v", transmitted.Direction)
	}

	wantR, wantT := 0.04, 0.96
	if !approx(spec.Bins[0], wantR+wantT, 1e-9) {
		t.Fatalf("expected accumulated spectrum bin = r+t = %v, got %v", wantR+wantT, spec.Bins[0])
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	mat, err := NewDielectric(DielectricOptions{Index: constantIndex(1.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	world := &recordingWorld{}

	// 60 degrees from the normal (0,0,1), in the x-z plane, travelling
	// from inside the medium outward (exiting = true).
	theta := 60.0 * math.Pi / 180.0
	dir := types.XYZ(math.Sin(theta), 0, math.Cos(theta))

	ray := newOneBinRay(dir)
	hit := SurfaceHit{
		Ray:          ray,
		Normal:       types.NormalXYZ(0, 0, 1),
		Exiting:      true,
		InsidePoint:  types.PointXYZ(0, 0, -1e-4),
		OutsidePoint: types.PointXYZ(0, 0, 1e-4),
		LocalToWorld: types.Identity(),
		WorldToLocal: types.Identity(),
		World:        world,
	}

	_, err = mat.EvaluateSurface(hit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(world.traced) != 1 {
		t.Fatalf("expected exactly one (reflected) ray under TIR, got %d", len(world.traced))
	}
}

func TestDielectricFresnelReciprocity(t *testing.T) {
	// swapping (n1,n2) and reversing the ray direction should produce
	// the same reflectance.
	n1, c1, n2 := 1.0, 0.8, 1.5
	ct := math.Sqrt(1 - (n1/n2)*(n1/n2)*(1-c1*c1))

	r1 := FresnelReflectance(n1, c1, n2, ct)
	r2 := FresnelReflectance(n2, ct, n1, c1)

	if !approx(r1, r2, 1e-9) {
		t.Fatalf("expected reciprocity: r(n1,c1,n2,ct)=%v, r(n2,ct,n1,c1)=%v", r1, r2)
	}
}

func TestDielectricRejectsNilIndex(t *testing.T) {
	_, err := NewDielectric(DielectricOptions{})
	if err == nil {
		t.Fatalf("expected an error for a nil index function")
	}
}

func TestDielectricRejectsNegativeCutoff(t *testing.T) {
	_, err := NewDielectric(DielectricOptions{Index: constantIndex(1.5), Cutoff: -1})
	if err == nil {
		t.Fatalf("expected an error for a negative cutoff")
	}
}

func TestDielectricEvaluateVolumeIsPassThrough(t *testing.T) {
	mat, err := NewDielectric(DielectricOptions{Index: constantIndex(1.5)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := &trace.Spectrum{Bins: []float64{0.1, 0.2, 0.3}}
	out := mat.EvaluateVolume(in, 10.0)
	if out != in {
		t.Fatalf("expected EvaluateVolume to return its input unchanged")
	}
}
