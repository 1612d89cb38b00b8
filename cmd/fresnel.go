package cmd

import (
	"bytes"
	"fmt"
	"math"

	"github.com/achilleasa/go-pathtrace/material"
	"github.com/achilleasa/go-pathtrace/trace"
	"github.com/achilleasa/go-pathtrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// splitWorld tags the reflected and transmitted daughter rays with disjoint
// unit spectra (bin 0, bin 1), identified by which side of the surface
// they originate from (the material always spawns the reflected ray from
// the inside point when exiting, the outside point otherwise; see
// dielectric.go). This reports r and t in the weighted, accumulated
// result's two bins without reaching into the material's internals.
type splitWorld struct {
	exiting bool
	calls   int
}

func (w *splitWorld) Trace(r *trace.Ray) (*trace.Spectrum, error) {
	w.calls++
	s := r.NewSpectrum()

	reflectedIsInside := w.exiting
	originIsInside := r.Origin.Z < 0

	bin := 1
	if originIsInside == reflectedIsInside {
		bin = 0
	}
	s.Bins[bin] = 1
	return s, nil
}

// Fresnel evaluates the dielectric interface at a single incidence angle
// and prints the reflectance/transmittance split, flagging total internal
// reflection.
func Fresnel(ctx *cli.Context) error {
	setupLogging(ctx)

	n := ctx.Float64("index")
	angleDeg := ctx.Float64("angle")
	exiting := ctx.Bool("exiting")

	mat, err := material.NewDielectric(material.DielectricOptions{
		Index: material.Function1DFunc(func(float64) float64 { return n }),
	})
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	theta := angleDeg * math.Pi / 180
	incidentDir := types.XYZ(math.Sin(theta), 0, math.Cos(theta))
	if exiting {
		// "angle" is measured from the normal regardless of travel
		// direction; exiting rays originate inside the medium.
		incidentDir = incidentDir.Negate()
	}

	world := &splitWorld{exiting: exiting}
	hit := material.SurfaceHit{
		Ray:          trace.NewRay(types.PointXYZ(0, 0, 0), incidentDir, 550, 2, 8),
		Normal:       types.NormalXYZ(0, 0, 1),
		Exiting:      exiting,
		InsidePoint:  types.PointXYZ(0, 0, -1e-4),
		OutsidePoint: types.PointXYZ(0, 0, 1e-4),
		LocalToWorld: types.Identity(),
		WorldToLocal: types.Identity(),
		World:        world,
	}

	result, err := mat.EvaluateSurface(hit)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	r, t := result.Bins[0], result.Bins[1]
	tir := world.calls == 1

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"index", "angle (deg)", "exiting", "r", "t", "TIR"})
	table.Append([]string{
		fmt.Sprintf("%.4f", n),
		fmt.Sprintf("%.2f", angleDeg),
		fmt.Sprintf("%t", exiting),
		fmt.Sprintf("%.6f", r),
		fmt.Sprintf("%.6f", t),
		fmt.Sprintf("%t", tir),
	})
	table.Render()
	logger.Noticef("dielectric interface\n%s", buf.String())

	return nil
}
