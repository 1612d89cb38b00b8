package cmd

import (
	"fmt"

	"github.com/achilleasa/go-pathtrace/material"
	"github.com/urfave/cli"
)

// Sellmeier evaluates a Sellmeier dispersion curve at one or more
// wavelengths and prints the resulting index of refraction.
func Sellmeier(ctx *cli.Context) error {
	setupLogging(ctx)

	s := material.NewSellmeier(
		ctx.Float64("b1"), ctx.Float64("b2"), ctx.Float64("b3"),
		ctx.Float64("c1"), ctx.Float64("c2"), ctx.Float64("c3"),
	)

	if ctx.NArg() == 0 {
		return cli.NewExitError("missing wavelength argument(s), in nanometres", 1)
	}

	for i := 0; i < ctx.NArg(); i++ {
		var lambda float64
		if _, err := fmt.Sscanf(ctx.Args().Get(i), "%f", &lambda); err != nil {
			return cli.NewExitError(fmt.Sprintf("invalid wavelength %q", ctx.Args().Get(i)), 1)
		}

		n, err := s.IndexChecked(lambda)
		if err != nil {
			logger.Warningf("%s: %v", ctx.Args().Get(i), err)
			continue
		}
		logger.Noticef("n(%g nm) = %.6f", lambda, n)
	}

	return nil
}
