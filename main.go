package main

import (
	"os"

	"github.com/achilleasa/go-pathtrace/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "kdtrace"
	app.Usage = "kd-tree and dielectric-optics core of a spectral ray tracer"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "bench",
			Usage:  "build a kd-tree over synthetic items and print build statistics",
			Action: cmd.Bench,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "items",
					Value: 10000,
					Usage: "number of synthetic unit-cube items to scatter",
				},
				cli.Float64Flag{
					Name:  "extent",
					Value: 100,
					Usage: "side length of the cube items are scattered inside",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for item placement",
				},
				cli.IntFlag{
					Name:  "min-items",
					Value: 1,
					Usage: "minimum items per leaf before splitting stops",
				},
				cli.Float64Flag{
					Name:  "hit-cost",
					Value: 1.0,
					Usage: "SAH cost of intersecting one item",
				},
				cli.Float64Flag{
					Name:  "empty-bonus",
					Value: 0.2,
					Usage: "SAH bonus for splits producing an empty half",
				},
			},
		},
		{
			Name:      "sellmeier",
			Usage:     "evaluate a Sellmeier dispersion curve at one or more wavelengths",
			ArgsUsage: "wavelength_nm1 wavelength_nm2 ...",
			Action:    cmd.Sellmeier,
			Flags: []cli.Flag{
				cli.Float64Flag{Name: "b1"},
				cli.Float64Flag{Name: "b2"},
				cli.Float64Flag{Name: "b3"},
				cli.Float64Flag{Name: "c1"},
				cli.Float64Flag{Name: "c2"},
				cli.Float64Flag{Name: "c3"},
			},
		},
		{
			Name:   "fresnel",
			Usage:  "evaluate the dielectric interface at a single incidence angle",
			Action: cmd.Fresnel,
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "index",
					Value: 1.5,
					Usage: "index of refraction of the glass side",
				},
				cli.Float64Flag{
					Name:  "angle",
					Value: 0,
					Usage: "angle of incidence from the normal, in degrees",
				},
				cli.BoolFlag{
					Name:  "exiting",
					Usage: "ray travels from inside the glass outward",
				},
			},
		},
	}

	app.Run(os.Args)
}
