package main

import (
	"fmt"

	"github.com/tdewolff/argp"
	"github.com/tiledraw/raster"
)

type Draw struct {
	Size    int    `short:"s" default:"600" desc:"Canvas width and height in pixels"`
	Cell    int    `short:"c" default:"40" desc:"Checker cell size in pixels"`
	Pattern string `short:"p" default:"checker" desc:"Pattern to draw: checker or gradient"`
	Output  string `short:"o" default:"result.ppm" desc:"Output filename (.ppm, .png, .bmp, .tif)"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Checkerboard and gradient pattern generator")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	if cmd.Size <= 0 || cmd.Cell <= 0 {
		return argp.ShowUsage
	}

	canvas := raster.New[uint32](cmd.Size, cmd.Size)
	switch cmd.Pattern {
	case "checker":
		cmd.checker(canvas)
	case "gradient":
		cmd.gradient(canvas)
	default:
		return fmt.Errorf("unknown pattern: %v", cmd.Pattern)
	}
	return canvas.SaveFile(cmd.Output, raster.DecodeRGB)
}

func (cmd *Draw) checker(canvas *raster.Canvas[uint32]) {
	canvas.Fill(raster.GruvboxBg)

	cells := cmd.Size / cmd.Cell
	for j := 0; j < cells-1; j++ {
		for i := 0; i < cells-1; i++ {
			p1 := raster.V(i, j).MulScalar(cmd.Cell)
			p2 := raster.V(i, j).AddScalar(1).MulScalar(cmd.Cell)
			color := raster.GruvboxFg
			if (i+j)%2 == 0 {
				color = raster.GruvboxBg
			}
			canvas.SubView(p1, p2).Fill(color)
		}
	}
}

func (cmd *Draw) gradient(canvas *raster.Canvas[uint32]) {
	ramp := raster.Gradient(raster.GruvboxBlue, raster.GruvboxOrange, cmd.Size)
	for x, color := range ramp {
		canvas.SubView(raster.V(x, 0), raster.V(x, cmd.Size-1)).Fill(color)
	}
}
