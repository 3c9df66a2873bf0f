// Package render rasterizes a solved chain for quick visual inspection. It
// consumes only the world poses computed by the chain package: every visual
// element is described in its frame's local space and placed by that frame's
// world transform.
package render

import (
	"image"
	"image/png"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/viam-labs/planararm/chain"
)

// Options controls the output raster. Zero values fall back to defaults.
type Options struct {
	Width  int
	Height int
	// XRange and YRange are the world-coordinate extents mapped onto the
	// canvas, as (min, max) pairs.
	XRange [2]float64
	YRange [2]float64
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = 800
	}
	if o.Height == 0 {
		o.Height = 480
	}
	if o.XRange[0] == 0 && o.XRange[1] == 0 {
		o.XRange = [2]float64{0, 20}
	}
	if o.YRange[0] == 0 && o.YRange[1] == 0 {
		o.YRange = [2]float64{-2, 10}
	}
	return o
}

// Plot draws the solved chain: each link as a solid bar from its frame's hub
// along the frame's x axis, each joint hub as a filled circle, and x/y axis
// glyphs for every frame. The z components of the world poses are ignored;
// the canvas is the world x-y plane.
func Plot(c *chain.Chain, sol *chain.Solution, opts Options) (image.Image, error) {
	if len(sol.Frames) != c.DoF()+1 {
		return nil, chain.NewIncorrectDoFError(len(sol.Frames)-1, c.DoF())
	}
	opts = opts.withDefaults()
	if opts.XRange[1] <= opts.XRange[0] || opts.YRange[1] <= opts.YRange[0] {
		return nil, errors.Errorf("axis ranges must be increasing, got x %v y %v", opts.XRange, opts.YRange)
	}

	sx := float64(opts.Width) / (opts.XRange[1] - opts.XRange[0])
	sy := float64(opts.Height) / (opts.YRange[1] - opts.YRange[0])
	toCanvas := func(p r3.Vector) (float64, float64) {
		return (p.X - opts.XRange[0]) * sx, float64(opts.Height) - (p.Y-opts.YRange[0])*sy
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	r := c.JointRadius()
	for i, length := range c.LinkLengths() {
		if length == 0 {
			continue
		}
		frame := sol.Frames[i+1]
		x0, y0 := toCanvas(frame.TransformPoint(r3.Vector{X: r}))
		x1, y1 := toCanvas(frame.TransformPoint(r3.Vector{X: r + length}))
		if i == 0 {
			dc.SetRGBA(0.9, 0.8, 0.1, 0.8)
		} else {
			dc.SetRGBA(0.85, 0.15, 0.15, 0.8)
		}
		dc.SetLineWidth(2 * r * sx)
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
	}

	for _, frame := range sol.Frames[1:] {
		hx, hy := toCanvas(frame.Translation())
		dc.SetRGBA(0.5, 0.5, 0.5, 0.8)
		dc.DrawCircle(hx, hy, r*sx)
		dc.Fill()
	}

	// Unit-length axis glyphs, x in red and y in green, same as the usual
	// frame arrow convention.
	for _, frame := range sol.Frames[1:] {
		ox, oy := toCanvas(frame.Translation())
		xx, xy := toCanvas(frame.TransformPoint(r3.Vector{X: 1}))
		yx, yy := toCanvas(frame.TransformPoint(r3.Vector{Y: 1}))
		dc.SetLineWidth(2)
		dc.SetRGB(1, 0, 0)
		dc.DrawLine(ox, oy, xx, xy)
		dc.Stroke()
		dc.SetRGB(0, 0.6, 0)
		dc.DrawLine(ox, oy, yx, yy)
		dc.Stroke()
	}

	return dc.Image(), nil
}

// SavePNG writes the given image to a PNG file.
func SavePNG(filename string, img image.Image) error {
	f, err := os.Create(filename) //nolint:gosec
	if err != nil {
		return errors.Wrap(err, "failed to create image file")
	}
	defer f.Close() //nolint:errcheck
	if err := png.Encode(f, img); err != nil {
		return errors.Wrap(err, "failed to encode png")
	}
	return nil
}
