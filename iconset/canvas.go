package iconset

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// coverageThreshold is the mask value at which a pixel counts as painted in
// crisp mode.
const coverageThreshold = 0x80

// Box is an inclusive pixel bounding box: it covers columns X0..X1 and rows
// Y0..Y1 of the unscaled grid.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Canvas is a transparent icon surface. Every primitive replaces the pixels
// it covers with the fill colour; nothing is alpha blended over what is
// already there, so Background can be used to erase.
type Canvas struct {
	img       *image.NRGBA
	mask      *image.Alpha
	scale     int
	antialias bool
	face      font.Face
}

// NewCanvas allocates a Size*Scale square canvas filled with Background.
func NewCanvas(opts Options) *Canvas {
	opts = opts.normalize()
	side := Size * opts.Scale
	rect := image.Rect(0, 0, side, side)

	c := &Canvas{
		img:       image.NewNRGBA(rect),
		mask:      image.NewAlpha(rect),
		scale:     opts.Scale,
		antialias: opts.Antialias,
		face:      opts.Face,
	}
	for i := 0; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i+0] = Background.R
		c.img.Pix[i+1] = Background.G
		c.img.Pix[i+2] = Background.B
		c.img.Pix[i+3] = Background.A
	}
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// Polygon fills the polygon through the given vertices. Vertices are pixel
// coordinates and are placed at pixel centres.
func (c *Canvas) Polygon(points []image.Point, clr color.NRGBA) {
	if len(points) < 3 {
		return
	}
	c.fill(clr, func(f *rasterx.Filler) {
		f.Start(c.fixedPoint(float64(points[0].X)+0.5, float64(points[0].Y)+0.5))
		for _, p := range points[1:] {
			f.Line(c.fixedPoint(float64(p.X)+0.5, float64(p.Y)+0.5))
		}
		f.Stop(true)
	})
}

// Rectangle fills the box.
func (c *Canvas) Rectangle(b Box, clr color.NRGBA) {
	x0, y0, x1, y1 := c.edges(b)
	c.fill(clr, func(f *rasterx.Filler) {
		rasterx.AddRect(x0, y0, x1, y1, 0, f)
	})
}

// RoundedRectangle fills the box with corners rounded to radius.
func (c *Canvas) RoundedRectangle(b Box, radius int, clr color.NRGBA) {
	x0, y0, x1, y1 := c.edges(b)
	r := float64(radius * c.scale)
	c.fill(clr, func(f *rasterx.Filler) {
		rasterx.AddRoundRect(x0, y0, x1, y1, r, r, 0, rasterx.RoundGap, f)
	})
}

// Ellipse fills the ellipse inscribed in the box.
func (c *Canvas) Ellipse(b Box, clr color.NRGBA) {
	x0, y0, x1, y1 := c.edges(b)
	c.fill(clr, func(f *rasterx.Filler) {
		rasterx.AddEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2, 0, f)
	})
}

// Line strokes a straight segment of the given width between two pixels,
// both end pixels included. Even widths sit on the side of the segment
// towards smaller coordinates.
func (c *Canvas) Line(from, to image.Point, width int, clr color.NRGBA) {
	if width < 1 {
		width = 1
	}
	ax, ay := float64(from.X)+0.5, float64(from.Y)+0.5
	bx, by := float64(to.X)+0.5, float64(to.Y)+0.5

	dx, dy := bx-ax, by-ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		dx, dy = 1, 0
	} else {
		dx, dy = dx/length, dy/length
	}
	nx, ny := -dy, dx

	if width%2 == 0 {
		ax, ay = ax-0.5*math.Abs(nx), ay-0.5*math.Abs(ny)
		bx, by = bx-0.5*math.Abs(nx), by-0.5*math.Abs(ny)
	}
	ax, ay = ax-0.5*dx, ay-0.5*dy
	bx, by = bx+0.5*dx, by+0.5*dy

	half := float64(width) / 2
	c.fill(clr, func(f *rasterx.Filler) {
		f.Start(c.fixedPoint(ax+nx*half, ay+ny*half))
		f.Line(c.fixedPoint(bx+nx*half, by+ny*half))
		f.Line(c.fixedPoint(bx-nx*half, by-ny*half))
		f.Line(c.fixedPoint(ax-nx*half, ay-ny*half))
		f.Stop(true)
	})
}

// Text draws s with its top-left corner at the given pixel.
func (c *Canvas) Text(at image.Point, s string, clr color.NRGBA) {
	if s == "" {
		return
	}
	metrics := c.face.Metrics()
	w := font.MeasureString(c.face, s).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return
	}

	glyphs := image.NewAlpha(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: c.face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)

	c.clearMask()
	target := image.Rect(at.X*c.scale, at.Y*c.scale, (at.X+w)*c.scale, (at.Y+h)*c.scale)
	if c.scale == 1 {
		draw.Draw(c.mask, target, glyphs, image.Point{}, draw.Src)
	} else {
		draw.ApproxBiLinear.Scale(c.mask, target, glyphs, glyphs.Bounds(), draw.Src, nil)
	}
	c.composite(clr)
}

// fill rasterizes the path built by add into the coverage mask and
// composites clr through it.
func (c *Canvas) fill(clr color.NRGBA, add func(f *rasterx.Filler)) {
	c.clearMask()
	side := c.mask.Bounds().Dx()
	scanner := rasterx.NewScannerGV(side, side, c.mask, c.mask.Bounds())
	filler := rasterx.NewFiller(side, side, scanner)
	filler.SetColor(color.Opaque)
	add(filler)
	filler.Draw()
	c.composite(clr)
}

func (c *Canvas) clearMask() {
	draw.Draw(c.mask, c.mask.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

// composite copies clr onto the canvas wherever the mask is set. Crisp mode
// writes the colour verbatim so that transparent fills keep their RGB;
// antialias mode interpolates between the old pixel and clr by coverage.
func (c *Canvas) composite(clr color.NRGBA) {
	b := c.mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := c.mask.AlphaAt(x, y).A
			switch {
			case m == 0:
			case c.antialias && m < 0xff:
				c.img.SetNRGBA(x, y, lerp(c.img.NRGBAAt(x, y), clr, m))
			case c.antialias || m >= coverageThreshold:
				c.img.SetNRGBA(x, y, clr)
			}
		}
	}
}

// lerp mixes src into dst with weight m/255 in premultiplied space.
func lerp(dst, src color.NRGBA, m uint8) color.NRGBA {
	w := float64(m) / 0xff
	da, sa := float64(dst.A)/0xff, float64(src.A)/0xff
	outA := sa*w + da*(1-w)
	if outA == 0 {
		return color.NRGBA{R: src.R, G: src.G, B: src.B}
	}
	mix := func(d, s uint8) uint8 {
		v := (float64(s)*sa*w + float64(d)*da*(1-w)) / outA
		return uint8(math.Round(math.Min(v, 0xff)))
	}
	return color.NRGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: uint8(math.Round(outA * 0xff)),
	}
}

// edges converts an inclusive box to scaled pixel edges.
func (c *Canvas) edges(b Box) (x0, y0, x1, y1 float64) {
	s := float64(c.scale)
	return float64(b.X0) * s, float64(b.Y0) * s, float64(b.X1+1) * s, float64(b.Y1+1) * s
}

func (c *Canvas) fixedPoint(x, y float64) fixed.Point26_6 {
	s := float64(c.scale)
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x * s * 64)),
		Y: fixed.Int26_6(math.Round(y * s * 64)),
	}
}
