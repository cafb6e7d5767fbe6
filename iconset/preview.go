package iconset

import (
	"image"
	"strings"
)

// Preview renders img as ASCII art, one character per pixel:
// '.' transparent, '#' opaque, '+' partially covered, 'o' accent marker.
func Preview(img *image.NRGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	sb.Grow(b.Dy() * (b.Dx() + 1))

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.NRGBAAt(x, y)
			switch {
			case px.A == 0:
				sb.WriteByte('.')
			case px.R == Accent.R && px.G == Accent.G && px.B == Accent.B:
				sb.WriteByte('o')
			case px.A == 0xff:
				sb.WriteByte('#')
			default:
				sb.WriteByte('+')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
