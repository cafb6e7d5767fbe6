package iconset

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// MaxScale is the largest supported multiplier for the canvas size.
const MaxScale = 4

// GoRegular selects the embedded Go Regular face in LoadFace.
const GoRegular = "goregular"

// textSize is the point size used for TrueType faces. At 72 DPI it roughly
// matches the height of the built-in bitmap face.
const textSize = 11

// ErrFontUnreadable is returned when a font file cannot be loaded.
var ErrFontUnreadable = errors.New("font cannot be loaded")

// Options control how icons are rasterized.
type Options struct {
	// Scale multiplies the canvas size and every coordinate (1..MaxScale).
	Scale int

	// Antialias blends partially covered pixels instead of snapping them.
	Antialias bool

	// Face draws text. Nil selects basicfont.Face7x13.
	Face font.Face
}

// DefaultOptions returns crisp, 1x rendering with the bitmap face.
func DefaultOptions() Options {
	return Options{
		Scale: 1,
		Face:  basicfont.Face7x13,
	}
}

// normalize clamps the scale and fills in the default face.
func (o Options) normalize() Options {
	if o.Scale < 1 {
		o.Scale = 1
	}
	if o.Scale > MaxScale {
		o.Scale = MaxScale
	}
	if o.Face == nil {
		o.Face = basicfont.Face7x13
	}
	return o
}

// LoadFace resolves a font name to a face. An empty name yields the bitmap
// face, GoRegular the embedded Go font, anything else is read as a TrueType or
// OpenType file.
func LoadFace(name string) (font.Face, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return basicfont.Face7x13, nil
	}

	var data []byte
	if strings.EqualFold(name, GoRegular) {
		data = goregular.TTF
	} else {
		b, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrFontUnreadable, name, err)
		}
		data = b
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontUnreadable, name, err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    textSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontUnreadable, name, err)
	}
	return face, nil
}
