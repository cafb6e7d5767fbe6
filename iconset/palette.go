// Package iconset draws the tab-bar icons: three shapes, each in a normal and
// an active variant, rasterized onto a small transparent canvas.
package iconset

import "image/color"

// Size is the edge length of an icon at scale 1, in pixels.
const Size = 81

var (
	// Background is the canvas colour. Filling with it punches a hole.
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 0}

	// Normal is the body colour of an unselected tab icon.
	Normal = color.NRGBA{R: 51, G: 51, B: 51, A: 255}

	// Active is the body colour of a selected tab icon.
	Active = color.NRGBA{R: 0, G: 122, B: 255, A: 255}

	// Accent colours the marker added to active icons.
	Accent = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
)
