package iconset

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderShape(t *testing.T, shape Shape, clr color.NRGBA) *image.NRGBA {
	t.Helper()
	img, err := Render(Icon{File: string(shape) + ".png", Shape: shape, Color: clr}, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, Size, Size), img.Bounds())
	return img
}

func TestRecipe_Home(t *testing.T) {
	img := renderShape(t, ShapeHome, Normal)

	assert.Equal(t, Normal, img.NRGBAAt(40, 30), "roof")
	assert.Equal(t, Normal, img.NRGBAAt(25, 50), "body")
	assert.Equal(t, Background, img.NRGBAAt(40, 55), "door")
	assert.Equal(t, Background, img.NRGBAAt(40, 65), "door reaches the ground")
	assert.Equal(t, Background, img.NRGBAAt(0, 0))
	assert.Equal(t, Background, img.NRGBAAt(63, 63), "no marker on normal variant")
}

func TestRecipe_HomeActive(t *testing.T) {
	img := renderShape(t, ShapeHomeActive, Active)

	assert.Equal(t, Active, img.NRGBAAt(40, 30))
	assert.Equal(t, Active, img.NRGBAAt(25, 50))
	assert.Equal(t, Background, img.NRGBAAt(40, 55))
	assert.Equal(t, Accent, img.NRGBAAt(63, 63), "marker dot")
}

func TestRecipe_ActiveIgnoresTableColor(t *testing.T) {
	img := renderShape(t, ShapeHomeActive, Normal)
	assert.Equal(t, Active, img.NRGBAAt(25, 50))

	img = renderShape(t, ShapeMemberActive, Normal)
	assert.Equal(t, Active, img.NRGBAAt(30, 48))
}

func TestRecipe_NormalUsesTableColor(t *testing.T) {
	custom := color.NRGBA{R: 10, G: 200, B: 30, A: 255}
	img := renderShape(t, ShapeMember, custom)
	assert.Equal(t, custom, img.NRGBAAt(40, 30))
}

func TestRecipe_Member(t *testing.T) {
	img := renderShape(t, ShapeMember, Normal)

	assert.Equal(t, Normal, img.NRGBAAt(40, 30), "card body")
	assert.Equal(t, Normal, img.NRGBAAt(40, 38), "between stripes")
	assert.Equal(t, Background, img.NRGBAAt(40, 35), "first stripe")
	assert.Equal(t, Background, img.NRGBAAt(40, 42), "second stripe")
	assert.Equal(t, Background, img.NRGBAAt(15, 25), "rounded corner")
	assert.Equal(t, Normal, img.NRGBAAt(17, 35), "stripe starts at x=20")
	assert.Equal(t, Background, img.NRGBAAt(40, 60))
}

func TestRecipe_MemberActive(t *testing.T) {
	img := renderShape(t, ShapeMemberActive, Active)

	assert.Equal(t, Active, img.NRGBAAt(30, 48))
	assert.Equal(t, Background, img.NRGBAAt(30, 35))
	assert.Equal(t, Accent, img.NRGBAAt(60, 37), "star centre")
	assert.Equal(t, Accent, img.NRGBAAt(60, 32), "star top ray")
}

func TestRecipe_Activity(t *testing.T) {
	img := renderShape(t, ShapeActivity, Normal)

	assert.Equal(t, Normal, img.NRGBAAt(25, 45), "calendar body")
	assert.Equal(t, Normal, img.NRGBAAt(20, 20), "header squares off the top-left corner")
	assert.Equal(t, Normal, img.NRGBAAt(40, 17), "left ring")
	assert.Equal(t, Normal, img.NRGBAAt(60, 17), "right ring")
	assert.Equal(t, Background, img.NRGBAAt(25, 16))
	assert.Equal(t, Background, img.NRGBAAt(20, 60), "bottom corners stay rounded")

	day := image.Rect(35, 38, 35+14, 38+13)
	holes := countPixels(img, day, func(x, y int) bool {
		return img.NRGBAAt(x, y) == Background
	})
	assert.Greater(t, holes, 0, "day number is punched out")
}

func TestRecipe_ActivityActive(t *testing.T) {
	img := renderShape(t, ShapeActivityActive, Active)

	assert.Equal(t, Active, img.NRGBAAt(25, 45))
	assert.Equal(t, Accent, img.NRGBAAt(60, 37))
}

func TestRecipe_EveryShapeRegistered(t *testing.T) {
	for _, icon := range Icons() {
		_, ok := recipes[icon.Shape]
		assert.True(t, ok, "missing recipe for %s", icon.Shape)
	}
	assert.Len(t, recipes, len(Icons()))
}
