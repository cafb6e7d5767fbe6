package iconset

import (
	"image"
	"image/color"
)

// Shape names a drawing recipe.
type Shape string

const (
	ShapeHome           Shape = "home"
	ShapeHomeActive     Shape = "home-active"
	ShapeMember         Shape = "member"
	ShapeMemberActive   Shape = "member-active"
	ShapeActivity       Shape = "activity"
	ShapeActivityActive Shape = "activity-active"
)

// recipe draws one shape. Normal shapes use the colour they are given;
// active shapes always draw their body in Active.
type recipe func(c *Canvas, clr color.NRGBA)

var recipes = map[Shape]recipe{
	ShapeHome:           drawHome,
	ShapeHomeActive:     drawHomeActive,
	ShapeMember:         drawMember,
	ShapeMemberActive:   drawMemberActive,
	ShapeActivity:       drawActivity,
	ShapeActivityActive: drawActivityActive,
}

// starMarker is the ten-vertex star that flags the selected member and
// activity tabs.
var starMarker = []image.Point{
	{60, 30}, {62, 35}, {67, 35}, {63, 38}, {65, 43},
	{60, 40}, {55, 43}, {57, 38}, {53, 35}, {58, 35},
}

func drawHome(c *Canvas, clr color.NRGBA) {
	// roof
	c.Polygon([]image.Point{{40, 15}, {15, 40}, {65, 40}}, clr)
	c.Rectangle(Box{20, 40, 60, 65}, clr)
	// door
	c.Rectangle(Box{37, 50, 43, 65}, Background)
}

func drawHomeActive(c *Canvas, _ color.NRGBA) {
	drawHome(c, Active)
	c.Ellipse(Box{58, 58, 68, 68}, Accent)
}

func drawMember(c *Canvas, clr color.NRGBA) {
	c.RoundedRectangle(Box{15, 25, 65, 55}, 5, clr)
	// card number stripes
	c.Line(image.Point{20, 35}, image.Point{60, 35}, 2, Background)
	c.Line(image.Point{20, 42}, image.Point{60, 42}, 2, Background)
}

func drawMemberActive(c *Canvas, _ color.NRGBA) {
	drawMember(c, Active)
	c.Polygon(starMarker, Accent)
}

func drawActivity(c *Canvas, clr color.NRGBA) {
	c.RoundedRectangle(Box{20, 20, 60, 60}, 5, clr)
	// header band squares off the top corners
	c.Rectangle(Box{20, 20, 60, 30}, clr)
	// binder rings
	c.Ellipse(Box{35, 15, 45, 25}, clr)
	c.Ellipse(Box{55, 15, 65, 25}, clr)
	c.Text(image.Point{35, 38}, "15", Background)
}

func drawActivityActive(c *Canvas, _ color.NRGBA) {
	drawActivity(c, Active)
	c.Polygon(starMarker, Accent)
}
