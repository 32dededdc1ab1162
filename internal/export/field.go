package export

import "image/color"

// Field markings in fractions of the pitch, drawn on a 4:5 portrait
// field with the home goal at the bottom.
type (
	// Box is an outline from (X0,Y0) to (X1,Y1).
	Box struct{ X0, Y0, X1, Y1 float64 }
	// Spot is a filled dot; R is a fraction of the field width.
	Spot struct{ X, Y, R float64 }
)

const (
	HalfwayY      = 0.5
	CenterCircleR = 73.0 / 840 // of field width
)

var (
	GrassDark  = color.RGBA{0x16, 0x65, 0x34, 0xff}
	GrassLight = color.RGBA{0x15, 0x80, 0x3d, 0xff}
	LineColor  = color.NRGBA{0xa3, 0xa3, 0xa3, 0x99}
)

// FieldBoxes lists the border, penalty areas and goal areas.
var FieldBoxes = []Box{
	{0, 0, 1, 1},
	{168.0 / 840, 0, 672.0 / 840, 165.0 / 1050},
	{168.0 / 840, 885.0 / 1050, 672.0 / 840, 1},
	{306.0 / 840, 0, 534.0 / 840, 55.0 / 1050},
	{306.0 / 840, 995.0 / 1050, 534.0 / 840, 1},
}

// FieldSpots lists the centre and penalty spots.
var FieldSpots = []Spot{
	{0.5, 0.5, 5.0 / 840},
	{0.5, 110.0 / 1050, 4.0 / 840},
	{0.5, 940.0 / 1050, 4.0 / 840},
}
