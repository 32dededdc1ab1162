package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	BaseWidth    = 400
	BaseHeight   = 500
	DefaultScale = 3
	PNGFileName  = "alineacion-tactica.png"

	markerRadius = 12
	stripeCount  = 10
	lineWidth    = 2
)

// Options controls image export.
type Options struct {
	Scale int // output multiplier over the base size; <=0 means DefaultScale
}

// Render draws the field, markers and names at the base size.
func Render(m *lineup.Match) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, BaseWidth, BaseHeight))
	drawGrass(img)
	drawLines(img)
	for _, p := range m.Players() {
		cx := p.X / 100 * BaseWidth
		cy := p.Y / 100 * BaseHeight
		fill(img, discMask(img.Bounds(), cx, cy, markerRadius), p.Team.RGBA())
		fill(img, ringMask(img.Bounds(), cx, cy, markerRadius, lineWidth), p.Team.Stroke())
		drawLabel(img, p.Name, int(cx), int(cy)+markerRadius+12)
	}
	return img
}

// PNG renders m, scales it and writes it as PNG.
func PNG(w io.Writer, m *lineup.Match, opts Options) error {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	src := Render(m)
	out := src
	if scale > 1 {
		out = image.NewRGBA(image.Rect(0, 0, BaseWidth*scale, BaseHeight*scale))
		draw.CatmullRom.Scale(out, out.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func drawGrass(img *image.RGBA) {
	band := BaseHeight / stripeCount
	for i := 0; i < stripeCount; i++ {
		c := GrassDark
		if i%2 == 1 {
			c = GrassLight
		}
		r := image.Rect(0, i*band, BaseWidth, (i+1)*band)
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
}

func drawLines(img *image.RGBA) {
	mask := image.NewAlpha(img.Bounds())
	for _, b := range FieldBoxes {
		x0, y0 := int(b.X0*BaseWidth), int(b.Y0*BaseHeight)
		x1, y1 := int(b.X1*BaseWidth), int(b.Y1*BaseHeight)
		setRect(mask, image.Rect(x0, y0, x1, y0+lineWidth))
		setRect(mask, image.Rect(x0, y1-lineWidth, x1, y1))
		setRect(mask, image.Rect(x0, y0, x0+lineWidth, y1))
		setRect(mask, image.Rect(x1-lineWidth, y0, x1, y1))
	}
	mid := int(HalfwayY * BaseHeight)
	setRect(mask, image.Rect(0, mid-lineWidth/2, BaseWidth, mid+lineWidth/2))
	merge(mask, ringMask(img.Bounds(), BaseWidth/2, HalfwayY*BaseHeight, CenterCircleR*BaseWidth, lineWidth))
	for _, s := range FieldSpots {
		merge(mask, discMask(img.Bounds(), s.X*BaseWidth, s.Y*BaseHeight, math.Max(2, s.R*BaseWidth)))
	}
	fill(img, mask, LineColor)
}

func drawLabel(img *image.RGBA, s string, cx, baseline int) {
	d := &font.Drawer{Dst: img, Face: basicfont.Face7x13}
	x := cx - d.MeasureString(s).Ceil()/2
	d.Src = image.NewUniform(color.NRGBA{0, 0, 0, 200})
	for _, off := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		d.Dot = fixed.P(x+off[0], baseline+off[1])
		d.DrawString(s)
	}
	d.Src = image.NewUniform(color.NRGBA{250, 250, 250, 255})
	d.Dot = fixed.P(x, baseline)
	d.DrawString(s)
}

func fill(img *image.RGBA, mask *image.Alpha, c color.Color) {
	draw.DrawMask(img, img.Bounds(), image.NewUniform(c), image.Point{}, mask, img.Bounds().Min, draw.Over)
}

func setRect(mask *image.Alpha, r image.Rectangle) {
	draw.Draw(mask, r.Intersect(mask.Bounds()), image.Opaque, image.Point{}, draw.Src)
}

func merge(dst, src *image.Alpha) {
	for i, a := range src.Pix {
		if a > dst.Pix[i] {
			dst.Pix[i] = a
		}
	}
}

// discMask covers pixels whose centres fall within r of (cx, cy).
func discMask(bounds image.Rectangle, cx, cy, r float64) *image.Alpha {
	return shapeMask(bounds, cx, cy, r, func(d float64) bool { return d <= r })
}

// ringMask covers a band of width w just inside radius r.
func ringMask(bounds image.Rectangle, cx, cy, r, w float64) *image.Alpha {
	return shapeMask(bounds, cx, cy, r, func(d float64) bool { return d <= r && d > r-w })
}

func shapeMask(bounds image.Rectangle, cx, cy, r float64, in func(d float64) bool) *image.Alpha {
	mask := image.NewAlpha(bounds)
	area := image.Rect(int(cx-r)-1, int(cy-r)-1, int(cx+r)+2, int(cy+r)+2).Intersect(bounds)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if in(math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
