package game

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Ligres-Lineup/internal/export"
	"github.com/Garsondee/Ligres-Lineup/internal/lineup"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundCol = color.RGBA{R: 12, G: 14, B: 12, A: 255}
	panelCol      = color.RGBA{R: 10, G: 12, B: 10, A: 248}
	titleBarCol   = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	paidCol       = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	editCol       = color.RGBA{R: 250, G: 204, B: 21, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundCol)
	g.drawField(screen)
	g.drawMarkers(screen)
	g.drawPanel(screen)
	if g.showHelp {
		g.drawHUD(screen)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	f := g.field
	ox, oy, w, h := float32(f.X), float32(f.Y), float32(f.W), float32(f.H)

	const stripes = 10
	band := h / stripes
	for i := 0; i < stripes; i++ {
		c := export.GrassDark
		if i%2 == 1 {
			c = export.GrassLight
		}
		vector.FillRect(screen, ox, oy+float32(i)*band, w, band, c, false)
	}

	line := export.LineColor
	for _, b := range export.FieldBoxes {
		x0, y0 := ox+float32(b.X0)*w, oy+float32(b.Y0)*h
		vector.StrokeRect(screen, x0, y0, float32(b.X1-b.X0)*w, float32(b.Y1-b.Y0)*h, 2, line, true)
	}
	mid := oy + float32(export.HalfwayY)*h
	vector.StrokeLine(screen, ox, mid, ox+w, mid, 2, line, true)
	vector.StrokeCircle(screen, ox+w/2, mid, float32(export.CenterCircleR)*w, 2, line, true)
	for _, s := range export.FieldSpots {
		vector.FillCircle(screen, ox+float32(s.X)*w, oy+float32(s.Y)*h, max(2, float32(s.R)*w), line, true)
	}

	vector.StrokeRect(screen, ox-3, oy-3, w+6, h+6, 1.0, color.RGBA{R: 40, G: 65, B: 40, A: 100}, false)
}

func (g *Game) drawMarkers(screen *ebiten.Image) {
	dragID, dragging := g.dragger.Active()
	for _, p := range g.match.Players() {
		c := markerCenter(g.field, p)
		cx, cy := float32(c.X), float32(c.Y)
		r := float32(markerRadius)
		if dragging && dragID == p.ID {
			r += 2
			vector.FillCircle(screen, cx+2, cy+3, r, color.RGBA{A: 90}, true)
		}
		vector.FillCircle(screen, cx, cy, r, p.Team.RGBA(), true)
		vector.StrokeCircle(screen, cx, cy, r, 2, p.Team.Stroke(), true)
		if g.match.Paid(p.ID) {
			vector.FillCircle(screen, cx+r-3, cy-r+3, 4, paidCol, true)
		}

		name := p.Name
		lr := labelRect(g.field, p)
		if g.editor.Editing(p.ID) {
			name = g.editor.Text() + "_"
			w := len([]rune(name))*glyphW + 2*labelPadX
			lr.Min.X = int(cx) - w/2
			lr.Max.X = lr.Min.X + w
			vector.FillRect(screen, float32(lr.Min.X), float32(lr.Min.Y), float32(lr.Dx()), float32(lr.Dy()), color.RGBA{R: 15, G: 23, B: 42, A: 220}, false)
			vector.StrokeRect(screen, float32(lr.Min.X), float32(lr.Min.Y), float32(lr.Dx()), float32(lr.Dy()), 1, editCol, false)
		}
		drawOutlined(screen, name, lr.Min.X+labelPadX, lr.Min.Y+glyphH-2)
	}
}

// drawOutlined draws light text with a dark one-pixel outline so names
// stay readable on both grass shades.
func drawOutlined(dst *ebiten.Image, s string, x, y int) {
	shadow := color.NRGBA{0, 0, 0, 200}
	text.Draw(dst, s, basicfont.Face7x13, x+1, y, shadow)
	text.Draw(dst, s, basicfont.Face7x13, x-1, y, shadow)
	text.Draw(dst, s, basicfont.Face7x13, x, y+1, shadow)
	text.Draw(dst, s, basicfont.Face7x13, x, y-1, shadow)
	text.Draw(dst, s, basicfont.Face7x13, x, y, color.NRGBA{250, 250, 250, 255})
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	px := g.panelX
	vector.FillRect(screen, float32(px), 0, float32(logPanelWidth), float32(g.height), panelCol, false)
	vector.StrokeLine(screen, float32(px), 0, float32(px), float32(g.height), 1.0, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)

	vector.FillRect(screen, float32(px), 0, float32(logPanelWidth), 16, titleBarCol, false)
	ebitenutil.DebugPrintAt(screen, "BANCA", px+8, 1)

	home, away := g.match.TeamColors()
	bench := g.match.Bench()
	rows, bottom := benchRows(px, panelTitleH, home, away, bench)
	y := panelTitleH
	for _, team := range []lineup.TeamColor{home, away} {
		vector.FillRect(screen, float32(px+8), float32(y+4), 6, 6, team.RGBA(), false)
		ebitenutil.DebugPrintAt(screen, team.TeamName(), px+18, y-1)
		y += panelRowH
		for _, r := range rows {
			b, ok := benchPlayer(bench, r.id)
			if !ok || b.Team != team {
				continue
			}
			mark := "[ ]"
			if g.match.Paid(b.ID) {
				mark = "[$]"
			}
			ebitenutil.DebugPrintAt(screen, mark+" "+b.Name, r.rect.Min.X+8, r.rect.Min.Y-1)
			y += panelRowH
		}
	}

	y = bottom + 8
	if g.match.Fee() > 0 {
		s := g.match.Payments()
		vector.FillRect(screen, float32(px), float32(y), float32(logPanelWidth), 16, titleBarCol, false)
		ebitenutil.DebugPrintAt(screen, "PAGOS", px+8, y+1)
		y += 20
		lines := []string{
			fmt.Sprintf("Cuota: %s", export.FormatCLP(s.Fee)),
			fmt.Sprintf("Pagados: %d/%d  %s", s.Paid, s.Players, export.FormatCLP(s.Collected)),
			fmt.Sprintf("Pendiente: %s", export.FormatCLP(s.Outstanding)),
		}
		for _, l := range lines {
			ebitenutil.DebugPrintAt(screen, l, px+8, y)
			y += panelRowH
		}
		y += 8
	}

	g.events.Draw(screen, px, y, g.height)
}

func benchPlayer(bench []lineup.BenchPlayer, id int) (lineup.BenchPlayer, bool) {
	for _, b := range bench {
		if b.ID == id {
			return b, true
		}
	}
	return lineup.BenchPlayer{}, false
}

// drawHUD renders the key legend into hudBuf, then blits it over the
// bottom-left corner of the pitch.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lines := []string{
		"arrastrar: mover  clic nombre: editar",
		"clic der.: pagado",
		"[E] imagen  [J] lista  [C] copiar",
		"[S] guardar  [R] nuevo  [H] ayuda",
	}

	const lineH = 12
	const charW = 6
	const padX = 5
	const padY = 4

	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	boxW := float32(maxLen*charW + padX*2)
	boxH := float32(len(lines)*lineH + padY*2)

	if g.hudBuf == nil {
		g.hudBuf = ebiten.NewImage(int(boxW)+1, int(boxH)+1)
	}
	g.hudBuf.Clear()
	vector.FillRect(g.hudBuf, 0, 0, boxW, boxH, color.RGBA{R: 6, G: 10, B: 6, A: 210}, false)
	vector.StrokeRect(g.hudBuf, 0, 0, boxW, boxH, 1.0, color.RGBA{R: 60, G: 100, B: 60, A: 180}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(g.hudBuf, line, padX, padY+i*lineH-2)
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(g.field.X+4, g.field.Y+g.field.H-float64(boxH)-4)
	screen.DrawImage(g.hudBuf, opts)
}
