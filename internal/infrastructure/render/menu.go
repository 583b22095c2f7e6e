package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/cubesim/internal/ecs"
)

var colorMenuBG = color.RGBA{16, 16, 24, 255}

const (
	glyphW      = 6 // debug font cell
	glyphH      = 16
	borderWidth = 2
)

// DrawMenu draws the buttons and labels of w as flat UI.
// 2D objects use their transform X/Y as screen pixels.
func DrawMenu(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(colorMenuBG)

	for _, id := range w.Buttons() {
		b := w.Button[id]
		r := b.Bounds
		ebitenutil.DrawRect(screen, r.X, r.Y, r.Width, r.Height, b.Border)
		ebitenutil.DrawRect(screen, r.X+borderWidth, r.Y+borderWidth,
			r.Width-2*borderWidth, r.Height-2*borderWidth, b.Fill)

		lx := r.X + (r.Width-float64(len(b.Label)*glyphW))/2
		ly := r.Y + (r.Height-glyphH)/2
		ebitenutil.DebugPrintAt(screen, b.Label, int(lx), int(ly))
	}

	for _, id := range w.Texts() {
		txt := w.Text[id]
		pos := w.WorldPosition(id)
		ebitenutil.DebugPrintAt(screen, txt.Value, int(pos.X()), int(pos.Y()))
	}
}

// TextOrigin returns the top-left pixel that centres s horizontally on cx
func TextOrigin(s string, cx, y float64) (float64, float64) {
	return cx - float64(len(s)*glyphW)/2, y
}
