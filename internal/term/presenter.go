// Package term presents frames in a terminal through tcell and turns key
// events into held-key snapshots.
package term

import (
	"raycastgame/internal/graphics"
	"raycastgame/internal/render"

	"github.com/gdamore/tcell/v2"
)

// upperHalfBlock draws its foreground in the top half of a cell and its
// background in the bottom half, giving two pixel rows per text row.
const upperHalfBlock = '▀'

// Screen is the part of tcell.Screen the presenter draws with.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Present scales fb to the whole screen with nearest-pixel sampling and
// shows it.
func Present(s Screen, fb *render.FrameBuffer) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top, bottom := cellColors(fb, cx, cy, cols, rows)
			style := tcell.StyleDefault.
				Foreground(toColor(top)).
				Background(toColor(bottom))
			s.SetContent(cx, cy, upperHalfBlock, nil, style)
		}
	}
	s.Show()
}

// cellColors samples the frame-buffer pixels shown in the top and bottom
// half of terminal cell (cx, cy) on a cols×rows screen.
func cellColors(fb *render.FrameBuffer, cx, cy, cols, rows int) (top, bottom graphics.RGB) {
	w, h := fb.Width(), fb.Height()
	px := cx * w / cols
	topY := (2 * cy) * h / (2 * rows)
	bottomY := (2*cy + 1) * h / (2 * rows)
	return fb.At(px, topY), fb.At(px, bottomY)
}

func toColor(c graphics.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
