package tui

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// viewport maps the fixed-size world onto the screen cells below the HUD.
// The world is stretched to fill the field; cells are not square anyway.
type viewport struct {
	top        int
	cols, rows int
	worldW     float64
	worldH     float64
}

func newViewport(screenW, screenH int, worldW, worldH float64) viewport {
	return viewport{
		top:    hudRows,
		cols:   max(screenW, 1),
		rows:   max(screenH-hudRows, 1),
		worldW: worldW,
		worldH: worldH,
	}
}

// col returns the screen column of world x.
func (v viewport) col(x float64) int {
	return int(math.Floor(x * float64(v.cols) / v.worldW))
}

// row returns the screen row of world y.
func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*float64(v.rows)/v.worldH))
}

// rect returns the cells covered by a world box, at least one cell wide and tall.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.Left), v.row(b.Top)
	x1 := int(math.Ceil(b.Right * float64(v.cols) / v.worldW))
	y1 := v.top + int(math.Ceil(b.Bottom*float64(v.rows)/v.worldH))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// world returns the world coordinates of a cell's center. ok is false for
// cells outside the playfield.
func (v viewport) world(cx, cy int) (x, y float64, ok bool) {
	fy := cy - v.top
	if cx < 0 || cx >= v.cols || fy < 0 || fy >= v.rows {
		return 0, 0, false
	}
	x = (float64(cx) + 0.5) * v.worldW / float64(v.cols)
	y = (float64(fy) + 0.5) * v.worldH / float64(v.rows)
	return x, y, true
}
