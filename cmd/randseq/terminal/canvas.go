// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package terminal

import (
	"fmt"
	"image/color"
	"math"

	"github.com/vechain/randseq/colorrect"
)

var fpsColor = color.RGBA{R: 0, G: 158, B: 47, A: 255}

// Cell is one character position of the frame.
type Cell struct {
	Ch rune
	Fg color.RGBA
	Bg color.RGBA
}

// Canvas rasterizes a logical width x height drawing into a grid of cells.
// Text is not scaled: one rune takes one cell.
type Canvas struct {
	width, height int
	cols, rows    int
	cells         []Cell
	fps           int
}

// NewCanvas creates a canvas for a logical screen of width x height.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{width: width, height: height}
}

// Reset resizes the grid to cols x rows and blanks it.
func (c *Canvas) Reset(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]Cell, n)
	}
	c.cells = c.cells[:n]
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' '}
	}
}

// SetFPS sets the value printed by DrawFPS.
func (c *Canvas) SetFPS(fps int) { c.fps = fps }

// Size returns the grid size in cells.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// At returns the cell at col, row.
func (c *Canvas) At(col, row int) Cell {
	return c.cells[row*c.cols+col]
}

func (c *Canvas) scaleX(x float32) int {
	return int(math.Round(float64(x) * float64(c.cols) / float64(c.width)))
}

func (c *Canvas) scaleY(y float32) int {
	return int(math.Round(float64(y) * float64(c.rows) / float64(c.height)))
}

func (c *Canvas) Clear(bg color.RGBA) {
	for i := range c.cells {
		c.cells[i] = Cell{Ch: ' ', Bg: bg}
	}
}

func (c *Canvas) DrawRectangle(r colorrect.Rectangle, fill color.RGBA) {
	c0, c1 := max(c.scaleX(r.X), 0), min(c.scaleX(r.X+r.Width), c.cols)
	r0, r1 := max(c.scaleY(r.Y), 0), min(c.scaleY(r.Y+r.Height), c.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			cell := &c.cells[row*c.cols+col]
			cell.Bg = fill
			cell.Ch = ' '
		}
	}
}

func (c *Canvas) DrawText(text string, x, y, _ int, fg color.RGBA) {
	row := c.scaleY(float32(y))
	if row < 0 || row >= c.rows {
		return
	}
	col := c.scaleX(float32(x))
	for _, ch := range text {
		if col >= c.cols {
			break
		}
		if col >= 0 {
			cell := &c.cells[row*c.cols+col]
			cell.Ch = ch
			cell.Fg = fg
		}
		col++
	}
}

// MeasureText returns the logical width covered by text once drawn.
func (c *Canvas) MeasureText(text string, _ int) int {
	if c.cols == 0 {
		return 0
	}
	n := len([]rune(text))
	return int(math.Ceil(float64(n) * float64(c.width) / float64(c.cols)))
}

func (c *Canvas) DrawFPS(x, y int) {
	c.DrawText(fmt.Sprintf("%d FPS", c.fps), x, y, 0, fpsColor)
}
