// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package scene

import (
	"fmt"

	"github.com/vechain/randseq/colorrect"
)

var helpLines = []struct {
	key, text string
	offset    int
}{
	{"SPACE", "to shuffle the sequence.", 96},
	{"UP", "to add a rectangle and generate a new sequence.", 64},
	{"DOWN", "to remove a rectangle and generate a new sequence.", 32},
}

// Draw renders one frame: the bars, the key help, the bar count and the FPS readout.
func (s *Scene) Draw(c Canvas) {
	c.Clear(RayWhite)

	for _, r := range s.rects {
		c.DrawRectangle(r.Rect, r.Color)
	}

	fontSize := s.cfg.FontSize
	for _, h := range helpLines {
		drawKeyHelp(c, h.key, h.text, 10, s.cfg.ScreenHeight-h.offset, fontSize)
	}

	label := fmt.Sprintf("%d rectangles", len(s.rects))
	c.DrawText(label, s.cfg.ScreenWidth-c.MeasureText(label, fontSize)-10, 10, fontSize, Black)

	c.DrawFPS(10, 10)
}

// drawKeyHelp draws "Press KEY text" with KEY in red and underlined.
func drawKeyHelp(c Canvas, key, text string, x, y, fontSize int) {
	var (
		spaceSize = c.MeasureText(" ", fontSize)
		pressSize = c.MeasureText("Press", fontSize)
		keySize   = c.MeasureText(key, fontSize)
		offset    = 0
	)

	c.DrawText("Press", x, y, fontSize, Black)
	offset += pressSize + 2*spaceSize
	c.DrawText(key, x+offset, y, fontSize, Red)
	c.DrawRectangle(rect(x+offset, y+fontSize, keySize, 3), Red)
	offset += keySize + 2*spaceSize
	c.DrawText(text, x+offset, y, fontSize, Black)
}

func rect(x, y, w, h int) colorrect.Rectangle {
	return colorrect.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
