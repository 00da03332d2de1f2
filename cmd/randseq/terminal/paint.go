// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package terminal

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

const styleCacheSize = 512

type styleKey struct {
	fg, bg color.RGBA
}

// painter writes a Canvas to a terminal, one styled run of cells at a time.
type painter struct {
	renderer *lipgloss.Renderer
	styles   *lru.Cache
	sb       strings.Builder
}

func newPainter(w io.Writer) (*painter, error) {
	styles, err := lru.New(styleCacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "style cache")
	}
	return &painter{
		renderer: lipgloss.NewRenderer(w),
		styles:   styles,
	}, nil
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func (p *painter) style(fg, bg color.RGBA) lipgloss.Style {
	key := styleKey{fg, bg}
	if v, ok := p.styles.Get(key); ok {
		return v.(lipgloss.Style)
	}
	s := p.renderer.NewStyle().Foreground(hexColor(fg)).Background(hexColor(bg))
	p.styles.Add(key, s)
	return s
}

// Frame renders c into a string that redraws the whole screen from the top
// left corner.
func (p *painter) Frame(c *Canvas) string {
	p.sb.Reset()
	p.sb.WriteString("\x1b[H")

	cols, rows := c.Size()
	var run []rune
	for row := range rows {
		if row > 0 {
			p.sb.WriteString("\r\n")
		}
		run = run[:0]
		var cur Cell
		for col := range cols {
			cell := c.At(col, row)
			if len(run) > 0 && (cell.Fg != cur.Fg || cell.Bg != cur.Bg) {
				p.sb.WriteString(p.style(cur.Fg, cur.Bg).Render(string(run)))
				run = run[:0]
			}
			cur = cell
			run = append(run, cell.Ch)
		}
		if len(run) > 0 {
			p.sb.WriteString(p.style(cur.Fg, cur.Bg).Render(string(run)))
		}
	}
	return p.sb.String()
}
