// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package colorrect builds rows of colored bars whose heights follow a random
// permutation, and reshuffles them in place.
package colorrect

import (
	"image/color"

	"github.com/pkg/errors"

	"github.com/vechain/randseq/sequence"
)

// Rectangle is an axis aligned rectangle in logical screen units.
type Rectangle struct {
	X, Y, Width, Height float32
}

// ColorRect pairs a fill color with its rectangle.
type ColorRect struct {
	Color color.RGBA
	Rect  Rectangle
}

// Layout is the area a row of bars is laid out in. Width is shared evenly by
// the bars; Height is the height of the tallest bar and the common baseline.
type Layout struct {
	Width  float32
	Height float32
}

// Sequence is a left to right row of bars.
type Sequence []ColorRect

// Remap maps v linearly from [inStart, inEnd] to [outStart, outEnd].
func Remap(v, inStart, inEnd, outStart, outEnd float32) float32 {
	return (v-inStart)/(inEnd-inStart)*(outEnd-outStart) + outStart
}

// RandomColor returns an opaque color with each channel drawn from src.
func RandomColor(src sequence.Source) color.RGBA {
	return color.RGBA{
		R: uint8(src.Intn(256)),
		G: uint8(src.Intn(256)),
		B: uint8(src.Intn(256)),
		A: 255,
	}
}

// Generate lays out count bars centered in layout. Bar heights are a random
// permutation of count evenly spaced values between 0 and layout.Height.
func Generate(src sequence.Source, count int, layout Layout) (Sequence, error) {
	if layout.Width <= 0 || layout.Height <= 0 {
		return nil, errors.Errorf("invalid layout %vx%v", layout.Width, layout.Height)
	}
	perm, err := sequence.Generate(src, count, 0, count-1)
	if err != nil {
		return nil, errors.WithMessage(err, "generate heights")
	}

	var (
		width  = layout.Width / float32(count)
		startX = (layout.Width - float32(count)*width) * 0.5
		rects  = make(Sequence, count)
	)
	for i, v := range perm {
		height := layout.Height
		if count > 1 {
			height = Remap(float32(v), 0, float32(count-1), 0, layout.Height)
		}
		rects[i] = ColorRect{
			Color: RandomColor(src),
			Rect: Rectangle{
				X:      startX + float32(i)*width,
				Y:      layout.Height - height,
				Width:  width,
				Height: height,
			},
		}
	}
	return rects, nil
}

// Shuffle redistributes colors and heights across the bars. Horizontal
// placement is left untouched.
func (s Sequence) Shuffle(src sequence.Source) error {
	return sequence.Shuffle(src, len(s), s.swap)
}

func (s Sequence) swap(i, j int) {
	a, b := &s[i], &s[j]
	a.Color, b.Color = b.Color, a.Color
	a.Rect.Y, b.Rect.Y = b.Rect.Y, a.Rect.Y
	a.Rect.Height, b.Rect.Height = b.Rect.Height, a.Rect.Height
}

// Heights returns the bar heights from left to right.
func (s Sequence) Heights() []float32 {
	heights := make([]float32, len(s))
	for i, r := range s {
		heights[i] = r.Rect.Height
	}
	return heights
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	return append(make(Sequence, 0, len(s)), s...)
}
