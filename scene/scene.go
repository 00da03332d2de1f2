// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package scene holds the state of the random sequence demo and draws it on
// any Canvas. Front ends feed it key presses and provide the drawing surface.
package scene

import (
	"fmt"
	"image/color"

	"github.com/pkg/errors"

	"github.com/vechain/randseq/colorrect"
	"github.com/vechain/randseq/log"
	"github.com/vechain/randseq/metrics"
	"github.com/vechain/randseq/sequence"
)

var logger = log.WithContext("pkg", "scene")

var (
	metricActions = metrics.LazyLoadCounterVec("scene_actions_count", []string{"action"})
	metricRects   = metrics.LazyLoadGauge("scene_rect_count")
)

// Palette used by Draw.
var (
	RayWhite = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Black    = color.RGBA{A: 255}
	Red      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
)

// Key identifies a key the scene reacts to.
type Key int

const (
	KeySpace Key = iota
	KeyUp
	KeyDown
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "SPACE"
	case KeyUp:
		return "UP"
	case KeyDown:
		return "DOWN"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Input reports keys pressed since the previous frame.
type Input interface {
	IsKeyPressed(Key) bool
}

// Canvas is the 2D surface a frame is drawn on.
type Canvas interface {
	Clear(c color.RGBA)
	DrawRectangle(r colorrect.Rectangle, c color.RGBA)
	DrawText(text string, x, y, size int, c color.RGBA)
	MeasureText(text string, size int) int
	DrawFPS(x, y int)
}

// Config describes the screen and the bounds on the number of bars.
type Config struct {
	ScreenWidth  int `yaml:"width"`
	ScreenHeight int `yaml:"height"`
	InitialCount int `yaml:"count"`
	MinCount     int `yaml:"min-count"`
	// MaxCount caps Grow when positive.
	MaxCount int `yaml:"max-count"`
	FontSize int `yaml:"font-size"`
}

// DefaultConfig returns the 800x450 demo setup with 20 bars.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 450,
		InitialCount: 20,
		MinCount:     4,
		FontSize:     20,
	}
}

// Validate checks that cfg describes a drawable scene.
func (cfg Config) Validate() error {
	switch {
	case cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0:
		return errors.Errorf("invalid screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	case cfg.MinCount < 1:
		return errors.Errorf("min count %d must be positive", cfg.MinCount)
	case cfg.InitialCount < cfg.MinCount:
		return errors.Errorf("count %d below min count %d", cfg.InitialCount, cfg.MinCount)
	case cfg.MaxCount > 0 && cfg.InitialCount > cfg.MaxCount:
		return errors.Errorf("count %d above max count %d", cfg.InitialCount, cfg.MaxCount)
	case cfg.FontSize <= 0:
		return errors.Errorf("invalid font size %d", cfg.FontSize)
	}
	return nil
}

func (cfg Config) layout() colorrect.Layout {
	return colorrect.Layout{
		Width:  float32(cfg.ScreenWidth),
		Height: 0.75 * float32(cfg.ScreenHeight),
	}
}

// Scene owns the current row of bars.
type Scene struct {
	cfg   Config
	src   sequence.Source
	rects colorrect.Sequence
}

// New builds a scene with cfg.InitialCount bars.
func New(cfg Config, src sequence.Source) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{cfg: cfg, src: src}
	if err := s.regenerate(cfg.InitialCount); err != nil {
		return nil, err
	}
	return s, nil
}

// Count returns the number of bars.
func (s *Scene) Count() int { return len(s.rects) }

// Rects returns the bars. The slice is owned by the scene.
func (s *Scene) Rects() colorrect.Sequence { return s.rects }

// Config returns the scene configuration.
func (s *Scene) Config() Config { return s.cfg }

// regenerate swaps in a freshly generated row of count bars. The current row
// is kept when generation fails.
func (s *Scene) regenerate(count int) error {
	rects, err := colorrect.Generate(s.src, count, s.cfg.layout())
	if err != nil {
		return errors.WithMessagef(err, "regenerate %d rectangles", count)
	}
	s.rects = rects
	metricRects().Set(int64(count))
	logger.Debug("sequence regenerated", "count", count)
	return nil
}

// Shuffle redistributes colors and heights over the current bars.
func (s *Scene) Shuffle() error {
	if err := s.rects.Shuffle(s.src); err != nil {
		return errors.WithMessage(err, "shuffle")
	}
	metricActions().AddWithLabel(1, map[string]string{"action": "shuffle"})
	logger.Debug("sequence shuffled", "count", len(s.rects))
	return nil
}

// Grow adds one bar and generates a new sequence. It returns false when
// MaxCount is set and already reached.
func (s *Scene) Grow() (bool, error) {
	if s.cfg.MaxCount > 0 && len(s.rects) >= s.cfg.MaxCount {
		return false, nil
	}
	if err := s.regenerate(len(s.rects) + 1); err != nil {
		return false, err
	}
	metricActions().AddWithLabel(1, map[string]string{"action": "grow"})
	return true, nil
}

// Shrink removes one bar and generates a new sequence. It returns false
// without touching the row when that would go below MinCount.
func (s *Scene) Shrink() (bool, error) {
	if len(s.rects) <= s.cfg.MinCount {
		return false, nil
	}
	if err := s.regenerate(len(s.rects) - 1); err != nil {
		return false, err
	}
	metricActions().AddWithLabel(1, map[string]string{"action": "shrink"})
	return true, nil
}

// Update applies the keys pressed this frame: SPACE shuffles, UP grows and
// DOWN shrinks.
func (s *Scene) Update(in Input) error {
	if in.IsKeyPressed(KeySpace) {
		if err := s.Shuffle(); err != nil {
			return err
		}
	}
	if in.IsKeyPressed(KeyUp) {
		if _, err := s.Grow(); err != nil {
			return err
		}
	}
	if in.IsKeyPressed(KeyDown) {
		if _, err := s.Shrink(); err != nil {
			return err
		}
	}
	return nil
}
