// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package terminal runs the demo scene inside a text terminal.
package terminal

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/mattn/go-tty"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vechain/randseq/log"
	"github.com/vechain/randseq/metrics"
	"github.com/vechain/randseq/scene"
)

var (
	logger            = log.WithContext("pkg", "terminal")
	metricFrameMicros = metrics.LazyLoadHistogram("frame_build_micros", metrics.BucketFrameMicros)
)

const (
	enterScreen = "\x1b[?1049h\x1b[?25l\x1b[2J"
	leaveScreen = "\x1b[0m\x1b[?25h\x1b[?1049l"
)

// Device is the keyboard side of a terminal. *tty.TTY satisfies it.
type Device interface {
	ReadRune() (rune, error)
	Buffered() bool
	Size() (width, height int, err error)
	Close() error
}

// Terminal drives a scene with key presses read from a Device and frames
// written to an output stream.
type Terminal struct {
	dev     Device
	out     io.Writer
	fps     int
	painter *painter
}

// Open opens the controlling tty.
func Open(fps int) (*Terminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, errors.Wrap(err, "open tty")
	}
	term, err := New(t, t.Output(), fps)
	if err != nil {
		t.Close()
		return nil, err
	}
	return term, nil
}

// New creates a Terminal on top of dev and out.
func New(dev Device, out io.Writer, fps int) (*Terminal, error) {
	if fps <= 0 {
		return nil, errors.Errorf("invalid fps %d", fps)
	}
	p, err := newPainter(out)
	if err != nil {
		return nil, err
	}
	return &Terminal{dev: dev, out: out, fps: fps, painter: p}, nil
}

// pressed collects the keys seen since the last frame.
type pressed map[scene.Key]bool

func (p pressed) IsKeyPressed(k scene.Key) bool { return p[k] }

// Run draws sc until the user quits or ctx is done. The device is closed
// when Run returns.
func (t *Terminal) Run(ctx context.Context, sc *scene.Scene) error {
	events := make(chan Event, 16)
	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return t.render(ctx, sc, events)
	})
	g.Go(func() error {
		err := t.read(ctx, events)
		if ctx.Err() != nil {
			// reads fail once the device is closed on the way out
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-ctx.Done()
		return t.dev.Close()
	})

	return g.Wait()
}

func (t *Terminal) read(ctx context.Context, events chan<- Event) error {
	var d decoder
	for {
		r, err := t.dev.ReadRune()
		if err != nil {
			return errors.Wrap(err, "read key")
		}
		ev := d.Feed(r, t.dev.Buffered())
		if ev == EventNone {
			continue
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
		if ev == EventQuit {
			return nil
		}
	}
}

func (t *Terminal) render(ctx context.Context, sc *scene.Scene, events <-chan Event) error {
	cfg := sc.Config()
	canvas := NewCanvas(cfg.ScreenWidth, cfg.ScreenHeight)

	if _, err := io.WriteString(t.out, enterScreen); err != nil {
		return errors.Wrap(err, "enter screen")
	}
	defer io.WriteString(t.out, leaveScreen)

	ticker := time.NewTicker(time.Second / time.Duration(t.fps))
	defer ticker.Stop()

	var (
		keys      = make(pressed)
		frames    int
		lastCount = time.Now()
	)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if collect(keys, ev) {
				logger.Debug("quit requested")
				return nil
			}
			continue
		case <-ticker.C:
		}

		if err := t.frame(sc, canvas, keys); err != nil {
			return err
		}
		clear(keys)

		frames++
		if since := time.Since(lastCount); since >= time.Second {
			canvas.SetFPS(int(math.Round(float64(frames) / since.Seconds())))
			frames, lastCount = 0, time.Now()
		}
	}
}

// collect records ev in keys and reports whether it asks to quit.
func collect(keys pressed, ev Event) bool {
	switch ev {
	case EventSpace:
		keys[scene.KeySpace] = true
	case EventUp:
		keys[scene.KeyUp] = true
	case EventDown:
		keys[scene.KeyDown] = true
	case EventQuit:
		return true
	}
	return false
}

func (t *Terminal) frame(sc *scene.Scene, canvas *Canvas, keys pressed) error {
	start := time.Now()
	defer func() { metricFrameMicros().Observe(time.Since(start).Microseconds()) }()

	if err := sc.Update(keys); err != nil {
		return err
	}
	cols, rows, err := t.dev.Size()
	if err != nil {
		return errors.Wrap(err, "terminal size")
	}
	canvas.Reset(cols, rows)
	sc.Draw(canvas)

	_, err = io.WriteString(t.out, t.painter.Frame(canvas))
	return errors.Wrap(err, "write frame")
}
