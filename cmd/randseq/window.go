// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"image/color"
	"runtime"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vechain/randseq/colorrect"
	"github.com/vechain/randseq/scene"
)

func init() {
	// raylib must stay on the main thread
	runtime.LockOSThread()
}

// window draws the scene in a raylib window.
type window struct {
	title string
	fps   int
}

func (w *window) Run(ctx context.Context, sc *scene.Scene) error {
	cfg := sc.Config()
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), w.title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(w.fps))

	// Detect window close button or ESC key
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		start := time.Now()
		if err := sc.Update(rlInput{}); err != nil {
			return err
		}

		rl.BeginDrawing()
		sc.Draw(rlCanvas{})
		metricFrameMicros().Observe(time.Since(start).Microseconds())
		rl.EndDrawing()
	}
	return nil
}

type rlInput struct{}

func (rlInput) IsKeyPressed(k scene.Key) bool {
	switch k {
	case scene.KeySpace:
		return rl.IsKeyPressed(rl.KeySpace)
	case scene.KeyUp:
		return rl.IsKeyPressed(rl.KeyUp)
	case scene.KeyDown:
		return rl.IsKeyPressed(rl.KeyDown)
	}
	return false
}

type rlCanvas struct{}

func (rlCanvas) Clear(c color.RGBA) { rl.ClearBackground(c) }

func (rlCanvas) DrawRectangle(r colorrect.Rectangle, c color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(r.X, r.Y, r.Width, r.Height), c)
}

func (rlCanvas) DrawText(text string, x, y, size int, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y), int32(size), c)
}

func (rlCanvas) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}

func (rlCanvas) DrawFPS(x, y int) { rl.DrawFPS(int32(x), int32(y)) }
