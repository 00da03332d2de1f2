// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/randseq/log"
	"github.com/vechain/randseq/sequence"
)

func readIntFromUInt64Flag(val uint64) (int, error) {
	if val > math.MaxInt {
		return 0, errors.Errorf("invalid value %d", val)
	}
	return int(val), nil
}

// initLogger installs the root logger and returns a func that flushes and
// closes the log output.
func initLogger(ctx *cli.Context, renderer string) (func() error, error) {
	lvl, err := readIntFromUInt64Flag(ctx.Uint64(verbosityFlag.Name))
	if err != nil {
		return nil, errors.Wrap(err, "parse verbosity flag")
	}
	logLevel := log.FromLegacyLevel(lvl)

	var (
		output   io.Writer = os.Stderr
		closer             = func() error { return nil }
		useColor           = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	)
	if file := ctx.String(logFileFlag.Name); file != "" {
		lj := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		output, closer, useColor = lj, lj.Close, false
	} else if renderer == rendererTerminal && useColor && logLevel < log.LevelWarn {
		// stderr shares the screen with the frame
		logLevel = log.LevelWarn
	}

	var level slog.LevelVar
	level.Set(logLevel)
	log.Setup(log.Options{
		Writer: output,
		Level:  &level,
		JSON:   ctx.Bool(jsonLogsFlag.Name),
		Color:  useColor,
	})
	return closer, nil
}

func makeSource(seed uint64) sequence.Source {
	if seed == 0 {
		return sequence.NewRandomSource()
	}
	return sequence.NewSource(seed)
}

func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		log.Info("exit signal received", "signal", sig)
		cancel()
	}()
	return ctx
}
