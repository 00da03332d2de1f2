// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/randseq/cmd/randseq/httpserver"
	"github.com/vechain/randseq/cmd/randseq/terminal"
	"github.com/vechain/randseq/log"
	"github.com/vechain/randseq/metrics"
	"github.com/vechain/randseq/scene"
)

var (
	version   string
	gitCommit string
	gitTag    string

	logger            = log.WithContext("pkg", "randseq")
	metricFrameMicros = metrics.LazyLoadHistogram("frame_build_micros", metrics.BucketFrameMicros)
)

const windowTitle = "randseq - generates a random sequence"

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func main() {
	app := cli.App{
		Version: fullVersion(),
		Name:    "randseq",
		Usage:   "Draws a random sequence of colored bars and shuffles it",
		Flags: []cli.Flag{
			configFlag,
			rendererFlag,
			widthFlag,
			heightFlag,
			countFlag,
			minCountFlag,
			maxCountFlag,
			fpsFlag,
			seedFlag,
			verbosityFlag,
			jsonLogsFlag,
			logFileFlag,
			enableMetricsFlag,
			metricsAddrFlag,
		},
		Action: runAction,
		Commands: []cli.Command{
			{
				Name:  "stats",
				Usage: "Measure how evenly generated sequences are distributed",
				Flags: []cli.Flag{
					runsFlag,
					sizeFlag,
					seedFlag,
					quietFlag,
					verbosityFlag,
					jsonLogsFlag,
					logFileFlag,
				},
				Action: statsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runAction(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	closeLog, err := initLogger(ctx, cfg.Renderer)
	if err != nil {
		return err
	}
	defer closeLog()
	defer func() { logger.Info("exited") }()

	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMetricsServer(ctx.String(metricsAddrFlag.Name))
		if err != nil {
			return err
		}
		defer func() { logger.Info("stopping metrics server..."); closeFunc() }()
		logger.Info("metrics server started", "url", url)
	}

	sc, err := scene.New(cfg.Scene, makeSource(cfg.Seed))
	if err != nil {
		return err
	}

	logger.Info("starting",
		"renderer", cfg.Renderer,
		"size", fmt.Sprintf("%dx%d", cfg.Scene.ScreenWidth, cfg.Scene.ScreenHeight),
		"count", sc.Count(),
		"fps", cfg.FPS,
	)

	exitCtx := handleExitSignal()
	switch cfg.Renderer {
	case rendererTerminal:
		term, err := terminal.Open(cfg.FPS)
		if err != nil {
			return err
		}
		return term.Run(exitCtx, sc)
	default:
		w := &window{title: windowTitle, fps: cfg.FPS}
		return w.Run(exitCtx, sc)
	}
}
