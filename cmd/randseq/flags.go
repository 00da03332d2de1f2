// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/randseq/log"
)

var (
	configFlag = cli.StringFlag{
		Name:   "config",
		Usage:  "path to a YAML file with default settings",
		EnvVar: "RANDSEQ_CONFIG",
	}
	rendererFlag = cli.StringFlag{
		Name:   "renderer",
		Value:  rendererWindow,
		Usage:  "front end to draw with (window|terminal)",
		EnvVar: "RANDSEQ_RENDERER",
	}
	widthFlag = cli.IntFlag{
		Name:  "width",
		Value: 800,
		Usage: "screen width in logical units",
	}
	heightFlag = cli.IntFlag{
		Name:  "height",
		Value: 450,
		Usage: "screen height in logical units",
	}
	countFlag = cli.IntFlag{
		Name:  "count",
		Value: 20,
		Usage: "initial number of rectangles",
	}
	minCountFlag = cli.IntFlag{
		Name:  "min-count",
		Value: 4,
		Usage: "fewest rectangles DOWN can leave",
	}
	maxCountFlag = cli.IntFlag{
		Name:  "max-count",
		Usage: "most rectangles UP can reach (0 for no limit)",
	}
	fpsFlag = cli.IntFlag{
		Name:   "fps",
		Value:  60,
		Usage:  "target frames per second",
		EnvVar: "RANDSEQ_FPS",
	}
	seedFlag = cli.Uint64Flag{
		Name:   "seed",
		Usage:  "seed for the random source (0 picks a random seed)",
		EnvVar: "RANDSEQ_SEED",
	}
	verbosityFlag = cli.Uint64Flag{
		Name:   "verbosity",
		Value:  log.LegacyLevelInfo,
		Usage:  "log verbosity (0-5)",
		EnvVar: "RANDSEQ_VERBOSITY",
	}
	jsonLogsFlag = cli.BoolFlag{
		Name:  "json-logs",
		Usage: "output logs in JSON format",
	}
	logFileFlag = cli.StringFlag{
		Name:   "log-file",
		Usage:  "write logs to a rotated file instead of stderr",
		EnvVar: "RANDSEQ_LOG_FILE",
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:   "enable-metrics",
		Usage:  "enables metrics collection",
		EnvVar: "RANDSEQ_ENABLE_METRICS",
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: "RANDSEQ_METRICS_ADDR",
	}

	// stats command
	runsFlag = cli.IntFlag{
		Name:  "runs",
		Value: 100000,
		Usage: "number of sequences to generate",
	}
	sizeFlag = cli.IntFlag{
		Name:  "size",
		Value: 8,
		Usage: "length of each sequence",
	}
	quietFlag = cli.BoolFlag{
		Name:  "quiet",
		Usage: "hide the progress bar",
	}
)
