// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/cheggaaa/pb.v1"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/vechain/randseq/sequence"
)

// freqTable counts how often each value lands on each position.
type freqTable struct {
	runs   int
	counts [][]int // [position][value]
}

func newFreqTable(size int) *freqTable {
	counts := make([][]int, size)
	for i := range counts {
		counts[i] = make([]int, size)
	}
	return &freqTable{counts: counts}
}

func (f *freqTable) add(perm []int) {
	for pos, v := range perm {
		f.counts[pos][v]++
	}
	f.runs++
}

// chiSquare returns Pearson's statistic against the uniform expectation
// and its degrees of freedom.
func (f *freqTable) chiSquare() (float64, int) {
	size := len(f.counts)
	if size < 2 || f.runs == 0 {
		return 0, 0
	}
	expected := float64(f.runs) / float64(size)
	var sum float64
	for _, row := range f.counts {
		for _, observed := range row {
			d := float64(observed) - expected
			sum += d * d / expected
		}
	}
	return sum, (size - 1) * (size - 1)
}

func (f *freqTable) render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	header := []string{"pos"}
	for v := range f.counts {
		header = append(header, strconv.Itoa(v))
	}
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for pos, row := range f.counts {
		line := []string{strconv.Itoa(pos)}
		for _, n := range row {
			line = append(line, strconv.Itoa(n))
		}
		table.Append(line)
	}
	table.Render()

	chi, df := f.chiSquare()
	fmt.Fprintf(w, "runs %d, chi-square %.2f, degrees of freedom %d\n", f.runs, chi, df)
}

func collectStats(src sequence.Source, runs, size int, progress func()) (*freqTable, error) {
	if runs <= 0 {
		return nil, errors.Errorf("invalid runs %d", runs)
	}
	table := newFreqTable(size)
	for range runs {
		perm, err := sequence.Generate(src, size, 0, size-1)
		if err != nil {
			return nil, err
		}
		table.add(perm)
		progress()
	}
	return table, nil
}

func statsAction(ctx *cli.Context) error {
	closeLog, err := initLogger(ctx, "")
	if err != nil {
		return err
	}
	defer closeLog()

	runs := ctx.Int(runsFlag.Name)
	src := makeSource(ctx.Uint64(seedFlag.Name))

	var bar *pb.ProgressBar
	progress := func() {}
	if !ctx.Bool(quietFlag.Name) && runs > 0 {
		bar = pb.New(runs).SetMaxWidth(90)
		bar.Output = os.Stderr
		bar.Start()
		progress = func() { bar.Increment() }
	}

	table, err := collectStats(src, runs, ctx.Int(sizeFlag.Name), progress)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	table.render(os.Stdout)
	return nil
}
