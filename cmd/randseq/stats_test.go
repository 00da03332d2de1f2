// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/randseq/sequence"
)

func TestFreqTable(t *testing.T) {
	table := newFreqTable(3)
	table.add([]int{0, 1, 2})
	table.add([]int{2, 0, 1})
	table.add([]int{1, 2, 0})

	assert.Equal(t, 3, table.runs)
	// every value once on every position
	for _, row := range table.counts {
		assert.Equal(t, []int{1, 1, 1}, row)
	}

	chi, df := table.chiSquare()
	assert.Zero(t, chi)
	assert.Equal(t, 4, df)
}

func TestChiSquareSkewed(t *testing.T) {
	table := newFreqTable(2)
	for range 10 {
		table.add([]int{0, 1})
	}
	// expected 5 per cell, observed 10 or 0
	chi, df := table.chiSquare()
	assert.InDelta(t, 20.0, chi, 1e-9)
	assert.Equal(t, 1, df)
}

func TestChiSquareDegenerate(t *testing.T) {
	chi, df := newFreqTable(1).chiSquare()
	assert.Zero(t, chi)
	assert.Zero(t, df)

	chi, df = newFreqTable(4).chiSquare()
	assert.Zero(t, chi)
	assert.Zero(t, df)
}

func TestCollectStats(t *testing.T) {
	var calls int
	table, err := collectStats(sequence.NewSource(11), 4000, 4, func() { calls++ })
	require.NoError(t, err)
	assert.Equal(t, 4000, calls)
	assert.Equal(t, 4000, table.runs)

	for _, row := range table.counts {
		sum := 0
		for _, n := range row {
			sum += n
			// 1000 expected per cell
			assert.InDelta(t, 1000, n, 150)
		}
		assert.Equal(t, 4000, sum)
	}

	// 27.88 is the 0.001 critical value for 9 degrees of freedom
	chi, df := table.chiSquare()
	assert.Equal(t, 9, df)
	assert.Less(t, chi, 40.0)
}

func TestCollectStatsErrors(t *testing.T) {
	_, err := collectStats(sequence.NewSource(1), 0, 4, func() {})
	assert.ErrorContains(t, err, "invalid runs 0")

	_, err = collectStats(sequence.NewSource(1), 10, 0, func() {})
	assert.ErrorIs(t, err, sequence.ErrInvalidCount)
}

func TestFreqTableRender(t *testing.T) {
	table := newFreqTable(2)
	table.add([]int{1, 0})

	var buf bytes.Buffer
	table.render(&buf)

	out := buf.String()
	assert.Contains(t, out, "POS")
	assert.Contains(t, out, "runs 1, chi-square 2.00, degrees of freedom 1")
}
