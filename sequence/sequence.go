// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package sequence generates random sequences of distinct integers and applies
// them as swap passes over caller owned data.
package sequence

import (
	"github.com/pkg/errors"

	"github.com/vechain/randseq/metrics"
)

var (
	ErrInvalidCount  = errors.New("count must be positive")
	ErrInvalidRange  = errors.New("high must not be less than low")
	ErrRangeMismatch = errors.New("count does not match range size")
)

var (
	metricGenerated = metrics.LazyLoadCounter("sequence_generated_count")
	metricLength    = metrics.LazyLoadHistogram("sequence_length", metrics.BucketSequenceLen)
)

// Generate returns count distinct integers drawn from [low, high] in random
// order. The range must hold exactly count values.
func Generate(src Source, count, low, high int) ([]int, error) {
	if count <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "count %d", count)
	}
	if high < low {
		return nil, errors.Wrapf(ErrInvalidRange, "range [%d, %d]", low, high)
	}
	if size := high - low + 1; size != count {
		return nil, errors.Wrapf(ErrRangeMismatch, "count %d, range [%d, %d] holds %d", count, low, high, size)
	}

	seq := make([]int, count)
	for i := range seq {
		seq[i] = low + i
	}
	permute(src, seq)

	metricGenerated().Add(1)
	metricLength().Observe(int64(count))
	return seq, nil
}

// Perm returns a random permutation of [0, n). Perm panics if n < 0.
func Perm(src Source, n int) []int {
	if n < 0 {
		panic("n must >= 0")
	}
	if n == 0 {
		return []int{}
	}
	seq, err := Generate(src, n, 0, n-1)
	if err != nil {
		panic(err)
	}
	return seq
}

// permute is a forward Fisher–Yates pass.
func permute(src Source, seq []int) {
	size := len(seq)
	for i := 0; i < size-1; i++ {
		j := src.Intn(size-i) + i
		seq[i], seq[j] = seq[j], seq[i]
	}
}
