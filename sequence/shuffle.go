// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sequence

// Apply walks perm in index order and calls swap(i, perm[i]) for each i.
// Swaps run against the data as already modified by earlier steps, so one
// element can move several times during a pass.
func Apply(perm []int, swap func(i, j int)) {
	for i, j := range perm {
		swap(i, j)
	}
}

// Shuffle draws a fresh permutation of [0, n) from src and applies it with swap.
func Shuffle(src Source, n int, swap func(i, j int)) error {
	if n == 0 {
		return nil
	}
	perm, err := Generate(src, n, 0, n-1)
	if err != nil {
		return err
	}
	Apply(perm, swap)
	return nil
}
