// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package sequence

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
)

// Source supplies the entropy behind Generate and Shuffle.
// Intn returns an int in [0, n) and panics if n <= 0.
type Source interface {
	Intn(n int) int
}

// HashSource is a deterministic generator: every 8 draws it hashes
// round||seed with blake2b-256 and hands out the digest 4 bytes at a time.
type HashSource struct {
	seed  []byte
	round uint32
	hash  [32]byte
	seq   uint32
}

var _ Source = (*HashSource)(nil)

// NewHashSource creates a HashSource for seed. The seed is copied.
func NewHashSource(seed []byte) *HashSource {
	hseed := make([]byte, len(seed)+4)
	copy(hseed[4:], seed)
	return &HashSource{seed: hseed}
}

func (hs *HashSource) nextRound() {
	binary.BigEndian.PutUint32(hs.seed, hs.round)
	hs.hash = blake2b.Sum256(hs.seed)
	hs.round++
}

// Intn returns int in [0, n).
func (hs *HashSource) Intn(n int) int {
	if n <= 0 {
		panic("n must > 0")
	}
	i := hs.seq % 8
	if i == 0 {
		hs.nextRound()
	}
	hs.seq++
	return int(uint64(binary.BigEndian.Uint32(hs.hash[i*4:])) % uint64(n))
}

type randSource struct {
	r *rand.Rand
}

func (s randSource) Intn(n int) int {
	return s.r.IntN(n)
}

// NewSource returns a PCG backed source. Equal seeds give equal streams.
func NewSource(seed uint64) Source {
	return randSource{rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandomSource returns a ChaCha8 backed source seeded from crypto/rand.
func NewRandomSource() Source {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic(err)
	}
	return randSource{rand.New(rand.NewChaCha8(seed))}
}
