package utils

import (
	crand "crypto/rand"
	"math/big"
	"math/rand/v2"
)

// IntnFunc returns a uniform integer in [0, n)
type IntnFunc func(n int) int

// SecureIntn returns a uniform integer in [0, n) using crypto/rand.
// Falls back to math/rand if the system source fails. Panics if n <= 0.
func SecureIntn(n int) int {
	if n <= 0 {
		panic("utils: SecureIntn called with non-positive n")
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return rand.IntN(n) //nolint:gosec // Game logic randomness, not security critical
	}
	return int(v.Int64())
}

// SeededIntn returns a deterministic source for simulations and tests
func SeededIntn(seed uint64) IntnFunc {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Reproducible simulations
	return r.IntN
}

// SequenceIntn replays a fixed sequence of draws, wrapping around when exhausted.
// Each value is reduced modulo n so scripted draws stay in range.
func SequenceIntn(values ...int) IntnFunc {
	i := 0
	return func(n int) int {
		if len(values) == 0 {
			return 0
		}
		v := values[i%len(values)]
		i++
		return ((v % n) + n) % n
	}
}
