package nqueens

import "math/rand"

// DefaultSeed is used when New is called with seed 0.
const DefaultSeed int64 = 123456

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
// The source is private to one New call and never shared.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// randomBoard places one queen per column on a random row.
func randomBoard(rng *rand.Rand, size int) Board {
	b := Board{size: size}
	for col := 0; col < size; col++ {
		b.rows[col] = uint8(rng.Intn(size))
	}

	return b
}
