package internal

// Random is the source of the RND instruction.
type Random interface {
	Uint32() uint32
}

// DefaultSeed is the seed of the random generator unless WithSeed or
// WithRandom is given.
const DefaultSeed = 0xB16B00B5

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// LCG is a linear congruential generator. Two generators created with the
// same seed produce the same sequence.
type LCG struct {
	state uint32
}

// NewLCG returns a generator starting from seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Uint32 advances the generator and returns the new state.
func (g *LCG) Uint32() uint32 {
	g.state = (g.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return g.state
}
