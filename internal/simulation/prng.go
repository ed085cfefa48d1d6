package simulation

// Linear congruential generator constants. The triple is part of the
// engine's reproducibility contract: every downstream trajectory value
// depends on this exact recurrence, so it must not be swapped for another
// generator.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Stream is a deterministic uniform [0,1) source driven by the LCG
// recurrence
//
//	state = (state*9301 + 49297) mod 233280
//
// Each draw emits the updated state divided by the modulus; the raw seed is
// never emitted. Not cryptographically secure and not meant to be.
type Stream struct {
	state int64
}

// NewStream returns a stream positioned at seed. The seed is reduced modulo
// the LCG modulus and normalized non-negative up front, which is
// algebraically identical to applying the recurrence to the full-width seed
// and keeps the multiply far away from overflow for any 64-bit seed.
func NewStream(seed int64) *Stream {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return &Stream{state: s}
}

// Next advances the stream and returns the next value in [0, 1).
func (s *Stream) Next() float64 {
	s.state = (s.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.state) / lcgModulus
}

// Sequence returns the first n draws for seed as a slice. It is a pure
// function of (seed, n); n = 0 yields an empty sequence.
func Sequence(seed int64, n int) []float64 {
	out := make([]float64, 0, max(n, 0))
	s := NewStream(seed)
	for i := 0; i < n; i++ {
		out = append(out, s.Next())
	}
	return out
}
