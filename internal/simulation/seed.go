package simulation

import "time"

// defaultSeedFunc draws wall-clock-millisecond seeds.
func defaultSeedFunc() int64 { return time.Now().UnixMilli() }

// seedFunc returns a fresh seed (override for deterministic tests).
var seedFunc = defaultSeedFunc

// SetSeedFunc overrides the seed source; tests use this for determinism.
// Passing nil restores the wall-clock default.
func SetSeedFunc(f func() int64) {
	if f == nil {
		f = defaultSeedFunc
	}
	seedFunc = f
}

// NewSeed returns a fresh, unpredictable seed. The engine itself never
// calls this: Simulate is pure and the caller owns the seed lifecycle.
func NewSeed() int64 { return seedFunc() }
