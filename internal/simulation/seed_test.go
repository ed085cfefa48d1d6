package simulation

import "testing"

func TestSetSeedFunc(t *testing.T) {
	orig := seedFunc
	defer SetSeedFunc(orig)

	SetSeedFunc(func() int64 { return 1234 })
	if got := NewSeed(); got != 1234 {
		t.Fatalf("NewSeed() = %d, want 1234", got)
	}
}

func TestNewSeedAdvances(t *testing.T) {
	// Clock seeds are millisecond-resolution; just check they are sane.
	if NewSeed() <= 0 {
		t.Error("expected a positive wall-clock seed")
	}
}
