package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndString(t *testing.T) {
	p := New(123.456)
	assert.Equal(t, "123.46", p.Round().String())
	assert.Equal(t, "$123.46", p.Round().Format())
}

func TestRoundBankers(t *testing.T) {
	// Banker's rounding: a half cent rounds to the even cent. Both inputs
	// are exact binary fractions, so no float noise intrudes.
	assert.Equal(t, "100.12", New(100.125).Round().String())
	assert.Equal(t, "100.38", New(100.375).Round().String())
}

func TestFromString(t *testing.T) {
	p, err := FromString("99.95")
	require.NoError(t, err)
	assert.Equal(t, "99.95", p.String())

	_, err = FromString("not-a-number")
	assert.Error(t, err)
}

func TestComparisons(t *testing.T) {
	a, b := New(55), New(195)
	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.Equal(New(55)))
}
