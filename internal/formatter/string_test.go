package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallingCode(t *testing.T) {
	tests := map[string]string{
		"DE":  "+49",
		"fr":  "+33",
		"JP":  "+81",
		"US":  "+1",
		"":    "",
		"DEU": "",
		"ZZ":  "",
	}

	for in, want := range tests {
		assert.Equal(t, want, CallingCode(in), in)
	}
}

func TestDensity(t *testing.T) {
	d, ok := Density(83240525, 357114)
	assert.True(t, ok)
	assert.Equal(t, "233.09", d.StringFixed(2))

	d, ok = Density(0, 14000000)
	assert.True(t, ok)
	assert.True(t, d.IsZero())

	_, ok = Density(1000, 0)
	assert.False(t, ok)
}
