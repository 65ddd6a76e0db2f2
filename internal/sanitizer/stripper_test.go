package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTMLStripper_StripHTML(t *testing.T) {
	hs := NewHTMLStripper()

	tests := map[string]string{
		"France":                         "France",
		"<b>Fra</b>":                     "Fra",
		"<script>alert(1)</script>Japan": "Japan",
		"Côte d'Ivoire":                  "Côte d'Ivoire",
		"Trinidad & Tobago":              "Trinidad & Tobago",
		"":                               "",
	}

	for in, want := range tests {
		assert.Equal(t, want, hs.StripHTML(in), in)
	}
}
