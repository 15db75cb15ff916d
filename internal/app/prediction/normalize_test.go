package prediction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Fever":               "fever",
		" skin rash ":         "skin_rash",
		"skin_rash":           "skin_rash",
		"Skin Rash":           "skin_rash",
		"SHORTNESS OF BREATH": "shortness_of_breath",
		"loss__of  appetite":  "loss_of_appetite",
		"":                    "",
		"   ":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Normalize(in), "input %q", in)
	}
}
