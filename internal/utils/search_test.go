package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocationTerm(t *testing.T) {
	cases := map[string]string{
		"sector 4, chennai": "Chennai",
		"pune":              "Pune",
		"Delhi":             "Delhi",
		"a, b, hyderabad ":  "Hyderabad",
		"épernay":           "Épernay",
		"mumbai,":           "",
		"  ":                "",
	}

	for input, want := range cases {
		assert.Equal(t, want, NormalizeLocationTerm(input), "input %q", input)
	}
}
