package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercases", input: "HAUS", want: "haus"},
		{name: "trims whitespace", input: "  haus\t", want: "haus"},
		{name: "trims then lowercases", input: " Bob Marley ", want: "bob marley"},
		{name: "whitespace only becomes empty", input: "   ", want: ""},
		{name: "inner whitespace preserved", input: "guten  Tag", want: "guten  tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
