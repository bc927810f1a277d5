package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		fold  bool
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "whitespace only", input: "   \t ", want: ""},
		{name: "single word", input: "north", want: "north"},
		{name: "trims", input: "  stats \n", want: "stats"},
		{name: "collapses inner spaces", input: "pick    up", want: "pick up"},
		{name: "tabs", input: "leave\tcity", want: "leave city"},
		{name: "case preserved", input: "North", want: "North"},
		{name: "case folded", input: "Pick UP", fold: true, want: "pick up"},
		{name: "item names keep case", input: " Leather  Tunic ", want: "Leather Tunic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input, tt.fold))
		})
	}
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment("# walk to Bree"))
	assert.True(t, IsComment("   #indented"))
	assert.True(t, IsComment(""))
	assert.False(t, IsComment("north"))
	assert.False(t, IsComment("pick up # not a comment"))
}
