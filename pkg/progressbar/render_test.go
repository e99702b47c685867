package progressbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		input    string
		expected Field
	}{
		{"title", FieldTitle},
		{"percentage", FieldPercentage},
		{"bar", FieldBar},
		{"stat", FieldStat},
		{"eta", FieldETA},
		{"elapsed", FieldElapsed},
		{"bytes", FieldBytes},
		{" Rate ", FieldRate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := ParseField(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseField("speed")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "bar", FieldBar.String())
	assert.Equal(t, "Field(99)", Field(99).String())
}

func TestFmtBar(t *testing.T) {
	tests := []struct {
		name       string
		percentage int
		width      int
		fill       func(int) int
		expected   string
	}{
		{"empty", 0, 10, forward, "|          |"},
		{"half", 50, 10, forward, "|ooooo     |"},
		{"full", 100, 10, forward, "|oooooooooo|"},
		{"floor", 33, 10, forward, "|ooo       |"},
		{"zero width", 50, 0, forward, "||"},
		{"reversed", 30, 10, backward, "|ooooooo   |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Bar{
				currentPercentage: tt.percentage,
				displayWidth:      tt.width,
				barMark:           DefaultBarMark,
				style:             Style{Fill: tt.fill}.withDefaults(),
			}
			assert.Equal(t, tt.expected, b.fmtBar())
		})
	}
}

func TestFmtTitle(t *testing.T) {
	b := &Bar{title: "job", titleWidth: 14}
	assert.Equal(t, "job:          ", b.fmtTitle())

	b = &Bar{title: "truncated title", titleWidth: 8}
	assert.Equal(t, "truncat:", b.fmtTitle())
}
