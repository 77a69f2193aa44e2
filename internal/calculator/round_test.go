package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"integer", 42, 42},
		{"already two places", 102.67, 102.67},
		{"repeating third", 308.0 / 3.0, 102.67},
		{"exact tie rounds away from zero", 0.125, 0.13},
		{"negative exact tie", -0.125, -0.13},
		{"binary value just under tie", 1.005, 1},
		{"binary value just under tie 2", 2.675, 2.67},
		{"truncates beyond third place", 1.2345, 1.23},
		{"negative", -85.714285, -85.71},
		{"tiny collapses to zero", 0.0004, 0},
		{"large price", 42123.456, 42123.46},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Round2(tt.in))
		})
	}
}

func TestRound2_NonFinite(t *testing.T) {
	assert.True(t, math.IsNaN(Round2(math.NaN())))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.True(t, math.IsInf(Round2(math.Inf(-1)), -1))
}
