package dice

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		notation  string
		wantCount int
		wantSides int
		wantErr   bool
	}{
		{name: "default die", notation: "1d6", wantCount: 1, wantSides: 6},
		{name: "two dice", notation: "2d6", wantCount: 2, wantSides: 6},
		{name: "twenty sided", notation: "1d20", wantCount: 1, wantSides: 20},
		{name: "uppercase separator", notation: "3D8", wantCount: 3, wantSides: 8},
		{name: "upper bounds", notation: "100d1000", wantCount: 100, wantSides: 1000},
		{name: "empty", notation: "", wantErr: true},
		{name: "zero dice", notation: "0d6", wantErr: true},
		{name: "one sided", notation: "1d1", wantErr: true},
		{name: "too many dice", notation: "101d6", wantErr: true},
		{name: "too many sides", notation: "1d1001", wantErr: true},
		{name: "missing count", notation: "d20", wantErr: true},
		{name: "missing sides", notation: "2d", wantErr: true},
		{name: "garbage", notation: "banana", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, sides, err := Parse(tt.notation)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidNotation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantSides, sides)
		})
	}
}

func TestRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	result, err := Roll(rng, "4d6")
	require.NoError(t, err)

	assert.Equal(t, "4d6", result.Notation)
	assert.Len(t, result.Rolls, 4)

	total := 0
	for _, roll := range result.Rolls {
		assert.GreaterOrEqual(t, roll, 1)
		assert.LessOrEqual(t, roll, 6)
		total += roll
	}
	assert.Equal(t, total, result.Total)
}

func TestRoll_InvalidNotation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Roll(rng, "1d0")
	assert.ErrorIs(t, err, ErrInvalidNotation)
}
