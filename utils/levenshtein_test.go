package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schema-caster/utils"
)

func TestLevenshtein(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"stack", "stack", 0},
		{"queue", "queues", 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, utils.Levenshtein(tt.a, tt.b), "%q -> %q", tt.a, tt.b)
		assert.Equal(t, tt.want, utils.Levenshtein(tt.b, tt.a), "%q -> %q", tt.b, tt.a)
	}
}

func TestClosest(t *testing.T) {
	t.Parallel()

	candidates := []string{"safe_number", "unsafe_number", "safe_array"}

	got, ok := utils.Closest("safe_numbr", candidates)
	assert.True(t, ok)
	assert.Equal(t, "safe_number", got)

	_, ok = utils.Closest("everything", candidates)
	assert.False(t, ok)

	_, ok = utils.Closest("x", nil)
	assert.False(t, ok)
}

func TestIsInRange(t *testing.T) {
	t.Parallel()

	assert.True(t, utils.IsInRange(-1, 0, 1))
	assert.True(t, utils.IsInRange(1.5, 1.5, 1.5))
	assert.False(t, utils.IsInRange[uint8](2, 1, 3))
}
