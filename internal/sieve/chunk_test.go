package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestChunks verifies partitioning of the position range
func TestChunks(t *testing.T) {
	tests := []struct {
		name   string
		length int
		size   int
		want   []Chunk
	}{
		{"exact split", 6, 2, []Chunk{{0, 2}, {2, 4}, {4, 6}}},
		{"short last chunk", 9, 4, []Chunk{{0, 4}, {4, 8}, {8, 9}}},
		{"size one", 3, 1, []Chunk{{0, 1}, {1, 2}, {2, 3}}},
		{"size larger than length", 5, 100, []Chunk{{0, 5}}},
		{"single position", 1, 1, []Chunk{{0, 1}}},
		{"zero length", 0, 4, nil},
		{"zero size", 4, 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunks(tt.length, tt.size))
		})
	}
}

// TestChunksCoverRange checks chunks are contiguous and cover every position once
func TestChunksCoverRange(t *testing.T) {
	for length := 1; length < 40; length++ {
		for size := 1; size <= length+1; size++ {
			chunks := Chunks(length, size)
			next := 0
			for _, c := range chunks {
				assert.Equal(t, next, c.Low)
				assert.Greater(t, c.Len(), 0)
				assert.LessOrEqual(t, c.Len(), size)
				next = c.High
			}
			assert.Equal(t, length, next, "length=%d size=%d", length, size)
		}
	}
}

// TestChunkAtHugeSize ensures a very large chunk size does not overflow
func TestChunkAtHugeSize(t *testing.T) {
	maxInt := int(^uint(0) >> 1)
	assert.Equal(t, Chunk{Low: 3, High: 10}, chunkAt(3, 10, maxInt))
}

// TestDivisors verifies the divisor passes for a bound
func TestDivisors(t *testing.T) {
	tests := []struct {
		n    int
		want []int
	}{
		{2, nil},
		{3, nil},
		{4, []int{2}},
		{8, []int{2}},
		{9, []int{2, 3}},
		{10, []int{2, 3}},
		{30, []int{2, 3, 4, 5}},
		{49, []int{2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Divisors(tt.n), "n=%d", tt.n)
	}
}
