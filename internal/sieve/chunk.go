package sieve

// Chunk is a half-open range [Low, High) of domain positions handed to a
// worker as one unit of work.
type Chunk struct {
	Low  int // First position, inclusive
	High int // Last position, exclusive
}

// Len returns the number of positions in the chunk
func (c Chunk) Len() int {
	return c.High - c.Low
}

// chunkAt returns the chunk starting at low, clipped to length
func chunkAt(low, length, size int) Chunk {
	high := length
	if size < length-low {
		high = low + size
	}
	return Chunk{Low: low, High: high}
}

// Chunks partitions [0, length) into consecutive chunks of size positions.
// The last chunk may be shorter. Returns nil when there is nothing to split.
func Chunks(length, size int) []Chunk {
	if length < 1 || size < 1 {
		return nil
	}

	chunks := make([]Chunk, 0, (length+size-1)/size)
	for low := 0; low < length; {
		c := chunkAt(low, length, size)
		chunks = append(chunks, c)
		low = c.High
	}
	return chunks
}

// Divisors returns every divisor pass for bound n: 2..floor(sqrt(n)).
// Composite divisors are included; their multiples are already eliminated
// so the pass only finds known composites.
func Divisors(n int) []int {
	var divisors []int
	for k := 2; k <= n/k; k++ {
		divisors = append(divisors, k)
	}
	return divisors
}
