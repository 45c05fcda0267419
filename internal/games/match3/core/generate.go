package core

import "fmt"

// DefaultMaxGenerateAttempts bounds the number of full-board fills Generate tries.
const DefaultMaxGenerateAttempts = 10000

// Generate fills a size×size grid with uniform random tokens in [0, tokenCount),
// retrying the whole fill until the board holds no alignment.
// It gives up with ErrGenerationNonconvergence after maxAttempts fills;
// maxAttempts <= 0 selects DefaultMaxGenerateAttempts.
func Generate(size, tokenCount int, rng Source, maxAttempts int) (*Grid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, size)
	}
	if tokenCount <= 0 {
		return nil, fmt.Errorf("%w: token count must be positive, got %d", ErrInvalidConfig, tokenCount)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxGenerateAttempts
	}

	g := NewGrid(size)
	for range maxAttempts {
		for i := range g.Cells {
			g.Cells[i] = Token(rng.Intn(tokenCount))
		}
		if !HasAlignment(g) {
			return g, nil
		}
	}

	return nil, fmt.Errorf("%w: %dx%d grid with %d tokens after %d attempts",
		ErrGenerationNonconvergence, size, size, tokenCount, maxAttempts)
}
