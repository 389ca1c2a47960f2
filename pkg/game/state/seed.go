package state

import (
	"fmt"
	"strconv"
)

// ParseSeed accepts a non-empty run of ASCII digits that fits in int64.
// Signs, spaces and anything else are rejected.
func ParseSeed(text string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidSeedInput)
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidSeedInput, text)
		}
	}
	seed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSeedInput, err)
	}
	return seed, nil
}
