package segment

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for out-of-range ESM options.
var ErrInvalidConfig = errors.New("invalid segmentation config")

// Options controls eager suffix matching.
type Options struct {
	// MinSuffixLen is the minimum catalogued suffix length when ByFrequency is set.
	// Zero disables ESM entirely.
	MinSuffixLen int
	// ByFrequency ranks suffixes by corpus count instead of by length.
	ByFrequency bool
}

// Validate rejects a negative MinSuffixLen.
func (o Options) Validate() error {
	if o.MinSuffixLen < 0 {
		return fmt.Errorf("%w: min suffix length %d is negative", ErrInvalidConfig, o.MinSuffixLen)
	}
	return nil
}

// ESM reports whether eager suffix matching is enabled.
func (o Options) ESM() bool {
	return o.MinSuffixLen > 0
}
