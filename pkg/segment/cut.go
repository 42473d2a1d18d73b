package segment

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPeakSet is returned by Cut when there is no split position. The word
	// should be left whole.
	ErrEmptyPeakSet = errors.New("no split positions")
	// ErrSplitOutOfRange is returned by Cut for positions outside 1..len(word) or not strictly ascending.
	ErrSplitOutOfRange = errors.New("split position out of range")
)

// Cut splits word at the given ascending rune positions.
// k positions give k+1 pieces; a position equal to the word length gives an empty last piece.
func Cut(word string, splits []int) ([]string, error) {
	if len(splits) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyPeakSet, word)
	}
	runes := []rune(word)
	prev := 0
	for _, p := range splits {
		if p <= prev || p > len(runes) {
			return nil, fmt.Errorf("%w: %d in %q (len %d)", ErrSplitOutOfRange, p, word, len(runes))
		}
		prev = p
	}

	pieces := make([]string, 0, len(splits)+1)
	start := 0
	for _, p := range splits {
		pieces = append(pieces, string(runes[start:p]))
		start = p
	}
	pieces = append(pieces, string(runes[start:]))
	return pieces, nil
}

// CutOrWhole is Cut, but returns the word as its only piece when there are no splits.
func CutOrWhole(word string, splits []int) ([]string, error) {
	pieces, err := Cut(word, splits)
	if errors.Is(err, ErrEmptyPeakSet) {
		return []string{word}, nil
	}
	return pieces, err
}
