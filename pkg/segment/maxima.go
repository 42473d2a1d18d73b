/*
Package segment turns successor quantity distributions into morpheme split positions.

A split position p means the word is cut before its p-th character (1-based runes), so
"competitive" with splits [4 6 7] becomes comp|et|i|tive.

The Engine builds a trie over a corpus once, optionally derives a suffix catalog for
eager suffix matching (ESM), and then segments every corpus word deterministically.

	eng, err := segment.NewEngine(words, segment.Options{MinSuffixLen: 1, ByFrequency: true})
	if err != nil {
		return err
	}
	splits := eng.Segment()
*/
package segment

import "sort"

// Maxima returns the 1-based positions of local maxima in flat.
//
// A peak that rises and then falls yields one position right after the peak. A plateau
// at the peak yields both its start and end, unless the plateau begins at the first
// element. A plateau still rising at the end of flat yields its start only; this happens
// when flat describes a prefix of a word.
func Maxima(flat []int) []int {
	indexes := []int{}
	i := 0
	rise := true

	for n := 0; n < len(flat)-1; n++ {
		if flat[n] == flat[n+1] && rise {
			i++
			continue
		}
		if flat[n] > flat[n+1] && rise {
			indexes = append(indexes, n+1)
			if i > 0 && i < n {
				indexes = append(indexes, n-i+1)
			}
			rise = false
		} else if flat[n] < flat[n+1] {
			rise = true
		}
		i = 0
	}

	if i > 0 && i < len(flat)-1 {
		indexes = append(indexes, len(flat)-i)
	}

	sort.Ints(indexes)
	return indexes
}
