package segment

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordsplit/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Catalog holds the suffixes found after each corpus word's final branch point, their
// counts, their priority order and the suffix assigned to each corpus word.
// It is read-only once built.
type Catalog struct {
	counts   map[string]int
	order    []string
	reversed *patricia.Trie
	offsets  map[string]int
}

// BuildCatalog runs the corpus-wide suffix pass over t, which must already contain
// every word. Words are expected lowercase; repeated words count once per occurrence.
func BuildCatalog(t *trie.Trie, words []string, opts Options) (*Catalog, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		counts:   make(map[string]int),
		reversed: patricia.NewTrie(),
		offsets:  make(map[string]int),
	}

	var seen []string
	for _, w := range words {
		runes := []rune(w)
		suffix := string(runes[t.FinalBranch(w):])
		if opts.ByFrequency && utf8.RuneCountInString(suffix) < opts.MinSuffixLen {
			continue
		}
		if _, ok := c.counts[suffix]; !ok {
			seen = append(seen, suffix)
		}
		c.counts[suffix]++
	}

	// Ties keep reverse first-seen order: stable ascending sort, then reversed.
	if opts.ByFrequency {
		sort.SliceStable(seen, func(i, j int) bool {
			return c.counts[seen[i]] < c.counts[seen[j]]
		})
	} else {
		sort.SliceStable(seen, func(i, j int) bool {
			return utf8.RuneCountInString(seen[i]) < utf8.RuneCountInString(seen[j])
		})
	}
	c.order = make([]string, len(seen))
	for i, s := range seen {
		rank := len(seen) - 1 - i
		c.order[rank] = s
	}
	for rank, s := range c.order {
		if s == "" {
			continue
		}
		c.reversed.Insert(patricia.Prefix(reverse(s)), rank)
	}

	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		if _, done := c.offsets[w]; done {
			continue
		}
		if _, offset, ok := c.Match(w); ok {
			c.offsets[w] = offset
		}
	}

	log.Debugf("Suffix catalog: %d suffixes, %d words matched", len(c.order), len(c.offsets))
	return c, nil
}

// Match returns the highest-priority catalogued suffix that word ends with, and the
// rune offset where it starts.
func (c *Catalog) Match(word string) (string, int, bool) {
	best := -1
	err := c.reversed.VisitPrefixes(patricia.Prefix(reverse(word)), func(p patricia.Prefix, item patricia.Item) error {
		rank, ok := item.(int)
		if !ok || !strings.HasSuffix(word, c.order[rank]) {
			return nil
		}
		if best < 0 || rank < best {
			best = rank
		}
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting suffix trie: %v", err)
		return "", 0, false
	}
	if best < 0 {
		return "", 0, false
	}
	suffix := c.order[best]
	return suffix, utf8.RuneCountInString(word) - utf8.RuneCountInString(suffix), true
}

// Offset returns the suffix offset assigned to a corpus word during the build.
func (c *Catalog) Offset(word string) (int, bool) {
	offset, ok := c.offsets[word]
	return offset, ok
}

// Count returns how many corpus words produced suffix.
func (c *Catalog) Count(suffix string) int {
	return c.counts[suffix]
}

// Suffixes returns the catalogued suffixes in priority order.
func (c *Catalog) Suffixes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of distinct catalogued suffixes.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Assigned returns the number of corpus words matched to a suffix.
func (c *Catalog) Assigned() int {
	return len(c.offsets)
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
