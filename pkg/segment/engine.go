package segment

import (
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordsplit/pkg/trie"
	"github.com/charmbracelet/log"
)

// Analysis is the full breakdown of one word.
type Analysis struct {
	Word         string   `msgpack:"w" json:"word"`
	Distribution []int    `msgpack:"d" json:"distribution"`
	Suffix       string   `msgpack:"sx,omitempty" json:"suffix,omitempty"`
	Offset       int      `msgpack:"o,omitempty" json:"offset,omitempty"`
	Splits       []int    `msgpack:"s" json:"splits"`
	Pieces       []string `msgpack:"p" json:"pieces"`
}

// Engine segments the words of a fixed corpus.
type Engine struct {
	trie    *trie.Trie
	catalog *Catalog
	opts    Options
	corpus  []string
	words   []string
}

// NewEngine lowercases words, drops empty ones and those containing the end marker, builds the trie and, when ESM is
// enabled, the suffix catalog. Options are validated before any corpus pass.
func NewEngine(words []string, opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		trie: trie.New(),
		opts: opts,
	}
	seen := make(map[string]bool, len(words))
	dropped := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if strings.Contains(w, trie.EndLabel) {
			dropped++
			continue
		}
		e.corpus = append(e.corpus, w)
		if !seen[w] {
			seen[w] = true
			e.words = append(e.words, w)
		}
	}

	if dropped > 0 {
		log.Warnf("Dropped %d corpus tokens containing %q", dropped, trie.EndLabel)
	}

	e.trie.InsertAll(e.corpus)
	log.Debugf("Built trie: %d words, %d nodes", len(e.words), e.trie.Size())

	if opts.ESM() {
		catalog, err := BuildCatalog(e.trie, e.corpus, opts)
		if err != nil {
			return nil, err
		}
		e.catalog = catalog
	}
	return e, nil
}

// NewEngineFromText is NewEngine over the whitespace-separated tokens of text.
func NewEngineFromText(text string, opts Options) (*Engine, error) {
	return NewEngine(strings.Fields(text), opts)
}

// Split returns the split positions for word. Corpus words use their catalogued
// suffix; other words are matched against the catalog on the fly.
func (e *Engine) Split(word string) []int {
	w := strings.ToLower(word)
	if offset, ok := e.suffixOffset(w); ok && offset > 0 {
		prefix := string([]rune(w)[:offset])
		return append(Maxima(e.trie.Distribution(prefix)), offset)
	}
	return Maxima(e.trie.Distribution(w))
}

func (e *Engine) suffixOffset(w string) (int, bool) {
	if e.catalog == nil || utf8.RuneCountInString(w) <= 1 {
		return 0, false
	}
	if offset, ok := e.catalog.Offset(w); ok {
		return offset, true
	}
	_, offset, ok := e.catalog.Match(w)
	return offset, ok
}

// Analyze returns the distribution, suffix match, splits and pieces for word.
func (e *Engine) Analyze(word string) Analysis {
	w := strings.ToLower(word)
	a := Analysis{
		Word:         w,
		Distribution: e.trie.Distribution(w),
		Splits:       e.Split(w),
	}
	if e.catalog != nil && utf8.RuneCountInString(w) > 1 {
		if offset, ok := e.suffixOffset(w); ok {
			a.Offset = offset
			a.Suffix = string([]rune(w)[offset:])
		}
	}
	pieces, err := CutOrWhole(w, a.Splits)
	if err != nil {
		log.Errorf("Cutting %q at %v: %v", w, a.Splits, err)
		pieces = []string{w}
	}
	a.Pieces = pieces
	return a
}

// Segment returns the split positions of every corpus word.
func (e *Engine) Segment() map[string][]int {
	splits := make(map[string][]int, len(e.words))
	for _, w := range e.words {
		splits[w] = e.Split(w)
	}
	return splits
}

// Words returns the distinct corpus words in first-seen order.
func (e *Engine) Words() []string {
	out := make([]string, len(e.words))
	copy(out, e.words)
	return out
}

// Trie returns the engine's trie. Callers must not mutate it while segmenting.
func (e *Engine) Trie() *trie.Trie {
	return e.trie
}

// Catalog returns the suffix catalog, or nil when ESM is disabled.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// Options returns the options the engine was built with.
func (e *Engine) Options() Options {
	return e.opts
}

// Stats returns counts describing the loaded corpus.
func (e *Engine) Stats() map[string]int {
	stats := map[string]int{
		"totalWords":  len(e.corpus),
		"uniqueWords": len(e.words),
		"trieNodes":   e.trie.Size(),
		"esm":         0,
	}
	if e.catalog != nil {
		stats["esm"] = 1
		stats["suffixes"] = e.catalog.Len()
		stats["assigned"] = e.catalog.Assigned()
	}
	return stats
}
