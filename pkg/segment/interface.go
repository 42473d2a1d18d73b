package segment

// Segmenter defines the interface for morpheme segmentation engines
type Segmenter interface {
	// Split returns ascending split positions for a single word
	Split(word string) []int

	// Analyze returns the distribution, suffix match and pieces for a word
	Analyze(word string) Analysis

	// Segment returns split positions for every corpus word
	Segment() map[string][]int

	// Words returns the distinct corpus words in corpus order
	Words() []string

	// Stats returns statistics about the loaded corpus
	Stats() map[string]int
}

var _ Segmenter = (*Engine)(nil)
