// Package corpus reads word lists for segmentation and writes split results.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownEncoding is returned for an encoding name Load does not support.
var ErrUnknownEncoding = errors.New("unknown corpus encoding")

// Options controls how corpus files are read.
type Options struct {
	// Encoding is "utf8", "windows1252" or "latin1". Empty means utf8.
	Encoding string
	// FirstFieldOnly keeps only the text before the first space on each line,
	// for word lists carrying counts or glosses after the word.
	FirstFieldOnly bool
	// ComposeNFC composes decomposed accents so each letter counts as one position.
	ComposeNFC bool
}

var encodings = map[string]encoding.Encoding{
	"utf8":        unicode.UTF8,
	"utf-8":       unicode.UTF8,
	"windows1252": charmap.Windows1252,
	"cp1252":      charmap.Windows1252,
	"latin1":      charmap.ISO8859_1,
	"iso-8859-1":  charmap.ISO8859_1,
}

// LookupEncoding resolves an encoding name, case-insensitively.
func LookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	enc, ok := encodings[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// LoadFile reads a corpus file with one word per line.
func LoadFile(path string, opts Options) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus %s: %w", path, err)
	}
	defer file.Close()

	words, err := Load(file, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), path)
	return words, nil
}

// Load reads words from r, decoding it with opts.Encoding and optionally composing to NFC. Each line contributes its
// whitespace-separated fields, or only the first one with FirstFieldOnly.
// Empty lines are dropped; words keep their order and duplicates.
func Load(r io.Reader, opts Options) ([]string, error) {
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	var t transform.Transformer = enc.NewDecoder()
	if opts.ComposeNFC {
		t = transform.Chain(t, norm.NFC)
	}
	scanner := bufio.NewScanner(transform.NewReader(r, t))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var words []string
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if opts.FirstFieldOnly {
			fields = fields[:1]
		}
		words = append(words, fields...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

