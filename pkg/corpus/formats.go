package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bastiangx/wordsplit/pkg/segment"
	"golang.org/x/text/transform"
)

// OutputFormat selects how split results are written
type OutputFormat int

const (
	FormatPositions OutputFormat = iota // word p1 p2 ...
	FormatPieces                        // piece-piece-piece
)

var formatNames = map[string]OutputFormat{
	"positions": FormatPositions,
	"pieces":    FormatPieces,
}

// ParseFormat resolves an output format name
func ParseFormat(name string) (OutputFormat, error) {
	if name == "" {
		return FormatPositions, nil
	}
	f, ok := formatNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown output format %q (expected positions or pieces)", name)
	}
	return f, nil
}

// WriteSplits writes one line per word in words order, encoded with encName.
func WriteSplits(w io.Writer, words []string, splits map[string][]int, format OutputFormat, encName string) error {
	enc, err := LookupEncoding(encName)
	if err != nil {
		return err
	}
	tw := transform.NewWriter(w, enc.NewEncoder())
	bw := bufio.NewWriter(tw)

	for _, word := range words {
		line, err := formatLine(word, splits[word], format)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return tw.Close()
}

func formatLine(word string, splits []int, format OutputFormat) (string, error) {
	switch format {
	case FormatPieces:
		pieces, err := segment.CutOrWhole(word, splits)
		if err != nil {
			return "", err
		}
		return strings.Join(pieces, "-"), nil
	default:
		var sb strings.Builder
		sb.WriteString(word)
		for _, p := range splits {
			sb.WriteByte(' ')
			sb.WriteString(strconv.Itoa(p))
		}
		return sb.String(), nil
	}
}
