// Package cli handles cmd line input for inspecting segmentations in real time
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordsplit/internal/logger"
	"github.com/bastiangx/wordsplit/internal/utils"
	"github.com/bastiangx/wordsplit/pkg/config"
	"github.com/bastiangx/wordsplit/pkg/segment"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var (
	pieceStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	suffixStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ebbcba"})
	sepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"})
)

// InputHandler reads words line by line and prints how the segmenter splits them.
type InputHandler struct {
	segmenter        segment.Segmenter
	reader           io.Reader
	logger           *log.Logger
	maxWordLen       int
	showPieces       bool
	showDistribution bool
	requestCount     int
}

// NewInputHandler reads from stdin and prints to stderr
func NewInputHandler(seg segment.Segmenter, cfg config.CliConfig) *InputHandler {
	return NewInputHandlerWithIO(seg, cfg, os.Stdin, os.Stderr)
}

// NewInputHandlerWithIO is NewInputHandler over arbitrary streams
func NewInputHandlerWithIO(seg segment.Segmenter, cfg config.CliConfig, r io.Reader, w io.Writer) *InputHandler {
	return &InputHandler{
		segmenter:        seg,
		reader:           r,
		logger:           logger.NewTo(w, ""),
		maxWordLen:       cfg.MaxWordLen,
		showPieces:       cfg.ShowPieces,
		showDistribution: cfg.ShowDistribution,
	}
}

// Start begins the interface loop.
// Every non-empty line is split into words and each word is segmented.
// The loop ends cleanly when the input is exhausted.
func (h *InputHandler) Start() error {
	h.logger.Print("wordsplit CLI")
	h.logger.Print("type words and press Enter to see their segmentation (Ctrl+C to exit):")

	reader := bufio.NewReader(h.reader)
	for {
		h.logger.Print("> ")
		line, err := reader.ReadString('\n')
		for _, word := range strings.Fields(line) {
			h.handleInput(word)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput validates a word, segments it and prints the result.
func (h *InputHandler) handleInput(word string) {
	h.requestCount++

	if !utils.IsValidWord(word, h.maxWordLen) {
		h.logger.Errorf("Not a segmentable word: %q", word)
		return
	}

	start := time.Now()
	a := h.segmenter.Analyze(word)
	h.logger.Debugf("Took [ %v ] for '%s'", time.Since(start), a.Word)

	if len(a.Distribution) == 0 {
		h.logger.Warnf("'%s' shares no prefix with the corpus", a.Word)
	}
	if h.showDistribution {
		h.logger.Print("distribution", "word", a.Word, "sqd", fmt.Sprint(a.Distribution))
	}
	if a.Suffix != "" {
		h.logger.Print("suffix", "match", suffixStyle.Render(a.Suffix), "offset", a.Offset)
	}
	h.logger.Print("splits", "word", a.Word, "at", fmt.Sprint(a.Splits))
	if h.showPieces {
		h.logger.Print(renderPieces(a.Pieces, a.Suffix))
	}
}

// renderPieces joins the pieces with a dim separator, styling a trailing suffix apart.
func renderPieces(pieces []string, suffix string) string {
	rendered := make([]string, len(pieces))
	for i, p := range pieces {
		if i == len(pieces)-1 && len(pieces) > 1 && p == suffix {
			rendered[i] = suffixStyle.Render(p)
			continue
		}
		rendered[i] = pieceStyle.Render(p)
	}
	return strings.Join(rendered, sepStyle.Render(" | "))
}
