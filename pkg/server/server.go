package server

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
	"github.com/bastiangx/wordsplit/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for segmentation requests
type Server struct {
	engine       *segment.Engine
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a new segmentation server using stdin/stdout for IPC
func NewServer(engine *segment.Engine, cfg *config.Config) *Server {
	return NewServerWithIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(engine *segment.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		engine:  engine,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(r)),
		writer:  bw,
		encoder: msgpack.NewEncoder(bw),
		logger:  logger.New("server"),
	}
}

// Start sends a ready status and then answers requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed input", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			return fmt.Errorf("decoding request: %w", err)
		}
		s.requestCount++
		if err := s.handleRequest(request); err != nil {
			return err
		}
	}
}

// handleRequest dispatches on the request action
func (s *Server) handleRequest(request Request) error {
	switch request.Action {
	case "", ActionSegment:
		return s.handleSegment(request)
	case ActionDump:
		return s.handleDump(request)
	case ActionStats:
		return s.send(StatsResponse{ID: request.ID, Stats: s.engine.Stats()})
	case ActionHealth:
		return s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		return s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

// handleSegment validates the words and returns their splits in request order
func (s *Server) handleSegment(request Request) error {
	if len(request.Words) == 0 {
		s.logger.Debug("No words in request", "id", request.ID)
		return s.sendError(request.ID, "Missing 'w' parameter", 400)
	}
	if max := s.config.Server.MaxWords; max > 0 && len(request.Words) > max {
		return s.sendError(request.ID, fmt.Sprintf("Request has %d words, maximum is %d", len(request.Words), max), 400)
	}
	for _, w := range request.Words {
		if !utils.IsValidWord(w, s.config.Server.MaxWordLen) {
			s.logger.Debug("Rejected word", "id", request.ID, "word", w)
			return s.sendError(request.ID, fmt.Sprintf("Invalid word: %q", w), 400)
		}
	}

	start := time.Now()
	results := make([]WordResult, len(request.Words))
	for i, w := range request.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if request.Full {
			a := s.engine.Analyze(w)
			results[i] = WordResult{
				Word:         a.Word,
				Splits:       a.Splits,
				Distribution: a.Distribution,
				Suffix:       a.Suffix,
				Pieces:       a.Pieces,
			}
			continue
		}
		results[i] = WordResult{Word: w, Splits: s.engine.Split(w)}
	}
	elapsed := time.Since(start)

	return s.send(SegmentResponse{
		ID:        request.ID,
		Results:   results,
		Count:     len(results),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleDump snapshots the subtrie below the requested prefix
func (s *Server) handleDump(request Request) error {
	node, err := s.engine.Trie().ChildOf(request.Prefix)
	if err != nil {
		code := 500
		if errors.Is(err, trie.ErrChildNotFound) {
			code = 404
		}
		return s.sendError(request.ID, err.Error(), code)
	}
	return s.send(DumpResponse{ID: request.ID, Prefix: request.Prefix, Trie: node.Dump()})
}

// send encodes one response and flushes it so the client sees it immediately
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		return err
	}
	return s.writer.Flush()
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
