package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spell checking
type Server struct {
	checker  suggest.IChecker
	config   *config.Config
	decoder  *msgpack.Decoder
	writer   *bufio.Writer
	encoder  *msgpack.Encoder
	requests int
}

// NewServer creates a server reading requests from in and writing responses
// to out. A nil cfg uses the defaults.
func NewServer(checker suggest.IChecker, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	w := bufio.NewWriter(out)
	return &Server{
		checker: checker,
		config:  cfg,
		decoder: msgpack.NewDecoder(bufio.NewReader(in)),
		writer:  w,
		encoder: msgpack.NewEncoder(w),
	}
}

// Start serves requests until the input is exhausted. A clean end of input
// returns nil.
func (s *Server) Start() error {
	log.Debug("Starting msgpack server")
	for {
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requests)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}
		s.requests++
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// Requests returns the number of requests read so far.
func (s *Server) Requests() int { return s.requests }

func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid msgpack request", CodeBadRequest)
	}

	action := strings.ToLower(strings.TrimSpace(req.Action))
	if action == "" {
		action = ActionSuggest
	}
	if action != ActionStats {
		if n := utf8.RuneCountInString(req.Word); n > s.config.Server.MaxQueryLen {
			log.Debugf("Word too long in request %s: %d runes", req.ID, n)
			return s.sendError(req.ID,
				fmt.Sprintf("word exceeds maximum length of %d characters", s.config.Server.MaxQueryLen),
				CodeTooLong)
		}
	}

	switch action {
	case ActionSuggest:
		return s.handleSuggest(req)
	case ActionCheck:
		return s.handleCheck(req)
	case ActionAdd:
		return s.handleAdd(req)
	case ActionStats:
		return s.handleStats(req)
	}
	return s.sendError(req.ID, fmt.Sprintf("unknown action: %s", req.Action), CodeBadRequest)
}

func (s *Server) handleCheck(req Request) error {
	start := time.Now()
	known := s.checker.Check(req.Word)
	return s.send(WordResponse{
		ID:        req.ID,
		Word:      req.Word,
		Known:     known,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request) error {
	start := time.Now()
	known := s.checker.Check(req.Word)
	suggestions := s.checker.Suggest(req.Word)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for '%s'", elapsed, req.Word)

	return s.send(WordResponse{
		ID:          req.ID,
		Word:        req.Word,
		Known:       known,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleAdd(req Request) error {
	added := s.checker.AddWord(req.Word)
	return s.send(AddResponse{
		ID:    req.ID,
		Word:  req.Word,
		Added: added,
		Words: s.checker.Stats()["totalWords"],
	})
}

func (s *Server) handleStats(req Request) error {
	stats := s.checker.Stats()
	stats["requests"] = s.requests
	return s.send(StatsResponse{ID: req.ID, Stats: stats})
}

// send encodes one response and flushes it so that the client never waits
// on a buffered frame.
func (s *Server) send(v any) error {
	if err := s.encoder.Encode(v); err != nil {
		log.Errorf("Marshaling response: %v", err)
		return fmt.Errorf("write response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
