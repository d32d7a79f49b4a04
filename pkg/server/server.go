package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/hmeline/birdserve/internal/cache"
	"github.com/hmeline/birdserve/internal/logger"
	"github.com/hmeline/birdserve/pkg/config"
	"github.com/hmeline/birdserve/pkg/search"
	"github.com/hmeline/birdserve/pkg/vocab"
)

// request is the superset of all inbound messages; the populated
// fields decide how it gets dispatched.
type request struct {
	ID         string `msgpack:"id"`
	Query      string `msgpack:"q"`
	Limit      int    `msgpack:"l"`
	Action     string `msgpack:"action"`
	MaxResults *int   `msgpack:"max_results"`
	FuzzyCap   *int   `msgpack:"fuzzy_cap"`
}

// Server handles the IPC for species search over stdin/stdout.
type Server struct {
	vocabulary *vocab.Vocabulary
	searcher   *search.Searcher
	cfg        *config.Config
	configPath string
	cache      *cache.LRU[[]search.Suggestion]
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
	log        *log.Logger
}

// NewServer creates a search server reading msgpack requests from
// stdin and writing responses to stdout.
func NewServer(v *vocab.Vocabulary, cfg *config.Config, configPath string) *Server {
	return NewServerWithStreams(v, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithStreams creates a server over explicit streams.
func NewServerWithStreams(v *vocab.Vocabulary, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	s := &Server{
		vocabulary: v,
		searcher:   search.NewSearcherWithLimits(v, cfg.Matcher.Limits()),
		cfg:        cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
		log:        logger.New("ipc"),
	}
	if cfg.Server.EnableCache {
		s.cache = cache.NewLRU[[]search.Suggestion](cfg.Server.CacheEntries)
	}
	return s
}

// Start begins the request loop. Returns nil on EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting server")
	s.send(map[string]string{"status": "ready"})

	for {
		var req request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected (EOF)")
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches one decoded request.
func (s *Server) handleRequest(req request) {
	if req.Action != "" {
		s.handleManage(req)
		return
	}
	s.handleSearch(req)
}

// handleSearch validates the query, runs the matcher (through the
// response cache when enabled) and answers with ranked suggestions.
func (s *Server) handleSearch(req request) {
	query := req.Query

	if query == "" {
		s.sendError(req.ID, "Missing 'q' parameter", 400)
		s.log.Debug("Query is empty in request")
		return
	}
	if len(query) < s.cfg.Server.MinQuery {
		s.sendError(req.ID, fmt.Sprintf("Query must be at least %d characters", s.cfg.Server.MinQuery), 400)
		return
	}
	if len(query) > s.cfg.Server.MaxQuery {
		s.sendError(req.ID, fmt.Sprintf("Query exceeds maximum length of %d characters", s.cfg.Server.MaxQuery), 400)
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.Matcher.MaxResults
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.lookup(query, limit)
	elapsed := time.Since(start)

	response := SearchResponse{
		ID:          req.ID,
		Suggestions: make([]SearchSuggestion, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
	for i, sg := range suggestions {
		response.Suggestions[i] = SearchSuggestion{Term: sg.Term, Tier: sg.Tier.String()}
	}
	s.send(response)
}

// lookup runs a search through the response cache when enabled.
func (s *Server) lookup(query string, limit int) []search.Suggestion {
	if s.cache == nil {
		return truncate(s.searcher.Search(query), limit)
	}
	key := query + "\x00" + strconv.Itoa(limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached
	}
	result := truncate(s.searcher.Search(query), limit)
	s.cache.Set(key, result)
	return result
}

func truncate(suggestions []search.Suggestion, limit int) []search.Suggestion {
	if len(suggestions) > limit {
		return suggestions[:limit]
	}
	return suggestions
}

// handleManage processes management actions.
func (s *Server) handleManage(req request) {
	switch req.Action {
	case "get_info":
		resp := ManageResponse{
			ID:         req.ID,
			Status:     "ok",
			TermCount:  s.vocabulary.Len(),
			MaxResults: s.cfg.Matcher.MaxResults,
			FuzzyCap:   s.cfg.Matcher.FuzzyCap,
		}
		if s.cache != nil {
			resp.CacheHits, resp.CacheMiss = s.cache.Stats()
		}
		s.send(resp)
	case "set_limits":
		s.applyLimits(req)
	default:
		s.send(ManageResponse{
			ID:     req.ID,
			Status: "error",
			Error:  fmt.Sprintf("Unknown action: %s", req.Action),
		})
	}
}

// applyLimits updates matcher limits, rebuilds the searcher and
// flushes the cache so stale result compositions never leak out.
func (s *Server) applyLimits(req request) {
	if req.MaxResults == nil && req.FuzzyCap == nil {
		s.send(ManageResponse{ID: req.ID, Status: "error", Error: "set_limits requires max_results or fuzzy_cap"})
		return
	}
	if req.MaxResults != nil {
		if *req.MaxResults < 1 || *req.MaxResults > s.cfg.Server.MaxLimit {
			s.send(ManageResponse{ID: req.ID, Status: "error", Error: fmt.Sprintf("max_results must be between 1 and %d", s.cfg.Server.MaxLimit)})
			return
		}
		s.cfg.Matcher.MaxResults = *req.MaxResults
	}
	if req.FuzzyCap != nil {
		if *req.FuzzyCap < 1 {
			s.send(ManageResponse{ID: req.ID, Status: "error", Error: "fuzzy_cap must be at least 1"})
			return
		}
		s.cfg.Matcher.FuzzyCap = *req.FuzzyCap
	}

	s.searcher = search.NewSearcherWithLimits(s.vocabulary, s.cfg.Matcher.Limits())
	if s.cache != nil {
		s.cache.Purge()
	}
	if s.configPath != "" {
		if err := config.SaveConfig(s.cfg, s.configPath); err != nil {
			s.log.Warnf("Failed to persist config update: %v", err)
		}
	}

	s.send(ManageResponse{
		ID:         req.ID,
		Status:     "ok",
		MaxResults: s.cfg.Matcher.MaxResults,
		FuzzyCap:   s.cfg.Matcher.FuzzyCap,
	})
}

// send marshals the given response and writes it to the client.
func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error payload
func (s *Server) sendError(id, message string, code int) {
	s.send(SearchError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
