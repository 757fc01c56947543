package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/hashutil"
	"toolbox/internal/infra/telemetry"
)

const maxRunBodyBytes = 16 << 20

type toolList struct {
	Tools []domain.ToolDescriptor `json:"tools"`
}

type matchList struct {
	Query   string               `json:"query"`
	Matches []domain.ScoredMatch `json:"matches"`
}

type recentList struct {
	Tools []domain.ToolDescriptor `json:"tools"`
}

// runRequest is the body of POST /api/tools/{slug}/run. Binary input is
// sent base64 encoded in inputBase64; input carries plain text.
type runRequest struct {
	Args        []string          `json:"args"`
	Options     map[string]string `json:"options"`
	Input       string            `json:"input"`
	InputBase64 string            `json:"inputBase64"`
}

type runResponse struct {
	Tool   string            `json:"tool"`
	Result domain.ToolResult `json:"result"`
}

func (s *Server) handleListTools(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		if raw := r.URL.Query().Get("category"); raw != "" {
			category := domain.Category(raw)
			if !category.Valid() {
				s.writeError(w, r, domain.InvalidInput("api.list", "unknown category %q", raw))
				return
			}
			s.writeTools(w, r, s.workspace.ToolsInCategory(category))
			return
		}
		s.writeTools(w, r, s.workspace.Tools())
		return
	}
	matches := s.workspace.Search(query)
	if matches == nil {
		matches = []domain.ScoredMatch{}
	}
	s.writeCachedJSON(w, r, hashutil.MatchesETag(s.logger, matches), matchList{Query: query, Matches: matches})
}

func (s *Server) handleFeatured(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			s.writeError(w, r, domain.InvalidInput("api.featured", "limit must be a non-negative integer"))
			return
		}
		limit = parsed
	}
	s.writeTools(w, r, s.workspace.Featured(limit))
}

func (s *Server) handleShowTool(w http.ResponseWriter, r *http.Request) {
	descriptor, err := s.workspace.Find(r.PathValue("slug"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, descriptor)
}

func (s *Server) handleRunTool(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if _, err := s.workspace.Find(slug); err != nil {
		s.writeError(w, r, err)
		return
	}

	req, err := decodeRunRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	session, err := s.workspace.Start(r.Context(), slug)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := session.Run(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, runResponse{Tool: slug, Result: result})
}

func decodeRunRequest(w http.ResponseWriter, r *http.Request) (domain.ToolRequest, error) {
	const op = "api.run"
	var body runRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRunBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.ToolRequest{}, domain.InvalidInput(op, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return domain.ToolRequest{}, domain.InvalidInput(op, "invalid request body: %v", err)
	}

	req := domain.ToolRequest{Args: body.Args, Options: body.Options}
	switch {
	case body.InputBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(body.InputBase64)
		if err != nil {
			return domain.ToolRequest{}, domain.InvalidInput(op, "inputBase64 is not valid base64")
		}
		req.Input = decoded
	case body.Input != "":
		req.Input = []byte(body.Input)
	}
	return req, nil
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, recentList{Tools: nonNil(s.workspace.Recent())})
}

func (s *Server) handleVisit(w http.ResponseWriter, r *http.Request) {
	if err := s.workspace.Visit(r.Context(), r.PathValue("slug")); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, recentList{Tools: nonNil(s.workspace.Recent())})
}

func (s *Server) handleClearRecent(w http.ResponseWriter, r *http.Request) {
	if err := s.workspace.ClearRecent(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeTools(w http.ResponseWriter, r *http.Request, tools []domain.ToolDescriptor) {
	tools = nonNil(tools)
	s.writeCachedJSON(w, r, hashutil.ToolsETag(s.logger, tools), toolList{Tools: tools})
}

// writeCachedJSON answers 304 when the client already holds etag.
func (s *Server) writeCachedJSON(w http.ResponseWriter, r *http.Request, etag string, body any) {
	if etag != "" {
		w.Header().Set("ETag", etag)
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	s.writeJSON(w, r, http.StatusOK, body)
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		telemetry.LoggerWithRequest(r.Context(), s.logger).Warn("write response failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)
	if status >= http.StatusInternalServerError {
		telemetry.LoggerWithRequest(r.Context(), s.logger).Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, r, status, body)
}

func nonNil(tools []domain.ToolDescriptor) []domain.ToolDescriptor {
	if tools == nil {
		return []domain.ToolDescriptor{}
	}
	return tools
}
