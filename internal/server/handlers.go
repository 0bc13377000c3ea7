package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/extraction"
	"github.com/jonathan/skill-matcher/internal/ranking"
	"github.com/jonathan/skill-matcher/internal/types"
)

// maxBodyBytes caps JSON request bodies; resumes pasted as text stay well below it.
const maxBodyBytes = 1 << 20

// maxUploadBytes caps resume uploads.
const maxUploadBytes = 10 << 20

func errSkillsRequired() error {
	return &catalog.InvalidInputError{Field: "skills", Message: "skills array required"}
}

// decodeSkills reads and validates a {skills} body. Anything other than an
// array of strings is an InvalidInputError; an empty array is valid.
func (s *Server) decodeSkills(w http.ResponseWriter, r *http.Request) ([]string, error) {
	var req types.SkillsRequest
	if err := s.decodeSkillsBody(w, r, &req, false); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, errSkillsRequired()
	}
	skills, err := req.SkillList()
	if err != nil {
		return nil, errSkillsRequired()
	}
	return skills, nil
}

// decodeSkillsBody is decodeBody with decoder failures reported as a
// missing skills array. The decoder detail is only logged.
func (s *Server) decodeSkillsBody(w http.ResponseWriter, r *http.Request, req *types.SkillsRequest, allowEmpty bool) error {
	err := decodeBody(w, r, req, allowEmpty)
	var malformed *ErrMalformedBody
	if errors.As(err, &malformed) {
		s.log.Debug("malformed skills body",
			"request_id", RequestID(r.Context()),
			"error", malformed.Cause,
		)
		return errSkillsRequired()
	}
	return err
}

// handleMatch scores every opportunity against the student's skills.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	skills, err := s.decodeSkills(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	results, err := s.catalog.MatchAll(skills)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, results)
}

// handleMatchOne scores a single opportunity. A missing body or skills
// field matches nothing rather than failing.
func (s *Server) handleMatchOne(w http.ResponseWriter, r *http.Request) {
	var req types.SkillsRequest
	if err := s.decodeSkillsBody(w, r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}
	skills, err := req.SkillList()
	if err != nil {
		s.writeError(w, r, errSkillsRequired())
		return
	}

	result, err := s.catalog.MatchOne(r.PathValue("id"), skills)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	skills, err := s.decodeSkills(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	recs, err := ranking.RecommendWithOptions(s.catalog, skills, s.resources, ranking.Options{GroupBy: s.groupBy})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, recs)
}

// handleExtractSkills always answers 200 once the body carries text; the
// extractor degrades to the vocabulary scan on its own.
func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req types.ExtractRequest
	if err := decodeBody(w, r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.writeError(w, r, &catalog.InvalidInputError{Field: "text", Message: "text required"})
		return
	}

	s.extract(w, r, req.Text)
}

// handleExtractSkillsUpload accepts a multipart "file" field holding a text,
// HTML, PDF or DOCX resume.
func (s *Server) handleExtractSkillsUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, r, ErrBodyTooLarge)
			return
		}
		s.writeError(w, r, &catalog.InvalidInputError{Field: "file", Message: "file required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	text, err := extraction.DocumentText(header.Filename, data)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if strings.TrimSpace(text) == "" {
		s.writeError(w, r, &catalog.InvalidInputError{Field: "file", Message: "no text found in document"})
		return
	}

	s.extract(w, r, text)
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request, text string) {
	result := s.extractor.ExtractDetailed(r.Context(), text)
	s.log.Debug("skills extracted",
		"request_id", RequestID(r.Context()),
		"source", result.Source,
		"count", len(result.Skills),
	)

	skills := result.Skills
	if skills == nil {
		skills = []string{}
	}
	s.jsonResponse(w, http.StatusOK, types.ExtractResponse{Skills: skills})
}

func (s *Server) handleListOpportunities(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.All())
}

func (s *Server) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	opp, err := s.catalog.Get(r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, opp)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"opportunities": s.catalog.Len(),
	})
}
