package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/filtering"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/store"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxUploadBytes bounds the size of a single resume upload.
const maxUploadBytes = 10 << 20

// FilterRequest represents the request body for /resumes/filter.
type FilterRequest struct {
	Skills       []string `json:"skills" validate:"omitempty,dive,min=1"`
	Year         string   `json:"year" validate:"omitempty,numeric"`
	GPAThreshold *float64 `json:"degree_gpa" validate:"omitempty,gte=0"`
}

// FilterMatch is one matched resume in a filter response.
type FilterMatch struct {
	ID              uuid.UUID           `json:"id"`
	Filename        string              `json:"filename"`
	Skills          []string            `json:"skills"`
	DegreeInfo      types.DegreeSummary `json:"degree_info"`
	ExperienceCount int                 `json:"experience_count"`
}

// FilterResponse represents the response for /resumes/filter.
type FilterResponse struct {
	Matches []FilterMatch `json:"matches"`
	Count   int           `json:"count"`
}

// SkillsResponse represents the response for /skills and /skills/universe.
type SkillsResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// YearsResponse represents the response for /years.
type YearsResponse struct {
	Years []string `json:"years"`
	Count int      `json:"count"`
}

// handleUploadResume parses an uploaded resume document and stores the
// resulting record. The document arrives either as a multipart form field
// named "file" or as the raw request body with a "filename" query parameter.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	content, filename, err := readUpload(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	record, meta, err := s.parser.ParseDocument(r.Context(), content, filename)
	if err != nil {
		s.handleError(w, err)
		return
	}

	resume := store.NewStoredResume(filename, meta, record)
	if err := s.store.Save(r.Context(), resume); err != nil {
		s.handleError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// readUpload extracts the document bytes and filename from an upload request.
func readUpload(r *http.Request) ([]byte, string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", &ErrBadUpload{Message: "invalid multipart form: " + err.Error()}
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", &ErrBadUpload{Message: "missing form field 'file'"}
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, "", &ErrBadUpload{Message: "failed to read upload: " + err.Error()}
		}
		return content, header.Filename, nil
	}

	content, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return nil, "", &ErrBadUpload{Message: "failed to read request body: " + err.Error()}
	}
	if len(content) == 0 {
		return nil, "", &ErrBadUpload{Message: "empty request body"}
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "resume.txt"
	}
	return content, filename, nil
}

// handleListResumes returns all stored resumes, newest first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.List(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	if resumes == nil {
		resumes = []*store.StoredResume{}
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns one stored resume by ID.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	resume, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = &ErrResumeNotFound{ID: id}
		}
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes one stored resume by ID.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		s.handleError(w, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			err = &ErrResumeNotFound{ID: id}
		}
		s.handleError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleFilterResumes screens all stored resumes against the requested
// criteria and returns the matches in upload order, newest first.
func (s *Server) handleFilterResumes(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.handleError(w, validationError(err))
		return
	}

	resumes, err := s.store.List(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	criteria := filtering.Criteria{
		Skills:       req.Skills,
		Year:         req.Year,
		GPAThreshold: req.GPAThreshold,
	}

	matches := []FilterMatch{}
	for _, resume := range resumes {
		if resume.Record == nil || !criteria.Match(resume.Record) {
			continue
		}
		year, gpa := parsing.DegreeFacts(resume.Record)
		matches = append(matches, FilterMatch{
			ID:              resume.ID,
			Filename:        resume.Filename,
			Skills:          resume.Record.Skills,
			DegreeInfo:      types.DegreeSummary{GraduationYear: year, GPA: gpa},
			ExperienceCount: len(resume.Record.Experience),
		})
	}

	s.jsonResponse(w, http.StatusOK, FilterResponse{Matches: matches, Count: len(matches)})
}

// handleSkills returns the full known-skill lexicon, the source for
// filter criteria suggestions.
func (s *Server) handleSkills(w http.ResponseWriter, _ *http.Request) {
	names := s.lexicon.Names()
	s.jsonResponse(w, http.StatusOK, SkillsResponse{Skills: names, Count: len(names)})
}

// handleSkillsUniverse returns the distinct skills present across all
// stored resumes, lexicon members first.
func (s *Server) handleSkillsUniverse(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.List(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	skillLists := make([][]string, 0, len(resumes))
	for _, resume := range resumes {
		if resume.Record != nil {
			skillLists = append(skillLists, resume.Record.Skills)
		}
	}

	universe := skills.Universe(s.lexicon, skillLists...)
	s.jsonResponse(w, http.StatusOK, SkillsResponse{Skills: universe, Count: len(universe)})
}

// handleYears returns the distinct degree graduation years across all
// stored resumes, newest first.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.store.List(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}

	records := make([]*types.ResumeRecord, 0, len(resumes))
	for _, resume := range resumes {
		if resume.Record != nil {
			records = append(records, resume.Record)
		}
	}

	years := filtering.DegreeYears(records)
	s.jsonResponse(w, http.StatusOK, YearsResponse{Years: years, Count: len(years)})
}

// parseID reads the {id} path value as a UUID.
func parseID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}
	return id, nil
}

// validationError converts validator errors into a single ErrValidation.
func validationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return &ErrValidation{Field: fe.Field(), Message: "failed " + fe.Tag() + " validation"}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
