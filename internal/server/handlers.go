package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/pipeline"
	"github.com/jonathan/resume-insight/internal/types"
)

// maxUploadSize caps resume uploads at 10 MB.
const maxUploadSize = 10 << 20

// handleRoot reports service liveness
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Resume Insight API is running",
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParseResume accepts a multipart resume upload (pdf, docx, or txt)
// with an optional job_desc form field and returns the full analysis.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	log.Printf("[%s] parse-resume: %s (%d bytes)", requestID, header.Filename, len(data))

	text, err := ingestion.ExtractText(data, header.Filename)
	if err != nil {
		log.Printf("[%s] extraction failed: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.analyze(w, r, requestID, text, r.FormValue("job_desc"))
}

// handleAnalyze accepts raw resume text as JSON. A job description may be
// supplied inline or as a URL to fetch.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	jobDesc := req.JobDescription
	if strings.TrimSpace(jobDesc) == "" && req.JobURL != "" {
		log.Printf("[%s] fetching job posting: %s", requestID, req.JobURL)
		fetched, err := ingestion.JobDescriptionFromURL(r.Context(), req.JobURL, s.useBrowser, false)
		if err != nil {
			log.Printf("[%s] job fetch failed: %v", requestID, err)
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		jobDesc = fetched
	}

	s.analyze(w, r, requestID, req.Text, jobDesc)
}

// analyze runs the pipeline and writes the response shared by both
// analysis endpoints.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request, requestID, text, jobDesc string) {
	result, err := pipeline.Analyze(r.Context(), text, pipeline.Options{
		Taxonomy:       s.taxonomy,
		JobDescription: jobDesc,
	})
	if err != nil {
		log.Printf("[%s] analysis failed: %v", requestID, err)
		s.errorResponse(w, HTTPStatus(err), "Error processing resume: "+err.Error())
		return
	}

	log.Printf("[%s] analysis complete: score=%d skills=%d", requestID,
		result.Analysis.ResumeScore, result.Analysis.SkillCount())

	s.jsonResponse(w, http.StatusOK, types.AnalyzeResponse{
		ResumeData: result.Analysis,
		MatchScore: result.MatchScore,
	})
}
