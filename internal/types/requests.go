package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest represents the JSON request to analyze raw resume text.
type AnalyzeRequest struct {
	Text           string `json:"text" validate:"required"`
	JobDescription string `json:"job_desc,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// AnalyzeResponse wraps the analysis and the optional job-match score.
type AnalyzeResponse struct {
	ResumeData *Analysis `json:"resume_data"`
	MatchScore *float64  `json:"match_score,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
