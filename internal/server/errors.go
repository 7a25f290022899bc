package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-insight/internal/ingestion"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		unsupported *ingestion.UnsupportedTypeError
		extraction  *ingestion.ExtractionError
		empty       *ingestion.EmptyDocumentError
		validation  validator.ValidationErrors
	)

	switch {
	case errors.As(err, &unsupported):
		return http.StatusBadRequest
	case errors.As(err, &empty):
		return http.StatusBadRequest
	case errors.As(err, &extraction):
		return http.StatusBadRequest
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, ingestion.ErrHTTPRequestFailed),
		errors.Is(err, ingestion.ErrContentExtractionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
