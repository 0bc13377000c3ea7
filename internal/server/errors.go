package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/extraction"
)

// ErrBodyTooLarge is returned when a request body exceeds maxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// ErrMalformedBody wraps JSON decoding failures.
type ErrMalformedBody struct {
	Cause error
}

func (e *ErrMalformedBody) Error() string {
	return fmt.Sprintf("invalid request body: %v", e.Cause)
}

func (e *ErrMalformedBody) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalid    *catalog.InvalidInputError
		notFound   *catalog.NotFoundError
		malformed  *ErrMalformedBody
		validation validator.ValidationErrors
		document   *extraction.DocumentError
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, extraction.ErrUnsupportedDocument):
		return http.StatusUnsupportedMediaType
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &malformed), errors.As(err, &validation), errors.As(err, &document):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and writes it. Server errors are logged and
// their detail withheld from the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		s.errorResponse(w, status, "internal server error")
		return
	}

	message := err.Error()
	var (
		invalid   *catalog.InvalidInputError
		malformed *ErrMalformedBody
	)
	switch {
	case errors.As(err, &invalid):
		message = invalid.Message
	case errors.As(err, &malformed):
		s.log.Debug("malformed request body",
			"request_id", RequestID(r.Context()),
			"path", r.URL.Path,
			"error", malformed.Cause,
		)
		message = "invalid request body"
	}
	s.errorResponse(w, status, message)
}

// decodeBody reads a JSON body into dst. An empty body is allowed when
// allowEmpty is set and leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	case errors.As(err, &tooLarge):
		return ErrBodyTooLarge
	default:
		return &ErrMalformedBody{Cause: err}
	}
}
