package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/skill-matcher/internal/catalog"
	"github.com/jonathan/skill-matcher/internal/extraction"
	"github.com/jonathan/skill-matcher/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	validationErr := (&types.SkillsRequest{}).Validate()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid input", err: &catalog.InvalidInputError{Field: "skills", Message: "skills array required"}, want: http.StatusBadRequest},
		{name: "wrapped invalid input", err: fmt.Errorf("match: %w", &catalog.InvalidInputError{Field: "skills"}), want: http.StatusBadRequest},
		{name: "not found", err: &catalog.NotFoundError{ID: "x"}, want: http.StatusNotFound},
		{name: "malformed body", err: &ErrMalformedBody{Cause: errors.New("unexpected EOF")}, want: http.StatusBadRequest},
		{name: "validator", err: validationErr, want: http.StatusBadRequest},
		{name: "too large", err: ErrBodyTooLarge, want: http.StatusRequestEntityTooLarge},
		{name: "unsupported document", err: &extraction.DocumentError{Name: "a.png", Cause: extraction.ErrUnsupportedDocument}, want: http.StatusUnsupportedMediaType},
		{name: "corrupt document", err: &extraction.DocumentError{Name: "a.pdf", Kind: extraction.KindPDF, Cause: errors.New("bad xref")}, want: http.StatusBadRequest},
		{name: "load error", err: &catalog.LoadError{Path: "c.json", Message: "boom"}, want: http.StatusInternalServerError},
		{name: "other", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestErrMalformedBody(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ErrMalformedBody{Cause: cause}

	assert.Equal(t, "invalid request body: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
}
