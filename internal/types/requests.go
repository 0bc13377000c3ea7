//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = validator.New()

// ErrNullSkill is returned by SkillList when the skills array holds a null.
var ErrNullSkill = errors.New("skills must be strings")

// SkillsRequest is the body of the match and recommendation endpoints.
// A missing "skills" key decodes to a nil slice and fails validation;
// an explicit empty array is accepted. Elements are pointers so a JSON
// null element can be told apart from "".
type SkillsRequest struct {
	Skills []*string `json:"skills" validate:"required"`
}

// SkillList returns the skills as strings, or nil when the field was absent.
func (r *SkillsRequest) SkillList() ([]string, error) {
	if r.Skills == nil {
		return nil, nil
	}
	out := make([]string, len(r.Skills))
	for i, s := range r.Skills {
		if s == nil {
			return nil, ErrNullSkill
		}
		out[i] = *s
	}
	return out, nil
}

// Validate validates the SkillsRequest using the validator.
func (r *SkillsRequest) Validate() error {
	return validate.Struct(r)
}

// ExtractRequest is the body of the skill extraction endpoint.
type ExtractRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the ExtractRequest using the validator.
func (r *ExtractRequest) Validate() error {
	return validate.Struct(r)
}

// ExtractResponse carries the extracted skill list.
type ExtractResponse struct {
	Skills []string `json:"skills"`
}

// ValidateOpportunity checks struct-level constraints on a catalog entry.
func ValidateOpportunity(o *Opportunity) error {
	return validate.Struct(o)
}
