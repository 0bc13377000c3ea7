package catalog

import "fmt"

// InvalidInputError indicates a request carried a missing or malformed skill list
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s - %s", e.Field, e.Message)
}

// NotFoundError indicates no catalog entry has the requested id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("opportunity not found: %s", e.ID)
}

// LoadError represents a failure reading or decoding catalog data
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load catalog %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load catalog %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// errSkillsRequired is returned by operations that need a skill list.
func errSkillsRequired() error {
	return &InvalidInputError{Field: "skills", Message: "skills array required"}
}
