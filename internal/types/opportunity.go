// Package types provides type definitions for structured data used throughout the skill-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"time"
)

// OpportunityType classifies a catalog entry
type OpportunityType string

// Opportunity types accepted in the catalog
const (
	TypeInternship  OpportunityType = "internship"
	TypeStartupRole OpportunityType = "startup-role"
	TypeHackathon   OpportunityType = "hackathon"
)

// Opportunity is a single catalog entry. Entries are loaded once and never mutated.
type Opportunity struct {
	ID          string          `json:"id" yaml:"id" validate:"required"`
	Title       string          `json:"title" yaml:"title"`
	Company     string          `json:"company" yaml:"company"`
	Location    string          `json:"location,omitempty" yaml:"location"`
	Stipend     string          `json:"stipend,omitempty" yaml:"stipend"`
	Type        OpportunityType `json:"type,omitempty" yaml:"type" validate:"omitempty,oneof=internship startup-role hackathon"`
	Deadline    Date            `json:"deadline" yaml:"deadline"`
	Required    []string        `json:"requiredSkills" yaml:"requiredSkills"`
	NiceToHave  []string        `json:"niceToHave,omitempty" yaml:"niceToHave"`
	Tags        []string        `json:"tags,omitempty" yaml:"tags"`
	Description string          `json:"description,omitempty" yaml:"description"`
}

// Clone returns a deep copy so callers can never alias catalog slices.
func (o Opportunity) Clone() Opportunity {
	o.Required = cloneStrings(o.Required)
	o.NiceToHave = cloneStrings(o.NiceToHave)
	o.Tags = cloneStrings(o.Tags)
	return o
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// dateLayout is the calendar-date layout used on the wire
const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day, encoded as "YYYY-MM-DD".
// time.Time is held in a named field so its RFC 3339 JSON methods are not promoted.
type Date struct {
	Time time.Time
}

// NewDate builds a Date in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.Time.Format(dateLayout)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Both JSON and YAML
// decoders route through it.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, string(text))
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", string(text))
	}
	d.Time = t
	return nil
}

// String returns the date in wire format.
func (d Date) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Time.Format(dateLayout)
}
