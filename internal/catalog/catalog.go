// Package catalog holds the immutable opportunity catalog and scans it with the match engine.
package catalog

import (
	"fmt"

	"github.com/jonathan/skill-matcher/internal/skills"
	"github.com/jonathan/skill-matcher/internal/types"
)

// Catalog is a read-only snapshot of opportunities, safe for concurrent use.
// It is built once at startup and passed explicitly to whatever needs it.
type Catalog struct {
	entries []types.Opportunity
	index   map[string]int
}

// New builds a Catalog from entries, copying them so later mutation of the
// input cannot leak in. Ids must be present and unique. Entries without
// required skills are kept; they score 0 against any student.
func New(entries []types.Opportunity) (*Catalog, error) {
	c := &Catalog{
		entries: make([]types.Opportunity, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i := range entries {
		opp := entries[i].Clone()
		if err := types.ValidateOpportunity(&opp); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, opp.ID, err)
		}
		if _, dup := c.index[opp.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate opportunity id %q", i, opp.ID)
		}
		c.index[opp.ID] = len(c.entries)
		c.entries = append(c.entries, opp)
	}

	return c, nil
}

// Len returns the number of opportunities.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// All returns a copy of every opportunity in catalog order.
func (c *Catalog) All() []types.Opportunity {
	out := make([]types.Opportunity, len(c.entries))
	for i := range c.entries {
		out[i] = c.entries[i].Clone()
	}
	return out
}

// Get returns a copy of the opportunity with the given id.
func (c *Catalog) Get(id string) (types.Opportunity, error) {
	i, ok := c.index[id]
	if !ok {
		return types.Opportunity{}, &NotFoundError{ID: id}
	}
	return c.entries[i].Clone(), nil
}

// Skills returns every required skill in the catalog once, in first-seen
// order. Spellings that normalize to the same skill keep the first one.
func (c *Catalog) Skills() []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range c.entries {
		for _, s := range c.entries[i].Required {
			key := skills.Normalize(s)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
