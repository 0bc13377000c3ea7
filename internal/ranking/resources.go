package ranking

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/jonathan/skill-matcher/internal/types"
)

//go:embed data/resources.json
var defaultResources []byte

// ResourceTable maps a skill, spelled exactly as it appears in the catalog,
// to a place to learn it.
type ResourceTable map[string]types.LearningResource

// Lookup returns a copy of the resource for skill, or nil when none is known.
// Keys are compared literally.
func (t ResourceTable) Lookup(skill string) *types.LearningResource {
	r, ok := t[skill]
	if !ok {
		return nil
	}
	return &r
}

// DefaultResources returns the resource table bundled with the binary.
func DefaultResources() ResourceTable {
	var table ResourceTable
	if err := json.Unmarshal(defaultResources, &table); err != nil {
		panic(fmt.Sprintf("embedded resource table is invalid: %v", err))
	}
	return table
}

// LoadResourcesFile reads a resource table from a .json, .yaml or .yml file.
func LoadResourcesFile(path string) (ResourceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource table %s: %w", path, err)
	}

	var table ResourceTable
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &table)
	default:
		err = json.Unmarshal(data, &table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse resource table %s: %w", path, err)
	}

	for skill, r := range table {
		if strings.TrimSpace(skill) == "" {
			return nil, fmt.Errorf("resource table %s: empty skill key", path)
		}
		if r.URL == "" {
			return nil, fmt.Errorf("resource table %s: skill %q has no url", path, skill)
		}
	}
	if table == nil {
		table = ResourceTable{}
	}
	return table, nil
}
