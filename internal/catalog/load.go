package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/jonathan/skill-matcher/internal/schemas"
	"github.com/jonathan/skill-matcher/internal/types"
)

//go:embed data/opportunities.json
var defaultCatalog []byte

// Format identifies how catalog bytes are encoded
type Format string

// Supported catalog formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from the file extension; anything that is
// not .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Load(defaultCatalog, FormatJSON, "(embedded)")
}

// LoadFile reads a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Message: "catalog path is empty"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	return Load(data, FormatForPath(path), path)
}

// Load decodes catalog bytes, validates them against the catalog schema and
// builds an immutable Catalog. name is used only in error messages.
func Load(data []byte, format Format, name string) (*Catalog, error) {
	var entries []types.Opportunity

	switch format {
	case FormatJSON, "":
		if err := schemas.ValidateCatalog(data); err != nil {
			return nil, &LoadError{Path: name, Message: "catalog failed schema validation", Cause: err}
		}
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, &LoadError{Path: name, Message: "failed to parse json", Cause: err}
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, &LoadError{Path: name, Message: "failed to parse yaml", Cause: err}
		}
		// YAML is checked against the same schema through its JSON rendering.
		raw, err := json.Marshal(entries)
		if err != nil {
			return nil, &LoadError{Path: name, Message: "failed to re-encode yaml", Cause: err}
		}
		if err := schemas.ValidateCatalog(raw); err != nil {
			return nil, &LoadError{Path: name, Message: "catalog failed schema validation", Cause: err}
		}
	default:
		return nil, &LoadError{Path: name, Message: fmt.Sprintf("unsupported catalog format %q", format)}
	}

	cat, err := New(entries)
	if err != nil {
		return nil, &LoadError{Path: name, Message: "invalid catalog entry", Cause: err}
	}
	return cat, nil
}
