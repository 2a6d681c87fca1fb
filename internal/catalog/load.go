// Package catalog provides the canonical skill catalog: an immutable mapping
// of canonical skill names to their accepted surface-form aliases.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

//go:embed skills.json
var defaultDataset []byte

//go:embed skills_schema.json
var datasetSchema []byte

//go:embed skills_entry_schema.json
var entrySchema []byte

// LoadError represents a failure to read or parse a catalog dataset.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// dataset is the on-disk shape of a skill catalog file. Entries stay raw so
// a single malformed entry can be skipped without rejecting the file.
type dataset struct {
	Skills []json.RawMessage `json:"skills"`
}

// Default builds the catalog from the embedded dataset. The embedded dataset
// is validated at build time by the package tests, so a failure here is a
// programming error.
func Default(log *zap.Logger) *Catalog {
	c, err := parseDataset(defaultDataset, "(embedded)", log)
	if err != nil {
		panic(fmt.Sprintf("embedded skill dataset is invalid: %v", err))
	}
	return c
}

// Load reads a skill catalog dataset from a JSON file. The file is validated
// against the dataset schema before parsing; individual malformed entries are
// skipped with a warning rather than failing the load.
func Load(path string, log *zap.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read dataset", Cause: err}
	}
	return parseDataset(data, path, log)
}

// parseDataset builds a catalog from raw dataset bytes. The fatal path is
// reserved for unreadable files and a broken top-level shape; an entry that
// violates the entry schema is skipped with a warning so the remaining
// entries still produce a usable catalog.
func parseDataset(data []byte, path string, log *zap.Logger) (*Catalog, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := validateSchema(datasetSchema, data); err != nil {
		return nil, &LoadError{Path: path, Message: "dataset does not match schema", Cause: err}
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse dataset JSON", Cause: err}
	}

	entries := make([]Entry, 0, len(ds.Skills))
	for i, raw := range ds.Skills {
		if err := validateSchema(entrySchema, raw); err != nil {
			log.Warn("skipping catalog entry that does not match schema",
				zap.String("path", path), zap.Int("index", i), zap.Error(err))
			continue
		}
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			log.Warn("skipping unparseable catalog entry",
				zap.String("path", path), zap.Int("index", i), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}

	return New(entries, log), nil
}

// validateSchema validates raw JSON bytes against an embedded JSON Schema.
func validateSchema(schema, data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed during load: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	for i, desc := range result.Errors() {
		if i > 0 {
			sb.WriteString("; ")
		}
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return fmt.Errorf("%s", sb.String())
}
