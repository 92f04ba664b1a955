package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/skirmish/internal/domain"
	"github.com/osse101/skirmish/internal/validation"
)

//go:embed armor-catalog.schema.json
var schema []byte

// Loader reads catalog files and checks them against the catalog schema.
type Loader struct {
	validator validation.SchemaValidator
}

// NewLoader creates a loader with the embedded schema registered.
func NewLoader() (*Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.AddSchema(SchemaName, schema); err != nil {
		return nil, fmt.Errorf("register catalog schema: %w", err)
	}
	return &Loader{validator: v}, nil
}

// LoadFile reads a JSON or YAML catalog, picking the format from the extension.
func (l *Loader) LoadFile(path string) (*Catalog, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON:
		format = FormatJSON
	case ExtYAML, ExtYML:
		format = FormatYAML
	default:
		return nil, fmt.Errorf("%w: unsupported file type %s", domain.ErrInvalidCatalog, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	c, err := l.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Decode parses catalog data in the given format.
func (l *Loader) Decode(data []byte, format string) (*Catalog, error) {
	var doc document

	switch format {
	case FormatJSON:
		if err := l.check(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	case FormatYAML:
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
		// The schema is checked against the JSON rendition of the document
		asJSON, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
		if err := l.check(asJSON); err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
		}
	default:
		return nil, fmt.Errorf("%w: unknown format %q", domain.ErrInvalidCatalog, format)
	}

	return New(doc.ArmorTypes)
}

func (l *Loader) check(data []byte) error {
	if err := l.validator.ValidateBytes(data, SchemaName); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	return nil
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	return l.LoadFile(path)
}
