// Package partyfile reads and writes party documents as JSON or YAML files.
package partyfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ZuzannaKonieczna/partyplan/internal/domain"
)

// Store implements domain.DocumentStore.
type Store struct {
	format domain.DocumentFormat
	indent int
}

// New creates a Store. format is used for paths whose extension names no format;
// indent is the JSON indentation width.
func New(format domain.DocumentFormat, indent int) *Store {
	if format == "" {
		format = domain.FormatJSON
	}
	if indent < 0 {
		indent = 0
	}
	return &Store{format: format, indent: indent}
}

// FormatFor returns the format used for path.
func (s *Store) FormatFor(path string) domain.DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return domain.FormatYAML
	case ".json":
		return domain.FormatJSON
	default:
		return s.format
	}
}

// Read loads the document at path.
func (s *Store) Read(path string) (*domain.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	format := s.FormatFor(path)

	var raw map[string]any
	if err := unmarshal(format, content, &raw); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, domain.ErrMalformedDocument)
	}
	if err := checkRequired(raw); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, domain.ErrMalformedDocument)
	}

	var doc domain.Document
	if err := unmarshal(format, content, &doc); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, domain.ErrMalformedDocument)
	}
	return &doc, nil
}

// Write stores doc at path, replacing any existing file.
func (s *Store) Write(path string, doc *domain.Document) (err error) {
	var buf bytes.Buffer
	if err := s.encode(&buf, s.FormatFor(path), doc); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if _, err := buf.WriteTo(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Store) encode(w io.Writer, format domain.DocumentFormat, doc *domain.Document) error {
	if format == domain.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(s.indent, 2))
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", s.indent))
	return enc.Encode(doc)
}

func unmarshal(format domain.DocumentFormat, content []byte, v any) error {
	if format == domain.FormatYAML {
		return yaml.Unmarshal(content, v)
	}
	return json.Unmarshal(content, v)
}

var (
	documentKeys = []string{"celebrant", "date", "location", "budget", "guests", "tasks"}
	personKeys   = []string{"name", "age"}
	taskKeys     = []string{"description", "deadline", "responsible_name", "status"}
)

// checkRequired reports the first required field missing from a decoded document.
func checkRequired(raw map[string]any) error {
	if raw == nil {
		return errors.New("empty document")
	}
	if err := hasKeys("document", raw, documentKeys); err != nil {
		return err
	}

	celebrant, ok := raw["celebrant"].(map[string]any)
	if !ok {
		return errors.New("celebrant: expected an object")
	}
	if err := hasKeys("celebrant", celebrant, personKeys); err != nil {
		return err
	}

	if err := checkEntries("guests", raw["guests"], personKeys); err != nil {
		return err
	}
	return checkEntries("tasks", raw["tasks"], taskKeys)
}

func checkEntries(field string, value any, keys []string) error {
	entries, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%s: expected a list", field)
	}
	for i, e := range entries {
		entry, ok := e.(map[string]any)
		if !ok {
			return fmt.Errorf("%s[%d]: expected an object", field, i)
		}
		if err := hasKeys(fmt.Sprintf("%s[%d]", field, i), entry, keys); err != nil {
			return err
		}
	}
	return nil
}

func hasKeys(where string, m map[string]any, keys []string) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("%s: missing %q", where, k)
		}
	}
	return nil
}

// Ensure Store implements DocumentStore.
var _ domain.DocumentStore = (*Store)(nil)
