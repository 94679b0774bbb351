package out

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"gentlemind/internal/modules/journal/domain"
	"gentlemind/internal/platform/markdown"
)

// JSONImporter reads the array written by JSONExporter, which is also the
// stored history format.
type JSONImporter struct{}

func (JSONImporter) Format() string { return "json" }

func (JSONImporter) Import(r io.Reader) ([]domain.Record, error) {
	var records []domain.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

type YAMLImporter struct{}

func (YAMLImporter) Format() string { return "yaml" }

func (YAMLImporter) Import(r io.Reader) ([]domain.Record, error) {
	var doc struct {
		SchemaVersion int             `yaml:"schema_version"`
		Sessions      []domain.Record `yaml:"sessions"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if doc.SchemaVersion > domain.SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d", doc.SchemaVersion)
	}
	return doc.Sessions, nil
}

// MarkdownImporter reads the notes written by MarkdownExporter. Only the
// frontmatter of each note is used.
type MarkdownImporter struct{}

func (MarkdownImporter) Format() string { return "markdown" }

func (MarkdownImporter) Import(r io.Reader) ([]domain.Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read notes: %w", err)
	}
	var records []domain.Record
	note := strings.TrimLeft(string(raw), "\n")
	for strings.HasPrefix(note, "---\n") {
		var rec domain.Record
		body, err := markdown.ParseNote(note, &rec)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", len(records)+1, err)
		}
		records = append(records, rec)

		next := strings.Index(body, "\n---\n")
		if next < 0 {
			break
		}
		note = body[next+1:]
	}
	return records, nil
}
