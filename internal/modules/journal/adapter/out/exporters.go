package out

import (
	"fmt"
	"io"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"gentlemind/internal/modules/journal/domain"
	"gentlemind/internal/platform/markdown"
)

type JSONExporter struct{}

func (JSONExporter) Format() string { return "json" }

func (JSONExporter) Export(w io.Writer, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}

type YAMLExporter struct{}

func (YAMLExporter) Format() string { return "yaml" }

func (YAMLExporter) Export(w io.Writer, records []domain.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := struct {
		SchemaVersion int             `yaml:"schema_version"`
		Sessions      []domain.Record `yaml:"sessions"`
	}{SchemaVersion: domain.SchemaVersion, Sessions: records}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return enc.Close()
}

// MarkdownExporter writes one note per session, each with its own
// frontmatter block.
type MarkdownExporter struct {
	Location *time.Location
}

func (MarkdownExporter) Format() string { return "markdown" }

func (e MarkdownExporter) Export(w io.Writer, records []domain.Record) error {
	loc := e.Location
	if loc == nil {
		loc = time.UTC
	}
	for i, r := range records {
		local := r.Date.In(loc)
		body := fmt.Sprintf("## %s\n\nMeditated %.2f min, feeling %s before.\n", local.Format("Mon 2 Jan 2006 15:04"), r.DurationMinutes, r.MoodBefore)
		note, err := markdown.RenderNote(r, body)
		if err != nil {
			return fmt.Errorf("render session %s: %w", r.ID, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, note); err != nil {
			return err
		}
	}
	return nil
}
