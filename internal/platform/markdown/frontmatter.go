package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---\n"

// RenderNote writes meta as YAML frontmatter followed by body.
func RenderNote(meta any, body string) (string, error) {
	raw, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString(fence)
	buf.Write(raw)
	buf.WriteString(fence)
	if body != "" && !strings.HasPrefix(body, "\n") {
		buf.WriteString("\n")
	}
	buf.WriteString(body)
	return buf.String(), nil
}

// ParseNote decodes the frontmatter of note into meta and returns the body.
// A note without frontmatter leaves meta untouched.
func ParseNote(note string, meta any) (string, error) {
	if !strings.HasPrefix(note, fence) {
		return note, nil
	}
	rest := strings.TrimPrefix(note, fence)
	end := strings.Index(rest, "\n"+fence)
	if end < 0 {
		return "", fmt.Errorf("invalid frontmatter: missing closing fence")
	}
	if err := yaml.Unmarshal([]byte(rest[:end]), meta); err != nil {
		return "", fmt.Errorf("unmarshal frontmatter: %w", err)
	}
	return strings.TrimPrefix(rest[end+len("\n"+fence):], "\n"), nil
}
