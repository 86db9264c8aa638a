package adapter

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/fretviz/internal/model"
	"gopkg.in/yaml.v3"
)

// IndexFile is the name of the manifest written next to exported diagrams.
const IndexFile = "index.yaml"

// DiagramStore writes rendered diagrams to a directory.
type DiagramStore interface {
	SaveDiagram(dir m.Path, name string, d m.Diagram) (m.Path, error)
	SaveIndex(dir m.Path, entries []IndexEntry) (m.Path, error)
}

// IndexEntry describes one exported diagram in the manifest.
type IndexEntry struct {
	File    string   `yaml:"file"`
	Title   string   `yaml:"title"`
	Mode    string   `yaml:"mode"`
	Root    string   `yaml:"root"`
	Tuning  []string `yaml:"tuning"`
	Offsets []int    `yaml:"offsets"`
	Members int      `yaml:"members"`
}

// LocalDiagramStore writes SVG files to the local filesystem.
type LocalDiagramStore struct{}

// NewDiagramStore constructs a DiagramStore implementation.
func NewDiagramStore() DiagramStore {
	return &LocalDiagramStore{}
}

// SaveDiagram renders d as SVG into dir/<name>.svg and returns the file path.
func (s *LocalDiagramStore) SaveDiagram(dir m.Path, name string, d m.Diagram) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	var buf bytes.Buffer
	if err := RenderSVG(&buf, d); err != nil {
		return "", err
	}

	path := filepath.Join(string(dir), SafeFileName(name)+".svg")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return m.Path(path), nil
}

// SaveIndex writes the manifest of an export run.
func (s *LocalDiagramStore) SaveIndex(dir m.Path, entries []IndexEntry) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	data, err := yaml.Marshal(struct {
		Diagrams []IndexEntry `yaml:"diagrams"`
	}{Diagrams: entries})
	if err != nil {
		return "", fmt.Errorf("failed to marshal index: %w", err)
	}

	path := filepath.Join(string(dir), IndexFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return m.Path(path), nil
}

// SafeFileName maps a diagram name to an ASCII file stem: '#' becomes 's',
// anything outside [A-Za-z0-9._-] becomes '_'.
func SafeFileName(name string) string {
	var b strings.Builder

	for _, r := range name {
		switch {
		case r == '#':
			b.WriteRune('s')
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	if b.Len() == 0 {
		return "diagram"
	}

	return b.String()
}
