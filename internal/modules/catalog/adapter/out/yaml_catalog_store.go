package out

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"grindlock/internal/modules/catalog/domain"
	catalogout "grindlock/internal/modules/catalog/port/out"
)

//go:embed blind75.yaml
var defaultCatalog []byte

type catalogFile struct {
	Problems []problemEntry `yaml:"problems"`
}

type problemEntry struct {
	Slug       string `yaml:"slug"`
	Title      string `yaml:"title"`
	Difficulty string `yaml:"difficulty"`
	Category   string `yaml:"category"`
}

// YAMLCatalogStore reads the ordered reference list from a YAML file,
// falling back to the embedded Blind 75 catalog when the file is absent.
type YAMLCatalogStore struct {
	path string
}

func NewYAMLCatalogStore(path string) *YAMLCatalogStore {
	return &YAMLCatalogStore{path: path}
}

var _ catalogout.CatalogStore = (*YAMLCatalogStore)(nil)

func (s *YAMLCatalogStore) Load(_ context.Context) (domain.Catalog, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		raw = defaultCatalog
	} else if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	catalog := make(domain.Catalog, 0, len(file.Problems))
	for _, entry := range file.Problems {
		catalog = append(catalog, domain.TaskItem{
			Slug:       entry.Slug,
			Title:      entry.Title,
			Difficulty: domain.Difficulty(entry.Difficulty),
			Category:   entry.Category,
		})
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return catalog, nil
}

// Materialize writes the embedded default catalog to path so the user can
// edit it. Existing files are left alone.
func (s *YAMLCatalogStore) Materialize() (string, error) {
	if _, err := os.Stat(s.path); err == nil {
		return s.path, nil
	}
	if err := os.WriteFile(s.path, defaultCatalog, 0o644); err != nil {
		return "", fmt.Errorf("write default catalog: %w", err)
	}
	return s.path, nil
}
