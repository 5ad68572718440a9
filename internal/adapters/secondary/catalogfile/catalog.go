package catalogfile

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"branding-studio-service/internal/core/domain"
	ports "branding-studio-service/internal/core/ports/output"
)

//go:embed defaults.yaml
var defaultCatalog []byte

// fallbackCategory supplies methods for categories without their own list
const fallbackCategory = "default"

// File is the YAML catalog document.
type File struct {
	Categories map[string]Category `yaml:"categories"`
}

// Category holds one product category's methods and template zones.
type Category struct {
	Methods []string              `yaml:"methods"`
	Zones   []domain.ZoneTemplate `yaml:"zones"`
}

type catalog struct {
	categories map[string]Category
}

// NewDefault returns the catalog built into the binary.
func NewDefault() (ports.CatalogRepository, error) {
	return ParseReader(bytes.NewReader(defaultCatalog))
}

// Load reads a catalog from path, or the built-in one when path is empty.
func Load(path string) (ports.CatalogRepository, error) {
	if path == "" {
		return NewDefault()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()
	return ParseReader(f)
}

// ParseReader decodes and validates a YAML catalog.
func ParseReader(r io.Reader) (ports.CatalogRepository, error) {
	var doc File
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	categories := make(map[string]Category, len(doc.Categories))
	for name, c := range doc.Categories {
		key := normalize(name)
		if key == "" {
			return nil, fmt.Errorf("catalog: empty category name")
		}
		if _, dup := categories[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", key)
		}
		for i, z := range c.Zones {
			if z.Shape != "" && !z.Shape.Valid() {
				return nil, fmt.Errorf("catalog: category %q zone %d: %w", name, i, domain.ErrInvalidShape)
			}
		}
		categories[key] = c
	}
	return &catalog{categories: categories}, nil
}

func (c *catalog) ZoneTemplates(ctx context.Context, category string) ([]domain.ZoneTemplate, error) {
	cat, ok := c.categories[normalize(category)]
	if !ok {
		return []domain.ZoneTemplate{}, nil
	}
	return append([]domain.ZoneTemplate{}, cat.Zones...), nil
}

func (c *catalog) Methods(ctx context.Context, category string) ([]string, error) {
	if cat, ok := c.categories[normalize(category)]; ok && len(cat.Methods) > 0 {
		return append([]string(nil), cat.Methods...), nil
	}
	if cat, ok := c.categories[fallbackCategory]; ok {
		return append([]string(nil), cat.Methods...), nil
	}
	return []string{}, nil
}

func (c *catalog) Categories(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(c.categories))
	for name := range c.categories {
		if name != fallbackCategory {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func normalize(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
