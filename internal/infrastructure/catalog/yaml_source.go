// Package catalog loads the bundled reference data: the price list, estimate
// templates and seed estimates. The data is embedded at compile time; an
// operator may point CATALOG_FILE at a replacement YAML file.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"strings"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/usecase/interfaces"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

type YAMLSource struct {
	path string
}

var _ interfaces.ICatalogSource = (*YAMLSource)(nil)

// NewYAMLSource reads path when set, otherwise the embedded data.
func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{path: strings.TrimSpace(path)}
}

func (s *YAMLSource) Load(ctx context.Context) (entities.ReferenceData, error) {
	if err := ctx.Err(); err != nil {
		return entities.ReferenceData{}, err
	}

	data := embedded
	origin := "embedded"
	if s.path != "" {
		b, err := os.ReadFile(s.path)
		if err != nil {
			return entities.ReferenceData{}, fmt.Errorf("reading catalog %s: %w", s.path, err)
		}
		data, origin = b, s.path
	}

	ref, err := Parse(data)
	if err != nil {
		return entities.ReferenceData{}, fmt.Errorf("parsing catalog %s: %w", origin, err)
	}
	log.Printf("[catalog][source] loaded origin=%s items=%d templates=%d estimates=%d", origin, len(ref.Items), len(ref.Templates), len(ref.Estimates))
	return ref, nil
}

// Parse decodes and checks reference data.
func Parse(data []byte) (entities.ReferenceData, error) {
	var ref entities.ReferenceData
	if err := yaml.Unmarshal(data, &ref); err != nil {
		return entities.ReferenceData{}, err
	}

	seen := make(map[string]bool, len(ref.Items))
	for _, it := range ref.Items {
		if strings.TrimSpace(it.ID) == "" || strings.TrimSpace(it.Name) == "" {
			return entities.ReferenceData{}, fmt.Errorf("catalog item without id or name: %+v", it)
		}
		if seen[it.ID] {
			return entities.ReferenceData{}, fmt.Errorf("duplicate catalog item id %q", it.ID)
		}
		seen[it.ID] = true
	}
	for _, tpl := range ref.Templates {
		if strings.TrimSpace(tpl.ID) == "" {
			return entities.ReferenceData{}, fmt.Errorf("template without id: %q", tpl.Name)
		}
		for _, ti := range tpl.Items {
			if _, err := entities.NewLineItem(entities.LineItemInput{Name: ti.Name, Quantity: ti.Quantity}); err != nil {
				return entities.ReferenceData{}, fmt.Errorf("template %s: %w", tpl.ID, err)
			}
		}
	}
	for i := range ref.Estimates {
		e := &ref.Estimates[i]
		if !e.Status.Valid() {
			return entities.ReferenceData{}, fmt.Errorf("seed estimate %s: invalid status %q", e.ID, e.Status)
		}
		e.Category = entities.ParseCategory(string(e.Category))
	}
	if len(ref.Categories) == 0 {
		ref.Categories = categoriesOf(ref.Items)
	}
	return ref, nil
}

func categoriesOf(items []entities.CatalogItem) []string {
	var out []string
	seen := map[string]bool{}
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			out = append(out, it.Category)
		}
	}
	return out
}
