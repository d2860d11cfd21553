package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrTemplateNotFound    = errors.New("template not found")
)

// TemplateUnit is used for template entries without a unit.
const TemplateUnit = "식"

// ICatalogUseCase exposes the read-only price list and templates.
//
// Picking from the catalog never shares state with it:
//   - ApplyTemplate and ApplyMany return fresh line items with new ids
//   - the catalog and templates are never modified
type ICatalogUseCase interface {
	Search(query, category string) []entities.CatalogItem
	Categories() []string
	Item(id string) (entities.CatalogItem, error)
	Favorites() []entities.CatalogItem
	Templates() []entities.Template
	Template(id string) (entities.Template, error)
	ApplyTemplate(t entities.Template) []entities.LineItem
	ApplyTemplateByID(id string) ([]entities.LineItem, error)
	ApplyMany(items []entities.CatalogItem) []entities.LineItem
	ApplyManyByID(ids []string) ([]entities.LineItem, error)
	Select(item entities.CatalogItem) entities.LineItemInput
	SeedEstimates() []entities.Estimate
}

type CatalogUseCase struct {
	data entities.ReferenceData
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

// NewCatalogUseCase loads the reference data once.
func NewCatalogUseCase(ctx context.Context, source interfaces.ICatalogSource) (*CatalogUseCase, error) {
	if source == nil {
		return nil, errors.New("catalog source not configured")
	}
	data, err := source.Load(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] load failed err=%v", err)
		return nil, err
	}
	return &CatalogUseCase{data: data}, nil
}

// Search filters by category first (exact match; blank, "all" and "전체" mean
// every category), then by a case-insensitive substring of name or description.
// Catalog order is preserved.
func (u *CatalogUseCase) Search(query, category string) []entities.CatalogItem {
	category = strings.TrimSpace(category)
	allCategories := category == "" || category == "all" || category == "전체"
	// a Caser is stateful, so one per call
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	out := make([]entities.CatalogItem, 0)
	for _, it := range u.data.Items {
		if !allCategories && it.Category != category {
			continue
		}
		if q != "" && !strings.Contains(fold.String(it.Name), q) && !strings.Contains(fold.String(it.Description), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func (u *CatalogUseCase) Categories() []string {
	return append([]string(nil), u.data.Categories...)
}

func (u *CatalogUseCase) Item(id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	for _, it := range u.data.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return entities.CatalogItem{}, ErrCatalogItemNotFound
}

func (u *CatalogUseCase) Favorites() []entities.CatalogItem {
	out := make([]entities.CatalogItem, 0)
	for _, it := range u.data.Items {
		if it.IsFavorite {
			out = append(out, it)
		}
	}
	return out
}

func (u *CatalogUseCase) Templates() []entities.Template {
	out := make([]entities.Template, len(u.data.Templates))
	for i, t := range u.data.Templates {
		out[i] = cloneTemplate(t)
	}
	return out
}

func (u *CatalogUseCase) Template(id string) (entities.Template, error) {
	id = strings.TrimSpace(id)
	for _, t := range u.data.Templates {
		if t.ID == id {
			return cloneTemplate(t), nil
		}
	}
	return entities.Template{}, ErrTemplateNotFound
}

// ApplyTemplate copies every template entry into a new line item.
func (u *CatalogUseCase) ApplyTemplate(t entities.Template) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(t.Items))
	for _, ti := range t.Items {
		unit := strings.TrimSpace(ti.Unit)
		if unit == "" {
			unit = TemplateUnit
		}
		it, err := entities.NewLineItem(entities.LineItemInput{
			Name:         ti.Name,
			Description:  ti.Description,
			Unit:         unit,
			Quantity:     ti.Quantity,
			MaterialCost: ti.MaterialCost,
			LaborCost:    ti.LaborCost,
			ImageURL:     ti.ImageURL,
		})
		if err != nil {
			log.Printf("[catalog][usecase] template item skipped template_id=%s name=%q err=%v", t.ID, ti.Name, err)
			continue
		}
		out = append(out, it)
	}
	return out
}

func (u *CatalogUseCase) ApplyTemplateByID(id string) ([]entities.LineItem, error) {
	t, err := u.Template(id)
	if err != nil {
		return nil, err
	}
	return u.ApplyTemplate(t), nil
}

// ApplyMany turns a multi-selection into line items: quantity 1, no labor,
// material cost at the catalog price.
func (u *CatalogUseCase) ApplyMany(items []entities.CatalogItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.LineItem{
			ID:           uuid.NewString(),
			Name:         it.Name,
			Description:  it.Description,
			Unit:         entities.NormalizeUnit(it.Unit),
			Quantity:     1,
			MaterialCost: it.Price,
		})
	}
	return out
}

func (u *CatalogUseCase) ApplyManyByID(ids []string) ([]entities.LineItem, error) {
	picked := make([]entities.CatalogItem, 0, len(ids))
	for _, id := range ids {
		it, err := u.Item(id)
		if err != nil {
			return nil, err
		}
		picked = append(picked, it)
	}
	return u.ApplyMany(picked), nil
}

// Select pre-fills the item form from a single pick. Quantity is left for the user.
func (u *CatalogUseCase) Select(item entities.CatalogItem) entities.LineItemInput {
	return entities.LineItemInput{
		Name:         item.Name,
		Description:  item.Description,
		Unit:         entities.NormalizeUnit(item.Unit),
		MaterialCost: item.Price,
	}
}

// SeedEstimates is the collection shown before anything was saved.
func (u *CatalogUseCase) SeedEstimates() []entities.Estimate {
	return cloneEstimates(u.data.Estimates)
}

func cloneTemplate(t entities.Template) entities.Template {
	t.Items = append([]entities.TemplateItem(nil), t.Items...)
	return t
}
