package entities

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one priced unit of work or material inside an estimate.
//
// MaterialCost and LaborCost are unit prices; the derived unit price is their sum.
// Items are copied by value between drafts, templates and estimates, never shared.
type LineItem struct {
	ID           string  `json:"id" yaml:"id" cbor:"id"`
	Name         string  `json:"name" yaml:"name" cbor:"name"`
	Description  string  `json:"description,omitempty" yaml:"description" cbor:"description,omitempty"`
	Unit         string  `json:"unit" yaml:"unit" cbor:"unit"`
	Quantity     float64 `json:"quantity" yaml:"quantity" cbor:"quantity"`
	MaterialCost float64 `json:"material_cost" yaml:"material_cost" cbor:"material_cost"`
	LaborCost    float64 `json:"labor_cost" yaml:"labor_cost" cbor:"labor_cost"`
	ImageURL     string  `json:"image_url,omitempty" yaml:"image_url" cbor:"image_url,omitempty"`
}

// LineItemInput is the typed form of a line item before validation.
type LineItemInput struct {
	ID           string
	Name         string
	Description  string
	Unit         string
	Quantity     float64
	MaterialCost float64
	LaborCost    float64
	ImageURL     string
}

// RawLineItem is a line item as typed into a form: every number is free text.
type RawLineItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Unit         string `json:"unit"`
	Quantity     string `json:"quantity"`
	MaterialCost string `json:"material_cost"`
	LaborCost    string `json:"labor_cost"`
	ImageURL     string `json:"image_url"`
}

// DefaultUnit is used when a line item arrives without a unit code.
const DefaultUnit = "py"

// NormalizeUnit maps catalog spellings to the unit codes used by the form.
func NormalizeUnit(u string) string {
	u = strings.TrimSpace(u)
	switch u {
	case "":
		return DefaultUnit
	case "m²", "㎡":
		return "m2"
	}
	return u
}

// NewLineItem validates input and builds a LineItem. A blank id gets a fresh uuid.
func NewLineItem(in LineItemInput) (LineItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return LineItem{}, newValidationError("name", "품목명을 입력해주세요.")
	}
	if !(in.Quantity > 0) || math.IsInf(in.Quantity, 0) {
		return LineItem{}, newValidationError("quantity", "유효한 수량을 입력해주세요.")
	}

	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}
	return LineItem{
		ID:           id,
		Name:         name,
		Description:  strings.TrimSpace(in.Description),
		Unit:         NormalizeUnit(in.Unit),
		Quantity:     in.Quantity,
		MaterialCost: finiteOrZero(in.MaterialCost),
		LaborCost:    finiteOrZero(in.LaborCost),
		ImageURL:     strings.TrimSpace(in.ImageURL),
	}, nil
}

// ParseLineItem is the string-to-number boundary between forms and the domain.
// Unparseable costs become 0; an unparseable quantity is rejected.
func ParseLineItem(raw RawLineItem) (LineItem, error) {
	qty, ok := ParseAmount(raw.Quantity)
	if !ok {
		if strings.TrimSpace(raw.Name) == "" {
			return LineItem{}, newValidationError("name", "품목명을 입력해주세요.")
		}
		return LineItem{}, newValidationError("quantity", "유효한 수량을 입력해주세요.")
	}
	material, _ := ParseAmount(raw.MaterialCost)
	labor, _ := ParseAmount(raw.LaborCost)

	return NewLineItem(LineItemInput{
		ID:           raw.ID,
		Name:         raw.Name,
		Description:  raw.Description,
		Unit:         raw.Unit,
		Quantity:     qty,
		MaterialCost: material,
		LaborCost:    labor,
		ImageURL:     raw.ImageURL,
	})
}

// ParseAmount parses a decimal typed by a person: surrounding blanks and
// thousands separators are ignored.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, false
	}
	v, _ := d.Float64()
	if math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
