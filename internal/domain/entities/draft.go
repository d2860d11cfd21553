package entities

import (
	"strings"

	"github.com/google/uuid"
)

// EstimateDraft is the editable form state an estimate is finalized from.
//
// Items are assembled here; a finalized Estimate is only ever replaced as a whole.
type EstimateDraft struct {
	ID                string     `json:"id,omitempty"`
	Title             string     `json:"title"`
	CustomerName      string     `json:"customer_name"`
	Author            string     `json:"author"`
	ConstructionPlace string     `json:"construction_place"`
	Category          Category   `json:"category"`
	Items             []LineItem `json:"items"`
	Supplier          Supplier   `json:"supplier"`
	BankInfo          BankInfo   `json:"bank_info"`
}

// DraftFromEstimate opens an existing estimate for editing.
func DraftFromEstimate(e Estimate) EstimateDraft {
	e = e.Clone()
	return EstimateDraft{
		ID:                e.ID,
		Title:             e.Title,
		CustomerName:      e.CustomerName,
		Author:            e.Author,
		ConstructionPlace: e.ConstructionPlace,
		Category:          e.Category,
		Items:             e.Items,
		Supplier:          e.Supplier,
		BankInfo:          e.BankInfo,
	}
}

// AddItem validates in and appends it. On rejection the item list is unchanged.
// An id already used in the draft is rejected.
func (d *EstimateDraft) AddItem(in LineItemInput) (LineItem, error) {
	it, err := NewLineItem(in)
	if err != nil {
		return LineItem{}, err
	}
	return d.add(it)
}

// AddRawItem is AddItem for free-text form input.
func (d *EstimateDraft) AddRawItem(raw RawLineItem) (LineItem, error) {
	it, err := ParseLineItem(raw)
	if err != nil {
		return LineItem{}, err
	}
	return d.add(it)
}

func (d *EstimateDraft) add(it LineItem) (LineItem, error) {
	if d.hasItem(it.ID) {
		return LineItem{}, newValidationError("id", "이미 추가된 항목입니다.")
	}
	d.Items = append(d.Items, it)
	return it, nil
}

// AppendItems adds already built items, e.g. from a template or a catalog
// selection. An item whose id is blank or already taken gets a fresh one.
func (d *EstimateDraft) AppendItems(items ...LineItem) {
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" || d.hasItem(it.ID) {
			it.ID = uuid.NewString()
		}
		d.Items = append(d.Items, it)
	}
}

func (d *EstimateDraft) hasItem(id string) bool {
	for _, it := range d.Items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// RemoveItem drops the item with the given id and reports whether it existed.
func (d *EstimateDraft) RemoveItem(id string) bool {
	for i := range d.Items {
		if d.Items[i].ID == id {
			d.Items = append(d.Items[:i:i], d.Items[i+1:]...)
			return true
		}
	}
	return false
}

// CanPreview reports whether the draft has anything to show.
func (d EstimateDraft) CanPreview() bool {
	return len(d.Items) > 0
}

// Validate checks what finalizing requires: a title, a customer and at least one item.
// Every item is re-validated since drafts may arrive from outside the process.
func (d EstimateDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return newValidationError("title", "견적명과 고객명을 입력해주세요.")
	}
	if strings.TrimSpace(d.CustomerName) == "" {
		return newValidationError("customer_name", "견적명과 고객명을 입력해주세요.")
	}
	if len(d.Items) == 0 {
		return newValidationError("items", "견적 항목을 하나 이상 추가해주세요.")
	}
	seen := make(map[string]struct{}, len(d.Items))
	for _, it := range d.Items {
		if _, err := NewLineItem(LineItemInput(it)); err != nil {
			return err
		}
		id := strings.TrimSpace(it.ID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			return newValidationError("items", "같은 항목 ID가 두 번 이상 사용되었습니다.")
		}
		seen[id] = struct{}{}
	}
	return nil
}
