package entities

import (
	"strings"
	"time"
)

// EstimateStatus represents the lifecycle of an estimate (견적서).
//
// Domain notes:
//   - Draft is the initial status of every finalized estimate.
//   - Sent means the document was handed to the customer.
//   - Completed means it was paid; it is terminal.
//
// Transitions are owned by the lifecycle package.

type EstimateStatus string

const (
	EstimateStatusDraft     EstimateStatus = "Draft"
	EstimateStatusSent      EstimateStatus = "Sent"
	EstimateStatusCompleted EstimateStatus = "Completed"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusCompleted:
		return true
	}
	return false
}

// Category groups estimates in listings and picks the document heading.
type Category string

const (
	CategoryCarpentry Category = "Carpentry"
	CategoryTile      Category = "Tile"
	CategoryGeneral   Category = "General"
)

// LookupCategory recognises English and Korean category names.
func LookupCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "carpentry", "목공":
		return CategoryCarpentry, true
	case "tile", "타일":
		return CategoryTile, true
	case "general", "종합":
		return CategoryGeneral, true
	}
	return "", false
}

// ParseCategory maps free text to a Category. Unknown values fall back to General.
func ParseCategory(s string) Category {
	if c, ok := LookupCategory(s); ok {
		return c
	}
	return CategoryGeneral
}

// DisplayName is the bracketed heading printed on documents.
func (c Category) DisplayName() string {
	switch c {
	case CategoryTile:
		return "타일 공사"
	case CategoryCarpentry:
		return "목공 공사"
	default:
		return "종합 공사"
	}
}

// Supplier identifies the business issuing the estimate (공급자).
//
// The same shape is persisted on its own as the "last used" default profile.
type Supplier struct {
	RegNo   string `json:"reg_no" yaml:"reg_no" cbor:"reg_no"`
	Name    string `json:"name" yaml:"name" cbor:"name"`
	Rep     string `json:"rep" yaml:"rep" cbor:"rep"`
	Address string `json:"address" yaml:"address" cbor:"address"`
}

// SupplierProfile is the persisted default used to pre-fill new estimates.
type SupplierProfile = Supplier

func (s Supplier) IsZero() bool {
	return s == Supplier{}
}

// BankInfo is the bank-transfer block printed on documents.
type BankInfo struct {
	BankName      string `json:"bank_name" yaml:"bank_name" cbor:"bank_name"`
	AccountNumber string `json:"account_number" yaml:"account_number" cbor:"account_number"`
	AccountHolder string `json:"account_holder" yaml:"account_holder" cbor:"account_holder"`
}

const (
	DefaultBankName      = "신한은행"
	DefaultAccountHolder = "Ucraft"
)

// WithDefaults fills the blank bank name and holder the same way the input form does.
func (b BankInfo) WithDefaults() BankInfo {
	if strings.TrimSpace(b.BankName) == "" {
		b.BankName = DefaultBankName
	}
	if strings.TrimSpace(b.AccountHolder) == "" {
		b.AccountHolder = DefaultAccountHolder
	}
	return b
}

// Estimate is a finalized quote document.
//
// Monetary representation:
//   - Price is a cached snapshot of the rounded total of Items, rewritten on every save.
//     The pricing engine output is authoritative whenever Items are present.
type Estimate struct {
	ID                string         `json:"id" yaml:"id" cbor:"id"`
	Title             string         `json:"title" yaml:"title" cbor:"title"`
	CustomerName      string         `json:"customer_name" yaml:"customer_name" cbor:"customer_name"`
	Author            string         `json:"author,omitempty" yaml:"author" cbor:"author,omitempty"`
	ConstructionPlace string         `json:"construction_place,omitempty" yaml:"construction_place" cbor:"construction_place,omitempty"`
	Price             int64          `json:"price" yaml:"price" cbor:"price"`
	Status            EstimateStatus `json:"status" yaml:"status" cbor:"status"`
	Category          Category       `json:"category" yaml:"category" cbor:"category"`
	ImageURL          string         `json:"image_url,omitempty" yaml:"image_url" cbor:"image_url,omitempty"`
	Date              string         `json:"date" yaml:"date" cbor:"date"`
	Items             []LineItem     `json:"items,omitempty" yaml:"items" cbor:"items,omitempty"`
	Supplier          Supplier       `json:"supplier" yaml:"supplier" cbor:"supplier"`
	BankInfo          BankInfo       `json:"bank_info" yaml:"bank_info" cbor:"bank_info"`
	CreatedAt         time.Time      `json:"created_at" yaml:"created_at" cbor:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" yaml:"updated_at" cbor:"updated_at"`
}

// Clone returns a copy whose item slice is not shared with e.
func (e Estimate) Clone() Estimate {
	if e.Items != nil {
		items := make([]LineItem, len(e.Items))
		copy(items, e.Items)
		e.Items = items
	}
	return e
}

// FindEstimate returns the index of the estimate with the given id, or -1.
func FindEstimate(estimates []Estimate, id string) int {
	for i := range estimates {
		if estimates[i].ID == id {
			return i
		}
	}
	return -1
}
