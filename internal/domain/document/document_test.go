package document

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/pricing"
)

type plainFormatter struct{}

func (plainFormatter) Format(amount int64) string { return "W" + strconv.FormatInt(amount, 10) }
func (plainFormatter) Number(amount int64) string { return strconv.FormatInt(amount, 10) }

func sampleEstimate() entities.Estimate {
	return entities.Estimate{
		ID:           "3f2a1b7c-0000-4000-8000-00000000abcd",
		Title:        "욕실 리모델링",
		CustomerName: "김민수",
		Category:     entities.CategoryTile,
		Date:         "2023-10-25",
		Items: []entities.LineItem{
			{ID: "1", Name: "타일 시공", Unit: "m2", Quantity: 2, MaterialCost: 30000, LaborCost: 10000},
			{ID: "2", Name: "방수", Unit: "식", Quantity: 1, MaterialCost: 50000},
		},
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		in     string
		expect Layout
	}{
		{"", LayoutStandard},
		{"A", LayoutStandard},
		{"standard", LayoutStandard},
		{"b", LayoutModern},
		{" Modern ", LayoutModern},
		{"C", LayoutBoxed},
		{"boxed", LayoutBoxed},
	}
	for _, tt := range tests {
		got, err := ParseLayout(tt.in)
		if err != nil || got != tt.expect {
			t.Fatalf("ParseLayout(%q) = %q, %v", tt.in, got, err)
		}
	}
	if _, err := ParseLayout("fancy"); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
}

func TestCompose(t *testing.T) {
	e := sampleEstimate()
	totals := pricing.Compute(e.Items)

	t.Run("standard", func(t *testing.T) {
		doc, err := Compose(e, totals, LayoutStandard, plainFormatter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.Rows) != 6 || doc.ItemCount != 2 {
			t.Fatalf("expected 6 rows with 2 items, got %d/%d", len(doc.Rows), doc.ItemCount)
		}
		if doc.Rows[0].UnitPrice != "40000" || doc.Rows[0].LineTotal != "80000" || doc.Rows[0].Quantity != "2" {
			t.Fatalf("unexpected first row: %+v", doc.Rows[0])
		}
		for _, r := range doc.Rows[2:] {
			if !r.Blank {
				t.Fatalf("expected padding row, got %+v", r)
			}
		}
		if doc.Final != "W130000" || doc.FinalAmount != 130000 {
			t.Fatalf("unexpected final: %s", doc.Final)
		}
		if doc.CategoryLabel != "[타일 공사]" {
			t.Fatalf("unexpected category label: %s", doc.CategoryLabel)
		}
		if doc.Customer[0].Value != "김민수 귀하" || doc.Customer[1].Value != "정보 미기재" {
			t.Fatalf("unexpected customer block: %+v", doc.Customer)
		}
		if doc.Bank[0].Value != entities.DefaultBankName || doc.Bank[2].Value != entities.DefaultAccountHolder {
			t.Fatalf("expected bank defaults, got %+v", doc.Bank)
		}
		want := []int64{39000, 52000, 39000}
		for i, p := range doc.Payments {
			if p.Amount != want[i] {
				t.Fatalf("payment %s: expected %d, got %d", p.Installment, want[i], p.Amount)
			}
		}
		if doc.Number != "00ABCD" {
			t.Fatalf("unexpected document number: %s", doc.Number)
		}
	})

	t.Run("boxed pads to five", func(t *testing.T) {
		doc, err := Compose(e, totals, LayoutBoxed, plainFormatter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.Rows) != 5 {
			t.Fatalf("expected 5 rows, got %d", len(doc.Rows))
		}
	})

	t.Run("many items are not truncated", func(t *testing.T) {
		big := e.Clone()
		for i := 0; i < 10; i++ {
			big.Items = append(big.Items, entities.LineItem{ID: strconv.Itoa(i), Name: "x", Unit: "ea", Quantity: 1})
		}
		doc, err := Compose(big, pricing.Compute(big.Items), LayoutModern, plainFormatter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(doc.Rows) != 12 {
			t.Fatalf("expected 12 rows, got %d", len(doc.Rows))
		}
	})

	t.Run("long text is trimmed but totals are not", func(t *testing.T) {
		long := e.Clone()
		long.Items[0].Name = strings.Repeat("가", 60)
		doc, err := Compose(long, pricing.Compute(long.Items), LayoutBoxed, plainFormatter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := len([]rune(doc.Rows[0].Name)); n != 20 {
			t.Fatalf("expected trimmed name of 20 runes, got %d", n)
		}
		if doc.FinalAmount != 130000 {
			t.Fatalf("totals must not change, got %d", doc.FinalAmount)
		}
	})

	t.Run("mismatched totals", func(t *testing.T) {
		_, err := Compose(e, pricing.Compute(e.Items[:1]), LayoutStandard, plainFormatter{})
		if !errors.Is(err, ErrTotalsMismatch) {
			t.Fatalf("expected ErrTotalsMismatch, got %v", err)
		}
	})

	t.Run("missing formatter", func(t *testing.T) {
		if _, err := Compose(e, totals, LayoutStandard, nil); !errors.Is(err, ErrNoFormatter) {
			t.Fatalf("expected ErrNoFormatter, got %v", err)
		}
	})

	t.Run("fractional figures are rounded for display", func(t *testing.T) {
		frac := entities.Estimate{Items: []entities.LineItem{{ID: "1", Name: "a", Unit: "py", Quantity: 3332.99, MaterialCost: 78333}}}
		doc, err := Compose(frac, pricing.Compute(frac.Items), LayoutStandard, plainFormatter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Rows[0].LineTotal != "261083106" || doc.Rows[0].Quantity != "3332.99" {
			t.Fatalf("unexpected row: %+v", doc.Rows[0])
		}
		if doc.FinalAmount != 261083000 {
			t.Fatalf("unexpected final: %d", doc.FinalAmount)
		}
		if doc.Title != "(견적명 미입력)" || doc.Customer[0].Value != "고객 귀하" {
			t.Fatalf("expected placeholders, got %q / %q", doc.Title, doc.Customer[0].Value)
		}
	})
}

func TestSuggestedFilename(t *testing.T) {
	tests := []struct {
		title  string
		layout Layout
		ext    string
		expect string
	}{
		{"욕실 리모델링", LayoutStandard, "pdf", "욕실 리모델링_A타입.pdf"},
		{"", LayoutModern, ".xlsx", "견적서_B타입.xlsx"},
		{"a/b:c", LayoutBoxed, "pdf", "a_b_c_C타입.pdf"},
		{"  ", LayoutBoxed, "", "견적서_C타입"},
	}
	for _, tt := range tests {
		if got := SuggestedFilename(tt.title, tt.layout, tt.ext); got != tt.expect {
			t.Errorf("SuggestedFilename(%q) = %q, want %q", tt.title, got, tt.expect)
		}
	}
}
