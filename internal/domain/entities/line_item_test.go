package entities

import (
	"errors"
	"testing"
)

func TestNewLineItem(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		_, err := NewLineItem(LineItemInput{Name: "   ", Quantity: 1})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "name" {
			t.Fatalf("expected name validation error, got %v", err)
		}
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	for _, qty := range []float64{0, -1, -0.5} {
		_, err := NewLineItem(LineItemInput{Name: "타일", Quantity: qty})
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "quantity" {
			t.Fatalf("qty %v: expected quantity validation error, got %v", qty, err)
		}
	}

	t.Run("success", func(t *testing.T) {
		it, err := NewLineItem(LineItemInput{Name: " 600각 포세린 타일 ", Unit: "m²", Quantity: 2.5, MaterialCost: 75000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if it.ID == "" {
			t.Fatalf("expected generated id")
		}
		if it.Name != "600각 포세린 타일" || it.Unit != "m2" || it.LaborCost != 0 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("keeps given id", func(t *testing.T) {
		it, err := NewLineItem(LineItemInput{ID: "item-1", Name: "a", Quantity: 1})
		if err != nil || it.ID != "item-1" {
			t.Fatalf("unexpected result: %+v %v", it, err)
		}
	})
}

func TestParseLineItem(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawLineItem
		wantField string
		wantQty   float64
		wantMat   float64
		wantLabor float64
	}{
		{"plain numbers", RawLineItem{Name: "a", Quantity: "2", MaterialCost: "30000", LaborCost: "10000"}, "", 2, 30000, 10000},
		{"thousands separators", RawLineItem{Name: "a", Quantity: " 1,5 ", MaterialCost: "1,200"}, "", 15, 1200, 0},
		{"unparseable costs default to zero", RawLineItem{Name: "a", Quantity: "3", MaterialCost: "abc", LaborCost: ""}, "", 3, 0, 0},
		{"fractional quantity", RawLineItem{Name: "a", Quantity: "3332.99"}, "", 3332.99, 0, 0},
		{"exponent and sign", RawLineItem{Name: "a", Quantity: "1e1", MaterialCost: "-500"}, "", 10, -500, 0},
		{"infinite quantity", RawLineItem{Name: "a", Quantity: "1e400"}, "quantity", 0, 0, 0},
		{"nan quantity", RawLineItem{Name: "a", Quantity: "NaN"}, "quantity", 0, 0, 0},
		{"empty quantity", RawLineItem{Name: "a", Quantity: ""}, "quantity", 0, 0, 0},
		{"garbage quantity", RawLineItem{Name: "a", Quantity: "many"}, "quantity", 0, 0, 0},
		{"zero quantity", RawLineItem{Name: "a", Quantity: "0"}, "quantity", 0, 0, 0},
		{"blank name", RawLineItem{Name: "", Quantity: "1"}, "name", 0, 0, 0},
		{"blank name and quantity", RawLineItem{}, "name", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := ParseLineItem(tt.raw)
			if tt.wantField != "" {
				var verr *ValidationError
				if !errors.As(err, &verr) || verr.Field != tt.wantField {
					t.Fatalf("expected %s validation error, got %v", tt.wantField, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if it.Quantity != tt.wantQty || it.MaterialCost != tt.wantMat || it.LaborCost != tt.wantLabor {
				t.Fatalf("unexpected item: %+v", it)
			}
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	cases := map[string]string{"": "py", "m²": "m2", "㎡": "m2", " set ": "set", "식": "식"}
	for in, want := range cases {
		if got := NormalizeUnit(in); got != want {
			t.Errorf("NormalizeUnit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if ParseCategory("tile") != CategoryTile || ParseCategory("Carpentry") != CategoryCarpentry {
		t.Fatalf("expected known categories to parse")
	}
	if ParseCategory("plumbing") != CategoryGeneral {
		t.Fatalf("expected unknown category to fall back to General")
	}
	if c, ok := LookupCategory("목공"); !ok || c != CategoryCarpentry {
		t.Fatalf("expected Korean category name to resolve, got %q", c)
	}
	if _, ok := LookupCategory("plumbing"); ok {
		t.Fatalf("expected unknown category to be rejected by lookup")
	}
	if CategoryGeneral.DisplayName() != "종합 공사" {
		t.Fatalf("unexpected display name %q", CategoryGeneral.DisplayName())
	}
}
