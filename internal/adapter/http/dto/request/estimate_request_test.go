package request

import (
	"encoding/json"
	"errors"
	"testing"

	"ucraft_estimates/internal/domain/entities"
)

func TestFormValue_UnmarshalJSON(t *testing.T) {
	var item LineItemRequest
	body := `{"name":"Tile","quantity":12.5,"material_cost":"30,000","labor_cost":null}`
	if err := json.Unmarshal([]byte(body), &item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Quantity != "12.5" || item.MaterialCost != "30,000" || item.LaborCost != "" {
		t.Fatalf("unexpected values: %+v", item)
	}

	if err := json.Unmarshal([]byte(`{"quantity":true}`), &item); err == nil {
		t.Fatalf("expected error for boolean quantity")
	}
}

func TestEstimateRequest_ToDraft(t *testing.T) {
	t.Run("parses items and category", func(t *testing.T) {
		r := EstimateRequest{
			Title:        "욕실 리모델링",
			CustomerName: "Kim",
			Category:     "타일",
			Items: []LineItemRequest{
				{Name: "Porcelain tile", Unit: "㎡", Quantity: "12.5", MaterialCost: "30,000", LaborCost: "15000"},
				{Name: "Grout", Quantity: "1", MaterialCost: "abc"},
			},
			Supplier: SupplierRequest{Name: "Ucraft"},
		}
		d, err := r.ToDraft(" e1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "e1" || d.Category != entities.CategoryTile || d.Supplier.Name != "Ucraft" {
			t.Fatalf("unexpected draft: %+v", d)
		}
		if len(d.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(d.Items))
		}
		if d.Items[0].Unit != "m2" || d.Items[0].MaterialCost != 30000 || d.Items[0].ID == "" {
			t.Fatalf("unexpected first item: %+v", d.Items[0])
		}
		if d.Items[1].MaterialCost != 0 || d.Items[1].Unit != entities.DefaultUnit {
			t.Fatalf("unparseable cost must become 0: %+v", d.Items[1])
		}
	})

	t.Run("rejects bad quantity", func(t *testing.T) {
		r := EstimateRequest{Items: []LineItemRequest{{Name: "Tile", Quantity: "0"}}}
		_, err := r.ToDraft("")
		var ve *entities.ValidationError
		if !errors.As(err, &ve) || ve.Field != "quantity" {
			t.Fatalf("expected quantity validation error, got %v", err)
		}
	})
}

func TestStatusRequest_ResolveStatus(t *testing.T) {
	tests := map[string]entities.EstimateStatus{
		"draft":     entities.EstimateStatusDraft,
		" Sent ":    entities.EstimateStatusSent,
		"COMPLETED": entities.EstimateStatusCompleted,
	}
	for in, want := range tests {
		got, err := StatusRequest{Status: in}.ResolveStatus()
		if err != nil || got != want {
			t.Fatalf("ResolveStatus(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := (StatusRequest{Status: "paid"}).ResolveStatus(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestCatalogApplyRequest_ResolveIDs(t *testing.T) {
	got := CatalogApplyRequest{IDs: []string{" a ", "", "b", "a"}}.ResolveIDs()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("unexpected ids: %v", got)
	}
}
