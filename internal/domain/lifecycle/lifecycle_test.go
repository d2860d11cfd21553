package lifecycle

import (
	"context"
	"errors"
	"testing"

	"ucraft_estimates/internal/domain/entities"
)

func TestMachine_Apply(t *testing.T) {
	all := []entities.EstimateStatus{entities.EstimateStatusDraft, entities.EstimateStatusSent, entities.EstimateStatusCompleted}
	legal := map[[2]entities.EstimateStatus]bool{
		{entities.EstimateStatusDraft, entities.EstimateStatusSent}:     true,
		{entities.EstimateStatusSent, entities.EstimateStatusCompleted}: true,
	}

	m := NewMachine()
	for _, from := range all {
		for _, to := range all {
			e := entities.Estimate{ID: "e1", Status: from, Items: []entities.LineItem{{ID: "i1"}}}
			got, err := m.Apply(e, to)

			if legal[[2]entities.EstimateStatus{from, to}] {
				if err != nil {
					t.Fatalf("%s -> %s: unexpected error %v", from, to, err)
				}
				if got.Status != to {
					t.Fatalf("%s -> %s: got status %s", from, to, got.Status)
				}
				if e.Status != from {
					t.Fatalf("%s -> %s: input estimate was mutated", from, to)
				}
				continue
			}

			if !errors.Is(err, ErrInvalidTransition) {
				t.Fatalf("%s -> %s: expected ErrInvalidTransition, got %v", from, to, err)
			}
			var ite *InvalidTransitionError
			if !errors.As(err, &ite) || ite.From != from || ite.To != to {
				t.Fatalf("%s -> %s: unexpected error detail %v", from, to, err)
			}
			if got.Status != from {
				t.Fatalf("%s -> %s: status changed on rejection", from, to)
			}
		}
	}
}

func TestMachine_RejectsUnknownStatus(t *testing.T) {
	_, err := NewMachine().Apply(entities.Estimate{Status: "Archived"}, entities.EstimateStatusSent)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestNext(t *testing.T) {
	if n, ok := Next(entities.EstimateStatusDraft); !ok || n != entities.EstimateStatusSent {
		t.Fatalf("unexpected next for Draft: %s %v", n, ok)
	}
	if n, ok := Next(entities.EstimateStatusSent); !ok || n != entities.EstimateStatusCompleted {
		t.Fatalf("unexpected next for Sent: %s %v", n, ok)
	}
	if _, ok := Next(entities.EstimateStatusCompleted); ok {
		t.Fatalf("Completed must be terminal")
	}
}

func TestMachine_Notify(t *testing.T) {
	m := NewMachine()
	var completed, sent []string
	m.OnEnter(entities.EstimateStatusCompleted, func(_ context.Context, e entities.Estimate) {
		completed = append(completed, e.ID)
	})
	m.OnEnter(entities.EstimateStatusSent, func(_ context.Context, e entities.Estimate) {
		sent = append(sent, e.ID)
	})

	m.Notify(context.Background(), entities.Estimate{ID: "a", Status: entities.EstimateStatusCompleted})
	m.Notify(context.Background(), entities.Estimate{ID: "b", Status: entities.EstimateStatusDraft})

	if len(completed) != 1 || completed[0] != "a" {
		t.Fatalf("unexpected completed hooks: %v", completed)
	}
	if len(sent) != 0 {
		t.Fatalf("unexpected sent hooks: %v", sent)
	}
}
