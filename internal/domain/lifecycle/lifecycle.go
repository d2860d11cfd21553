// Package lifecycle governs estimate status transitions.
//
// The only legal moves are Draft -> Sent and Sent -> Completed. Completed is
// terminal. Anything else is reported as an *InvalidTransitionError and leaves
// the estimate untouched.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ucraft_estimates/internal/domain/entities"
)

var ErrInvalidTransition = errors.New("invalid transition")

// InvalidTransitionError describes a rejected status move.
type InvalidTransitionError struct {
	From entities.EstimateStatus
	To   entities.EstimateStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

var next = map[entities.EstimateStatus]entities.EstimateStatus{
	entities.EstimateStatusDraft: entities.EstimateStatusSent,
	entities.EstimateStatusSent:  entities.EstimateStatusCompleted,
}

// Next returns the only status reachable from s.
func Next(s entities.EstimateStatus) (entities.EstimateStatus, bool) {
	n, ok := next[s]
	return n, ok
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to entities.EstimateStatus) bool {
	n, ok := next[from]
	return ok && n == to
}

// Hook is notified after an estimate entered a status.
type Hook func(ctx context.Context, e entities.Estimate)

// Machine applies transitions and dispatches hooks.
type Machine struct {
	mu    sync.RWMutex
	hooks map[entities.EstimateStatus][]Hook
}

func NewMachine() *Machine {
	return &Machine{hooks: make(map[entities.EstimateStatus][]Hook)}
}

// OnEnter registers h to run whenever an estimate enters status.
func (m *Machine) OnEnter(status entities.EstimateStatus, h Hook) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks[status] = append(m.hooks[status], h)
}

// Apply returns a copy of e moved to status to. On an illegal move it returns e
// unchanged together with an *InvalidTransitionError.
func (m *Machine) Apply(e entities.Estimate, to entities.EstimateStatus) (entities.Estimate, error) {
	if !CanTransition(e.Status, to) {
		return e, &InvalidTransitionError{From: e.Status, To: to}
	}
	out := e.Clone()
	out.Status = to
	return out, nil
}

// Notify runs the hooks registered for e.Status. Callers invoke it once the
// new status is persisted.
func (m *Machine) Notify(ctx context.Context, e entities.Estimate) {
	m.mu.RLock()
	hooks := append([]Hook(nil), m.hooks[e.Status]...)
	m.mu.RUnlock()

	for _, h := range hooks {
		h(ctx, e)
	}
}
