package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/lifecycle"
	"ucraft_estimates/internal/domain/pricing"
	"ucraft_estimates/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound  = errors.New("estimate not found")
	ErrInvalidEstimateID = errors.New("invalid estimate id")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidCategory   = errors.New("invalid category")
)

// DateLayout is how estimate dates are stored and printed.
const DateLayout = "2006-01-02"

// IEstimateUseCase exposes the estimate collection.
//
// Estimates are created and replaced whole from a draft:
//   - Save recomputes the price from the items, every time
//   - Transition/Send/Complete only move the status forward
//   - the supplier of the last saved estimate becomes the default for new drafts
type IEstimateUseCase interface {
	List(ctx context.Context, category string) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	Save(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error)
	Transition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error)
	Send(ctx context.Context, id string) (entities.Estimate, error)
	Complete(ctx context.Context, id string) (entities.Estimate, error)
	DefaultSupplier(ctx context.Context) (entities.SupplierProfile, error)
	UpdateDefaultSupplier(ctx context.Context, profile entities.SupplierProfile) (entities.SupplierProfile, error)
	NewDraft(ctx context.Context) (entities.EstimateDraft, error)
}

type EstimateUseCase struct {
	repo    interfaces.IEstimateRepository
	machine *lifecycle.Machine
	seed    []entities.Estimate
	now     func() time.Time

	// serializes load-modify-save of the whole collection
	mu sync.Mutex
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

// NewEstimateUseCase wires the collection. seed is returned by List when the
// store cannot be read.
func NewEstimateUseCase(repo interfaces.IEstimateRepository, machine *lifecycle.Machine, seed []entities.Estimate) *EstimateUseCase {
	if machine == nil {
		machine = lifecycle.NewMachine()
	}
	return &EstimateUseCase{
		repo:    repo,
		machine: machine,
		seed:    seed,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *EstimateUseCase) List(ctx context.Context, category string) ([]entities.Estimate, error) {
	var filter entities.Category
	switch c := strings.TrimSpace(category); c {
	case "", "all", "전체":
	default:
		parsed, ok := entities.LookupCategory(c)
		if !ok {
			return nil, ErrInvalidCategory
		}
		filter = parsed
	}

	all, err := u.repo.LoadEstimates(ctx)
	if err != nil {
		log.Printf("[estimate][usecase] load failed, serving seed err=%v", err)
		return filterByCategory(cloneEstimates(u.seed), filter), err
	}
	return filterByCategory(all, filter), nil
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	all, err := u.repo.LoadEstimates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	i := entities.FindEstimate(all, id)
	if i < 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return all[i], nil
}

// Save finalizes a draft. A draft without an id creates a new estimate at the
// top of the list; a draft with an id replaces that estimate, keeping its
// status, date and creation time.
func (u *EstimateUseCase) Save(ctx context.Context, draft entities.EstimateDraft) (entities.Estimate, error) {
	if err := draft.Validate(); err != nil {
		log.Printf("[estimate][usecase] save rejected err=%v", err)
		return entities.Estimate{}, err
	}
	if !pricing.InRange(draft.Items) {
		log.Printf("[estimate][usecase] save rejected: total out of range items=%d", len(draft.Items))
		return entities.Estimate{}, &entities.ValidationError{Field: "items", Reason: "견적 합계가 처리 가능한 금액을 넘었습니다."}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	all, err := u.repo.LoadEstimates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}

	items := make([]entities.LineItem, len(draft.Items))
	for i, it := range draft.Items {
		// already validated; this only normalizes units and fills blank ids
		items[i], _ = entities.NewLineItem(entities.LineItemInput(it))
	}
	totals := pricing.Compute(items)
	now := u.now()

	e := entities.Estimate{
		Title:             strings.TrimSpace(draft.Title),
		CustomerName:      strings.TrimSpace(draft.CustomerName),
		Author:            strings.TrimSpace(draft.Author),
		ConstructionPlace: strings.TrimSpace(draft.ConstructionPlace),
		Price:             totals.Final,
		Category:          entities.ParseCategory(string(draft.Category)),
		Items:             items,
		Supplier:          draft.Supplier,
		BankInfo:          draft.BankInfo.WithDefaults(),
		UpdatedAt:         now,
	}

	id := strings.TrimSpace(draft.ID)
	if id != "" {
		i := entities.FindEstimate(all, id)
		if i < 0 {
			return entities.Estimate{}, ErrEstimateNotFound
		}
		prev := all[i]
		e.ID = prev.ID
		e.Status = prev.Status
		e.Date = prev.Date
		e.ImageURL = prev.ImageURL
		e.CreatedAt = prev.CreatedAt
		all[i] = e
	} else {
		e.ID = uuid.NewString()
		e.Status = entities.EstimateStatusDraft
		e.Date = now.Format(DateLayout)
		e.CreatedAt = now
		all = append([]entities.Estimate{e}, all...)
	}

	if err := u.repo.SaveEstimates(ctx, all); err != nil {
		log.Printf("[estimate][usecase] save failed id=%s err=%v", e.ID, err)
		return entities.Estimate{}, err
	}

	if !draft.Supplier.IsZero() {
		if err := u.repo.SaveDefaultSupplier(ctx, draft.Supplier); err != nil {
			log.Printf("[estimate][usecase] default supplier not updated id=%s err=%v", e.ID, err)
		}
	}

	log.Printf("[estimate][usecase] saved id=%s items=%d price=%d", e.ID, len(e.Items), e.Price)
	return e, nil
}

// Transition moves an estimate to status to. Illegal moves leave the stored
// estimate untouched and return a lifecycle.InvalidTransitionError.
func (u *EstimateUseCase) Transition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}
	if !to.Valid() {
		return entities.Estimate{}, ErrInvalidStatus
	}

	moved, err := u.applyTransition(ctx, id, to)
	if err != nil {
		return moved, err
	}

	log.Printf("[estimate][usecase] transition id=%s status=%s", id, moved.Status)
	u.machine.Notify(ctx, moved)
	return moved, nil
}

func (u *EstimateUseCase) applyTransition(ctx context.Context, id string, to entities.EstimateStatus) (entities.Estimate, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	all, err := u.repo.LoadEstimates(ctx)
	if err != nil {
		return entities.Estimate{}, err
	}
	i := entities.FindEstimate(all, id)
	if i < 0 {
		return entities.Estimate{}, ErrEstimateNotFound
	}

	moved, err := u.machine.Apply(all[i], to)
	if err != nil {
		log.Printf("[estimate][usecase] transition rejected id=%s err=%v", id, err)
		return all[i], err
	}
	moved.UpdatedAt = u.now()
	all[i] = moved

	if err := u.repo.SaveEstimates(ctx, all); err != nil {
		log.Printf("[estimate][usecase] transition save failed id=%s err=%v", id, err)
		return entities.Estimate{}, err
	}
	return moved, nil
}

func (u *EstimateUseCase) Send(ctx context.Context, id string) (entities.Estimate, error) {
	return u.Transition(ctx, id, entities.EstimateStatusSent)
}

func (u *EstimateUseCase) Complete(ctx context.Context, id string) (entities.Estimate, error) {
	return u.Transition(ctx, id, entities.EstimateStatusCompleted)
}

func (u *EstimateUseCase) DefaultSupplier(ctx context.Context) (entities.SupplierProfile, error) {
	return u.repo.LoadDefaultSupplier(ctx)
}

func (u *EstimateUseCase) UpdateDefaultSupplier(ctx context.Context, profile entities.SupplierProfile) (entities.SupplierProfile, error) {
	profile = entities.SupplierProfile{
		RegNo:   strings.TrimSpace(profile.RegNo),
		Name:    strings.TrimSpace(profile.Name),
		Rep:     strings.TrimSpace(profile.Rep),
		Address: strings.TrimSpace(profile.Address),
	}
	if err := u.repo.SaveDefaultSupplier(ctx, profile); err != nil {
		return entities.SupplierProfile{}, err
	}
	return profile, nil
}

// NewDraft returns an empty draft pre-filled with the default supplier. A
// storage failure still yields a usable draft alongside the error.
func (u *EstimateUseCase) NewDraft(ctx context.Context) (entities.EstimateDraft, error) {
	d := entities.EstimateDraft{
		Category: entities.CategoryGeneral,
		BankInfo: entities.BankInfo{}.WithDefaults(),
	}
	profile, err := u.repo.LoadDefaultSupplier(ctx)
	if err != nil {
		return d, err
	}
	d.Supplier = profile
	d.Author = profile.Name
	return d, nil
}

func filterByCategory(all []entities.Estimate, c entities.Category) []entities.Estimate {
	if c == "" {
		return all
	}
	out := make([]entities.Estimate, 0, len(all))
	for _, e := range all {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func cloneEstimates(in []entities.Estimate) []entities.Estimate {
	out := make([]entities.Estimate, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}
