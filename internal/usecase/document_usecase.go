package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ucraft_estimates/internal/domain/document"
	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/pricing"
	"ucraft_estimates/internal/usecase/interfaces"
)

var (
	ErrNothingToPreview  = errors.New("draft has no items to preview")
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// IDocumentUseCase renders estimates and drafts and hands them to exporters.
//
// Rendering never changes an estimate; a failed export leaves nothing behind.
type IDocumentUseCase interface {
	Render(ctx context.Context, estimateID string, layout document.Layout) (document.Document, error)
	RenderDraft(draft entities.EstimateDraft, layout document.Layout) (document.Document, error)
	Export(ctx context.Context, estimateID string, layout document.Layout, format string) (interfaces.Artifact, error)
	ExportDraft(ctx context.Context, draft entities.EstimateDraft, layout document.Layout, format string) (interfaces.Artifact, error)
	Formats() []string
}

type DocumentUseCase struct {
	estimates IEstimateUseCase
	formatter interfaces.ICurrencyFormatter
	exporters map[string]interfaces.IDocumentExporter
	formats   []string
	now       func() time.Time
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(estimates IEstimateUseCase, formatter interfaces.ICurrencyFormatter, exporters ...interfaces.IDocumentExporter) *DocumentUseCase {
	u := &DocumentUseCase{
		estimates: estimates,
		formatter: formatter,
		exporters: make(map[string]interfaces.IDocumentExporter, len(exporters)),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, ex := range exporters {
		if ex == nil {
			continue
		}
		f := strings.ToLower(ex.Format())
		if _, dup := u.exporters[f]; !dup {
			u.formats = append(u.formats, f)
		}
		u.exporters[f] = ex
	}
	return u
}

func (u *DocumentUseCase) Formats() []string {
	return append([]string(nil), u.formats...)
}

func (u *DocumentUseCase) Render(ctx context.Context, estimateID string, layout document.Layout) (document.Document, error) {
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return document.Document{}, err
	}
	return u.compose(e, layout)
}

// RenderDraft previews an unsaved draft. Only items are required.
func (u *DocumentUseCase) RenderDraft(draft entities.EstimateDraft, layout document.Layout) (document.Document, error) {
	if !draft.CanPreview() {
		return document.Document{}, ErrNothingToPreview
	}
	return u.compose(u.previewEstimate(draft), layout)
}

func (u *DocumentUseCase) Export(ctx context.Context, estimateID string, layout document.Layout, format string) (interfaces.Artifact, error) {
	ex, err := u.exporter(format)
	if err != nil {
		return interfaces.Artifact{}, err
	}
	e, err := u.estimates.GetByID(ctx, estimateID)
	if err != nil {
		return interfaces.Artifact{}, err
	}
	doc, err := u.compose(e, layout)
	if err != nil {
		return interfaces.Artifact{}, err
	}
	return u.export(ctx, ex, doc, e.Title)
}

func (u *DocumentUseCase) ExportDraft(ctx context.Context, draft entities.EstimateDraft, layout document.Layout, format string) (interfaces.Artifact, error) {
	ex, err := u.exporter(format)
	if err != nil {
		return interfaces.Artifact{}, err
	}
	doc, err := u.RenderDraft(draft, layout)
	if err != nil {
		return interfaces.Artifact{}, err
	}
	return u.export(ctx, ex, doc, draft.Title)
}

func (u *DocumentUseCase) compose(e entities.Estimate, layout document.Layout) (document.Document, error) {
	layout, err := document.ParseLayout(string(layout))
	if err != nil {
		return document.Document{}, err
	}

	totals := pricing.Compute(e.Items)
	if len(e.Items) == 0 {
		// seed estimates only carry a cached price
		totals = pricing.ForPrice(e.Price)
	}
	return document.Compose(e, totals, layout, u.formatter)
}

func (u *DocumentUseCase) previewEstimate(d entities.EstimateDraft) entities.Estimate {
	return entities.Estimate{
		ID:                d.ID,
		Title:             d.Title,
		CustomerName:      d.CustomerName,
		Author:            d.Author,
		ConstructionPlace: d.ConstructionPlace,
		Status:            entities.EstimateStatusDraft,
		Category:          entities.ParseCategory(string(d.Category)),
		Date:              u.now().Format(DateLayout),
		Items:             append([]entities.LineItem(nil), d.Items...),
		Supplier:          d.Supplier,
		BankInfo:          d.BankInfo,
	}
}

func (u *DocumentUseCase) exporter(format string) (interfaces.IDocumentExporter, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = "pdf"
	}
	ex, ok := u.exporters[format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}
	return ex, nil
}

func (u *DocumentUseCase) export(ctx context.Context, ex interfaces.IDocumentExporter, doc document.Document, title string) (interfaces.Artifact, error) {
	filename := document.SuggestedFilename(title, doc.Layout, ex.Format())

	log.Printf("[document][usecase] export start format=%s layout=%s filename=%q", ex.Format(), doc.Layout, filename)
	art, err := ex.Export(ctx, doc, doc.Layout, filename)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		log.Printf("[document][usecase] export failed format=%s err=%v", ex.Format(), err)
		var failure *interfaces.ExportFailure
		if errors.As(err, &failure) {
			return interfaces.Artifact{}, err
		}
		return interfaces.Artifact{}, &interfaces.ExportFailure{Format: ex.Format(), Retryable: true, Err: err}
	}
	log.Printf("[document][usecase] export success format=%s bytes=%d", ex.Format(), len(art.Data))
	return art, nil
}
