package usecase

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"ucraft_estimates/internal/domain/document"
	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/usecase/interfaces"
	mock_interfaces "ucraft_estimates/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type plainFormatter struct{}

func (plainFormatter) Format(amount int64) string { return "W" + strconv.FormatInt(amount, 10) }
func (plainFormatter) Number(amount int64) string { return strconv.FormatInt(amount, 10) }

func storedEstimate() entities.Estimate {
	return entities.Estimate{
		ID:           "e1",
		Title:        "욕실 리모델링",
		CustomerName: "김민수",
		Status:       entities.EstimateStatusSent,
		Price:        130000,
		Items: []entities.LineItem{
			{ID: "i1", Name: "타일", Unit: "m2", Quantity: 2, MaterialCost: 30000, LaborCost: 10000},
			{ID: "i2", Name: "방수", Unit: "식", Quantity: 1, MaterialCost: 50000},
		},
	}
}

func newDocumentFixture(t *testing.T, stored []entities.Estimate, exporters ...interfaces.IDocumentExporter) *DocumentUseCase {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
	repo.EXPECT().LoadEstimates(gomock.Any()).Return(stored, nil).AnyTimes()
	return NewDocumentUseCase(NewEstimateUseCase(repo, nil, nil), plainFormatter{}, exporters...)
}

func TestDocumentUseCase_Render(t *testing.T) {
	t.Run("stored estimate", func(t *testing.T) {
		uc := newDocumentFixture(t, []entities.Estimate{storedEstimate()})

		doc, err := uc.Render(context.Background(), "e1", "B")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Layout != document.LayoutModern || doc.FinalAmount != 130000 || doc.ItemCount != 2 {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})

	t.Run("seed estimate without items uses cached price", func(t *testing.T) {
		seed := entities.Estimate{ID: "1", Title: "seed", Price: 4500000}
		uc := newDocumentFixture(t, []entities.Estimate{seed})

		doc, err := uc.Render(context.Background(), "1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.FinalAmount != 4500000 || doc.Payments[0].Amount != 1350000 {
			t.Fatalf("unexpected totals: %d %+v", doc.FinalAmount, doc.Payments)
		}
		if len(doc.Rows) != 6 {
			t.Fatalf("expected padded rows, got %d", len(doc.Rows))
		}
	})

	t.Run("unknown layout", func(t *testing.T) {
		uc := newDocumentFixture(t, []entities.Estimate{storedEstimate()})
		if _, err := uc.Render(context.Background(), "e1", "fancy"); !errors.Is(err, document.ErrUnknownLayout) {
			t.Fatalf("expected ErrUnknownLayout, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc := newDocumentFixture(t, nil)
		if _, err := uc.Render(context.Background(), "nope", ""); !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestDocumentUseCase_RenderDraft(t *testing.T) {
	uc := newDocumentFixture(t, nil)

	if _, err := uc.RenderDraft(entities.EstimateDraft{Title: "t"}, ""); !errors.Is(err, ErrNothingToPreview) {
		t.Fatalf("expected ErrNothingToPreview, got %v", err)
	}

	d := entities.EstimateDraft{Items: storedEstimate().Items}
	doc, err := uc.RenderDraft(d, document.LayoutBoxed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.FinalAmount != 130000 || len(doc.Rows) != 5 || doc.Date == "" {
		t.Fatalf("unexpected document: %+v", doc)
	}
}

func TestDocumentUseCase_Export(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pdf := mock_interfaces.NewMockIDocumentExporter(ctrl)
		pdf.EXPECT().Format().Return("pdf").AnyTimes()
		pdf.EXPECT().Export(gomock.Any(), gomock.Any(), document.LayoutStandard, "욕실 리모델링_A타입.pdf").
			Return(interfaces.Artifact{Filename: "욕실 리모델링_A타입.pdf", ContentType: "application/pdf", Data: []byte("%PDF-")}, nil)

		uc := newDocumentFixture(t, []entities.Estimate{storedEstimate()}, pdf)
		art, err := uc.Export(context.Background(), "e1", "", "PDF")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if art.ContentType != "application/pdf" || len(art.Data) == 0 {
			t.Fatalf("unexpected artifact: %+v", art)
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		uc := newDocumentFixture(t, []entities.Estimate{storedEstimate()})
		if _, err := uc.Export(context.Background(), "e1", "", "docx"); !errors.Is(err, ErrUnsupportedFormat) {
			t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
		}
	})

	t.Run("exporter failure is retryable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		xlsx := mock_interfaces.NewMockIDocumentExporter(ctrl)
		xlsx.EXPECT().Format().Return("xlsx").AnyTimes()
		xlsx.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.Artifact{}, errors.New("disk full"))

		stored := []entities.Estimate{storedEstimate()}
		uc := newDocumentFixture(t, stored, xlsx)
		_, err := uc.Export(context.Background(), "e1", "C", "xlsx")

		var failure *interfaces.ExportFailure
		if !errors.As(err, &failure) || !failure.Retryable || !errors.Is(err, interfaces.ErrExportFailed) {
			t.Fatalf("expected retryable ExportFailure, got %v", err)
		}
		if stored[0].Status != entities.EstimateStatusSent || stored[0].Price != 130000 {
			t.Fatalf("estimate must not change on failed export: %+v", stored[0])
		}
	})

	t.Run("cancelled context discards artifact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pdf := mock_interfaces.NewMockIDocumentExporter(ctrl)
		pdf.EXPECT().Format().Return("pdf").AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		pdf.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, document.Document, document.Layout, string) (interfaces.Artifact, error) {
				cancel()
				return interfaces.Artifact{Data: []byte("partial")}, nil
			},
		)

		uc := newDocumentFixture(t, []entities.Estimate{storedEstimate()}, pdf)
		art, err := uc.Export(ctx, "e1", "", "pdf")
		if !errors.Is(err, context.Canceled) || len(art.Data) != 0 {
			t.Fatalf("expected cancellation and no artifact, got %v / %d bytes", err, len(art.Data))
		}
	})

	t.Run("draft export uses default filename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pdf := mock_interfaces.NewMockIDocumentExporter(ctrl)
		pdf.EXPECT().Format().Return("pdf").AnyTimes()
		pdf.EXPECT().Export(gomock.Any(), gomock.Any(), document.LayoutModern, "견적서_B타입.pdf").Return(interfaces.Artifact{Data: []byte("x")}, nil)

		uc := newDocumentFixture(t, nil, pdf)
		if _, err := uc.ExportDraft(context.Background(), entities.EstimateDraft{Items: storedEstimate().Items}, "modern", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := uc.Formats(); len(got) != 1 || got[0] != "pdf" {
			t.Fatalf("unexpected formats: %v", got)
		}
	})
}
