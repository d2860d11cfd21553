package interfaces

//go:generate mockgen -source=document_exporter_interface.go -destination=mocks/mock_document_exporter.go -package=mock_interfaces

import (
	"context"
	"errors"
	"fmt"

	"ucraft_estimates/internal/domain/document"
)

// ErrExportFailed matches every *ExportFailure through errors.Is.
var ErrExportFailed = errors.New("export failed")

// ExportFailure is a failed export. Nothing was persisted or changed, so the
// caller may retry when Retryable is set.
type ExportFailure struct {
	Format    string
	Retryable bool
	Err       error
}

func (e *ExportFailure) Error() string {
	return fmt.Sprintf("export %s failed: %v", e.Format, e.Err)
}

func (e *ExportFailure) Unwrap() error { return e.Err }

func (e *ExportFailure) Is(target error) bool {
	return target == ErrExportFailed
}

// Artifact is a finished export ready to be handed to the user.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IDocumentExporter renders a composed document into a file format.
type IDocumentExporter interface {
	Format() string
	Export(ctx context.Context, doc document.Document, layout document.Layout, filename string) (Artifact, error)
}

// ICurrencyFormatter renders whole currency amounts for documents and responses.
type ICurrencyFormatter interface {
	Format(amount int64) string
	Number(amount int64) string
}
