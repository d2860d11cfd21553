package handlers

//go:generate mockgen -destination=mocks/mock_document_usecase.go -package=mocks ucraft_estimates/internal/usecase IDocumentUseCase

import (
	"context"
	"errors"
	"log"
	"mime"
	"net/http"

	"ucraft_estimates/internal/adapter/http/dto/request"
	"ucraft_estimates/internal/adapter/http/dto/response"
	"ucraft_estimates/internal/domain/document"
	"ucraft_estimates/internal/usecase"
	"ucraft_estimates/internal/usecase/interfaces"
	"ucraft_estimates/pkg"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// GetDocument godoc
// @Summary      Render the printable content of an estimate
// @Tags         documents
// @Produce      json
// @Param        id      path      string  true   "Estimate ID"
// @Param        layout  query     string  false  "standard, modern, boxed (or A, B, C)"
// @Success      200     {object}  response.DocumentResponse
// @Failure      400     {object}  pkg.HTTPError
// @Failure      404     {object}  pkg.HTTPError
// @Router       /estimates/{id}/document [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.usecase.Render(c.Request.Context(), c.Param("id"), document.Layout(c.Query("layout")))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ExportEstimate godoc
// @Summary      Download an estimate as a file
// @Tags         documents
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id      path      string  true   "Estimate ID"
// @Param        layout  query     string  false  "standard, modern, boxed (or A, B, C)"
// @Param        format  query     string  false  "pdf (default) or xlsx"
// @Success      200     {file}    file
// @Failure      400     {object}  pkg.HTTPError
// @Failure      503     {object}  pkg.HTTPError
// @Router       /estimates/{id}/export [get]
func (h *DocumentHandler) ExportEstimate(c *gin.Context) {
	id := c.Param("id")
	art, err := h.usecase.Export(c.Request.Context(), id, document.Layout(c.Query("layout")), c.Query("format"))
	if err != nil {
		log.Printf("[document][handler] export failed id=%s err=%v", id, err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeArtifact(c, art)
}

// PreviewDraft godoc
// @Summary      Render an unsaved estimate form
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        request  body      request.DocumentRequest  true  "Draft and layout"
// @Success      200      {object}  response.DocumentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /documents/preview [post]
func (h *DocumentHandler) PreviewDraft(c *gin.Context) {
	req, ok := bindDocumentRequest(c)
	if !ok {
		return
	}
	draft, err := req.Draft.ToDraft("")
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	doc, err := h.usecase.RenderDraft(draft, document.Layout(req.Layout))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ExportDraft godoc
// @Summary      Download an unsaved estimate form as a file
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      request.DocumentRequest  true  "Draft, layout and format"
// @Success      200      {file}    file
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /documents/export [post]
func (h *DocumentHandler) ExportDraft(c *gin.Context) {
	req, ok := bindDocumentRequest(c)
	if !ok {
		return
	}
	draft, err := req.Draft.ToDraft("")
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	art, err := h.usecase.ExportDraft(c.Request.Context(), draft, document.Layout(req.Layout), req.Format)
	if err != nil {
		log.Printf("[document][handler] draft export failed err=%v", err)
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	writeArtifact(c, art)
}

// ListFormats godoc
// @Summary      List export formats and layouts
// @Tags         documents
// @Produce      json
// @Success      200  {object}  response.FormatsResponse
// @Router       /documents/formats [get]
func (h *DocumentHandler) ListFormats(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFormats(h.usecase.Formats()))
}

func bindDocumentRequest(c *gin.Context) (request.DocumentRequest, bool) {
	var req request.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[document][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return req, false
	}
	return req, true
}

func writeArtifact(c *gin.Context, art interfaces.Artifact) {
	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": art.Filename})
	if disposition == "" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, art.ContentType, art.Data)
}

func mapDocumentError(err error) *pkg.AppError {
	var failure *interfaces.ExportFailure
	switch {
	case errors.Is(err, document.ErrUnknownLayout):
		return pkg.NewDomainErrorSimple("UNKNOWN_LAYOUT", "Layout must be standard, modern or boxed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_FORMAT", "Unsupported export format", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNothingToPreview):
		return pkg.NewDomainErrorSimple("NOTHING_TO_PREVIEW", "견적 항목을 하나 이상 추가해주세요.", http.StatusUnprocessableEntity)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("EXPORT_CANCELED", "Export canceled", err, http.StatusRequestTimeout)
	case errors.As(err, &failure):
		if failure.Retryable {
			return pkg.NewDomainError("EXPORT_FAILED", "Export failed, please retry", err, http.StatusServiceUnavailable)
		}
		return pkg.NewDomainError("EXPORT_FAILED", "Export failed", err, http.StatusInternalServerError)
	default:
		return mapEstimateError(err)
	}
}
