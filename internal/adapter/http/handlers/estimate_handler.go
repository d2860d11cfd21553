package handlers

//go:generate mockgen -destination=mocks/mock_estimate_usecase.go -package=mocks ucraft_estimates/internal/usecase IEstimateUseCase

import (
	"errors"
	"log"
	"net/http"

	"ucraft_estimates/internal/adapter/http/dto/request"
	"ucraft_estimates/internal/adapter/http/dto/response"
	"ucraft_estimates/internal/domain/entities"
	"ucraft_estimates/internal/domain/lifecycle"
	"ucraft_estimates/internal/usecase"
	"ucraft_estimates/internal/usecase/interfaces"
	"ucraft_estimates/pkg"

	"github.com/gin-gonic/gin"
)

// storageWarning is returned next to the bundled examples when the store
// cannot be read.
const storageWarning = "저장된 견적서를 불러오지 못해 예시 견적서를 표시합니다."

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// ListEstimates godoc
// @Summary      List estimates
// @Description  Newest first. When the store cannot be read the bundled examples are returned with a warning.
// @Tags         estimates
// @Produce      json
// @Param        category  query     string  false  "Carpentry, Tile, General (or 목공, 타일, 종합); blank for all"
// @Success      200       {object}  response.EstimateListResponse
// @Failure      400       {object}  pkg.HTTPError
// @Router       /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	category := c.Query("category")
	list, err := h.usecase.List(c.Request.Context(), category)
	if err != nil {
		if errors.Is(err, interfaces.ErrStorageUnavailable) && list != nil {
			log.Printf("[estimate][handler] list degraded category=%q err=%v", category, err)
			res := response.FromEstimates(list)
			res.Warning = storageWarning
			c.JSON(http.StatusOK, res)
			return
		}
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(list))
}

// GetEstimate godoc
// @Summary      Get an estimate
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(e))
}

// CreateEstimate godoc
// @Summary      Finalize a new estimate
// @Description  The price is always recomputed from the items.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request  body      request.EstimateRequest  true  "Estimate form"
// @Success      201      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

// UpdateEstimate godoc
// @Summary      Replace an estimate
// @Description  Status, date and creation time are kept.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id       path      string                   true  "Estimate ID"
// @Param        request  body      request.EstimateRequest  true  "Estimate form"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		appErr := mapEstimateError(usecase.ErrInvalidEstimateID)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.save(c, id, http.StatusOK)
}

func (h *EstimateHandler) save(c *gin.Context, id string, status int) {
	var req request.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[estimate][handler] invalid payload id=%q err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	draft, err := req.ToDraft(id)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[estimate][handler] save failed id=%q err=%v", id, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromEstimate(saved))
}

// SendEstimate godoc
// @Summary      Mark an estimate as sent
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/send [patch]
func (h *EstimateHandler) SendEstimate(c *gin.Context) {
	h.patchStatus(c, entities.EstimateStatusSent)
}

// CompleteEstimate godoc
// @Summary      Mark an estimate as completed
// @Tags         estimates
// @Produce      json
// @Param        id   path      string  true  "Estimate ID"
// @Success      200  {object}  response.EstimateResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /estimates/{id}/complete [patch]
func (h *EstimateHandler) CompleteEstimate(c *gin.Context) {
	h.patchStatus(c, entities.EstimateStatusCompleted)
}

// UpdateStatus godoc
// @Summary      Move an estimate to a status
// @Description  Only Draft → Sent → Completed is allowed.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Estimate ID"
// @Param        request  body      request.StatusRequest  true  "Target status"
// @Success      200      {object}  response.EstimateResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /estimates/{id}/status [patch]
func (h *EstimateHandler) UpdateStatus(c *gin.Context) {
	var req request.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	to, err := req.ResolveStatus()
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.patchStatus(c, to)
}

func (h *EstimateHandler) patchStatus(c *gin.Context, to entities.EstimateStatus) {
	id := c.Param("id")
	log.Printf("[estimate][handler] transition start id=%s to=%s", id, to)

	moved, err := h.usecase.Transition(c.Request.Context(), id, to)
	if err != nil {
		log.Printf("[estimate][handler] transition failed id=%s to=%s err=%v", id, to, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEstimate(moved))
}

// NewDraft godoc
// @Summary      Start a new estimate form
// @Description  Pre-filled with the supplier of the last saved estimate.
// @Tags         estimates
// @Produce      json
// @Success      200  {object}  response.DraftResponse
// @Router       /drafts/new [get]
func (h *EstimateHandler) NewDraft(c *gin.Context) {
	d, err := h.usecase.NewDraft(c.Request.Context())
	res := response.FromDraft(d)
	if err != nil {
		if !errors.Is(err, interfaces.ErrStorageUnavailable) {
			appErr := mapEstimateError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[estimate][handler] new draft without default supplier err=%v", err)
		res.Warning = "기본 공급자 정보를 불러오지 못했습니다."
	}
	c.JSON(http.StatusOK, res)
}

// GetSupplier godoc
// @Summary      Get the default supplier
// @Tags         supplier
// @Produce      json
// @Success      200  {object}  entities.Supplier
// @Failure      503  {object}  pkg.HTTPError
// @Router       /supplier [get]
func (h *EstimateHandler) GetSupplier(c *gin.Context) {
	s, err := h.usecase.DefaultSupplier(c.Request.Context())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSupplier godoc
// @Summary      Replace the default supplier
// @Tags         supplier
// @Accept       json
// @Produce      json
// @Param        request  body      request.SupplierRequest  true  "Supplier"
// @Success      200      {object}  entities.Supplier
// @Failure      400      {object}  pkg.HTTPError
// @Router       /supplier [put]
func (h *EstimateHandler) UpdateSupplier(c *gin.Context) {
	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	s, err := h.usecase.UpdateDefaultSupplier(c.Request.Context(), req.ToEntity())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, s)
}

func mapEstimateError(err error) *pkg.AppError {
	var ve *entities.ValidationError
	if errors.As(err, &ve) {
		return pkg.NewFieldError("VALIDATION_ERROR", ve.Field, ve.Reason, err)
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus), errors.Is(err, request.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status must be Draft, Sent or Completed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrStorageUnavailable):
		return pkg.NewDomainError("STORAGE_UNAVAILABLE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
