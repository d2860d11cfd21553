package handlers

//go:generate mockgen -destination=mocks/mock_catalog_usecase.go -package=mocks ucraft_estimates/internal/usecase ICatalogUseCase

import (
	"errors"
	"net/http"
	"strconv"

	"ucraft_estimates/internal/adapter/http/dto/request"
	"ucraft_estimates/internal/usecase"
	"ucraft_estimates/pkg"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// SearchCatalog godoc
// @Summary      Search the price list
// @Tags         catalog
// @Produce      json
// @Param        q          query     string  false  "Substring of name or description"
// @Param        category   query     string  false  "Exact category; blank, all or 전체 for every category"
// @Param        favorites  query     bool    false  "Only favorites"
// @Success      200        {array}   entities.CatalogItem
// @Router       /catalog [get]
func (h *CatalogHandler) SearchCatalog(c *gin.Context) {
	if c.Query("favorites") == "true" {
		c.JSON(http.StatusOK, h.usecase.Favorites())
		return
	}
	c.JSON(http.StatusOK, h.usecase.Search(c.Query("q"), c.Query("category")))
}

// ListCategories godoc
// @Summary      List price list categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Categories())
}

// GetCatalogItem godoc
// @Summary      Pre-fill the item form from one price list entry
// @Tags         catalog
// @Produce      json
// @Param        id   path      string  true  "Catalog item ID"
// @Success      200  {object}  request.LineItemRequest
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/{id} [get]
func (h *CatalogHandler) GetCatalogItem(c *gin.Context) {
	it, err := h.usecase.Item(c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	in := h.usecase.Select(it)
	c.JSON(http.StatusOK, request.LineItemRequest{
		Name:         in.Name,
		Description:  in.Description,
		Unit:         in.Unit,
		MaterialCost: request.FormValue(formatNumber(in.MaterialCost)),
	})
}

// ApplyCatalog godoc
// @Summary      Turn price list entries into line items
// @Description  Quantity 1, no labor, material cost at the listed price.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        request  body      request.CatalogApplyRequest  true  "Catalog item IDs"
// @Success      200      {array}   entities.LineItem
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /catalog/apply [post]
func (h *CatalogHandler) ApplyCatalog(c *gin.Context) {
	var req request.CatalogApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	items, err := h.usecase.ApplyManyByID(req.ResolveIDs())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListTemplates godoc
// @Summary      List estimate templates
// @Tags         templates
// @Produce      json
// @Success      200  {array}  entities.Template
// @Router       /templates [get]
func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Templates())
}

// ApplyTemplate godoc
// @Summary      Copy a template into new line items
// @Tags         templates
// @Produce      json
// @Param        id   path      string  true  "Template ID"
// @Success      200  {array}   entities.LineItem
// @Failure      404  {object}  pkg.HTTPError
// @Router       /templates/{id}/apply [post]
func (h *CatalogHandler) ApplyTemplate(c *gin.Context) {
	items, err := h.usecase.ApplyTemplateByID(c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, items)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogItemNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
