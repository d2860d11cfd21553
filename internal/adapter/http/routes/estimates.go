package routes

import (
	"ucraft_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathDrafts    = "/drafts"
	PathDocuments = "/documents"
	PathSupplier  = "/supplier"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, documentHandler *handlers.DocumentHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", estimateHandler.ListEstimates)
		estimates.POST("", estimateHandler.CreateEstimate)
		estimates.GET("/:id", estimateHandler.GetEstimate)
		estimates.PUT("/:id", estimateHandler.UpdateEstimate)
		estimates.PATCH("/:id/send", estimateHandler.SendEstimate)
		estimates.PATCH("/:id/complete", estimateHandler.CompleteEstimate)
		estimates.PATCH("/:id/status", estimateHandler.UpdateStatus)

		estimates.GET("/:id/document", documentHandler.GetDocument)
		estimates.GET("/:id/export", documentHandler.ExportEstimate)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.GET("/new", estimateHandler.NewDraft)
	}
}

func addDocumentRoutes(rg *gin.RouterGroup, documentHandler *handlers.DocumentHandler) {
	documents := rg.Group(PathDocuments)
	{
		documents.GET("/formats", documentHandler.ListFormats)
		documents.POST("/preview", documentHandler.PreviewDraft)
		documents.POST("/export", documentHandler.ExportDraft)
	}
}

func addSupplierRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	supplier := rg.Group(PathSupplier)
	{
		supplier.GET("", estimateHandler.GetSupplier)
		supplier.PUT("", estimateHandler.UpdateSupplier)
	}
}
