package routes

import (
	"ucraft_estimates/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog   = "/catalog"
	PathTemplates = "/templates"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.SearchCatalog)
		catalog.GET("/categories", catalogHandler.ListCategories)
		catalog.GET("/:id", catalogHandler.GetCatalogItem)
		catalog.POST("/apply", catalogHandler.ApplyCatalog)
	}

	templates := rg.Group(PathTemplates)
	{
		templates.GET("", catalogHandler.ListTemplates)
		templates.POST("/:id/apply", catalogHandler.ApplyTemplate)
	}
}
