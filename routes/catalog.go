package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/shoplite/ecommerce-api/controllers/product"
)

func setupCatalogRoutes(r *gin.Engine, d Deps) {
	categories := r.Group("/categories")
	{
		categories.GET("", productControllers.GetCategories(d.Catalog))
		categories.GET("/:id", productControllers.GetCategoryByID(d.Catalog))
		categories.POST("", productControllers.CreateCategory(d.Catalog))
		categories.PUT("/:id", productControllers.UpdateCategory(d.Catalog))
	}

	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(d.Catalog))
		products.GET("/export", productControllers.ExportProductsToExcel(d.Catalog))
		products.GET("/:id", productControllers.GetProductByID(d.Catalog))
		products.POST("", productControllers.AddProduct(d.Catalog))
		products.PUT("/:id", productControllers.UpdateProduct(d.Catalog))
	}
}
