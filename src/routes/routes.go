package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/handlers"
)

func RegisterStockRoutes(r *gin.RouterGroup, handler *handlers.StockHandler) {
	r.GET("/stock-in", handler.ListStockIn)
	r.POST("/stock-in", handler.CreateStockIn)
	r.POST("/stock-in/process", handler.ProcessStockIn)

	r.GET("/stock-out", handler.ListStockOut)
	r.POST("/stock-out", handler.CreateStockOut)
	r.POST("/stock-out/:id/process", handler.ProcessStockOut)
}

func RegisterInventoryRoutes(r *gin.RouterGroup, handler *handlers.InventoryHandler) {
	r.GET("/inventory", handler.List)
	r.GET("/inventory/low-stock", handler.ListLowStock)
	r.POST("/inventory", handler.Create)
	r.PUT("/inventory/:id", handler.Update)
	r.DELETE("/inventory/:id", handler.Delete)
}

func RegisterCatalogRoutes(r *gin.RouterGroup, handler *handlers.CatalogHandler) {
	r.GET("/products", handler.ListProducts)
	r.POST("/products", handler.CreateProduct)

	r.GET("/warehouses", handler.ListWarehouses)
	r.POST("/warehouses", handler.CreateWarehouse)

	r.GET("/suppliers", handler.ListSuppliers)
	r.POST("/suppliers", handler.CreateSupplier)
}

func RegisterDashboardRoutes(r *gin.RouterGroup, handler *handlers.DashboardHandler) {
	r.GET("/dashboard/stats", handler.Stats)
	r.GET("/dashboard/activities", handler.Activities)
}
