package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/config"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/handlers"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/logger"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/middleware"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/routes"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog := logger.New(cfg.Log.Level, cfg.Log.Format)
	defer zlog.Sync()

	db, err := config.InitDB(cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Warehouse{},
		&models.Supplier{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
		&models.StockMovement{},
		&models.AuditLog{},
	); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	if err := seedSampleData(db); err != nil {
		zlog.Warn("failed to seed sample data", zap.Error(err))
	}

	// Initialize repositories
	inventoryRepo := &repositories.InventoryRepository{DB: db}
	orderRepo := &repositories.OrderRepository{DB: db}
	movementRepo := &repositories.StockMovementRepository{DB: db}
	auditRepo := &repositories.AuditLogRepository{DB: db}
	productRepo := &repositories.ProductRepository{DB: db}
	warehouseRepo := &repositories.WarehouseRepository{DB: db}
	supplierRepo := &repositories.SupplierRepository{DB: db}
	dashboardRepo := &repositories.DashboardRepository{DB: db}

	// Initialize services
	reconciliationService := &services.ReconciliationService{
		DB:        db,
		Orders:    orderRepo,
		Inventory: inventoryRepo,
		Movements: movementRepo,
		Audits:    auditRepo,
		Log:       zlog,
	}
	orderService := &services.OrderService{
		DB:         db,
		Orders:     orderRepo,
		Suppliers:  supplierRepo,
		Warehouses: warehouseRepo,
		Audits:     auditRepo,
		Log:        zlog,
	}
	inventoryService := &services.InventoryService{
		DB:        db,
		Inventory: inventoryRepo,
		Movements: movementRepo,
		Audits:    auditRepo,
		Log:       zlog,
	}
	catalogService := &services.CatalogService{
		Products:   productRepo,
		Warehouses: warehouseRepo,
		Suppliers:  supplierRepo,
		Log:        zlog,
	}
	dashboardService := &services.DashboardService{
		Dashboard: dashboardRepo,
		Orders:    orderRepo,
	}

	// Initialize handlers
	stockHandler := &handlers.StockHandler{
		Orders:         orderService,
		Reconciliation: reconciliationService,
		Log:            zlog,
	}
	inventoryHandler := &handlers.InventoryHandler{Service: inventoryService, Log: zlog}
	catalogHandler := &handlers.CatalogHandler{Service: catalogService, Log: zlog}
	dashboardHandler := &handlers.DashboardHandler{Service: dashboardService, Log: zlog}

	// Setup router with recovery middleware
	router := gin.Default()

	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(cfg.JWT.Secret))
	routes.RegisterStockRoutes(api, stockHandler)
	routes.RegisterInventoryRoutes(api, inventoryHandler)
	routes.RegisterCatalogRoutes(api, catalogHandler)
	routes.RegisterDashboardRoutes(api, dashboardHandler)

	zlog.Info("starting server", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}

func seedSampleData(db *gorm.DB) error {
	var warehouseCount int64
	db.Model(&models.Warehouse{}).Count(&warehouseCount)

	if warehouseCount == 0 {
		warehouses := []models.Warehouse{
			{Code: "WH-MAIN", Name: "Main Warehouse", Address: "Bole Road", City: "Addis Ababa", Capacity: 10000},
			{Code: "WH-NORTH", Name: "North Depot", Address: "Mekelle Industrial Zone", City: "Mekelle", Capacity: 5000},
		}
		for _, warehouse := range warehouses {
			if err := db.FirstOrCreate(&warehouse, "code = ?", warehouse.Code).Error; err != nil {
				return err
			}
		}
	}

	var productCount int64
	db.Model(&models.Product{}).Count(&productCount)

	if productCount == 0 {
		products := []models.Product{
			{SKU: "RTR-001", Name: "Fiber Router X200", Category: "Network Equipment", Brand: "TeleNet", UnitPrice: decimal.NewFromFloat(1450.00), MinStock: 10, IsActive: true},
			{SKU: "CBL-050", Name: "Fiber Optic Cable 50m", Category: "Cabling", Brand: "OptiLine", UnitPrice: decimal.NewFromFloat(320.50), MinStock: 25, IsActive: true},
			{SKU: "MDM-010", Name: "LTE Modem M10", Category: "Network Equipment", Brand: "TeleNet", UnitPrice: decimal.NewFromFloat(780.00), MinStock: 15, IsActive: true},
		}
		for _, product := range products {
			if err := db.FirstOrCreate(&product, "sku = ?", product.SKU).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
