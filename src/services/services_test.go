package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A pooled :memory: connection per conn means a separate database per
	// conn. Pin the pool to one connection so every query sees the schema.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Warehouse{},
		&models.Supplier{},
		&models.Inventory{},
		&models.Order{},
		&models.OrderItem{},
		&models.StockMovement{},
		&models.AuditLog{},
	))

	return db
}

func newReconciliationService(db *gorm.DB) *ReconciliationService {
	return &ReconciliationService{
		DB:        db,
		Orders:    &repositories.OrderRepository{DB: db},
		Inventory: &repositories.InventoryRepository{DB: db},
		Movements: &repositories.StockMovementRepository{DB: db},
		Audits:    &repositories.AuditLogRepository{DB: db},
		Log:       zap.NewNop(),
	}
}

func newOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:         db,
		Orders:     &repositories.OrderRepository{DB: db},
		Suppliers:  &repositories.SupplierRepository{DB: db},
		Warehouses: &repositories.WarehouseRepository{DB: db},
		Audits:     &repositories.AuditLogRepository{DB: db},
		Log:        zap.NewNop(),
	}
}

func newInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{
		DB:        db,
		Inventory: &repositories.InventoryRepository{DB: db},
		Movements: &repositories.StockMovementRepository{DB: db},
		Audits:    &repositories.AuditLogRepository{DB: db},
		Log:       zap.NewNop(),
	}
}

func createTestProduct(t *testing.T, db *gorm.DB, sku, name string, minStock int) *models.Product {
	t.Helper()
	product := &models.Product{
		SKU:       sku,
		Name:      name,
		Category:  "Network Equipment",
		UnitPrice: decimal.NewFromFloat(100),
		MinStock:  minStock,
		IsActive:  true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func createTestWarehouse(t *testing.T, db *gorm.DB, code string) *models.Warehouse {
	t.Helper()
	warehouse := &models.Warehouse{
		Code:     code,
		Name:     "Warehouse " + code,
		Address:  "Bole Road",
		City:     "Addis Ababa",
		Capacity: 1000,
		IsActive: true,
	}
	require.NoError(t, db.Create(warehouse).Error)
	return warehouse
}

func createTestSupplier(t *testing.T, db *gorm.DB, code string) *models.Supplier {
	t.Helper()
	supplier := &models.Supplier{
		Code:     code,
		Name:     "Supplier " + code,
		Country:  "Ethiopia",
		IsActive: true,
	}
	require.NoError(t, db.Create(supplier).Error)
	return supplier
}

// createPendingOrder inserts an order directly, bypassing the order service,
// so reconciliation tests control the exact starting state.
func createPendingOrder(t *testing.T, db *gorm.DB, orderType models.OrderType, warehouseID uuid.UUID, items []models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNumber: fmt.Sprintf("TST-%s", uuid.New().String()[:8]),
		Type:        orderType,
		Status:      models.OrderStatusPending,
		WarehouseID: warehouseID,
		TotalAmount: decimal.Zero,
		CreatedByID: uuid.New(),
		Items:       items,
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func createTestInventory(t *testing.T, db *gorm.DB, productID, warehouseID uuid.UUID, quantity int) *models.Inventory {
	t.Helper()
	inv := &models.Inventory{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		Location:    "A-01",
	}
	require.NoError(t, db.Create(inv).Error)
	return inv
}

func reloadOrder(t *testing.T, db *gorm.DB, id uuid.UUID) *models.Order {
	t.Helper()
	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", id).Error)
	return &order
}

func reloadInventory(t *testing.T, db *gorm.DB, productID, warehouseID uuid.UUID) *models.Inventory {
	t.Helper()
	var inv models.Inventory
	require.NoError(t, db.First(&inv, "product_id = ? AND warehouse_id = ?", productID, warehouseID).Error)
	return &inv
}

func countMovements(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.StockMovement{}).Count(&count).Error)
	return count
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
