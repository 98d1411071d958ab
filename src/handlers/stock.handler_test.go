package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/handlers"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/middleware"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/routes"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/services"
)

const testSecret = "test-secret"

type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Warehouse{}, &models.Supplier{},
		&models.Inventory{}, &models.Order{}, &models.OrderItem{},
		&models.StockMovement{}, &models.AuditLog{},
	))

	zlog := zap.NewNop()
	orderRepo := &repositories.OrderRepository{DB: db}
	inventoryRepo := &repositories.InventoryRepository{DB: db}
	movementRepo := &repositories.StockMovementRepository{DB: db}
	auditRepo := &repositories.AuditLogRepository{DB: db}

	stockHandler := &handlers.StockHandler{
		Orders: &services.OrderService{
			DB:         db,
			Orders:     orderRepo,
			Suppliers:  &repositories.SupplierRepository{DB: db},
			Warehouses: &repositories.WarehouseRepository{DB: db},
			Audits:     auditRepo,
			Log:        zlog,
		},
		Reconciliation: &services.ReconciliationService{
			DB:        db,
			Orders:    orderRepo,
			Inventory: inventoryRepo,
			Movements: movementRepo,
			Audits:    auditRepo,
			Log:       zlog,
		},
		Log: zlog,
	}

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.RequireAuth(testSecret))
	routes.RegisterStockRoutes(api, stockHandler)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  uuid.New().String(),
		"name": "Test Operator",
		"role": "OPERATOR",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return &testApp{db: db, router: router, token: signed}
}

func (app *testApp) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+app.token)
	recorder := httptest.NewRecorder()
	app.router.ServeHTTP(recorder, req)
	return recorder
}

func (app *testApp) seedCatalog(t *testing.T) (*models.Product, *models.Warehouse, *models.Supplier) {
	t.Helper()
	product := &models.Product{
		SKU: "RTR-001", Name: "Fiber Router X200", Category: "Network Equipment",
		UnitPrice: decimal.NewFromInt(1450), MinStock: 5, IsActive: true,
	}
	warehouse := &models.Warehouse{Code: "WH-MAIN", Name: "Main Warehouse", IsActive: true}
	supplier := &models.Supplier{Code: "SUP-01", Name: "TeleNet Imports", Country: "Ethiopia", IsActive: true}
	require.NoError(t, app.db.Create(product).Error)
	require.NoError(t, app.db.Create(warehouse).Error)
	require.NoError(t, app.db.Create(supplier).Error)
	return product, warehouse, supplier
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestStockInWorkflow(t *testing.T) {
	app := newTestApp(t)
	product, warehouse, supplier := app.seedCatalog(t)

	recorder := app.do(t, http.MethodPost, "/api/v1/stock-in", gin.H{
		"supplierId":  supplier.ID,
		"warehouseId": warehouse.ID,
		"items": []gin.H{
			{"productId": product.ID, "quantity": 10, "unitPrice": 1450.0},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	created := decodeBody(t, recorder)
	orderID := created["order"].(map[string]interface{})["id"].(string)

	recorder = app.do(t, http.MethodPost, "/api/v1/stock-in/process", gin.H{
		"orderId": orderID,
		"receivedItems": []gin.H{
			{"productId": product.ID},
		},
	})
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	processedBody := decodeBody(t, recorder)
	assert.Equal(t, "Stock-in processed successfully", processedBody["message"])
	assert.Equal(t, float64(1), processedBody["processedItems"])

	var inv models.Inventory
	require.NoError(t, app.db.First(&inv, "product_id = ?", product.ID).Error)
	assert.Equal(t, 10, inv.Quantity)

	// Replaying the same order must not credit the ledger twice.
	recorder = app.do(t, http.MethodPost, "/api/v1/stock-in/process", gin.H{
		"orderId": orderID,
		"receivedItems": []gin.H{
			{"productId": product.ID},
		},
	})
	assert.Equal(t, http.StatusConflict, recorder.Code)

	require.NoError(t, app.db.First(&inv, "product_id = ?", product.ID).Error)
	assert.Equal(t, 10, inv.Quantity)
}

func TestStockOutWorkflow_InsufficientStock(t *testing.T) {
	app := newTestApp(t)
	product, warehouse, _ := app.seedCatalog(t)

	require.NoError(t, app.db.Create(&models.Inventory{
		ProductID: product.ID, WarehouseID: warehouse.ID, Quantity: 10,
	}).Error)

	recorder := app.do(t, http.MethodPost, "/api/v1/stock-out", gin.H{
		"warehouseId": warehouse.ID,
		"reason":      "SALE",
		"items": []gin.H{
			{"productId": product.ID, "quantity": 15},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	orderID := decodeBody(t, recorder)["order"].(map[string]interface{})["id"].(string)

	recorder = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/stock-out/%s/process", orderID), nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	body := decodeBody(t, recorder)
	assert.Equal(t, "FAILED_PRECONDITION", body["code"])
	assert.Contains(t, body["error"], "available 10, requested 15")

	// Nothing was debited and the request stays pending.
	var inv models.Inventory
	require.NoError(t, app.db.First(&inv, "product_id = ?", product.ID).Error)
	assert.Equal(t, 10, inv.Quantity)

	var order models.Order
	require.NoError(t, app.db.First(&order, "id = ?", orderID).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestStockOutWorkflow_Succeeds(t *testing.T) {
	app := newTestApp(t)
	product, warehouse, _ := app.seedCatalog(t)

	require.NoError(t, app.db.Create(&models.Inventory{
		ProductID: product.ID, WarehouseID: warehouse.ID, Quantity: 10,
	}).Error)

	recorder := app.do(t, http.MethodPost, "/api/v1/stock-out", gin.H{
		"warehouseId": warehouse.ID,
		"reason":      "TRANSFER",
		"items": []gin.H{
			{"productId": product.ID, "quantity": 4},
		},
	})
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
	orderID := decodeBody(t, recorder)["order"].(map[string]interface{})["id"].(string)

	recorder = app.do(t, http.MethodPost, fmt.Sprintf("/api/v1/stock-out/%s/process", orderID), nil)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var inv models.Inventory
	require.NoError(t, app.db.First(&inv, "product_id = ?", product.ID).Error)
	assert.Equal(t, 6, inv.Quantity)

	var order models.Order
	require.NoError(t, app.db.First(&order, "id = ?", orderID).Error)
	assert.Equal(t, models.OrderStatusCompleted, order.Status)
}

func TestStockRoutes_RejectInvalidPayloads(t *testing.T) {
	app := newTestApp(t)
	_, warehouse, _ := app.seedCatalog(t)

	// Unknown reason fails request binding before the service runs.
	recorder := app.do(t, http.MethodPost, "/api/v1/stock-out", gin.H{
		"warehouseId": warehouse.ID,
		"reason":      "SHRINKAGE",
		"items": []gin.H{
			{"productId": uuid.New(), "quantity": 1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = app.do(t, http.MethodPost, "/api/v1/stock-out/not-a-uuid/process", nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
