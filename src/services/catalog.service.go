package services

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
)

// CatalogService covers the reference data the ledger hangs off: products,
// warehouses, and suppliers. Plain persistence glue.
type CatalogService struct {
	Products   *repositories.ProductRepository
	Warehouses *repositories.WarehouseRepository
	Suppliers  *repositories.SupplierRepository
	Log        *zap.Logger
}

type ProductInput struct {
	SKU         string
	Name        string
	Description string
	Category    string
	Brand       string
	UnitPrice   decimal.Decimal
	Weight      *float64
	Barcode     *string
	MinStock    int
	MaxStock    *int
}

func (s *CatalogService) CreateProduct(input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.SKU == "" || input.Category == "" {
		return nil, apperrors.InvalidArgument("name, SKU, and category are required")
	}
	if input.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.InvalidArgument("unit price must be greater than 0")
	}
	if input.MinStock < 0 {
		return nil, apperrors.InvalidArgument("minimum stock cannot be negative")
	}

	exists, err := s.Products.SKUExists(input.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("product with this SKU already exists")
	}

	product := &models.Product{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Brand:       input.Brand,
		UnitPrice:   input.UnitPrice,
		Weight:      input.Weight,
		Barcode:     input.Barcode,
		MinStock:    input.MinStock,
		MaxStock:    input.MaxStock,
		IsActive:    true,
	}
	if err := s.Products.Create(product); err != nil {
		return nil, err
	}

	s.Log.Info("product created", zap.String("sku", product.SKU))
	return product, nil
}

func (s *CatalogService) ListProducts() ([]models.Product, error) {
	return s.Products.ListActive()
}

type WarehouseInput struct {
	Code     string
	Name     string
	Address  string
	City     string
	Capacity int
}

func (s *CatalogService) CreateWarehouse(input WarehouseInput) (*models.Warehouse, error) {
	if input.Name == "" || input.Code == "" || input.Address == "" || input.City == "" {
		return nil, apperrors.InvalidArgument("name, code, address, and city are required")
	}

	exists, err := s.Warehouses.CodeExists(input.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("warehouse with this code already exists")
	}

	warehouse := &models.Warehouse{
		Code:     input.Code,
		Name:     input.Name,
		Address:  input.Address,
		City:     input.City,
		Capacity: input.Capacity,
		IsActive: true,
	}
	if err := s.Warehouses.Create(warehouse); err != nil {
		return nil, err
	}

	s.Log.Info("warehouse created", zap.String("code", warehouse.Code))
	return warehouse, nil
}

func (s *CatalogService) ListWarehouses() ([]models.Warehouse, error) {
	return s.Warehouses.ListActive()
}

type SupplierInput struct {
	Code          string
	Name          string
	Email         *string
	Phone         *string
	Address       *string
	City          *string
	Country       string
	ContactPerson *string
	PaymentTerms  *string
}

func (s *CatalogService) CreateSupplier(input SupplierInput) (*models.Supplier, error) {
	if input.Name == "" || input.Code == "" {
		return nil, apperrors.InvalidArgument("name and code are required")
	}

	exists, err := s.Suppliers.CodeExists(input.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("supplier with this code already exists")
	}

	country := input.Country
	if country == "" {
		country = "Ethiopia"
	}

	supplier := &models.Supplier{
		Code:          input.Code,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Address:       input.Address,
		City:          input.City,
		Country:       country,
		ContactPerson: input.ContactPerson,
		PaymentTerms:  input.PaymentTerms,
		IsActive:      true,
	}
	if err := s.Suppliers.Create(supplier); err != nil {
		return nil, err
	}

	s.Log.Info("supplier created", zap.String("code", supplier.Code))
	return supplier, nil
}

func (s *CatalogService) ListSuppliers() ([]models.Supplier, error) {
	return s.Suppliers.ListActive()
}
