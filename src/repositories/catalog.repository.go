package repositories

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

type ProductRepository struct {
	DB *gorm.DB
}

func (r *ProductRepository) FindByID(tx *gorm.DB, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := tx.First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) SKUExists(sku string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Product{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}

func (r *ProductRepository) Create(product *models.Product) error {
	return r.DB.Create(product).Error
}

func (r *ProductRepository) ListActive() ([]models.Product, error) {
	var products []models.Product
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&products).Error
	return products, err
}

type WarehouseRepository struct {
	DB *gorm.DB
}

func (r *WarehouseRepository) FindByID(tx *gorm.DB, id uuid.UUID) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	err := tx.First(&warehouse, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("warehouse not found")
	}
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *WarehouseRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Warehouse{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *WarehouseRepository) Create(warehouse *models.Warehouse) error {
	return r.DB.Create(warehouse).Error
}

func (r *WarehouseRepository) ListActive() ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&warehouses).Error
	return warehouses, err
}

type SupplierRepository struct {
	DB *gorm.DB
}

func (r *SupplierRepository) FindByID(tx *gorm.DB, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	err := tx.First(&supplier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("supplier not found")
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&models.Supplier{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	return r.DB.Create(supplier).Error
}

func (r *SupplierRepository) ListActive() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.DB.Where("is_active = ?", true).Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}
