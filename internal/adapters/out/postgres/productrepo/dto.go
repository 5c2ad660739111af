// Package productrepo provides data transfer objects and mapping functions
// for product catalog persistence.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Sku       string          `gorm:"uniqueIndex"`
	Name      string
	Price     decimal.Decimal `gorm:"type:numeric(19,4)"`
	CostPrice decimal.Decimal `gorm:"type:numeric(19,4)"`
	Stock     int
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID().Bytes(),
		Sku:       aggregate.Sku(),
		Name:      aggregate.Name(),
		Price:     aggregate.Price().Amount(),
		CostPrice: aggregate.CostPrice().Amount(),
		Stock:     aggregate.Stock(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	costPrice, err := kernel.NewMoney(dto.CostPrice)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Sku, dto.Name, price, costPrice, dto.Stock)
}
