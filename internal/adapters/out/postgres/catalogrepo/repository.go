// Package catalogrepo reads seller listings from the products table.
package catalogrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

type ProductDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ports.ProductCatalog.
type GormProductCatalog struct {
	db *gorm.DB
}

func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetProducts returns the products in the order of ids. A missing id is an ObjectNotFoundError.
func (c *GormProductCatalog) GetProducts(ctx context.Context, ids []kernel.UUID) ([]cart.Product, error) {
	if len(ids) == 0 {
		return []cart.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := c.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]ProductDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	products := make([]cart.Product, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", id.String())
		}
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Save inserts the products or overwrites the stored listings.
func (c *GormProductCatalog) Save(ctx context.Context, products ...cart.Product) error {
	if len(products) == 0 {
		return nil
	}

	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, ProductDTO{
			ID:        p.ID().Bytes(),
			SellerID:  p.SellerID().Bytes(),
			Name:      p.Name(),
			UnitPrice: p.UnitPrice(),
		})
	}

	return c.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&dtos).Error
}

func toDomain(dto ProductDTO) (cart.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return cart.Product{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return cart.Product{}, err
	}
	return cart.NewProduct(id, sellerID, dto.Name, dto.UnitPrice)
}
