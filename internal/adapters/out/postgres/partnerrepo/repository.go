package partnerrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/pkg/errs"
)

// activeDeliveriesSelect counts the orders a partner currently holds.
const activeDeliveriesSelect = `delivery_partners.*, (
	SELECT COUNT(*) FROM orders
	WHERE orders.partner_id = delivery_partners.id AND orders.status IN (?, ?)
) AS active_deliveries`

type GormDeliveryPartnerRepository struct {
	db *gorm.DB
}

func NewGormDeliveryPartnerRepository(db *gorm.DB) *GormDeliveryPartnerRepository {
	return &GormDeliveryPartnerRepository{db: db}
}

func (r *GormDeliveryPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDeliveryPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("partnerId", aggregate.ID().String())
	}
	return nil
}

// Get loads a partner with its derived workload and locks the partner row.
func (r *GormDeliveryPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.withWorkload(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: PartnerDTO{}.TableName()}}).
		Where("delivery_partners.id = ?", id.Bytes()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("partnerId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable returns the partners currently accepting work, ordered by id.
func (r *GormDeliveryPartnerRepository) GetAllAvailable(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	var dtos []PartnerDTO
	err := r.withWorkload(ctx).
		Where("delivery_partners.is_available").
		Order("delivery_partners.id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	partners := make([]*partner.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, nil
}

func (r *GormDeliveryPartnerRepository) withWorkload(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Select(activeDeliveriesSelect, int(order.ReadyForShip), int(order.OutForDelivery))
}
