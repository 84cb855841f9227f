// Package partnerrepo persists delivery partners. The active delivery count is
// never stored: it is counted from the orders table whenever a partner is read.
package partnerrepo

import (
	"time"

	"github.com/google/uuid"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/partner"
)

type PartnerDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	Phone            string    `gorm:"type:varchar(64);not null"`
	IsAvailable      bool      `gorm:"not null;index"`
	Latitude         *float64
	Longitude        *float64
	LastAssignedAt   *time.Time
	ActiveDeliveries int `gorm:"->;-:migration"`
}

func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

func fromDomain(p *partner.DeliveryPartner) PartnerDTO {
	dto := PartnerDTO{
		ID:               p.ID().Bytes(),
		Name:             p.Name(),
		Phone:            p.Phone(),
		IsAvailable:      p.IsAvailable(),
		LastAssignedAt:   p.LastAssignedAt(),
		ActiveDeliveries: p.ActiveDeliveries(),
	}

	if loc := p.Location(); loc != nil {
		lat, lng := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lng
	}
	return dto
}

func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return partner.RestoreDeliveryPartner(
		id,
		dto.Name,
		dto.Phone,
		dto.IsAvailable,
		dto.ActiveDeliveries,
		location,
		dto.LastAssignedAt,
	)
}
