package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetDeliveryPartnersQueryIsNotConstructed = errors.New(
	"GetDeliveryPartnersQuery must be created via NewGetDeliveryPartnersQuery constructor",
)

// GetDeliveryPartnersQuery lists the fleet with each partner's current workload.
type GetDeliveryPartnersQuery struct {
	onlyAvailable bool
	guard         guard.ConstructorGuard
}

func NewGetDeliveryPartnersQuery(onlyAvailable bool) GetDeliveryPartnersQuery {
	return GetDeliveryPartnersQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryPartnersQueryIsNotConstructed)
}

func (q GetDeliveryPartnersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

type GetDeliveryPartnersQueryResponse struct {
	ID               kernel.UUID
	Name             string
	Phone            string
	IsAvailable      bool
	ActiveDeliveries int
	Location         *kernel.Location
	LastAssignedAt   *time.Time
}
