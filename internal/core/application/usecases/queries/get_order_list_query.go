package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderListQueryIsNotConstructed = errors.New(
	"GetOrderListQuery must be created via NewGetOrderListQuery constructor",
)

// OrderListScope selects whose orders a GetOrderListQuery returns.
type OrderListScope int

const (
	ScopeAllOrders OrderListScope = iota
	ScopeBuyerOrders
	ScopeSellerOrders
	ScopePartnerOrders
)

func (s OrderListScope) String() string {
	switch s {
	case ScopeAllOrders:
		return "all"
	case ScopeBuyerOrders:
		return "buyer"
	case ScopeSellerOrders:
		return "seller"
	case ScopePartnerOrders:
		return "partner"
	default:
		return "unknown"
	}
}

// OrderListFilter narrows an order list. At most one of BuyerID, SellerID and
// PartnerID may be set; with none, the list is scoped to the actor itself.
type OrderListFilter struct {
	BuyerID   *kernel.UUID
	SellerID  *kernel.UUID
	PartnerID *kernel.UUID
	Status    *order.Status
}

// GetOrderListQuery lists orders newest first: a buyer's history, the orders
// holding a seller's items, or the orders assigned to a delivery partner.
type GetOrderListQuery struct {
	scope     OrderListScope
	subjectID kernel.UUID
	status    *order.Status
	limit     int
	guard     guard.ConstructorGuard
}

func NewGetOrderListQuery(by actor.Actor, filter OrderListFilter, limit int) (GetOrderListQuery, error) {
	if err := by.Validate(); err != nil {
		return GetOrderListQuery{}, err
	}
	if limit <= 0 {
		return GetOrderListQuery{},
			errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is not greater than 0", limit))
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return GetOrderListQuery{}, err
		}
	}

	scope, subjectID, err := resolveScope(by, filter)
	if err != nil {
		return GetOrderListQuery{}, err
	}
	if err = authorizeScope(by, scope, subjectID); err != nil {
		return GetOrderListQuery{}, err
	}

	return GetOrderListQuery{
		scope:     scope,
		subjectID: subjectID,
		status:    filter.Status,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderListQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderListQueryIsNotConstructed)
}

func (q GetOrderListQuery) Scope() OrderListScope {
	return q.scope
}

// SubjectID is the buyer, seller or partner the list belongs to. It is the
// zero UUID for ScopeAllOrders.
func (q GetOrderListQuery) SubjectID() kernel.UUID {
	return q.subjectID
}

func (q GetOrderListQuery) Status() *order.Status {
	return q.status
}

func (q GetOrderListQuery) Limit() int {
	return q.limit
}

func resolveScope(by actor.Actor, filter OrderListFilter) (OrderListScope, kernel.UUID, error) {
	var (
		scope OrderListScope
		id    *kernel.UUID
		set   int
	)
	if filter.BuyerID != nil {
		scope, id, set = ScopeBuyerOrders, filter.BuyerID, set+1
	}
	if filter.SellerID != nil {
		scope, id, set = ScopeSellerOrders, filter.SellerID, set+1
	}
	if filter.PartnerID != nil {
		scope, id, set = ScopePartnerOrders, filter.PartnerID, set+1
	}

	switch set {
	case 0:
		scope = ownScope(by)
		if scope == ScopeAllOrders {
			return scope, kernel.UUID{}, nil
		}
		return scope, by.ID(), nil
	case 1:
		if err := id.Validate(); err != nil {
			return 0, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(scope.String()+"Id", err)
		}
		return scope, *id, nil
	default:
		return 0, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(
			"filter", errors.New("only one of buyerId, sellerId and partnerId may be set"),
		)
	}
}

func ownScope(by actor.Actor) OrderListScope {
	switch by.Role() {
	case actor.RoleBuyer:
		return ScopeBuyerOrders
	case actor.RoleSeller:
		return ScopeSellerOrders
	case actor.RoleDeliveryPartner:
		return ScopePartnerOrders
	default:
		return ScopeAllOrders
	}
}

func authorizeScope(by actor.Actor, scope OrderListScope, subjectID kernel.UUID) error {
	if by.IsPrivileged() {
		return nil
	}

	var own bool
	switch scope {
	case ScopeBuyerOrders:
		own = by.Is(actor.RoleBuyer)
	case ScopeSellerOrders:
		own = by.Is(actor.RoleSeller)
	case ScopePartnerOrders:
		own = by.Is(actor.RoleDeliveryPartner)
	case ScopeAllOrders:
		own = false
	}
	if own && by.ID().IsEqual(subjectID) {
		return nil
	}
	return fmt.Errorf("%w: %s cannot list %s orders", order.ErrUnauthorizedActor, by, scope)
}

type GetOrderListQueryResponse struct {
	ID              kernel.UUID
	BuyerID         kernel.UUID
	BuyerName       string
	Fulfillment     string
	Payment         string
	Status          string
	Total           decimal.Decimal
	PlacedAt        time.Time
	StatusChangedAt time.Time
	PartnerID       *kernel.UUID
	ItemCount       int
}
