package queries

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrGetAwaitingDispatchOrdersQueryIsNotConstructed = errors.New(
	"GetAwaitingDispatchOrdersQuery must be created via NewGetAwaitingDispatchOrdersQuery constructor",
)

// GetAwaitingDispatchOrdersQuery lists delivery orders that are ready to ship
// and still have no partner: the dispatcher's work queue.
type GetAwaitingDispatchOrdersQuery struct {
	limit int
	guard guard.ConstructorGuard
}

func NewGetAwaitingDispatchOrdersQuery(limit int) (GetAwaitingDispatchOrdersQuery, error) {
	if limit <= 0 {
		return GetAwaitingDispatchOrdersQuery{},
			errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is not greater than 0", limit))
	}
	return GetAwaitingDispatchOrdersQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAwaitingDispatchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAwaitingDispatchOrdersQueryIsNotConstructed)
}

func (q GetAwaitingDispatchOrdersQuery) Limit() int {
	return q.limit
}

type GetAwaitingDispatchOrdersQueryResponse struct {
	ID           kernel.UUID
	BuyerName    string
	BuyerAddress string
	Total        decimal.Decimal
	ReadySince   time.Time
	SellerIDs    []kernel.UUID
}
