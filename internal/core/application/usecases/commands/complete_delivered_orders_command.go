package commands

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteDeliveredOrdersCommandIsNotConstructed = errors.New(
	"CompleteDeliveredOrdersCommand must be created via NewCompleteDeliveredOrdersCommand constructor",
)

// CompleteDeliveredOrdersCommand completes up to limit orders delivered before the cutoff.
type CompleteDeliveredOrdersCommand struct {
	deliveredBefore time.Time
	limit           int
	guard           guard.ConstructorGuard
}

func NewCompleteDeliveredOrdersCommand(deliveredBefore time.Time, limit int) (CompleteDeliveredOrdersCommand, error) {
	if err := errors.Join(
		validateCutoff(deliveredBefore),
		validateLimit(limit),
	); err != nil {
		return CompleteDeliveredOrdersCommand{}, err
	}

	return CompleteDeliveredOrdersCommand{
		deliveredBefore: deliveredBefore,
		limit:           limit,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveredOrdersCommandIsNotConstructed)
}

func (c CompleteDeliveredOrdersCommand) DeliveredBefore() time.Time {
	return c.deliveredBefore
}

func (c CompleteDeliveredOrdersCommand) Limit() int {
	return c.limit
}

func validateCutoff(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("deliveredBefore")
	}
	return nil
}

func validateLimit(limit int) error {
	if limit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is not greater than 0", limit))
	}
	return nil
}
