package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrAssignPendingOrdersCommandIsNotConstructed = errors.New(
	"AssignPendingOrdersCommand must be created via NewAssignPendingOrdersCommand constructor",
)

// AssignPendingOrdersCommand auto-assigns up to limit orders waiting for dispatch.
type AssignPendingOrdersCommand struct {
	limit int
	guard guard.ConstructorGuard
}

func NewAssignPendingOrdersCommand(limit int) (AssignPendingOrdersCommand, error) {
	if err := validateLimit(limit); err != nil {
		return AssignPendingOrdersCommand{}, err
	}
	return AssignPendingOrdersCommand{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (c AssignPendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAssignPendingOrdersCommandIsNotConstructed)
}

func (c AssignPendingOrdersCommand) Limit() int {
	return c.limit
}
