package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

func (e *env) delivered(t *testing.T) (kernel.UUID, kernel.UUID) {
	t.Helper()
	partnerID := e.addPartner(t, "Ravi", true)
	id := e.readyForShip(t, order.FulfillmentDelivery)

	cmd, err := commands.NewAssignPartnerCommand(id, partnerID, e.admin)
	require.NoError(t, err)
	require.NoError(t, commands.NewAssignPartnerCommandHandler(e.uow, e.locker).Handle(t.Context(), cmd))
	require.NoError(t, e.changeStatus(t.Context(), id, e.partnerActor(t, partnerID), order.Delivered))
	return id, partnerID
}

func TestCompleteDeliveredOrdersCommandHandler_Handle(t *testing.T) {
	t.Run("should complete orders delivered before the cutoff", func(t *testing.T) {
		e := newEnv(t)
		id, partnerID := e.delivered(t)
		assert.Zero(t, e.partner(t, partnerID).ActiveDeliveries())

		handler := commands.NewCompleteDeliveredOrdersCommandHandler(e.uow,
			commands.NewChangeOrderStatusCommandHandler(e.uow, e.locker))
		cmd, err := commands.NewCompleteDeliveredOrdersCommand(time.Now().Add(time.Minute), 10)
		require.NoError(t, err)

		result, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.SweepResult{Processed: 1}, result)
		assert.Equal(t, order.Completed, e.order(t, id).Status())
	})

	t.Run("should leave recent deliveries alone", func(t *testing.T) {
		e := newEnv(t)
		id, _ := e.delivered(t)

		handler := commands.NewCompleteDeliveredOrdersCommandHandler(e.uow,
			commands.NewChangeOrderStatusCommandHandler(e.uow, e.locker))
		cmd, err := commands.NewCompleteDeliveredOrdersCommand(time.Now().Add(-time.Hour), 10)
		require.NoError(t, err)

		result, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Zero(t, result.Processed)
		assert.Equal(t, order.Delivered, e.order(t, id).Status())
	})
}

func TestNewCompleteDeliveredOrdersCommand(t *testing.T) {
	t.Run("should require a cutoff", func(t *testing.T) {
		_, err := commands.NewCompleteDeliveredOrdersCommand(time.Time{}, 10)
		assert.Error(t, err)
	})

	t.Run("should require a positive limit", func(t *testing.T) {
		_, err := commands.NewCompleteDeliveredOrdersCommand(time.Now(), 0)
		assert.Error(t, err)
	})
}
