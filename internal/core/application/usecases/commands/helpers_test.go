package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/locks"
)

type stubCatalog struct {
	products map[kernel.UUID]cart.Product
}

func (c stubCatalog) GetProducts(_ context.Context, ids []kernel.UUID) ([]cart.Product, error) {
	out := make([]cart.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := c.products[id]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", id)
		}
		out = append(out, p)
	}
	return out, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []order.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events []order.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) kinds() []order.EventKind {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]order.EventKind, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Kind)
	}
	return out
}

type env struct {
	store     *memory.Store
	uow       ports.UnitOfWorkFactory
	locker    ports.Locker
	publisher *recordingPublisher
	catalog   stubCatalog

	buyer  actor.Actor
	seller actor.Actor
	admin  actor.Actor
	system actor.Actor
}

func newEnv(t *testing.T) *env {
	t.Helper()
	store := memory.NewStore()
	publisher := &recordingPublisher{}

	e := &env{
		store:     store,
		uow:       memory.NewUnitOfWorkFactory(store, publisher, slog.Default()),
		locker:    locks.NewKeyedMutex(),
		publisher: publisher,
		catalog:   stubCatalog{products: make(map[kernel.UUID]cart.Product)},
		system:    actor.System(),
	}

	var err error
	e.buyer, err = actor.New(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)
	e.seller, err = actor.New(kernel.NewUUID(), actor.RoleSeller)
	require.NoError(t, err)
	e.admin, err = actor.New(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)
	return e
}

func (e *env) addProduct(t *testing.T, name, price string) cart.Product {
	t.Helper()
	p, err := cart.NewProduct(kernel.NewUUID(), e.seller.ID(), name, decimal.RequireFromString(price))
	require.NoError(t, err)
	e.catalog.products[p.ID()] = p
	return p
}

func (e *env) placeOrder(t *testing.T, method order.FulfillmentMethod) kernel.UUID {
	t.Helper()
	product := e.addProduct(t, "Curry leaves", "4.00")
	buyer, err := order.NewBuyerInfo("Asha", "12 Lake Road", "555")
	require.NoError(t, err)

	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(id, e.buyer, e.buyer.ID(),
		[]commands.PlaceOrderItem{{ProductID: product.ID(), Quantity: 1}}, buyer, method, order.PaymentUPI)
	require.NoError(t, err)

	handler := commands.NewPlaceOrderCommandHandler(e.uow, e.catalog)
	require.NoError(t, handler.Handle(t.Context(), cmd))
	return id
}

func (e *env) changeStatus(ctx context.Context, orderID kernel.UUID, by actor.Actor, target order.Status) error {
	cmd, err := commands.NewChangeOrderStatusCommand(orderID, by, target)
	if err != nil {
		return err
	}
	return commands.NewChangeOrderStatusCommandHandler(e.uow, e.locker).Handle(ctx, cmd)
}

func (e *env) readyForShip(t *testing.T, method order.FulfillmentMethod) kernel.UUID {
	t.Helper()
	id := e.placeOrder(t, method)
	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.ReadyForShip} {
		require.NoError(t, e.changeStatus(t.Context(), id, e.seller, s))
	}
	return id
}

func (e *env) addPartner(t *testing.T, name string, available bool) kernel.UUID {
	t.Helper()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryPartnerCommand(id, e.admin, name, "555", nil)
	require.NoError(t, err)
	require.NoError(t, commands.NewCreateDeliveryPartnerCommandHandler(e.uow).Handle(t.Context(), cmd))

	if !available {
		offCmd, cmdErr := commands.NewSetPartnerAvailabilityCommand(id, e.admin, false)
		require.NoError(t, cmdErr)
		require.NoError(t, commands.NewSetPartnerAvailabilityCommandHandler(e.uow, e.locker).Handle(t.Context(), offCmd))
	}
	return id
}

func (e *env) order(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	o, err := e.uow.Create().OrderRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return o
}

func (e *env) partner(t *testing.T, id kernel.UUID) *partner.DeliveryPartner {
	t.Helper()
	p, err := e.uow.Create().DeliveryPartnerRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return p
}

func (e *env) partnerActor(t *testing.T, id kernel.UUID) actor.Actor {
	t.Helper()
	a, err := actor.New(id, actor.RoleDeliveryPartner)
	require.NoError(t, err)
	return a
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}
