package cmd

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/eventbus"
	"marketplace/internal/adapters/out/kafka"
	"marketplace/internal/adapters/out/metrics"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/catalogrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/locks"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	registry   *prometheus.Registry
	metrics    *metrics.DispatchMetrics
	broker     *eventbus.Broker
	kafka      *kafka.OrderEventPublisher
	locker     ports.Locker
	uowFactory *postgres.GormUnitOfWorkFactory
	catalog    *catalogrepo.GormProductCatalog
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	root := &CompositionRoot{
		configs:  configs,
		gormDB:   gormDB,
		logger:   logger,
		registry: registry,
		metrics:  metrics.NewDispatchMetricsWithRegisterer(registry),
		broker:   eventbus.NewBroker(configs.EventBufferSize, logger),
		locker:   locks.NewKeyedMutex(),
		catalog:  catalogrepo.NewGormProductCatalog(gormDB),
	}

	publishers := []ports.EventPublisher{root.broker, root.metrics}
	if len(configs.KafkaBrokers) > 0 {
		publisher, err := kafka.NewOrderEventPublisher(configs.KafkaBrokers, configs.KafkaOrderEventsTopic, logger)
		if err != nil {
			return nil, err
		}
		root.kafka = publisher
		publishers = append(publishers, publisher)
	}

	root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB, eventbus.NewFanout(publishers...), logger)
	return root, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.uowFactory, c.catalog)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateAutoAssignPartnerCommandHandler() commands.AutoAssignPartnerCommandHandler {
	return commands.NewAutoAssignPartnerCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateAssignPendingOrdersCommandHandler() commands.AssignPendingOrdersCommandHandler {
	return commands.NewAssignPendingOrdersCommandHandler(c.uowFactory, c.CreateAutoAssignPartnerCommandHandler())
}

func (c *CompositionRoot) CreateCompleteDeliveredOrdersCommandHandler() commands.CompleteDeliveredOrdersCommandHandler {
	return commands.NewCompleteDeliveredOrdersCommandHandler(c.uowFactory, c.CreateChangeOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateRequestRefundCommandHandler() commands.RequestRefundCommandHandler {
	return commands.NewRequestRefundCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateResolveRefundCommandHandler() commands.ResolveRefundCommandHandler {
	return commands.NewResolveRefundCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateCreateDeliveryPartnerCommandHandler() commands.CreateDeliveryPartnerCommandHandler {
	return commands.NewCreateDeliveryPartnerCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateSetPartnerAvailabilityCommandHandler() commands.SetPartnerAvailabilityCommandHandler {
	return commands.NewSetPartnerAvailabilityCommandHandler(c.uowFactory, c.locker)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderListQueryHandler() queries.GetOrderListQueryHandler {
	return queries.NewGetOrderListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAwaitingDispatchOrdersQueryHandler() queries.GetAwaitingDispatchOrdersQueryHandler {
	return queries.NewGetAwaitingDispatchOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryPartnersQueryHandler() queries.GetDeliveryPartnersQueryHandler {
	return queries.NewGetDeliveryPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewDispatchSweepJob(
			c.CreateAssignPendingOrdersCommandHandler(),
			c.metrics,
			jobs.SweepOptions{
				Spec:    c.configs.DispatchSweepSpec,
				Limit:   c.configs.SweepLimit,
				Timeout: c.configs.CommandTimeout,
			},
			c.logger,
		),
		jobs.NewCompletionSweepJob(
			c.CreateCompleteDeliveredOrdersCommandHandler(),
			c.metrics,
			jobs.SweepOptions{
				Spec:    c.configs.CompletionSweepSpec,
				Limit:   c.configs.SweepLimit,
				Timeout: c.configs.CommandTimeout,
			},
			c.configs.CompletionGracePeriod,
			c.logger,
		),
	)
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:             c.CreatePlaceOrderCommandHandler(),
		ChangeOrderStatus:      c.CreateChangeOrderStatusCommandHandler(),
		AssignPartner:          c.CreateAssignPartnerCommandHandler(),
		AutoAssignPartner:      c.CreateAutoAssignPartnerCommandHandler(),
		RequestRefund:          c.CreateRequestRefundCommandHandler(),
		ResolveRefund:          c.CreateResolveRefundCommandHandler(),
		CreateDeliveryPartner:  c.CreateCreateDeliveryPartnerCommandHandler(),
		SetPartnerAvailability: c.CreateSetPartnerAvailabilityCommandHandler(),

		GetOrder:                  c.CreateGetOrderQueryHandler(),
		GetOrderList:              c.CreateGetOrderListQueryHandler(),
		GetAwaitingDispatchOrders: c.CreateGetAwaitingDispatchOrdersQueryHandler(),
		GetDeliveryPartners:       c.CreateGetDeliveryPartnersQueryHandler(),
	})

	return httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Gatherer:       c.registry,
		Logger:         c.logger,
		RequestTimeout: c.configs.CommandTimeout,
	})
}

// StartEventLog logs every committed order event until ctx is done.
func (c *CompositionRoot) StartEventLog(ctx context.Context) {
	events, cancel := c.broker.Subscribe()
	logger := c.logger.With("component", "order_event_log")

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-events:
				if !ok {
					return
				}
				logger.InfoContext(ctx, "order event",
					"kind", e.Kind,
					"order_id", e.OrderID.String(),
					"from", e.From.String(),
					"to", e.To.String(),
				)
			}
		}
	}()
}

func (c *CompositionRoot) Close() error {
	if c.kafka == nil {
		return nil
	}
	return c.kafka.Close()
}
