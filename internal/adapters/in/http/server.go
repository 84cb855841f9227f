package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/adapters/in/http/servers"
)

const defaultQueueLimit = 50

const defaultOrderListLimit = 50

type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
}

type AssignPartnerHandler interface {
	Handle(ctx context.Context, cmd commands.AssignPartnerCommand) error
}

type AutoAssignPartnerHandler interface {
	Handle(ctx context.Context, cmd commands.AutoAssignPartnerCommand) error
}

type RequestRefundHandler interface {
	Handle(ctx context.Context, cmd commands.RequestRefundCommand) error
}

type ResolveRefundHandler interface {
	Handle(ctx context.Context, cmd commands.ResolveRefundCommand) error
}

type CreateDeliveryPartnerHandler interface {
	Handle(ctx context.Context, cmd commands.CreateDeliveryPartnerCommand) error
}

type SetPartnerAvailabilityHandler interface {
	Handle(ctx context.Context, cmd commands.SetPartnerAvailabilityCommand) error
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
}

type GetOrderListHandler interface {
	Handle(ctx context.Context, query queries.GetOrderListQuery) ([]queries.GetOrderListQueryResponse, error)
}

type GetAwaitingDispatchOrdersHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetAwaitingDispatchOrdersQuery,
	) ([]queries.GetAwaitingDispatchOrdersQueryResponse, error)
}

type GetDeliveryPartnersHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetDeliveryPartnersQuery,
	) ([]queries.GetDeliveryPartnersQueryResponse, error)
}

// Handlers lists the use cases the server delegates to.
type Handlers struct {
	PlaceOrder             PlaceOrderHandler
	ChangeOrderStatus      ChangeOrderStatusHandler
	AssignPartner          AssignPartnerHandler
	AutoAssignPartner      AutoAssignPartnerHandler
	RequestRefund          RequestRefundHandler
	ResolveRefund          ResolveRefundHandler
	CreateDeliveryPartner  CreateDeliveryPartnerHandler
	SetPartnerAvailability SetPartnerAvailabilityHandler

	GetOrder                  GetOrderHandler
	GetOrderList              GetOrderListHandler
	GetAwaitingDispatchOrders GetAwaitingDispatchOrdersHandler
	GetDeliveryPartners       GetDeliveryPartnersHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

var _ servers.ServerInterface = (*Server)(nil)

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context, params servers.ActorParams) error {
	by, err := actorFromParams(params)
	if err != nil {
		return err
	}

	var body servers.PlaceOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	items := make([]commands.PlaceOrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := toID("productId", item.ProductId)
		if idErr != nil {
			return idErr
		}
		items = append(items, commands.PlaceOrderItem{ProductID: productID, Quantity: item.Quantity})
	}

	address := ""
	if body.Buyer.Address != nil {
		address = *body.Buyer.Address
	}
	buyer, err := order.NewBuyerInfo(body.Buyer.Name, address, body.Buyer.Phone)
	if err != nil {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID,
		by,
		by.ID(),
		items,
		buyer,
		order.FulfillmentMethod(body.Fulfillment),
		order.PaymentMethod(body.Payment),
	)
	if err != nil {
		return err
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Id: orderID.Bytes()})
}

// GetOrders handles GET /api/v1/orders. Without a buyer, seller or partner
// filter the list is scoped to the caller.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	by, err := actorFromParams(params.ActorParams)
	if err != nil {
		return err
	}

	var filter queries.OrderListFilter
	if filter.BuyerID, err = optionalID("buyerId", params.BuyerId); err != nil {
		return err
	}
	if filter.SellerID, err = optionalID("sellerId", params.SellerId); err != nil {
		return err
	}
	if filter.PartnerID, err = optionalID("partnerId", params.PartnerId); err != nil {
		return err
	}
	if params.Status != nil {
		status, statusErr := order.ParseStatus(string(*params.Status))
		if statusErr != nil {
			return statusErr
		}
		filter.Status = &status
	}

	limit := defaultOrderListLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetOrderListQuery(by, filter, limit)
	if err != nil {
		return err
	}

	orders, err := s.handlers.GetOrderList.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:              o.ID.Bytes(),
			BuyerId:         o.BuyerID.Bytes(),
			BuyerName:       o.BuyerName,
			Fulfillment:     o.Fulfillment,
			Payment:         o.Payment,
			Status:          o.Status,
			Total:           o.Total.StringFixed(2),
			PlacedAt:        o.PlacedAt,
			StatusChangedAt: o.StatusChangedAt,
			ItemCount:       o.ItemCount,
		}
		if o.PartnerID != nil {
			partnerID := openapi_types.UUID(o.PartnerID.Bytes())
			response[i].PartnerId = &partnerID
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId, params servers.ActorParams) error {
	by, orderID, err := actorAndID(params, orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, by)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// ChangeOrderStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId, params servers.ActorParams) error {
	by, orderID, err := actorAndID(params, orderId)
	if err != nil {
		return err
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, by, target)
	if err != nil {
		return err
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPartner handles POST /api/v1/orders/{orderId}/assignment. Without a
// partner id the least loaded available partner is chosen.
func (s *Server) AssignPartner(ctx echo.Context, orderId servers.OrderId, params servers.ActorParams) error {
	by, orderID, err := actorAndID(params, orderId)
	if err != nil {
		return err
	}

	var body servers.AssignPartnerJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	if body.PartnerId == nil {
		cmd, cmdErr := commands.NewAutoAssignPartnerCommand(orderID, by)
		if cmdErr != nil {
			return cmdErr
		}
		err = s.handlers.AutoAssignPartner.Handle(ctx.Request().Context(), cmd)
	} else {
		partnerID, idErr := toID("partnerId", *body.PartnerId)
		if idErr != nil {
			return idErr
		}
		cmd, cmdErr := commands.NewAssignPartnerCommand(orderID, partnerID, by)
		if cmdErr != nil {
			return cmdErr
		}
		err = s.handlers.AssignPartner.Handle(ctx.Request().Context(), cmd)
	}
	if err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestRefund handles POST /api/v1/orders/{orderId}/refund.
func (s *Server) RequestRefund(ctx echo.Context, orderId servers.OrderId, params servers.ActorParams) error {
	by, orderID, err := actorAndID(params, orderId)
	if err != nil {
		return err
	}

	var body servers.RequestRefundJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return badRequest("Invalid refund amount")
	}

	cmd, err := commands.NewRequestRefundCommand(orderID, by, body.Reason, amount)
	if err != nil {
		return err
	}

	if err = s.handlers.RequestRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResolveRefund handles POST /api/v1/orders/{orderId}/refund/decision.
func (s *Server) ResolveRefund(ctx echo.Context, orderId servers.OrderId, params servers.ActorParams) error {
	by, orderID, err := actorAndID(params, orderId)
	if err != nil {
		return err
	}

	var body servers.ResolveRefundJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	cmd, err := commands.NewResolveRefundCommand(orderID, by, order.RefundStatus(body.Decision))
	if err != nil {
		return err
	}

	if err = s.handlers.ResolveRefund.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDispatchQueue handles GET /api/v1/dispatch/queue.
func (s *Server) GetDispatchQueue(ctx echo.Context, params servers.GetDispatchQueueParams) error {
	by, err := actorFromParams(params.ActorParams)
	if err != nil {
		return err
	}
	if err = requirePrivileged(by); err != nil {
		return err
	}

	limit := defaultQueueLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewGetAwaitingDispatchOrdersQuery(limit)
	if err != nil {
		return err
	}

	queue, err := s.handlers.GetAwaitingDispatchOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.DispatchQueueItem, len(queue))
	for i, item := range queue {
		sellerIDs := make([]openapi_types.UUID, len(item.SellerIDs))
		for j, id := range item.SellerIDs {
			sellerIDs[j] = id.Bytes()
		}
		response[i] = servers.DispatchQueueItem{
			Id:           item.ID.Bytes(),
			BuyerName:    item.BuyerName,
			BuyerAddress: item.BuyerAddress,
			Total:        item.Total.StringFixed(2),
			ReadySince:   item.ReadySince,
			SellerIds:    sellerIDs,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryPartners handles GET /api/v1/delivery-partners.
func (s *Server) GetDeliveryPartners(ctx echo.Context, params servers.GetDeliveryPartnersParams) error {
	by, err := actorFromParams(params.ActorParams)
	if err != nil {
		return err
	}
	if err = requirePrivileged(by); err != nil {
		return err
	}

	onlyAvailable := params.Available != nil && *params.Available
	partners, err := s.handlers.GetDeliveryPartners.Handle(
		ctx.Request().Context(),
		queries.NewGetDeliveryPartnersQuery(onlyAvailable),
	)
	if err != nil {
		return err
	}

	response := make([]servers.DeliveryPartner, len(partners))
	for i, p := range partners {
		response[i] = servers.DeliveryPartner{
			Id:               p.ID.Bytes(),
			Name:             p.Name,
			Phone:            p.Phone,
			IsAvailable:      p.IsAvailable,
			ActiveDeliveries: p.ActiveDeliveries,
			LastAssignedAt:   p.LastAssignedAt,
		}
		if p.Location != nil {
			response[i].Location = &servers.Location{
				Latitude:  p.Location.Latitude(),
				Longitude: p.Location.Longitude(),
			}
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDeliveryPartner handles POST /api/v1/delivery-partners. A delivery
// partner registering itself gets its own actor id.
func (s *Server) CreateDeliveryPartner(ctx echo.Context, params servers.ActorParams) error {
	by, err := actorFromParams(params)
	if err != nil {
		return err
	}

	var body servers.CreateDeliveryPartnerJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	partnerID := kernel.NewUUID()
	switch {
	case body.Id != nil:
		if partnerID, err = toID("id", *body.Id); err != nil {
			return err
		}
	case by.Is(actor.RoleDeliveryPartner):
		partnerID = by.ID()
	}

	var location *kernel.Location
	if body.Location != nil {
		l, locErr := kernel.NewLocation(body.Location.Latitude, body.Location.Longitude)
		if locErr != nil {
			return locErr
		}
		location = &l
	}

	cmd, err := commands.NewCreateDeliveryPartnerCommand(partnerID, by, body.Name, body.Phone, location)
	if err != nil {
		return err
	}

	if err = s.handlers.CreateDeliveryPartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.DeliveryPartnerCreated{Id: partnerID.Bytes()})
}

// SetPartnerAvailability handles PUT /api/v1/delivery-partners/{partnerId}/availability.
func (s *Server) SetPartnerAvailability(
	ctx echo.Context,
	partnerId openapi_types.UUID,
	params servers.ActorParams,
) error {
	by, partnerID, err := actorAndID(params, partnerId)
	if err != nil {
		return err
	}

	var body servers.SetPartnerAvailabilityJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest("Invalid request body")
	}

	cmd, err := commands.NewSetPartnerAvailabilityCommand(partnerID, by, body.Available)
	if err != nil {
		return err
	}

	if err = s.handlers.SetPartnerAvailability.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func toOrderResponse(o *queries.GetOrderQueryResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			ProductId:   item.ProductID.Bytes(),
			SellerId:    item.SellerID.Bytes(),
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Subtotal:    item.Subtotal.StringFixed(2),
		}
	}

	response := servers.Order{
		Id:      o.ID.Bytes(),
		BuyerId: o.BuyerID.Bytes(),
		Buyer: servers.Buyer{
			Name:  o.BuyerName,
			Phone: o.BuyerPhone,
		},
		Fulfillment:     o.Fulfillment,
		Payment:         o.Payment,
		Status:          o.Status,
		Total:           o.Total.StringFixed(2),
		PlacedAt:        o.PlacedAt,
		StatusChangedAt: o.StatusChangedAt,
		ConfirmedAt:     o.ConfirmedAt,
		Items:           items,
	}
	if o.BuyerAddress != "" {
		address := o.BuyerAddress
		response.Buyer.Address = &address
	}
	if o.PartnerID != nil {
		partnerID := o.PartnerID.Bytes()
		response.PartnerId = &partnerID
	}
	if o.Refund != nil {
		response.Refund = &servers.Refund{
			Reason:      o.Refund.Reason,
			Amount:      o.Refund.Amount.StringFixed(2),
			Status:      servers.RefundStatus(o.Refund.Status),
			RequestedAt: o.Refund.RequestedAt,
			ResolvedAt:  o.Refund.ResolvedAt,
		}
	}
	return response
}
