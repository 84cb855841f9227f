// Package servers holds the HTTP contract of the marketplace API: the
// OpenAPI document, its request and response models, and the echo glue that
// binds path, query and header parameters before calling a ServerInterface.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Check out a cart and place an order
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context, params ActorParams) error
	// List orders scoped to the actor
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Read an order visible to the actor
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId, params ActorParams) error
	// Move an order along its lifecycle
	// (POST /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId OrderId, params ActorParams) error
	// Attach a delivery partner, or pick one automatically
	// (POST /api/v1/orders/{orderId}/assignment)
	AssignPartner(ctx echo.Context, orderId OrderId, params ActorParams) error
	// Ask for a refund of a confirmed order
	// (POST /api/v1/orders/{orderId}/refund)
	RequestRefund(ctx echo.Context, orderId OrderId, params ActorParams) error
	// Process or deny a requested refund
	// (POST /api/v1/orders/{orderId}/refund/decision)
	ResolveRefund(ctx echo.Context, orderId OrderId, params ActorParams) error
	// Delivery orders ready for shipping without a partner
	// (GET /api/v1/dispatch/queue)
	GetDispatchQueue(ctx echo.Context, params GetDispatchQueueParams) error
	// Delivery partners with their current workload
	// (GET /api/v1/delivery-partners)
	GetDeliveryPartners(ctx echo.Context, params GetDeliveryPartnersParams) error
	// Register a delivery partner
	// (POST /api/v1/delivery-partners)
	CreateDeliveryPartner(ctx echo.Context, params ActorParams) error
	// Switch a partner on or off
	// (PUT /api/v1/delivery-partners/{partnerId}/availability)
	SetPartnerAvailability(ctx echo.Context, partnerId openapi_types.UUID, params ActorParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PlaceOrder(ctx, params)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var (
		params GetOrdersParams
		err    error
	)

	params.ActorParams, err = bindActorParams(ctx)
	if err != nil {
		return err
	}

	err = runtime.BindQueryParameter("form", true, false, "buyerId", ctx.QueryParams(), &params.BuyerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter buyerId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "sellerId", ctx.QueryParams(), &params.SellerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sellerId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "partnerId", ctx.QueryParams(), &params.PartnerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter partnerId: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, params, err := bindOrderParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId, params)
}

// ChangeOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, params, err := bindOrderParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId, params)
}

// AssignPartner converts echo context to params.
func (w *ServerInterfaceWrapper) AssignPartner(ctx echo.Context) error {
	orderId, params, err := bindOrderParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AssignPartner(ctx, orderId, params)
}

// RequestRefund converts echo context to params.
func (w *ServerInterfaceWrapper) RequestRefund(ctx echo.Context) error {
	orderId, params, err := bindOrderParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RequestRefund(ctx, orderId, params)
}

// ResolveRefund converts echo context to params.
func (w *ServerInterfaceWrapper) ResolveRefund(ctx echo.Context) error {
	orderId, params, err := bindOrderParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ResolveRefund(ctx, orderId, params)
}

// GetDispatchQueue converts echo context to params.
func (w *ServerInterfaceWrapper) GetDispatchQueue(ctx echo.Context) error {
	var (
		params GetDispatchQueueParams
		err    error
	)

	params.ActorParams, err = bindActorParams(ctx)
	if err != nil {
		return err
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.GetDispatchQueue(ctx, params)
}

// GetDeliveryPartners converts echo context to params.
func (w *ServerInterfaceWrapper) GetDeliveryPartners(ctx echo.Context) error {
	var (
		params GetDeliveryPartnersParams
		err    error
	)

	params.ActorParams, err = bindActorParams(ctx)
	if err != nil {
		return err
	}

	err = runtime.BindQueryParameter("form", true, false, "available", ctx.QueryParams(), &params.Available)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter available: %s", err))
	}

	return w.Handler.GetDeliveryPartners(ctx, params)
}

// CreateDeliveryPartner converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDeliveryPartner(ctx echo.Context) error {
	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.CreateDeliveryPartner(ctx, params)
}

// SetPartnerAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) SetPartnerAvailability(ctx echo.Context) error {
	var partnerId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "partnerId", ctx.Param("partnerId"), &partnerId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter partnerId: %s", err))
	}

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SetPartnerAvailability(ctx, partnerId, params)
}

func bindOrderParams(ctx echo.Context) (OrderId, ActorParams, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return orderId, ActorParams{},
			echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	params, err := bindActorParams(ctx)
	return orderId, params, err
}

func bindActorParams(ctx echo.Context) (ActorParams, error) {
	var params ActorParams
	headers := ctx.Request().Header

	// ------------- Required header parameter "X-Actor-Id" -------------
	valueList, found := headers[http.CanonicalHeaderKey("X-Actor-Id")]
	if !found {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor-Id is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-Id, got %d", n))
	}
	err := runtime.BindStyledParameterWithOptions("simple", "X-Actor-Id", valueList[0], &params.XActorId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-Id: %s", err))
	}

	// ------------- Required header parameter "X-Actor-Role" -------------
	valueList, found = headers[http.CanonicalHeaderKey("X-Actor-Role")]
	if !found {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-Actor-Role is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-Actor-Role, got %d", n))
	}
	err = runtime.BindStyledParameterWithOptions("simple", "X-Actor-Role", valueList[0], &params.XActorRole,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-Actor-Role: %s", err))
	}

	return params, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers, and prepends baseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.POST(baseURL+"/api/v1/orders/:orderId/assignment", wrapper.AssignPartner)
	router.POST(baseURL+"/api/v1/orders/:orderId/refund", wrapper.RequestRefund)
	router.POST(baseURL+"/api/v1/orders/:orderId/refund/decision", wrapper.ResolveRefund)
	router.GET(baseURL+"/api/v1/dispatch/queue", wrapper.GetDispatchQueue)
	router.GET(baseURL+"/api/v1/delivery-partners", wrapper.GetDeliveryPartners)
	router.POST(baseURL+"/api/v1/delivery-partners", wrapper.CreateDeliveryPartner)
	router.PUT(baseURL+"/api/v1/delivery-partners/:partnerId/availability", wrapper.SetPartnerAvailability)
}
