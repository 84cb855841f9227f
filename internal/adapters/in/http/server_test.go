package http_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/memory"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/adapters/in/http/servers"
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

type MockGetOrderHandler struct {
	mock.Mock
}

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).(*queries.GetOrderQueryResponse)
	return response, args.Error(1)
}

type MockGetOrderListHandler struct {
	mock.Mock
}

func (m *MockGetOrderListHandler) Handle(
	ctx context.Context,
	query queries.GetOrderListQuery,
) ([]queries.GetOrderListQueryResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).([]queries.GetOrderListQueryResponse)
	return response, args.Error(1)
}

type MockGetAwaitingDispatchOrdersHandler struct {
	mock.Mock
}

func (m *MockGetAwaitingDispatchOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetAwaitingDispatchOrdersQuery,
) ([]queries.GetAwaitingDispatchOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).([]queries.GetAwaitingDispatchOrdersQueryResponse)
	return response, args.Error(1)
}

type MockGetDeliveryPartnersHandler struct {
	mock.Mock
}

func (m *MockGetDeliveryPartnersHandler) Handle(
	ctx context.Context,
	query queries.GetDeliveryPartnersQuery,
) ([]queries.GetDeliveryPartnersQueryResponse, error) {
	args := m.Called(ctx, query)
	response, _ := args.Get(0).([]queries.GetDeliveryPartnersQueryResponse)
	return response, args.Error(1)
}

type testAPI struct {
	handler  http.Handler
	catalog  stubCatalog
	getOrder *MockGetOrderHandler
	orders   *MockGetOrderListHandler
	queue    *MockGetAwaitingDispatchOrdersHandler
	partners *MockGetDeliveryPartnersHandler

	buyer  actor.Actor
	seller actor.Actor
	admin  actor.Actor
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	store := memory.NewStore()
	uow := memory.NewUnitOfWorkFactory(store, nil, slog.Default())
	locker := locks.NewKeyedMutex()

	api := &testAPI{
		catalog:  stubCatalog{products: make(map[kernel.UUID]cart.Product)},
		getOrder: new(MockGetOrderHandler),
		orders:   new(MockGetOrderListHandler),
		queue:    new(MockGetAwaitingDispatchOrdersHandler),
		partners: new(MockGetDeliveryPartnersHandler),
	}

	var err error
	api.buyer, err = actor.New(kernel.NewUUID(), actor.RoleBuyer)
	require.NoError(t, err)
	api.seller, err = actor.New(kernel.NewUUID(), actor.RoleSeller)
	require.NoError(t, err)
	api.admin, err = actor.New(kernel.NewUUID(), actor.RoleAdmin)
	require.NoError(t, err)

	server := httpadapter.NewServer(httpadapter.Handlers{
		PlaceOrder:             commands.NewPlaceOrderCommandHandler(uow, api.catalog),
		ChangeOrderStatus:      commands.NewChangeOrderStatusCommandHandler(uow, locker),
		AssignPartner:          commands.NewAssignPartnerCommandHandler(uow, locker),
		AutoAssignPartner:      commands.NewAutoAssignPartnerCommandHandler(uow, locker),
		RequestRefund:          commands.NewRequestRefundCommandHandler(uow, locker),
		ResolveRefund:          commands.NewResolveRefundCommandHandler(uow, locker),
		CreateDeliveryPartner:  commands.NewCreateDeliveryPartnerCommandHandler(uow),
		SetPartnerAvailability: commands.NewSetPartnerAvailabilityCommandHandler(uow, locker),

		GetOrder:                  api.getOrder,
		GetOrderList:              api.orders,
		GetAwaitingDispatchOrders: api.queue,
		GetDeliveryPartners:       api.partners,
	})

	api.handler, err = httpadapter.NewRouter(server, httpadapter.RouterConfig{
		Gatherer:       prometheus.NewRegistry(),
		Logger:         slog.Default(),
		RequestTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return api
}

func (api *testAPI) do(t *testing.T, method, path string, by *actor.Actor, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if by != nil {
		req.Header.Set("X-Actor-Id", by.ID().String())
		req.Header.Set("X-Actor-Role", by.Role().String())
	}

	rec := httptest.NewRecorder()
	api.handler.ServeHTTP(rec, req)
	return rec
}

func (api *testAPI) placeOrder(t *testing.T, fulfillment string) string {
	t.Helper()

	product, err := cart.NewProduct(kernel.NewUUID(), api.seller.ID(), "Jackfruit chips", decimal.RequireFromString("4.00"))
	require.NoError(t, err)
	api.catalog.products[product.ID()] = product

	body := `{"buyer":{"name":"Asha","address":"12 Lake Road","phone":"555"},` +
		`"items":[{"productId":"` + product.ID().String() + `","quantity":2}],` +
		`"fulfillment":"` + fulfillment + `","payment":"upi"}`
	rec := api.do(t, http.MethodPost, "/api/v1/orders", &api.buyer, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.OrderCreated
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created.Id.String()
}

func (api *testAPI) changeStatus(t *testing.T, orderID string, by actor.Actor, status string) *httptest.ResponseRecorder {
	t.Helper()
	return api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/status", &by, `{"status":"`+status+`"}`)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServer_Orders(t *testing.T) {
	t.Run("should place an order and move it through the seller steps", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "pickup")

		for _, status := range []string{"confirmed", "preparing", "ready_for_ship"} {
			rec := api.changeStatus(t, orderID, api.seller, status)
			assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
		}
	})

	t.Run("should reject requests without actor headers", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/orders", nil, `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	})

	t.Run("should reject a body that breaks the contract", func(t *testing.T) {
		api := newTestAPI(t)
		body := `{"buyer":{"name":"Asha","phone":"555"},` +
			`"items":[{"productId":"` + kernel.NewUUID().String() + `","quantity":0}],` +
			`"fulfillment":"pickup","payment":"upi"}`

		rec := api.do(t, http.MethodPost, "/api/v1/orders", &api.buyer, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 404 for an unknown product", func(t *testing.T) {
		api := newTestAPI(t)
		body := `{"buyer":{"name":"Asha","phone":"555"},` +
			`"items":[{"productId":"` + kernel.NewUUID().String() + `","quantity":1}],` +
			`"fulfillment":"pickup","payment":"cod"}`

		rec := api.do(t, http.MethodPost, "/api/v1/orders", &api.buyer, body)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 403 for a seller without items in the order", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "delivery")
		stranger, err := actor.New(kernel.NewUUID(), actor.RoleSeller)
		require.NoError(t, err)

		rec := api.changeStatus(t, orderID, stranger, "confirmed")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should return 409 when the buyer cancels after preparation started", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "delivery")
		require.Equal(t, http.StatusNoContent, api.changeStatus(t, orderID, api.seller, "confirmed").Code)
		require.Equal(t, http.StatusNoContent, api.changeStatus(t, orderID, api.seller, "preparing").Code)

		rec := api.changeStatus(t, orderID, api.buyer, "cancelled")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return 404 for an unknown order", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.changeStatus(t, kernel.NewUUID().String(), api.admin, "cancelled")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 409 when no partner is available for auto assignment", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "delivery")
		for _, status := range []string{"confirmed", "preparing", "ready_for_ship"} {
			require.Equal(t, http.StatusNoContent, api.changeStatus(t, orderID, api.seller, status).Code)
		}

		rec := api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/assignment", &api.admin, `{}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should assign the partner named in the body", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "delivery")
		for _, status := range []string{"confirmed", "preparing", "ready_for_ship"} {
			require.Equal(t, http.StatusNoContent, api.changeStatus(t, orderID, api.seller, status).Code)
		}
		rec := api.do(t, http.MethodPost, "/api/v1/delivery-partners", &api.admin, `{"name":"Ravi","phone":"555"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var created servers.DeliveryPartnerCreated
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/assignment", &api.admin,
			`{"partnerId":"`+created.Id.String()+`"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	})
}

func TestServer_Refunds(t *testing.T) {
	t.Run("should return 422 for a refund of an unconfirmed order", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "pickup")

		rec := api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/refund", &api.buyer,
			`{"reason":"stale","amount":"1.00"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("should request and process a refund", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "pickup")
		require.Equal(t, http.StatusNoContent, api.changeStatus(t, orderID, api.seller, "confirmed").Code)

		rec := api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/refund", &api.buyer,
			`{"reason":"one packet torn","amount":"4.00"}`)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/refund/decision", &api.admin,
			`{"decision":"processed"}`)
		assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		rec = api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/refund/decision", &api.admin,
			`{"decision":"denied"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should return 400 for an amount above the order total", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := api.placeOrder(t, "pickup")
		require.Equal(t, http.StatusNoContent, api.changeStatus(t, orderID, api.seller, "confirmed").Code)

		rec := api.do(t, http.MethodPost, "/api/v1/orders/"+orderID+"/refund", &api.buyer,
			`{"reason":"all of it","amount":"9.00"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_Queries(t *testing.T) {
	t.Run("should render the order read model", func(t *testing.T) {
		api := newTestAPI(t)
		orderID := kernel.NewUUID()
		placedAt := time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)
		api.getOrder.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderQuery) bool {
			return q.OrderID().IsEqual(orderID) && q.Actor().ID().IsEqual(api.buyer.ID())
		})).Return(&queries.GetOrderQueryResponse{
			ID:              orderID,
			BuyerID:         api.buyer.ID(),
			BuyerName:       "Asha",
			BuyerPhone:      "555",
			Fulfillment:     "pickup",
			Payment:         "cod",
			Status:          "pending",
			Total:           decimal.RequireFromString("8"),
			PlacedAt:        placedAt,
			StatusChangedAt: placedAt,
			Items: []queries.GetOrderItemResponse{{
				ProductID:   kernel.NewUUID(),
				SellerID:    api.seller.ID(),
				ProductName: "Jackfruit chips",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("4"),
				Subtotal:    decimal.RequireFromString("8"),
			}},
		}, nil).Once()

		rec := api.do(t, http.MethodGet, "/api/v1/orders/"+orderID.String(), &api.buyer, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "8.00", body.Total)
		assert.Equal(t, "4.00", body.Items[0].UnitPrice)
		assert.Nil(t, body.Buyer.Address)
		assert.Nil(t, body.Refund)
		api.getOrder.AssertExpectations(t)
	})

	t.Run("should map the query error", func(t *testing.T) {
		api := newTestAPI(t)
		api.getOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, order.ErrUnauthorizedActor).Once()

		rec := api.do(t, http.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), &api.seller, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should restrict the dispatch queue to privileged actors", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/api/v1/dispatch/queue", &api.buyer, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		api.queue.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should pass the requested limit to the dispatch queue", func(t *testing.T) {
		api := newTestAPI(t)
		api.queue.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetAwaitingDispatchOrdersQuery) bool {
			return q.Limit() == 5
		})).Return([]queries.GetAwaitingDispatchOrdersQueryResponse{{
			ID:           kernel.NewUUID(),
			BuyerName:    "Asha",
			BuyerAddress: "12 Lake Road",
			Total:        decimal.RequireFromString("12.5"),
			ReadySince:   time.Now().UTC(),
			SellerIDs:    []kernel.UUID{api.seller.ID()},
		}}, nil).Once()

		rec := api.do(t, http.MethodGet, "/api/v1/dispatch/queue?limit=5", &api.admin, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body []servers.DispatchQueueItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "12.50", body[0].Total)
		assert.Equal(t, api.seller.ID().String(), body[0].SellerIds[0].String())
	})

	t.Run("should list the orders assigned to the calling partner", func(t *testing.T) {
		api := newTestAPI(t)
		rider, err := actor.New(kernel.NewUUID(), actor.RoleDeliveryPartner)
		require.NoError(t, err)
		riderID := rider.ID()

		api.orders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderListQuery) bool {
			return q.Scope() == queries.ScopePartnerOrders &&
				q.SubjectID() == riderID &&
				q.Status() != nil && *q.Status() == order.OutForDelivery &&
				q.Limit() == 50
		})).Return([]queries.GetOrderListQueryResponse{{
			ID:              kernel.NewUUID(),
			BuyerID:         api.buyer.ID(),
			BuyerName:       "Asha",
			Fulfillment:     "delivery",
			Payment:         "cash_on_delivery",
			Status:          "out_for_delivery",
			Total:           decimal.RequireFromString("8"),
			PlacedAt:        time.Now().UTC(),
			StatusChangedAt: time.Now().UTC(),
			PartnerID:       &riderID,
			ItemCount:       2,
		}}, nil).Once()

		rec := api.do(t, http.MethodGet, "/api/v1/orders?status=out_for_delivery", &rider, "")

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var body []servers.OrderSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "8.00", body[0].Total)
		assert.Equal(t, "out_for_delivery", body[0].Status)
		assert.Equal(t, 2, body[0].ItemCount)
		require.NotNil(t, body[0].PartnerId)
		assert.Equal(t, riderID.String(), body[0].PartnerId.String())
		api.orders.AssertExpectations(t)
	})

	t.Run("should let admin list the orders of a seller", func(t *testing.T) {
		api := newTestAPI(t)
		sellerID := api.seller.ID()
		api.orders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderListQuery) bool {
			return q.Scope() == queries.ScopeSellerOrders && q.SubjectID() == sellerID && q.Limit() == 10
		})).Return([]queries.GetOrderListQueryResponse{}, nil).Once()

		rec := api.do(t, http.MethodGet, "/api/v1/orders?limit=10&sellerId="+sellerID.String(), &api.admin, "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.JSONEq(t, "[]", rec.Body.String())
		api.orders.AssertExpectations(t)
	})

	t.Run("should return 403 when a buyer lists the orders of a partner", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/api/v1/orders?partnerId="+kernel.NewUUID().String(), &api.buyer, "")

		assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
		api.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 for an unknown status filter", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodGet, "/api/v1/orders?status=lost", &api.buyer, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		api.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should return 400 when more than one owner filter is given", func(t *testing.T) {
		api := newTestAPI(t)
		path := "/api/v1/orders?buyerId=" + api.buyer.ID().String() + "&sellerId=" + api.seller.ID().String()

		rec := api.do(t, http.MethodGet, path, &api.admin, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
		api.orders.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should filter partners by availability", func(t *testing.T) {
		api := newTestAPI(t)
		api.partners.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDeliveryPartnersQuery) bool {
			return q.OnlyAvailable()
		})).Return([]queries.GetDeliveryPartnersQueryResponse{}, nil).Once()

		rec := api.do(t, http.MethodGet, "/api/v1/delivery-partners?available=true", &api.admin, "")

		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		api.partners.AssertExpectations(t)
	})
}

func TestServer_DeliveryPartners(t *testing.T) {
	t.Run("should let a partner register and switch itself off", func(t *testing.T) {
		api := newTestAPI(t)
		self, err := actor.New(kernel.NewUUID(), actor.RoleDeliveryPartner)
		require.NoError(t, err)

		rec := api.do(t, http.MethodPost, "/api/v1/delivery-partners", &self,
			`{"name":"Ravi","phone":"555","location":{"latitude":12.97,"longitude":77.59}}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var created servers.DeliveryPartnerCreated
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.Equal(t, self.ID().String(), created.Id.String())

		rec = api.do(t, http.MethodPut, "/api/v1/delivery-partners/"+created.Id.String()+"/availability", &self,
			`{"available":false}`)
		assert.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	})

	t.Run("should reject an out of range location", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(t, http.MethodPost, "/api/v1/delivery-partners", &api.admin,
			`{"name":"Ravi","phone":"555","location":{"latitude":120,"longitude":77.59}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_Operational(t *testing.T) {
	api := newTestAPI(t)

	t.Run("should report health", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/health", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("should expose metrics", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/metrics", nil, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should serve the openapi document to the swagger ui", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/swagger/doc.json", nil, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/v1/orders")
	})
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusGatewayTimeout, httpadapter.StatusCode(context.DeadlineExceeded))
	assert.Equal(t, http.StatusBadRequest, httpadapter.StatusCode(errs.NewValueIsRequiredError("name")))
	assert.Equal(t, http.StatusConflict, httpadapter.StatusCode(order.ErrInvalidTransition))
	assert.Equal(t, http.StatusUnprocessableEntity, httpadapter.StatusCode(order.ErrOrderNotEligible))
	assert.Equal(t, http.StatusInternalServerError, httpadapter.StatusCode(assert.AnError))
}
