package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ActorRole.
const (
	ActorRoleAdmin           ActorRole = "admin"
	ActorRoleBuyer           ActorRole = "buyer"
	ActorRoleDeliveryPartner ActorRole = "delivery_partner"
	ActorRoleSeller          ActorRole = "seller"
	ActorRoleSystem          ActorRole = "system"
)

// Defines values for GetOrdersParamsStatus.
const (
	GetOrdersParamsStatusCancelled      GetOrdersParamsStatus = "cancelled"
	GetOrdersParamsStatusCompleted      GetOrdersParamsStatus = "completed"
	GetOrdersParamsStatusConfirmed      GetOrdersParamsStatus = "confirmed"
	GetOrdersParamsStatusDelivered      GetOrdersParamsStatus = "delivered"
	GetOrdersParamsStatusOutForDelivery GetOrdersParamsStatus = "out_for_delivery"
	GetOrdersParamsStatusPending        GetOrdersParamsStatus = "pending"
	GetOrdersParamsStatusPreparing      GetOrdersParamsStatus = "preparing"
	GetOrdersParamsStatusReadyForShip   GetOrdersParamsStatus = "ready_for_ship"
)

// Defines values for NewOrderFulfillment.
const (
	NewOrderFulfillmentDelivery NewOrderFulfillment = "delivery"
	NewOrderFulfillmentPickup   NewOrderFulfillment = "pickup"
)

// Defines values for NewOrderPayment.
const (
	NewOrderPaymentCod NewOrderPayment = "cod"
	NewOrderPaymentUpi NewOrderPayment = "upi"
)

// Defines values for RefundStatus.
const (
	RefundStatusDenied    RefundStatus = "denied"
	RefundStatusProcessed RefundStatus = "processed"
	RefundStatusRequested RefundStatus = "requested"
)

// Defines values for RefundDecisionDecision.
const (
	RefundDecisionDecisionDenied    RefundDecisionDecision = "denied"
	RefundDecisionDecisionProcessed RefundDecisionDecision = "processed"
)

// Defines values for StatusChangeStatus.
const (
	StatusChangeStatusCancelled      StatusChangeStatus = "cancelled"
	StatusChangeStatusCompleted      StatusChangeStatus = "completed"
	StatusChangeStatusConfirmed      StatusChangeStatus = "confirmed"
	StatusChangeStatusDelivered      StatusChangeStatus = "delivered"
	StatusChangeStatusOutForDelivery StatusChangeStatus = "out_for_delivery"
	StatusChangeStatusPreparing      StatusChangeStatus = "preparing"
	StatusChangeStatusReadyForShip   StatusChangeStatus = "ready_for_ship"
)

// Assignment defines model for Assignment.
type Assignment struct {
	PartnerId *openapi_types.UUID `json:"partnerId,omitempty"`
}

// Availability defines model for Availability.
type Availability struct {
	Available bool `json:"available"`
}

// Buyer defines model for Buyer.
type Buyer struct {
	Address *string `json:"address,omitempty"`
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
}

// DeliveryPartner defines model for DeliveryPartner.
type DeliveryPartner struct {
	ActiveDeliveries int                `json:"activeDeliveries"`
	Id               openapi_types.UUID `json:"id"`
	IsAvailable      bool               `json:"isAvailable"`
	LastAssignedAt   *time.Time         `json:"lastAssignedAt,omitempty"`
	Location         *Location          `json:"location,omitempty"`
	Name             string             `json:"name"`
	Phone            string             `json:"phone"`
}

// DeliveryPartnerCreated defines model for DeliveryPartnerCreated.
type DeliveryPartnerCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// DispatchQueueItem defines model for DispatchQueueItem.
type DispatchQueueItem struct {
	BuyerAddress string               `json:"buyerAddress"`
	BuyerName    string               `json:"buyerName"`
	Id           openapi_types.UUID   `json:"id"`
	ReadySince   time.Time            `json:"readySince"`
	SellerIds    []openapi_types.UUID `json:"sellerIds"`
	Total        Money                `json:"total"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Money defines model for Money.
type Money = string

// NewDeliveryPartner defines model for NewDeliveryPartner.
type NewDeliveryPartner struct {
	Id       *openapi_types.UUID `json:"id,omitempty"`
	Location *Location           `json:"location,omitempty"`
	Name     string              `json:"name"`
	Phone    string              `json:"phone"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Buyer       Buyer               `json:"buyer"`
	Fulfillment NewOrderFulfillment `json:"fulfillment"`
	Items       []NewOrderItem      `json:"items"`
	Payment     NewOrderPayment     `json:"payment"`
}

// NewOrderFulfillment defines model for NewOrder.Fulfillment.
type NewOrderFulfillment string

// NewOrderPayment defines model for NewOrder.Payment.
type NewOrderPayment string

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	ProductId openapi_types.UUID `json:"productId"`
	Quantity  int                `json:"quantity"`
}

// Order defines model for Order.
type Order struct {
	Buyer           Buyer               `json:"buyer"`
	BuyerId         openapi_types.UUID  `json:"buyerId"`
	ConfirmedAt     *time.Time          `json:"confirmedAt,omitempty"`
	Fulfillment     string              `json:"fulfillment"`
	Id              openapi_types.UUID  `json:"id"`
	Items           []OrderItem         `json:"items"`
	PartnerId       *openapi_types.UUID `json:"partnerId,omitempty"`
	Payment         string              `json:"payment"`
	PlacedAt        time.Time           `json:"placedAt"`
	Refund          *Refund             `json:"refund,omitempty"`
	Status          string              `json:"status"`
	StatusChangedAt time.Time           `json:"statusChangedAt"`
	Total           Money               `json:"total"`
}

// OrderCreated defines model for OrderCreated.
type OrderCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	BuyerId         openapi_types.UUID  `json:"buyerId"`
	BuyerName       string              `json:"buyerName"`
	Fulfillment     string              `json:"fulfillment"`
	Id              openapi_types.UUID  `json:"id"`
	ItemCount       int                 `json:"itemCount"`
	PartnerId       *openapi_types.UUID `json:"partnerId,omitempty"`
	Payment         string              `json:"payment"`
	PlacedAt        time.Time           `json:"placedAt"`
	Status          string              `json:"status"`
	StatusChangedAt time.Time           `json:"statusChangedAt"`
	Total           Money               `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	ProductId   openapi_types.UUID `json:"productId"`
	ProductName string             `json:"productName"`
	Quantity    int                `json:"quantity"`
	SellerId    openapi_types.UUID `json:"sellerId"`
	Subtotal    Money              `json:"subtotal"`
	UnitPrice   Money              `json:"unitPrice"`
}

// Refund defines model for Refund.
type Refund struct {
	Amount      Money        `json:"amount"`
	Reason      string       `json:"reason"`
	RequestedAt time.Time    `json:"requestedAt"`
	ResolvedAt  *time.Time   `json:"resolvedAt,omitempty"`
	Status      RefundStatus `json:"status"`
}

// RefundStatus defines model for Refund.Status.
type RefundStatus string

// RefundDecision defines model for RefundDecision.
type RefundDecision struct {
	Decision RefundDecisionDecision `json:"decision"`
}

// RefundDecisionDecision defines model for RefundDecision.Decision.
type RefundDecisionDecision string

// RefundRequest defines model for RefundRequest.
type RefundRequest struct {
	Amount Money  `json:"amount"`
	Reason string `json:"reason"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Status StatusChangeStatus `json:"status"`
}

// StatusChangeStatus defines model for StatusChange.Status.
type StatusChangeStatus string

// ActorId defines model for ActorId.
type ActorId = openapi_types.UUID

// ActorRole defines model for ActorRole.
type ActorRole string

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ActorParams carries the caller identity sent by the gateway on every request.
type ActorParams struct {
	XActorId   ActorId   `json:"X-Actor-Id"`
	XActorRole ActorRole `json:"X-Actor-Role"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	ActorParams
	BuyerId   *openapi_types.UUID    `form:"buyerId,omitempty" json:"buyerId,omitempty"`
	SellerId  *openapi_types.UUID    `form:"sellerId,omitempty" json:"sellerId,omitempty"`
	PartnerId *openapi_types.UUID    `form:"partnerId,omitempty" json:"partnerId,omitempty"`
	Status    *GetOrdersParamsStatus `form:"status,omitempty" json:"status,omitempty"`
	Limit     *int                   `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetOrdersParamsStatus defines parameters for GetOrders.
type GetOrdersParamsStatus string

// GetDispatchQueueParams defines parameters for GetDispatchQueue.
type GetDispatchQueueParams struct {
	ActorParams
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetDeliveryPartnersParams defines parameters for GetDeliveryPartners.
type GetDeliveryPartnersParams struct {
	ActorParams
	Available *bool `form:"available,omitempty" json:"available,omitempty"`
}

// PlaceOrderJSONRequestBody defines body for PlaceOrder for application/json ContentType.
type PlaceOrderJSONRequestBody = NewOrder

// ChangeOrderStatusJSONRequestBody defines body for ChangeOrderStatus for application/json ContentType.
type ChangeOrderStatusJSONRequestBody = StatusChange

// AssignPartnerJSONRequestBody defines body for AssignPartner for application/json ContentType.
type AssignPartnerJSONRequestBody = Assignment

// RequestRefundJSONRequestBody defines body for RequestRefund for application/json ContentType.
type RequestRefundJSONRequestBody = RefundRequest

// ResolveRefundJSONRequestBody defines body for ResolveRefund for application/json ContentType.
type ResolveRefundJSONRequestBody = RefundDecision

// CreateDeliveryPartnerJSONRequestBody defines body for CreateDeliveryPartner for application/json ContentType.
type CreateDeliveryPartnerJSONRequestBody = NewDeliveryPartner

// SetPartnerAvailabilityJSONRequestBody defines body for SetPartnerAvailability for application/json ContentType.
type SetPartnerAvailabilityJSONRequestBody = Availability
