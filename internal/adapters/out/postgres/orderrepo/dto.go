// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// Line items live in their own table and are written once, when the order is added.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. Refund columns are all NULL until a refund is requested.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BuyerID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	BuyerName       string          `gorm:"type:varchar(255);not null"`
	BuyerAddress    string          `gorm:"type:text;not null;default:''"`
	BuyerPhone      string          `gorm:"type:varchar(64);not null"`
	Fulfillment     string          `gorm:"type:varchar(16);not null"`
	Payment         string          `gorm:"type:varchar(16);not null"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlacedAt        time.Time       `gorm:"not null"`
	Status          int             `gorm:"type:smallint;not null;index:idx_orders_status_changed,priority:1"`
	StatusChangedAt time.Time       `gorm:"not null;index:idx_orders_status_changed,priority:2"`
	ConfirmedAt     *time.Time
	PartnerID       *uuid.UUID     `gorm:"type:uuid;index"`
	Refund          RefundDTO      `gorm:"embedded;embeddedPrefix:refund_"`
	Items           []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// RefundDTO is embedded into the orders table.
type RefundDTO struct {
	Reason      *string             `gorm:"type:text"`
	Amount      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Status      *string             `gorm:"type:varchar(16)"`
	RequestedAt *time.Time
	ResolvedAt  *time.Time
}

// OrderItemDTO is one line of an order, keyed by the order and its position at checkout.
type OrderItemDTO struct {
	OrderID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position    int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:     orderID,
			Position:    i,
			ProductID:   item.ProductID().Bytes(),
			SellerID:    item.SellerID().Bytes(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	var partnerID *uuid.UUID
	if id := o.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	buyer := o.Buyer()
	return OrderDTO{
		ID:              orderID,
		BuyerID:         o.BuyerID().Bytes(),
		BuyerName:       buyer.Name(),
		BuyerAddress:    buyer.Address(),
		BuyerPhone:      buyer.Phone(),
		Fulfillment:     o.Fulfillment().String(),
		Payment:         o.Payment().String(),
		Total:           o.Total(),
		PlacedAt:        o.PlacedAt(),
		Status:          int(o.Status()),
		StatusChangedAt: o.StatusChangedAt(),
		ConfirmedAt:     o.ConfirmedAt(),
		PartnerID:       partnerID,
		Refund:          refundFromDomain(o.Refund()),
		Items:           items,
	}
}

func refundFromDomain(r *order.Refund) RefundDTO {
	if r == nil {
		return RefundDTO{}
	}

	reason := r.Reason()
	status := r.Status().String()
	requestedAt := r.RequestedAt()
	return RefundDTO{
		Reason:      &reason,
		Amount:      decimal.NewNullDecimal(r.Amount()),
		Status:      &status,
		RequestedAt: &requestedAt,
		ResolvedAt:  r.ResolvedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	buyer, err := order.NewBuyerInfo(dto.BuyerName, dto.BuyerAddress, dto.BuyerPhone)
	if err != nil {
		return nil, err
	}

	fulfillment, err := order.ParseFulfillmentMethod(dto.Fulfillment)
	if err != nil {
		return nil, err
	}
	payment, err := order.ParsePaymentMethod(dto.Payment)
	if err != nil {
		return nil, err
	}

	refund, err := refundToDomain(dto.Refund)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreParams{
		ID:              id,
		BuyerID:         buyerID,
		Items:           items,
		Buyer:           buyer,
		Fulfillment:     fulfillment,
		Payment:         payment,
		Total:           dto.Total,
		PlacedAt:        dto.PlacedAt,
		Status:          order.Status(dto.Status),
		StatusChangedAt: dto.StatusChangedAt,
		ConfirmedAt:     dto.ConfirmedAt,
		PartnerID:       partnerID,
		Refund:          refund,
	})
}

func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, sellerID, dto.ProductName, dto.Quantity, dto.UnitPrice)
}

func refundToDomain(dto RefundDTO) (*order.Refund, error) {
	if dto.Status == nil {
		return nil, nil
	}

	status, err := order.ParseRefundStatus(*dto.Status)
	if err != nil {
		return nil, err
	}

	var (
		reason      string
		requestedAt time.Time
	)
	if dto.Reason != nil {
		reason = *dto.Reason
	}
	if dto.RequestedAt != nil {
		requestedAt = *dto.RequestedAt
	}

	return order.RestoreRefund(reason, dto.Amount.Decimal, status, requestedAt, dto.ResolvedAt)
}
