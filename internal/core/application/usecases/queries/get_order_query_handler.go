package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	response, err := h.order(db, query.OrderID())
	if err != nil {
		return nil, err
	}

	response.Items, err = h.items(db, query.OrderID())
	if err != nil {
		return nil, err
	}

	if !canSee(query.Actor(), response) {
		return nil, fmt.Errorf("%w: %s cannot read order %s", order.ErrUnauthorizedActor, query.Actor(), response.ID)
	}
	return response, nil
}

func (h GetOrderQueryHandler) order(db *gorm.DB, id kernel.UUID) (*GetOrderQueryResponse, error) {
	var (
		response     GetOrderQueryResponse
		orderID      uuid.UUID
		buyerID      uuid.UUID
		partnerID    uuid.NullUUID
		status       int
		refundReason *string
		refundAmount decimal.NullDecimal
		refundStatus *string
		requestedAt  *time.Time
		resolvedAt   *time.Time
	)

	row := db.Raw(`
		SELECT
			id, buyer_id, buyer_name, buyer_address, buyer_phone,
			fulfillment, payment, status, total,
			placed_at, status_changed_at, confirmed_at, partner_id,
			refund_reason, refund_amount, refund_status, refund_requested_at, refund_resolved_at
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Row()

	err := row.Scan(
		&orderID, &buyerID, &response.BuyerName, &response.BuyerAddress, &response.BuyerPhone,
		&response.Fulfillment, &response.Payment, &status, &response.Total,
		&response.PlacedAt, &response.StatusChangedAt, &response.ConfirmedAt, &partnerID,
		&refundReason, &refundAmount, &refundStatus, &requestedAt, &resolvedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	if response.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return nil, err
	}
	if response.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return nil, err
	}
	if partnerID.Valid {
		pID, pErr := kernel.UUIDFromBytes(partnerID.UUID[:])
		if pErr != nil {
			return nil, pErr
		}
		response.PartnerID = &pID
	}
	response.Status = order.Status(status).String()

	if refundStatus != nil {
		refund := &GetOrderRefundResponse{
			Amount:     refundAmount.Decimal,
			Status:     *refundStatus,
			ResolvedAt: resolvedAt,
		}
		if refundReason != nil {
			refund.Reason = *refundReason
		}
		if requestedAt != nil {
			refund.RequestedAt = *requestedAt
		}
		response.Refund = refund
	}

	return &response, nil
}

func (h GetOrderQueryHandler) items(db *gorm.DB, id kernel.UUID) ([]GetOrderItemResponse, error) {
	rows, err := db.Raw(`
		SELECT product_id, seller_id, product_name, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var (
			item      GetOrderItemResponse
			productID uuid.UUID
			sellerID  uuid.UUID
		)
		if err = rows.Scan(&productID, &sellerID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func canSee(a actor.Actor, o *GetOrderQueryResponse) bool {
	switch a.Role() {
	case actor.RoleAdmin, actor.RoleSystem:
		return true
	case actor.RoleBuyer:
		return a.ID().IsEqual(o.BuyerID)
	case actor.RoleDeliveryPartner:
		return o.PartnerID != nil && o.PartnerID.IsEqual(a.ID())
	case actor.RoleSeller:
		for _, item := range o.Items {
			if item.SellerID.IsEqual(a.ID()) {
				return true
			}
		}
	}
	return false
}
