// Package auditrepo stores audit entries in the same transaction as the change they describe.
package auditrepo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

type AuditEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Action     string    `gorm:"type:varchar(64);not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole  string    `gorm:"type:varchar(32);not null"`
	Details    string    `gorm:"type:text;not null;default:''"`
	RecordedAt time.Time `gorm:"not null;index"`
}

func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

type GormAuditLog struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormAuditLog(db *gorm.DB, logger *slog.Logger) *GormAuditLog {
	return &GormAuditLog{db: db, logger: logger}
}

func (l *GormAuditLog) Record(ctx context.Context, entry ports.AuditEntry) error {
	var actionErr error
	if entry.Action == "" {
		actionErr = errs.NewValueIsRequiredError("action")
	}
	if err := errors.Join(entry.ID.Validate(), entry.OrderID.Validate(), entry.Actor.Validate(), actionErr); err != nil {
		return err
	}

	dto := AuditEntryDTO{
		ID:         entry.ID.Bytes(),
		OrderID:    entry.OrderID.Bytes(),
		Action:     entry.Action,
		ActorID:    entry.Actor.ID().Bytes(),
		ActorRole:  entry.Actor.Role().String(),
		Details:    entry.Details,
		RecordedAt: entry.RecordedAt,
	}
	if err := l.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	l.logger.InfoContext(ctx, "audit entry recorded",
		"order_id", entry.OrderID.String(),
		"action", entry.Action,
		"actor", entry.Actor.String(),
	)
	return nil
}
