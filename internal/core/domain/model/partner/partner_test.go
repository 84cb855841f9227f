package partner_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/partner"
	"marketplace/internal/pkg/errs"
)

func TestNewDeliveryPartner(t *testing.T) {
	t.Run("should create available partner without workload", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "+91 90000 00000")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.IsAvailable())
		assert.Zero(t, p.ActiveDeliveries())
		assert.Nil(t, p.LastAssignedAt())
		assert.Nil(t, p.Location())
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		_, err := partner.NewDeliveryPartner(kernel.UUID{}, " ", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, partner.ErrNameIsRequired)
		assert.ErrorIs(t, err, partner.ErrPhoneIsRequired)
	})
}

func TestRestoreDeliveryPartner(t *testing.T) {
	loc, err := kernel.NewLocation(12.97, 77.59)
	require.NoError(t, err)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should restore derived workload and location", func(t *testing.T) {
		p, err := partner.RestoreDeliveryPartner(kernel.NewUUID(), "Ravi", "1", false, 3, &loc, &at)

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
		assert.Equal(t, 3, p.ActiveDeliveries())
		require.NotNil(t, p.Location())
		assert.InDelta(t, 12.97, p.Location().Latitude(), 1e-9)
		assert.Equal(t, at, *p.LastAssignedAt())
	})

	t.Run("should reject negative workload", func(t *testing.T) {
		_, err := partner.RestoreDeliveryPartner(kernel.NewUUID(), "Ravi", "1", true, -1, nil, nil)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDeliveryPartner_TakeAndRelease(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("should count workload and stamp assignment", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "1")
		require.NoError(t, err)

		require.NoError(t, p.TakeOrder(at))
		require.NoError(t, p.TakeOrder(at.Add(time.Minute)))

		assert.Equal(t, 2, p.ActiveDeliveries())
		assert.Equal(t, at.Add(time.Minute), *p.LastAssignedAt())

		require.NoError(t, p.ReleaseOrder())
		assert.Equal(t, 1, p.ActiveDeliveries())
	})

	t.Run("should refuse work when unavailable", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "1")
		require.NoError(t, err)
		p.SetAvailability(false)

		err = p.TakeOrder(at)

		require.ErrorIs(t, err, partner.ErrPartnerUnavailable)
		assert.Zero(t, p.ActiveDeliveries())
		assert.Nil(t, p.LastAssignedAt())
	})

	t.Run("should still release when unavailable", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "1")
		require.NoError(t, err)
		require.NoError(t, p.TakeOrder(at))
		p.SetAvailability(false)

		require.NoError(t, p.ReleaseOrder())
		assert.Zero(t, p.ActiveDeliveries())
	})

	t.Run("should not go below zero", func(t *testing.T) {
		p, err := partner.NewDeliveryPartner(kernel.NewUUID(), "Ravi", "1")
		require.NoError(t, err)

		assert.ErrorIs(t, p.ReleaseOrder(), errs.ErrValueIsOutOfRange)
		assert.Zero(t, p.ActiveDeliveries())
	})
}

func TestDeliveryPartner_Validate(t *testing.T) {
	var p *partner.DeliveryPartner
	assert.ErrorIs(t, p.Validate(), partner.ErrPartnerIsNotConstructed)
	assert.ErrorIs(t, (&partner.DeliveryPartner{}).Validate(), partner.ErrPartnerIsNotConstructed)
}
