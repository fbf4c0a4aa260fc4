package booking_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreatedAt = time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

func newTestBooking(t *testing.T, kind booking.Kind) *booking.Booking {
	t.Helper()

	number, err := booking.NewNumber(testCreatedAt, 0)
	require.NoError(t, err)

	point, err := kernel.NewGeoPoint(25.2048, 55.2708)
	require.NoError(t, err)
	address, err := booking.NewAddress("Home", "Villa 12, Palm Street", "Marina", &point)
	require.NoError(t, err)

	var date *time.Time
	var tod *kernel.TimeOfDay
	if kind == booking.KindScheduled {
		d := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
		tt, err := kernel.NewTimeOfDay(14, 0)
		require.NoError(t, err)
		date, tod = &d, &tt
	}

	b, err := booking.NewBooking(kernel.NewUUID(), number, kernel.NewUUID(),
		address, kind, date, tod, 20000, 1000, 19000, "SYSTEM:system", testCreatedAt)
	require.NoError(t, err)
	return b
}

func TestNewNumber(t *testing.T) {
	t.Run("daily_sequence", func(t *testing.T) {
		for i, want := range []string{"BOOK-20260829-001", "BOOK-20260829-002", "BOOK-20260829-003"} {
			n, err := booking.NewNumber(testCreatedAt, int64(i))
			require.NoError(t, err)
			assert.Equal(t, want, n.String())
		}
	})

	t.Run("restarts_next_day", func(t *testing.T) {
		n, err := booking.NewNumber(testCreatedAt.AddDate(0, 0, 1), 0)
		require.NoError(t, err)
		assert.Equal(t, "BOOK-20260830-001", n.String())
	})

	t.Run("uses_utc_date", func(t *testing.T) {
		gulf := time.FixedZone("GST", 4*3600)
		// 02:30 on the 30th locally is still the 29th in UTC.
		n, err := booking.NewNumber(time.Date(2026, 8, 30, 2, 30, 0, 0, gulf), 7)
		require.NoError(t, err)
		assert.Equal(t, "BOOK-20260829-008", n.String())
	})

	t.Run("from_string_validates_shape", func(t *testing.T) {
		_, err := booking.NumberFromString("BOOK-20260829-001")
		require.NoError(t, err)

		for _, bad := range []string{"", "BOOK-2026-001", "ORD-20260829-001", "BOOK-20260829-1"} {
			_, err := booking.NumberFromString(bad)
			require.Error(t, err, bad)
		}
	})
}

func TestNewBooking(t *testing.T) {
	t.Run("starts_pending_with_creation_logged", func(t *testing.T) {
		b := newTestBooking(t, booking.KindASAP)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.Zero(t, b.RescheduleCount())

		actions := b.Actions()
		require.Len(t, actions, 1)
		assert.Equal(t, booking.ActionCreated, actions[0].Type())
	})

	t.Run("scheduled_kind_requires_slot", func(t *testing.T) {
		number, _ := booking.NewNumber(testCreatedAt, 0)
		address, err := booking.NewAddress("", "Villa 12", "", nil)
		require.NoError(t, err)

		_, err = booking.NewBooking(kernel.NewUUID(), number, kernel.NewUUID(),
			address, booking.KindScheduled, nil, nil, 0, 0, 0, "SYSTEM:system", testCreatedAt)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestBooking_ApplyDerivedStatus(t *testing.T) {
	t.Run("change_is_applied_and_logged", func(t *testing.T) {
		b := newTestBooking(t, booking.KindASAP)

		changed, err := b.ApplyDerivedStatus(booking.StatusAssigned, "SYSTEM:system", testCreatedAt)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusAssigned, b.Status())

		actions := b.Actions()
		require.Len(t, actions, 2)
		assert.Equal(t, booking.ActionStatusSynced, actions[1].Type())
		assert.Equal(t, "status PENDING -> ASSIGNED", actions[1].Detail())
	})

	t.Run("same_status_is_a_noop", func(t *testing.T) {
		b := newTestBooking(t, booking.KindASAP)

		changed, err := b.ApplyDerivedStatus(booking.StatusPending, "SYSTEM:system", testCreatedAt)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Len(t, b.Actions(), 1)
	})
}

func TestBooking_ForceCancel(t *testing.T) {
	b := newTestBooking(t, booking.KindASAP)

	require.NoError(t, b.ForceCancel("ADMIN:a1", testCreatedAt, "customer no-show"))
	assert.Equal(t, booking.StatusCancelled, b.Status())

	err := b.ForceCancel("ADMIN:a1", testCreatedAt, "again")
	require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
}

func TestBooking_Reschedule(t *testing.T) {
	t.Run("moves_slot_and_counts", func(t *testing.T) {
		b := newTestBooking(t, booking.KindScheduled)
		newDate := time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC)
		newTime, _ := kernel.NewTimeOfDay(16, 30)

		require.NoError(t, b.Reschedule(newDate, newTime, "CUSTOMER:c1", testCreatedAt))

		assert.Equal(t, 1, b.RescheduleCount())
		require.NotNil(t, b.ScheduledDate())
		assert.Equal(t, newDate, *b.ScheduledDate())
		require.NotNil(t, b.ScheduledTime())
		assert.Equal(t, "16:30", b.ScheduledTime().String())
	})

	t.Run("asap_booking_has_no_slot", func(t *testing.T) {
		b := newTestBooking(t, booking.KindASAP)
		newTime, _ := kernel.NewTimeOfDay(16, 30)

		err := b.Reschedule(testCreatedAt, newTime, "CUSTOMER:c1", testCreatedAt)
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}

func TestBooking_LinkAlert(t *testing.T) {
	t.Run("sos_booking_links_once", func(t *testing.T) {
		b := newTestBooking(t, booking.KindSOS)
		require.Nil(t, b.AlertID())

		alertID := kernel.NewUUID()
		require.NoError(t, b.LinkAlert(alertID))
		require.NotNil(t, b.AlertID())
		assert.True(t, alertID.IsEqual(*b.AlertID()))

		err := b.LinkAlert(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})

	t.Run("non_sos_booking_rejected", func(t *testing.T) {
		b := newTestBooking(t, booking.KindASAP)
		err := b.LinkAlert(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
	})
}
