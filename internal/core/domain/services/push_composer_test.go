package services_test

import (
	"testing"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/orderitem"
	"booking/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composerFixtures(t *testing.T, kind booking.Kind, date *time.Time) (*booking.Booking, *orderitem.OrderItem) {
	t.Helper()
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	number, err := booking.NewNumber(now, 0)
	require.NoError(t, err)
	address, err := booking.NewAddress("Home", "Villa 12", "", nil)
	require.NoError(t, err)

	var tod *kernel.TimeOfDay
	if kind == booking.KindScheduled {
		tt, err := kernel.NewTimeOfDay(14, 0)
		require.NoError(t, err)
		tod = &tt
	}

	b, err := booking.NewBooking(kernel.NewUUID(), number, kernel.NewUUID(),
		address, kind, date, tod, 10000, 0, 10000, "SYSTEM:system", now)
	require.NoError(t, err)

	item, err := orderitem.NewOrderItem(kernel.NewUUID(), b.ID(), kernel.NewUUID(),
		nil, "AC deep clean", "", 10000, 1, true)
	require.NoError(t, err)
	return b, item
}

func TestComposeAssignmentPush(t *testing.T) {
	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	t.Run("sos_gets_alarm_and_high_priority", func(t *testing.T) {
		b, item := composerFixtures(t, booking.KindSOS, nil)

		msg := services.ComposeAssignmentPush(b, item, "token-1", now)

		assert.Equal(t, services.SoundSOS, msg.Sound)
		assert.Equal(t, services.PriorityHigh, msg.Priority)
		assert.Equal(t, services.ChannelSOS, msg.Channel)
		assert.Equal(t, "sos_assigned", msg.Data["type"])
	})

	t.Run("same_day_job_is_silent", func(t *testing.T) {
		today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		b, item := composerFixtures(t, booking.KindScheduled, &today)

		msg := services.ComposeAssignmentPush(b, item, "token-1", now)

		assert.Equal(t, services.SoundNone, msg.Sound)
		assert.Equal(t, services.PriorityNormal, msg.Priority)
	})

	t.Run("future_job_gets_default_sound", func(t *testing.T) {
		nextWeek := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
		b, item := composerFixtures(t, booking.KindScheduled, &nextWeek)

		msg := services.ComposeAssignmentPush(b, item, "token-1", now)

		assert.Equal(t, services.SoundDefault, msg.Sound)
		assert.Equal(t, services.ChannelJobs, msg.Channel)
	})

	t.Run("payload_carries_navigation_data", func(t *testing.T) {
		b, item := composerFixtures(t, booking.KindASAP, nil)

		msg := services.ComposeAssignmentPush(b, item, "token-1", now)

		assert.Equal(t, b.ID().String(), msg.Data["bookingId"])
		assert.Equal(t, item.ID().String(), msg.Data["itemId"])
		assert.Equal(t, "job_details", msg.Data["screen"])
		// ASAP counts as same-day.
		assert.Equal(t, services.SoundNone, msg.Sound)
	})
}
