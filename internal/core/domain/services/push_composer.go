package services

import (
	"fmt"
	"time"

	"booking/internal/core/domain/model/booking"
	"booking/internal/core/domain/model/orderitem"
)

// Push sound, channel and priority selectors understood by the notification
// adapter.
const (
	SoundDefault = "default"
	SoundSOS     = "sos_alarm"
	SoundNone    = ""

	ChannelJobs = "jobs"
	ChannelSOS  = "sos"

	PriorityNormal = "normal"
	PriorityHigh   = "high"
)

// PushMessage is the structured payload handed to the notification sender.
type PushMessage struct {
	Token    string
	Title    string
	Body     string
	Data     map[string]string
	Sound    string
	Channel  string
	Priority string
}

// ComposeAssignmentPush builds the notification sent to a partner who just
// won an order item.
//
// SOS jobs always get the alarm sound and high priority. Same-day ordinary
// jobs are delivered silently so a partner mid-job is not startled by routine
// work; future jobs get the default sound.
func ComposeAssignmentPush(b *booking.Booking, item *orderitem.OrderItem, token string, now time.Time) PushMessage {
	msg := PushMessage{
		Token: token,
		Body:  fmt.Sprintf("%s — booking %s", item.ServiceName(), b.Number()),
		Data: map[string]string{
			"bookingId": b.ID().String(),
			"itemId":    item.ID().String(),
			"screen":    "job_details",
			"type":      "job_assigned",
		},
		Sound:    SoundDefault,
		Channel:  ChannelJobs,
		Priority: PriorityNormal,
	}

	if b.IsSOS() {
		msg.Title = "SOS job assigned"
		msg.Data["type"] = "sos_assigned"
		msg.Sound = SoundSOS
		msg.Channel = ChannelSOS
		msg.Priority = PriorityHigh
		return msg
	}

	msg.Title = "New job assigned"
	if isSameDay(b, now) {
		msg.Sound = SoundNone
	}
	return msg
}

func isSameDay(b *booking.Booking, now time.Time) bool {
	date := b.ScheduledDate()
	if date == nil {
		// ASAP work is for today.
		return true
	}
	y1, m1, d1 := date.UTC().Date()
	y2, m2, d2 := now.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
