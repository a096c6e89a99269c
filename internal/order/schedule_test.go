package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_DeliveryDate(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Pinned offsets", func(t *testing.T) {
		for offset := 0; offset < deliveryDaySpan; offset++ {
			s := &Scheduler{
				Now:  func() time.Time { return now },
				Intn: func(int) int { return offset },
			}

			got := s.DeliveryDate()
			assert.Equal(t, now.AddDate(0, 0, minDeliveryDays+offset), got)
		}
	})

	t.Run("Default stays within three to seven days", func(t *testing.T) {
		s := NewScheduler()
		s.Now = func() time.Time { return now }

		for i := 0; i < 50; i++ {
			got := s.DeliveryDate()
			assert.False(t, got.Before(now.AddDate(0, 0, 3)), "date %s too early", got)
			assert.False(t, got.After(now.AddDate(0, 0, 7)), "date %s too late", got)
		}
	})
}
