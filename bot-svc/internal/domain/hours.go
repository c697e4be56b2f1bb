package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ClockTime is a time of day with minute resolution.
type ClockTime struct {
	Hour   int
	Minute int
}

func ParseClockTime(s string) (ClockTime, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, fmt.Errorf("%w: time of day %q", ErrValidation, s)
}

func ClockOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (c ClockTime) minutes() int { return c.Hour*60 + c.Minute }

func (c ClockTime) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

type RestaurantHours struct {
	RestaurantID   int             `json:"restaurant_id"`
	Name           string          `json:"name"`
	Start          ClockTime       `json:"start"`
	End            ClockTime       `json:"end"`
	DeliveryCost   decimal.Decimal `json:"delivery_cost"`
	ChatID         int64           `json:"chat_id"`
	DeliveryChatID int64           `json:"delivery_chat_id"`
	AdminChatID    int64           `json:"admin_chat_id"`
}

// IsOpen compares the time of day of now against the shift. An end before the
// start is a shift crossing midnight.
func (h RestaurantHours) IsOpen(now time.Time) bool {
	cur := ClockOf(now).minutes()
	start, end := h.Start.minutes(), h.End.minutes()
	if start <= end {
		return start <= cur && cur <= end
	}
	return cur >= start || cur <= end
}

// NextOpening describes when a closed restaurant opens again.
func (h RestaurantHours) NextOpening(now time.Time) string {
	if h.Start.minutes() <= h.End.minutes() && ClockOf(now).minutes() > h.End.minutes() {
		return "tomorrow " + h.Start.String()
	}
	return h.Start.String()
}
