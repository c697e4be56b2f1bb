package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DateLayout is the day format used in keys and query parameters.
const DateLayout = "2006-01-02"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

type DailyStats struct {
	RestaurantID int             `json:"restaurant_id"`
	Date         string          `json:"date"`
	Created      int64           `json:"created"`
	Completed    int64           `json:"completed"`
	Cancelled    int64           `json:"cancelled"`
	Revenue      decimal.Decimal `json:"revenue"`
}

type RestaurantScore struct {
	RestaurantID int     `json:"restaurant_id"`
	Completed    float64 `json:"completed"`
}
