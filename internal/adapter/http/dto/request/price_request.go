package request

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidCheckIn = errors.New("check_in must be a YYYY-MM-DD date")

// PriceQuery is the query string of the price endpoints.
type PriceQuery struct {
	CheckIn string `form:"check_in" binding:"required"`
}

// ParseCheckIn reads the date as a calendar day in loc.
func (q PriceQuery) ParseCheckIn(loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(q.CheckIn), loc)
	if err != nil {
		return time.Time{}, ErrInvalidCheckIn
	}
	return d, nil
}
