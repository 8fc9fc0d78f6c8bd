// Package clock provides the wall clock used by the use cases.
package clock

import (
	"time"

	"comanda/internal/domain/service"
)

type utcClock struct{}

// New returns a Clock reporting the current time in UTC.
func New() service.Clock {
	return utcClock{}
}

func (utcClock) Now() time.Time {
	return time.Now().UTC()
}
