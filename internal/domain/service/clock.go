package service

import "time"

// Clock supplies the current time so time-dependent rules can be tested.
type Clock interface {
	Now() time.Time
}
