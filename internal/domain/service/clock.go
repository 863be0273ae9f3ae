package service

import (
	"time"
)

// Clock supplies the current time for creation stamps and order ids.
type Clock interface {
	Now() time.Time
}
