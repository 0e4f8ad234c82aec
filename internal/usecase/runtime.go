package usecase

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// IDGenerator returns a new unique identifier with the given prefix.
type IDGenerator func(prefix string) string

// DeliveryWindow returns the number of days between order and delivery.
type DeliveryWindow func() int

func SystemClock() time.Time {
	return time.Now().UTC()
}

func UUIDGenerator(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString())
}

// RandomDeliveryWindow draws uniformly from [minDays, maxDays].
func RandomDeliveryWindow(minDays, maxDays int) DeliveryWindow {
	if maxDays < minDays {
		minDays, maxDays = maxDays, minDays
	}
	return func() int {
		return minDays + rand.Intn(maxDays-minDays+1)
	}
}
