package orders

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateTrackingNumber returns a customer-facing tracking number in the
// form TRACK-YYYYMMDD-NNNNNN. Uniqueness relies on date plus random digits;
// carriers assign their own numbers downstream.
func GenerateTrackingNumber() string {
	datePart := time.Now().UTC().Format("20060102")
	randomPart := 100000 + rand.Intn(900000)
	return fmt.Sprintf("TRACK-%s-%d", datePart, randomPart)
}
