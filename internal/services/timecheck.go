package services

import (
	"time"

	"travel-route-service/internal/domain"
)

// Pure schedule predicates. These act as filters: a failing chain drops the
// candidate entirely, it is never auto-repaired.

// A half-open [Start, End) time range occupied by one activity in a day plan.
type TimeSlot struct {
	Start time.Time
	End   time.Time
}

// LegsConnect reports whether leg a's arrival leaves at least minTransfer
// before leg b's departure. The boundary is inclusive: a gap exactly equal
// to minTransfer connects.
func LegsConnect(a, b domain.TransportOption, minTransfer time.Duration) bool {
	return !a.ArriveAt.Add(minTransfer).After(b.DepartAt)
}

// ChainValid reports whether every consecutive pair in the ordered leg
// sequence connects. Sequences of zero or one leg are trivially valid.
func ChainValid(legs []domain.TransportOption, minTransfer time.Duration) bool {
	for i := 0; i+1 < len(legs); i++ {
		if !LegsConnect(legs[i], legs[i+1], minTransfer) {
			return false
		}
	}
	return true
}

// SlotsOverlap reports whether two half-open time ranges intersect.
// Back-to-back slots (one ending exactly when the other starts) do not
// overlap.
func SlotsOverlap(a, b TimeSlot) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
