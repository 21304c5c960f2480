package reservation

// Collides reports whether the candidate overlaps any existing slot.
// Half-open semantics: [a1,a2) and [b1,b2) overlap iff a1 < b2 && b1 < a2,
// so a candidate starting exactly when another ends does not collide.
//
// The check is state-agnostic; callers filter to blocking slots first,
// typically via BlockingSlots.
func Collides(existing []TimeSlot, candidate TimeSlot) bool {
	for _, slot := range existing {
		if candidate.Overlaps(slot) {
			return true
		}
	}
	return false
}

// BlockingSlots extracts the slots of reservations that still occupy their
// interval, dropping cancelled and denied ones.
func BlockingSlots(reservations []*Reservation) []TimeSlot {
	slots := make([]TimeSlot, 0, len(reservations))
	for _, r := range reservations {
		if r.Blocks() {
			slots = append(slots, r.Slot())
		}
	}
	return slots
}
