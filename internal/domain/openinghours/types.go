package openinghours

type SpanState string

const (
	StateOpen       SpanState = "open"
	StateClosed     SpanState = "closed"
	StateRestricted SpanState = "reservable_with_restriction"
)

func (s SpanState) String() string {
	return string(s)
}

func (s SpanState) IsValid() bool {
	switch s {
	case StateOpen, StateClosed, StateRestricted:
		return true
	default:
		return false
	}
}

// Bookable reports whether a span in this state can host reservations.
func (s SpanState) Bookable() bool {
	return s == StateOpen || s == StateRestricted
}
