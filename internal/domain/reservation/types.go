package reservation

type State string

const (
	StateCreated           State = "created"
	StateConfirmed         State = "confirmed"
	StateCancelled         State = "cancelled"
	StateDenied            State = "denied"
	StateRequiresHandling  State = "requires_handling"
	StateWaitingForPayment State = "waiting_for_payment"
)

func (s State) String() string {
	return string(s)
}

func (s State) IsValid() bool {
	switch s {
	case StateCreated, StateConfirmed, StateCancelled, StateDenied,
		StateRequiresHandling, StateWaitingForPayment:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this state occupies its slot.
// Cancelled and denied reservations free the slot for others.
func (s State) Blocks() bool {
	switch s {
	case StateCancelled, StateDenied:
		return false
	default:
		return true
	}
}

// Cancellable reports whether the reservee may still cancel from this state.
func (s State) Cancellable() bool {
	switch s {
	case StateCreated, StateConfirmed, StateWaitingForPayment:
		return true
	default:
		return false
	}
}
