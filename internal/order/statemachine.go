package order

// Legal status transitions. PENDING is the initial state. PAID is
// strictly terminal. FAILED may still move to PAID so a customer can
// complete payment against the same order number after a failed
// verification attempt.
var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusPaid:   true,
		StatusFailed: true,
	},
	StatusFailed: {
		StatusPaid: true,
	},
	StatusPaid: {},
}

func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// IsRepeatConfirmation reports whether a transition request is a
// duplicate delivery of an already-applied confirmation: same target
// status, same payment reference. Such repeats are no-op successes.
func IsRepeatConfirmation(o *Order, to Status, paymentRef string) bool {
	if o.Status != to || o.PaymentRef == nil {
		return false
	}
	return *o.PaymentRef == paymentRef
}
