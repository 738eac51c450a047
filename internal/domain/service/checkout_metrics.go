package service

import (
	"github.com/shopspring/decimal"
)

// CheckoutOutcome labels the result of a checkout attempt
type CheckoutOutcome string

const (
	CheckoutSucceeded CheckoutOutcome = "success"
	CheckoutReplayed  CheckoutOutcome = "replayed"
	CheckoutRejected  CheckoutOutcome = "rejected"
	CheckoutFailed    CheckoutOutcome = "error"
)

// CheckoutRecorder observes checkout attempts
type CheckoutRecorder interface {
	// RecordCheckout counts one attempt and, on success, its amount
	RecordCheckout(outcome CheckoutOutcome, amount decimal.Decimal)
}

// CartRecorder observes cart mutations
type CartRecorder interface {
	// RecordCartOperation counts one cart operation by name and outcome
	RecordCartOperation(operation string, success bool)
}
