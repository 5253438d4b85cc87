package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	(Unknown) ──Initialize──> Pending ──Pay──> Paid ──Approve──> Approved
//	                             │               │
//	                             │           InitCancel
//	                             │               v
//	                             └──Cancel──> Cancelled <──Cancel── Cancelling
//
// Approved and Cancelled are terminal. Unknown is the zero value and stands for an
// order that has not been initialized yet.
type Status int

const (
	// Unknown is the status of an order that has not been initialized.
	Unknown Status = iota

	// Pending is the status of an admitted order waiting for payment.
	Pending

	// Paid means the payment was confirmed and the restaurant has to approve.
	Paid

	// Approved means the restaurant accepted the order. Terminal.
	Approved

	// Cancelling means a paid order is being cancelled and the payment has to be
	// rolled back before the order can be cancelled.
	Cancelling

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Paid:       "Paid",
		Approved:   "Approved",
		Cancelling: "Cancelling",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus converts the persisted name of a status back to a Status.
// Unknown is not a valid persisted status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and values outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status, "Unknown" for values outside the enumeration.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is defined from s.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Cancelled
}

// Pay transitions Pending to Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return Unknown, s.transitionError("pay")
	}
	return Paid, nil
}

// Approve transitions Paid to Approved.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return Unknown, s.transitionError("approve")
	}
	return Approved, nil
}

// InitCancel transitions Paid to Cancelling.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return Unknown, s.transitionError("initCancel")
	}
	return Cancelling, nil
}

// Cancel transitions Pending or Cancelling to Cancelled. A paid order has to go
// through InitCancel first.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Cancelling {
		return Unknown, s.transitionError("cancel")
	}
	return Cancelled, nil
}

func (s Status) transitionError(operation string) error {
	return newDomainError(ErrInvalidState,
		"order is not in correct state for %s operation: status is %s", operation, s)
}
