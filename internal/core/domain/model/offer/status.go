package offer

import (
	"fmt"

	"hireflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an offer.
//
// State transitions:
//
//	Draft ──> Sent ──┬──> Accepted
//	                 ├──> Declined
//	                 ├──> Expired
//	                 └──> Withdrawn
//
// Accepted, Declined, Expired, and Withdrawn are final states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status while the offer is being prepared.
	Draft

	// Sent indicates the offer has been delivered to the candidate.
	Sent

	// Accepted indicates the candidate accepted the offer.
	Accepted

	// Declined indicates the candidate declined the offer.
	Declined

	// Expired indicates the offer's deadline passed without a response.
	Expired

	// Withdrawn indicates the company withdrew the offer.
	Withdrawn
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Sent:      "Sent",
		Accepted:  "Accepted",
		Declined:  "Declined",
		Expired:   "Expired",
		Withdrawn: "Withdrawn",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the offer can change no further.
func (s Status) IsFinal() bool {
	return s == Accepted || s == Declined || s == Expired || s == Withdrawn
}

func (s Status) transitionFromSent(target Status, action string) (Status, error) {
	if s != Sent {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to %s", s.String(), action))
	}
	return target, nil
}

// Send transitions Draft -> Sent.
func (s Status) Send() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to send", s.String()))
	}
	return Sent, nil
}

// Accept transitions Sent -> Accepted.
func (s Status) Accept() (Status, error) {
	return s.transitionFromSent(Accepted, "accept")
}

// Decline transitions Sent -> Declined.
func (s Status) Decline() (Status, error) {
	return s.transitionFromSent(Declined, "decline")
}

// Expire transitions Sent -> Expired.
func (s Status) Expire() (Status, error) {
	return s.transitionFromSent(Expired, "expire")
}

// Withdraw transitions Sent -> Withdrawn.
func (s Status) Withdraw() (Status, error) {
	return s.transitionFromSent(Withdrawn, "withdraw")
}
