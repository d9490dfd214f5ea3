package role

import (
	"fmt"

	"hireflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a job role.
//
// State transitions:
//
//	Draft ──> Open ──> Closed
//
// Only Open roles accept new candidates. Closed is a final state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status while the role is being prepared.
	Draft

	// Open indicates the role is published and accepting candidates.
	Open

	// Closed indicates hiring for the role has finished.
	Closed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Draft:   "Draft",
		Open:    "Open",
		Closed:  "Closed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:  "Draft",
		Open:   "Open",
		Closed: "Closed",
	}
}

// Validate checks if the Status value is one of Draft, Open, or Closed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a human-readable status name. Only Draft, Open,
// and Closed parse successfully.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// ValidateAcceptsCandidates checks whether new candidates may be attached
// to a role in this status. Only Open roles accept candidates.
func (s Status) ValidateAcceptsCandidates() error {
	if s != Open {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s role does not accept candidates", s.String()))
	}
	return nil
}

// Open transitions the status to Open. Only Draft roles can be opened.
func (s Status) Open() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to open", s.String()))
	}
	return Open, nil
}

// Close transitions the status to Closed. Only Open roles can be closed.
func (s Status) Close() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to close", s.String()))
	}
	return Closed, nil
}
