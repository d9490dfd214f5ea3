package candidate

import (
	"fmt"

	"hireflow/internal/pkg/errs"
)

// Stage represents a candidate's position in the hiring pipeline.
//
// Pipeline transitions:
//
//	Applied ──> Screening ──> Interviewing ──> Offered ──> Hired
//	    │            │              │              │
//	    └────────────┴──────┬───────┴──────────────┘
//	                        v
//	              Rejected / Withdrawn
//
// Hired, Rejected, and Withdrawn are terminal. Rejection is initiated by the
// hiring side, withdrawal by the candidate; both are allowed from any
// non-terminal stage.
type Stage int

const (
	// Unknown represents an invalid or undefined stage.
	Unknown Stage = iota

	// Applied is the initial stage after submitting an application.
	Applied

	// Screening means the application is under review.
	Screening

	// Interviewing means at least one interview has been scheduled.
	Interviewing

	// Offered means an offer has been extended to the candidate.
	Offered

	// Hired means the candidate accepted and the pipeline completed.
	Hired

	// Rejected means the hiring side ended the process.
	Rejected

	// Withdrawn means the candidate ended the process.
	Withdrawn
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		Unknown:      "Unknown",
		Applied:      "Applied",
		Screening:    "Screening",
		Interviewing: "Interviewing",
		Offered:      "Offered",
		Hired:        "Hired",
		Rejected:     "Rejected",
		Withdrawn:    "Withdrawn",
	}
}

// Validate checks if the Stage value is a valid pipeline stage.
func (s Stage) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%d is not a valid stage", s))
	}
	if _, ok := getStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StageFromString parses a human-readable stage name.
func StageFromString(s string) (Stage, error) {
	for stage, str := range getStageStrings() {
		if stage != Unknown && str == s {
			return stage, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
		fmt.Errorf("%q is not a valid stage", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Stage) IsTerminal() bool {
	return s == Hired || s == Rejected || s == Withdrawn
}

// Advance moves one step forward along the happy path:
// Applied -> Screening -> Interviewing -> Offered -> Hired.
func (s Stage) Advance() (Stage, error) {
	switch s {
	case Applied:
		return Screening, nil
	case Screening:
		return Interviewing, nil
	case Interviewing:
		return Offered, nil
	case Offered:
		return Hired, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%s cannot advance", s.String()))
	}
}

// ValidateCanInterview checks whether interviews may be scheduled at this
// stage. Screening and Interviewing candidates can be interviewed.
func (s Stage) ValidateCanInterview() error {
	if s != Screening && s != Interviewing {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%s is not a valid stage to interview", s.String()))
	}
	return nil
}

// Reject transitions to Rejected from any non-terminal stage.
func (s Stage) Reject() (Stage, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%s is not a valid stage to reject", s.String()))
	}
	return Rejected, nil
}

// Withdraw transitions to Withdrawn from any non-terminal stage.
func (s Stage) Withdraw() (Stage, error) {
	if s.IsTerminal() || s == Unknown {
		return 0, errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			fmt.Errorf("%s is not a valid stage to withdraw", s.String()))
	}
	return Withdrawn, nil
}
