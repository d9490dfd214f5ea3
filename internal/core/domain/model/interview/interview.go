package interview

import (
	"errors"
	"fmt"
	"time"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"
)

var (
	// ErrInterviewIsNotConstructed is returned when an Interview instance was
	// not created through the NewInterview factory method.
	ErrInterviewIsNotConstructed = errors.New("Interview must be created via NewInterview constructor")
)

// Kind classifies an interview within the hiring process.
type Kind string

const (
	PhoneScreen Kind = "phone_screen"
	Technical   Kind = "technical"
	Behavioral  Kind = "behavioral"
	Cultural    Kind = "cultural"
	Final       Kind = "final"
	Reference   Kind = "reference"
)

// Validate checks if the Kind is one of the known interview kinds.
func (k Kind) Validate() error {
	switch k {
	case PhoneScreen, Technical, Behavioral, Cultural, Final, Reference:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%q is not a valid interview kind", string(k)))
	}
}

// Status represents the lifecycle state of an interview.
//
//	Scheduled ──> Completed
//	     └──────> Canceled
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Scheduled is the initial status of a booked interview.
	Scheduled

	// Completed means the interview took place.
	Completed

	// Canceled means the interview will not take place.
	Canceled
)

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	switch s {
	case Scheduled, Completed, Canceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Scheduled:
		return "Scheduled"
	case Completed:
		return "Completed"
	case Canceled:
		return "Canceled"
	default:
		return "Unknown"
	}
}

// Interview is the aggregate for a single booked interview of a candidate.
type Interview struct {
	id          kernel.UUID
	candidateID kernel.UUID
	kind        Kind
	scheduledAt time.Time
	status      Status

	isConstructed bool
}

// NewInterview books an interview of the given kind for a candidate.
// scheduledAt must be set; kind must be one of the known interview kinds.
func NewInterview(id, candidateID kernel.UUID, kind Kind, scheduledAt time.Time) (*Interview, error) {
	iv := &Interview{
		status:        Scheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		iv.setID(id),
		iv.setCandidateID(candidateID),
		iv.setKind(kind),
		iv.setScheduledAt(scheduledAt),
	); err != nil {
		return nil, err
	}

	return iv, nil
}

// RestoreInterview reconstructs an Interview from persistence.
func RestoreInterview(id, candidateID kernel.UUID, kind Kind, scheduledAt time.Time, status Status) (*Interview, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	iv, err := NewInterview(id, candidateID, kind, scheduledAt)
	if err != nil {
		return nil, err
	}
	iv.status = status

	return iv, nil
}

// Validate ensures the Interview was properly constructed through NewInterview.
func (i *Interview) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInterviewIsNotConstructed
	}
	return nil
}

// ID returns the interview's unique identifier.
func (i *Interview) ID() kernel.UUID {
	return i.id
}

// CandidateID returns the interviewed candidate's identifier.
func (i *Interview) CandidateID() kernel.UUID {
	return i.candidateID
}

// Kind returns the interview classification.
func (i *Interview) Kind() Kind {
	return i.kind
}

// ScheduledAt returns the booked time.
func (i *Interview) ScheduledAt() time.Time {
	return i.scheduledAt
}

// Status returns the current lifecycle status.
func (i *Interview) Status() Status {
	return i.status
}

// Complete marks a scheduled interview as having taken place.
func (i *Interview) Complete() error {
	if i.status != Scheduled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to complete", i.status.String()))
	}

	i.status = Completed
	return nil
}

// Cancel marks a scheduled interview as canceled.
func (i *Interview) Cancel() error {
	if i.status != Scheduled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", i.status.String()))
	}

	i.status = Canceled
	return nil
}

func (i *Interview) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

func (i *Interview) setCandidateID(candidateID kernel.UUID) error {
	if err := candidateID.Validate(); err != nil {
		return err
	}

	i.candidateID = candidateID
	return nil
}

func (i *Interview) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	i.kind = kind
	return nil
}

func (i *Interview) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}

	i.scheduledAt = scheduledAt
	return nil
}
