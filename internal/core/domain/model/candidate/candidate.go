package candidate

import (
	"errors"
	"strings"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"
)

var (
	// ErrCandidateIsNotConstructed is returned when a Candidate instance was not
	// created through the NewCandidate factory method.
	ErrCandidateIsNotConstructed = errors.New("Candidate must be created via NewCandidate constructor")
)

// Candidate is the aggregate root for one person's application to one role.
// It owns the pipeline stage and enforces all stage transitions.
type Candidate struct {
	id     kernel.UUID
	roleID kernel.UUID
	name   string
	email  string
	stage  Stage

	isConstructed bool
}

// NewCandidate creates a Candidate in Applied stage, attached to a role.
// Name and a plausible email address are required.
func NewCandidate(id, roleID kernel.UUID, name, email string) (*Candidate, error) {
	candidate := &Candidate{
		stage:         Applied,
		isConstructed: true,
	}

	if err := errors.Join(
		candidate.setID(id),
		candidate.setRoleID(roleID),
		candidate.setName(name),
		candidate.setEmail(email),
	); err != nil {
		return nil, err
	}

	return candidate, nil
}

// RestoreCandidate reconstructs a Candidate from persistence.
func RestoreCandidate(id, roleID kernel.UUID, name, email string, stage Stage) (*Candidate, error) {
	if err := stage.Validate(); err != nil {
		return nil, err
	}

	candidate, err := NewCandidate(id, roleID, name, email)
	if err != nil {
		return nil, err
	}
	candidate.stage = stage

	return candidate, nil
}

// Validate ensures the Candidate was properly constructed through NewCandidate.
func (c *Candidate) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCandidateIsNotConstructed
	}
	return nil
}

// IsEqual compares two candidates by their unique identifiers.
func (c *Candidate) IsEqual(other *Candidate) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the candidate's unique identifier.
func (c *Candidate) ID() kernel.UUID {
	return c.id
}

// RoleID returns the identifier of the role applied for.
func (c *Candidate) RoleID() kernel.UUID {
	return c.roleID
}

// Name returns the candidate's full name.
func (c *Candidate) Name() string {
	return c.name
}

// Email returns the candidate's contact email.
func (c *Candidate) Email() string {
	return c.email
}

// Stage returns the current pipeline stage.
func (c *Candidate) Stage() Stage {
	return c.stage
}

// Advance moves the candidate one step along the pipeline.
func (c *Candidate) Advance() error {
	stage, err := c.stage.Advance()
	if err != nil {
		return err
	}

	c.stage = stage
	return nil
}

// StartInterviewing marks the candidate as Interviewing. Candidates already
// in Interviewing stay there, so repeated interview scheduling is allowed.
func (c *Candidate) StartInterviewing() error {
	if err := c.stage.ValidateCanInterview(); err != nil {
		return err
	}

	c.stage = Interviewing
	return nil
}

// ReceiveOffer marks the candidate as Offered. Only Interviewing candidates
// can receive offers.
func (c *Candidate) ReceiveOffer() error {
	if c.stage != Interviewing {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid",
			errors.New(c.stage.String()+" is not a valid stage to receive an offer"))
	}

	c.stage = Offered
	return nil
}

// Reject ends the candidate's pipeline from the hiring side.
func (c *Candidate) Reject() error {
	stage, err := c.stage.Reject()
	if err != nil {
		return err
	}

	c.stage = stage
	return nil
}

// Withdraw ends the candidate's pipeline at the candidate's request.
func (c *Candidate) Withdraw() error {
	stage, err := c.stage.Withdraw()
	if err != nil {
		return err
	}

	c.stage = stage
	return nil
}

func (c *Candidate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *Candidate) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	c.roleID = roleID
	return nil
}

func (c *Candidate) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *Candidate) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}
