package commands

import (
	"errors"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

// Candidate decisions on an extended offer.
const (
	OfferAccepted = "accepted"
	OfferDeclined = "declined"
)

var (
	ErrRespondToOfferCommandIsNotConstructed = errors.New(
		"RespondToOfferCommand must be created via NewRespondToOfferCommand constructor",
	)
	ErrDecisionIsInvalid = errors.New(`decision must be "accepted" or "declined"`)
)

// RespondToOfferCommand represents a candidate's answer to a sent offer.
type RespondToOfferCommand struct { //nolint:recvcheck //using for validation
	offerID  kernel.UUID
	decision string

	guard guard.ConstructorGuard
}

// NewRespondToOfferCommand creates a command recording the candidate's
// decision on an offer.
func NewRespondToOfferCommand(offerID kernel.UUID, decision string) (RespondToOfferCommand, error) {
	command := RespondToOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOfferID(offerID),
		command.setDecision(decision),
	); err != nil {
		return RespondToOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondToOfferCommand) Validate() error {
	return c.guard.Validate(ErrRespondToOfferCommandIsNotConstructed)
}

// OfferID returns the offer being answered.
func (c RespondToOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// Decision returns OfferAccepted or OfferDeclined.
func (c RespondToOfferCommand) Decision() string {
	return c.decision
}

// Accepted reports whether the candidate took the offer.
func (c RespondToOfferCommand) Accepted() bool {
	return c.decision == OfferAccepted
}

func (c *RespondToOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *RespondToOfferCommand) setDecision(decision string) error {
	if decision != OfferAccepted && decision != OfferDeclined {
		return ErrDecisionIsInvalid
	}

	c.decision = decision
	return nil
}
