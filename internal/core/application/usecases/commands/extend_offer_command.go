package commands

import (
	"errors"
	"time"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/guard"
)

var (
	ErrExtendOfferCommandIsNotConstructed = errors.New(
		"ExtendOfferCommand must be created via NewExtendOfferCommand constructor",
	)
	ErrAmountIsInvalid     = errors.New("amount must be greater than 0")
	ErrCurrencyIsRequired  = errors.New("currency is required")
	ErrExpiresAtIsRequired = errors.New("expiresAt is required")
)

// ExtendOfferCommand represents a request to extend a compensation offer to
// a candidate. The generated OfferID can be read back after construction.
type ExtendOfferCommand struct { //nolint:recvcheck //using for validation
	offerID     kernel.UUID
	candidateID kernel.UUID
	amount      int64
	currency    string
	expiresAt   time.Time

	guard guard.ConstructorGuard
}

// NewExtendOfferCommand creates a command to extend an offer. The amount is
// in minor currency units; expiresAt is the candidate's response deadline.
func NewExtendOfferCommand(
	candidateID kernel.UUID, amount int64, currency string, expiresAt time.Time,
) (ExtendOfferCommand, error) {
	command := ExtendOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOfferID(kernel.NewUUID()),
		command.setCandidateID(candidateID),
		command.setAmount(amount),
		command.setCurrency(currency),
		command.setExpiresAt(expiresAt),
	); err != nil {
		return ExtendOfferCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExtendOfferCommand) Validate() error {
	return c.guard.Validate(ErrExtendOfferCommandIsNotConstructed)
}

// OfferID returns the generated offer ID.
func (c ExtendOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// CandidateID returns the receiving candidate.
func (c ExtendOfferCommand) CandidateID() kernel.UUID {
	return c.candidateID
}

// Amount returns the offered compensation in minor currency units.
func (c ExtendOfferCommand) Amount() int64 {
	return c.amount
}

// Currency returns the ISO currency code of the amount.
func (c ExtendOfferCommand) Currency() string {
	return c.currency
}

// ExpiresAt returns the response deadline.
func (c ExtendOfferCommand) ExpiresAt() time.Time {
	return c.expiresAt
}

func (c *ExtendOfferCommand) setOfferID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.offerID = id
	return nil
}

func (c *ExtendOfferCommand) setCandidateID(candidateID kernel.UUID) error {
	if err := candidateID.Validate(); err != nil {
		return err
	}

	c.candidateID = candidateID
	return nil
}

func (c *ExtendOfferCommand) setAmount(amount int64) error {
	if amount <= 0 {
		return ErrAmountIsInvalid
	}

	c.amount = amount
	return nil
}

func (c *ExtendOfferCommand) setCurrency(currency string) error {
	if currency == "" {
		return ErrCurrencyIsRequired
	}

	c.currency = currency
	return nil
}

func (c *ExtendOfferCommand) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return ErrExpiresAtIsRequired
	}

	c.expiresAt = expiresAt
	return nil
}
