package offer

import (
	"errors"
	"time"

	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through the NewOffer factory method.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")
)

// Offer is the aggregate for a compensation offer extended to a candidate
// for a role. An offer carries a response deadline; offers still Sent past
// the deadline are expired by a background job.
type Offer struct {
	id          kernel.UUID
	candidateID kernel.UUID
	roleID      kernel.UUID
	amount      int64
	currency    string
	status      Status
	expiresAt   time.Time

	isConstructed bool
}

// NewOffer creates an Offer in Draft status. The amount is the annual base
// compensation in minor units of the given currency; expiresAt is the
// response deadline and must be set.
func NewOffer(id, candidateID, roleID kernel.UUID, amount int64, currency string, expiresAt time.Time) (*Offer, error) {
	offer := &Offer{
		status:        Draft,
		isConstructed: true,
	}

	if err := errors.Join(
		offer.setID(id),
		offer.setCandidateID(candidateID),
		offer.setRoleID(roleID),
		offer.setAmount(amount),
		offer.setCurrency(currency),
		offer.setExpiresAt(expiresAt),
	); err != nil {
		return nil, err
	}

	return offer, nil
}

// RestoreOffer reconstructs an Offer from persistence.
func RestoreOffer(id, candidateID, roleID kernel.UUID, amount int64, currency string,
	status Status, expiresAt time.Time) (*Offer, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	offer, err := NewOffer(id, candidateID, roleID, amount, currency, expiresAt)
	if err != nil {
		return nil, err
	}
	offer.status = status

	return offer, nil
}

// Validate ensures the Offer was properly constructed through NewOffer.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// CandidateID returns the receiving candidate's identifier.
func (o *Offer) CandidateID() kernel.UUID {
	return o.candidateID
}

// RoleID returns the identifier of the offered role.
func (o *Offer) RoleID() kernel.UUID {
	return o.roleID
}

// Amount returns the offered compensation in minor currency units.
func (o *Offer) Amount() int64 {
	return o.amount
}

// Currency returns the ISO currency code of the amount.
func (o *Offer) Currency() string {
	return o.currency
}

// Status returns the current lifecycle status.
func (o *Offer) Status() Status {
	return o.status
}

// ExpiresAt returns the response deadline.
func (o *Offer) ExpiresAt() time.Time {
	return o.expiresAt
}

// IsOverdueAt reports whether the offer is still Sent past its deadline.
func (o *Offer) IsOverdueAt(now time.Time) bool {
	return o.status == Sent && now.After(o.expiresAt)
}

// Send delivers the offer to the candidate.
func (o *Offer) Send() error {
	return o.transition(o.status.Send)
}

// Accept records the candidate's acceptance.
func (o *Offer) Accept() error {
	return o.transition(o.status.Accept)
}

// Decline records the candidate's refusal.
func (o *Offer) Decline() error {
	return o.transition(o.status.Decline)
}

// Expire marks a sent offer as expired once its deadline has passed.
func (o *Offer) Expire() error {
	return o.transition(o.status.Expire)
}

// Withdraw retracts a sent offer.
func (o *Offer) Withdraw() error {
	return o.transition(o.status.Withdraw)
}

func (o *Offer) transition(fn func() (Status, error)) error {
	status, err := fn()
	if err != nil {
		return err
	}

	o.status = status
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

func (o *Offer) setCandidateID(candidateID kernel.UUID) error {
	if err := candidateID.Validate(); err != nil {
		return err
	}

	o.candidateID = candidateID
	return nil
}

func (o *Offer) setRoleID(roleID kernel.UUID) error {
	if err := roleID.Validate(); err != nil {
		return err
	}

	o.roleID = roleID
	return nil
}

func (o *Offer) setAmount(amount int64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidError("amount")
	}

	o.amount = amount
	return nil
}

func (o *Offer) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}

	o.currency = currency
	return nil
}

func (o *Offer) setExpiresAt(expiresAt time.Time) error {
	if expiresAt.IsZero() {
		return errs.NewValueIsRequiredError("expiresAt")
	}

	o.expiresAt = expiresAt
	return nil
}
