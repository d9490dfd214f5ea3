package commands

import (
	"errors"
	"time"

	"hireflow/internal/pkg/guard"
)

var ErrExpireOffersCommandIsNotConstructed = errors.New(
	"ExpireOffersCommand must be created via NewExpireOffersCommand constructor",
)

// ExpireOffersCommand represents a request to expire all sent offers whose
// response deadline has passed. Issued periodically by the offer-expiry job.
type ExpireOffersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewExpireOffersCommand creates a command to expire overdue offers as of
// the given moment.
func NewExpireOffersCommand(now time.Time) (ExpireOffersCommand, error) {
	command := ExpireOffersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setNow(now); err != nil {
		return ExpireOffersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOffersCommand) Validate() error {
	return c.guard.Validate(ErrExpireOffersCommandIsNotConstructed)
}

// Now returns the moment deadlines are compared against.
func (c ExpireOffersCommand) Now() time.Time {
	return c.now
}

func (c *ExpireOffersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errors.New("now is required")
	}

	c.now = now
	return nil
}
