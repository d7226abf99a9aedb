package commands

import (
	"errors"
	"time"

	"ordermgmt/internal/pkg/guard"
)

var (
	ErrCancelStaleDraftsCommandIsNotConstructed = errors.New(
		"CancelStaleDraftsCommand must be created via NewCancelStaleDraftsCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("maxAge must be greater than 0")

	// ErrNoStaleDraftOrders signals an expected business outcome, not a
	// failure: the scheduled run found nothing to cancel.
	ErrNoStaleDraftOrders = errors.New("no stale draft orders found")
)

// StaleDraftRemark is recorded on automatically cancelled orders.
const StaleDraftRemark = "order cancelled automatically after draft expiry"

// CancelStaleDraftsCommand requests cancellation of every draft order older
// than the configured age. Issued by the background job, not by end users.
type CancelStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	maxAge   time.Duration
	operator string

	guard guard.ConstructorGuard
}

// NewCancelStaleDraftsCommand creates the command. operator identifies the
// automated actor (e.g. "scheduler") in the audit trail.
func NewCancelStaleDraftsCommand(maxAge time.Duration, operator string) (CancelStaleDraftsCommand, error) {
	cmd := CancelStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMaxAge(maxAge),
		cmd.setOperator(operator),
	); err != nil {
		return CancelStaleDraftsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleDraftsCommandIsNotConstructed)
}

// MaxAge returns the age beyond which a draft order is considered stale.
func (c CancelStaleDraftsCommand) MaxAge() time.Duration {
	return c.maxAge
}

// Operator returns the automated actor identity.
func (c CancelStaleDraftsCommand) Operator() string {
	return c.operator
}

func (c *CancelStaleDraftsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}
	c.maxAge = maxAge
	return nil
}

func (c *CancelStaleDraftsCommand) setOperator(operator string) error {
	if operator == "" {
		return ErrOperatorIsRequired
	}
	c.operator = operator
	return nil
}
