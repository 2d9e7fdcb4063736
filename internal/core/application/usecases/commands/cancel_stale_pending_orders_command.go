package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	ErrCancelStalePendingOrdersCommandIsNotConstructed = errors.New(
		"CancelStalePendingOrdersCommand must be created via NewCancelStalePendingOrdersCommand constructor",
	)
)

// CancelStalePendingOrdersCommand cancels every Pending order that was placed
// more than ttl before now. It is issued periodically by the stale orders job.
//
// Example:
//
//	cmd, _ := NewCancelStalePendingOrdersCommand(24*time.Hour, time.Now())
//	canceled, err := handler.Handle(ctx, cmd)
//	if err == nil {
//	    log.Printf("canceled %d abandoned orders", canceled)
//	}
type CancelStalePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration
	now time.Time

	guard guard.ConstructorGuard
}

// NewCancelStalePendingOrdersCommand creates the command. ttl must be positive.
func NewCancelStalePendingOrdersCommand(ttl time.Duration, now time.Time) (CancelStalePendingOrdersCommand, error) {
	cmd := CancelStalePendingOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTTL(ttl); err != nil {
		return CancelStalePendingOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStalePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePendingOrdersCommandIsNotConstructed)
}

// Cutoff returns the placement time before which Pending orders are stale.
func (c CancelStalePendingOrdersCommand) Cutoff() time.Time {
	return c.now.Add(-c.ttl)
}

func (c *CancelStalePendingOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	c.ttl = ttl
	return nil
}
