package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command,
// isolating concurrent operations from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction boundary. The caller manages
// the lifecycle explicitly: Begin, then repository work, then Commit or
// Rollback. Repositories obtained from the unit of work are bound to its
// transaction, so the status write and both audit inserts of a transition
// commit or roll back together.
type UnitOfWork interface {
	// Begin starts a new database transaction. Calling Begin on an already
	// started unit of work is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// StatusFlowRepository returns a StatusFlowRepository bound to the current transaction.
	StatusFlowRepository() StatusFlowRepository
}
