// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, begin a unit of
// work, perform repository writes, commit. A deferred rollback unwinds all
// writes when any step fails, so no transition ever commits partially.
package commands

import (
	"context"

	"ordermgmt/internal/core/ports"
)

// Unit of Work interfaces for command handlers. Kept as narrow compositions
// so each handler declares exactly the repositories it touches.
type (
	// TxManager handles the database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusFlowRepoFactory provides the audit repository within a transaction.
	StatusFlowRepoFactory interface {
		StatusFlowRepository() ports.StatusFlowRepository
	}

	// UoW manages transactions spanning the order row and its audit logs.
	// Every status-changing command needs both: the status write and the
	// audit inserts share one atomic boundary.
	UoW interface {
		TxManager
		OrderRepoFactory
		StatusFlowRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)
