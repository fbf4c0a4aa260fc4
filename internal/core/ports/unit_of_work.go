package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// BookingRepository returns a BookingRepository bound to the current
	// transaction.
	BookingRepository() BookingRepository

	// OrderItemRepository returns an OrderItemRepository bound to the current
	// transaction.
	OrderItemRepository() OrderItemRepository

	// PartnerRepository returns a PartnerRepository bound to the current
	// transaction.
	PartnerRepository() PartnerRepository

	// RegionRepository returns a RegionRepository bound to the current
	// transaction.
	RegionRepository() RegionRepository

	// ServiceRepository returns a ServiceRepository bound to the current
	// transaction.
	ServiceRepository() ServiceRepository

	// AlertRepository returns an AlertRepository bound to the current
	// transaction.
	AlertRepository() AlertRepository

	// AccountRepository returns an AccountRepository bound to the current
	// transaction.
	AccountRepository() AccountRepository
}
