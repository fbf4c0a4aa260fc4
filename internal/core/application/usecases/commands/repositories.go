// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"booking/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// OrderItemRepoFactory provides access to the order-item repository within a transaction.
	OrderItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// RegionRepoFactory provides access to the region repository within a transaction.
	RegionRepoFactory interface {
		RegionRepository() ports.RegionRepository
	}

	// ServiceRepoFactory provides access to the catalog repository within a transaction.
	ServiceRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
	}

	// AlertRepoFactory provides access to the SOS-alert repository within a transaction.
	AlertRepoFactory interface {
		AlertRepository() ports.AlertRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// BookingUoW manages transactions for booking-side operations: the
	// booking itself, its items, the catalog snapshot sources and the
	// optional SOS alert.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		OrderItemRepoFactory
		ServiceRepoFactory
		AlertRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// AssignmentUoW manages transactions for the assignment pass, which
	// touches bookings, items, partners, regions and the catalog.
	AssignmentUoW interface {
		TxManager
		BookingRepoFactory
		OrderItemRepoFactory
		PartnerRepoFactory
		RegionRepoFactory
		ServiceRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// SyncUoW manages transactions for status synchronization: the booking,
	// its items and the optional alert mirror.
	SyncUoW interface {
		TxManager
		BookingRepoFactory
		OrderItemRepoFactory
		AlertRepoFactory
	}

	// SyncUoWFactory creates new synchronization unit of work instances.
	SyncUoWFactory interface {
		Create() SyncUoW
	}

	// OnboardingUoW manages the all-or-nothing pair of a partner profile and
	// its login account. Both writes commit together or neither persists.
	OnboardingUoW interface {
		TxManager
		PartnerRepoFactory
		AccountRepoFactory
	}

	// OnboardingUoWFactory creates new onboarding unit of work instances.
	OnboardingUoWFactory interface {
		Create() OnboardingUoW
	}
)
