// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business operation: repositories obtained
// from it run inside one database transaction, so a checkout that writes the
// booking, its items and an SOS alert either lands whole or not at all.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.BookingRepository().Add(ctx, aggregate); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each Create() call returns a fresh instance; concurrent operations must not
// share one.
package postgres

import (
	"context"

	"booking/internal/adapters/out/postgres/accountrepo"
	"booking/internal/adapters/out/postgres/alertrepo"
	"booking/internal/adapters/out/postgres/bookingrepo"
	"booking/internal/adapters/out/postgres/itemrepo"
	"booking/internal/adapters/out/postgres/partnerrepo"
	"booking/internal/adapters/out/postgres/regionrepo"
	"booking/internal/adapters/out/postgres/servicerepo"
	"booking/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one shared GORM
// connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the repositories
// of a single business operation. Begin is idempotent; Commit and Rollback
// close the transaction and return gorm.ErrInvalidTransaction when none is
// open.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling Begin on an already-started unit of
// work is a no-op, not a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}
	return nil
}

// Commit finalizes the transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// conn returns the active transaction, or the bare connection when the unit
// of work was not begun.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// BookingRepository returns a booking repository bound to the current
// transaction.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn())
}

// OrderItemRepository returns an order-item repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderItemRepository() ports.OrderItemRepository {
	return itemrepo.NewGormOrderItemRepository(uow.conn())
}

// PartnerRepository returns a partner repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn())
}

// RegionRepository returns a region repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RegionRepository() ports.RegionRepository {
	return regionrepo.NewGormRegionRepository(uow.conn())
}

// ServiceRepository returns a catalog repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ServiceRepository() ports.ServiceRepository {
	return servicerepo.NewGormServiceRepository(uow.conn())
}

// AlertRepository returns an SOS-alert repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AlertRepository() ports.AlertRepository {
	return alertrepo.NewGormAlertRepository(uow.conn())
}

// AccountRepository returns an account repository bound to the current
// transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}
