package cmd

import (
	"log/slog"

	"booking/internal/adapters/out/postgres"
	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
	"booking/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into command and query handlers. Outbound
// side effects (push, admin events) are optional: a nil sender or broadcaster
// simply disables that channel.
type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	settings    commands.Settings
	notifier    ports.NotificationSender
	broadcaster ports.AdminBroadcaster
	logger      *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.NotificationSender,
	broadcaster ports.AdminBroadcaster,
	logger *slog.Logger,
) CompositionRoot {
	policy := services.PolicyAlwaysAvailable
	if config.EnforceAvailability {
		policy = services.PolicyEnforceWindow
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		settings: commands.Settings{
			AvailabilityPolicy: policy,
			MaxOpenSOSAlerts:   config.MaxOpenSOSAlerts,
		},
		notifier:    notifier,
		broadcaster: broadcaster,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateSyncBookingStatusCommandHandler() commands.SyncBookingStatusCommandHandler {
	var f commands.SyncUoWFactory = FuncSyncUoWFactory(func() commands.SyncUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncBookingStatusCommandHandler(f, c.broadcaster, c.logger)
}

func (c *CompositionRoot) CreateAssignPartnersCommandHandler() commands.AssignPartnersCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	syncer := c.CreateSyncBookingStatusCommandHandler()
	return commands.NewAssignPartnersCommandHandler(f, c.settings, c.notifier, syncer, c.logger)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	assigner := c.CreateAssignPartnersCommandHandler()
	return commands.NewCreateBookingCommandHandler(f, assigner, c.settings, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderItemCommandHandler() commands.TransitionOrderItemCommandHandler {
	var f commands.SyncUoWFactory = FuncSyncUoWFactory(func() commands.SyncUoW {
		return c.uowFactory.Create()
	})
	syncer := c.CreateSyncBookingStatusCommandHandler()
	return commands.NewTransitionOrderItemCommandHandler(f, syncer)
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	var f commands.SyncUoWFactory = FuncSyncUoWFactory(func() commands.SyncUoW {
		return c.uowFactory.Create()
	})
	syncer := c.CreateSyncBookingStatusCommandHandler()
	return commands.NewCancelBookingCommandHandler(f, syncer)
}

func (c *CompositionRoot) CreateRescheduleBookingCommandHandler() commands.RescheduleBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRescheduleBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePartnerCommandHandler() commands.CreatePartnerCommandHandler {
	var f commands.OnboardingUoWFactory = FuncOnboardingUoWFactory(func() commands.OnboardingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedItemsQueryHandler() queries.GetUnassignedItemsQueryHandler {
	return queries.NewGetUnassignedItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	assigner := c.CreateAssignPartnersCommandHandler()
	return jobs.NewJobManager(c.CreateGetUnassignedItemsQueryHandler(), assigner, c.logger)
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncSyncUoWFactory func() commands.SyncUoW

func (f FuncSyncUoWFactory) Create() commands.SyncUoW {
	return f()
}

type FuncOnboardingUoWFactory func() commands.OnboardingUoW

func (f FuncOnboardingUoWFactory) Create() commands.OnboardingUoW {
	return f()
}
