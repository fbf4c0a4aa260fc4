package jobs

import (
	"context"
	"log/slog"

	"booking/internal/core/application/usecases/queries"
	"booking/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// Assigner runs one assignment pass for a booking. Implemented by
// commands.AssignPartnersCommandHandler.
type Assigner interface {
	Assign(ctx context.Context, bookingID kernel.UUID) error
}

// AssignmentRetryJob periodically sweeps items that still lack a partner and
// re-runs the assignment engine for their bookings. Items stay unassigned
// when checkout found no eligible partner; this job picks them up once
// partner availability changes.
type AssignmentRetryJob struct {
	unassignedHandler queries.GetUnassignedItemsQueryHandler
	assigner          Assigner
	cron              *cron.Cron
	logger            *slog.Logger
}

// NewAssignmentRetryJob creates the retry sweep running every 30 seconds.
func NewAssignmentRetryJob(
	unassignedHandler queries.GetUnassignedItemsQueryHandler,
	assigner Assigner,
	logger *slog.Logger,
) *AssignmentRetryJob {
	return &AssignmentRetryJob{
		unassignedHandler: unassignedHandler,
		assigner:          assigner,
		cron:              cron.New(cron.WithSeconds()),
		logger:            logger.With("component", "assignment_retry_job"),
	}
}

// Start begins the retry sweep.
func (j *AssignmentRetryJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "assignment retry job started (running every 30 seconds)")
	return nil
}

// Stop stops the retry sweep.
func (j *AssignmentRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "assignment retry job stopped")
}

func (j *AssignmentRetryJob) run() {
	ctx := context.Background()

	items, err := j.unassignedHandler.Handle(ctx, queries.NewGetUnassignedItemsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "unassigned items sweep failed", "error", err)
		return
	}
	if len(items) == 0 {
		return
	}

	// One assignment pass per booking, not per item.
	seen := make(map[kernel.UUID]bool)
	for _, item := range items {
		if seen[item.BookingID] {
			continue
		}
		seen[item.BookingID] = true

		if err := j.assigner.Assign(ctx, item.BookingID); err != nil {
			j.logger.ErrorContext(ctx, "assignment retry failed",
				"bookingId", item.BookingID.String(), "error", err)
		}
	}
}
