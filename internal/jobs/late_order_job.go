package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLateOrderSchedule runs the check at the top of every minute.
const DefaultLateOrderSchedule = "0 * * * * *"

// LateOrderNotifier is the use case run on every tick.
type LateOrderNotifier interface {
	Handle(ctx context.Context, cmd commands.NotifyLateOrdersCommand) (int, error)
}

// LateOrderJob alerts the admins about active orders past their estimated
// delivery time.
type LateOrderJob struct {
	handler  LateOrderNotifier
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLateOrderJob accepts a six field cron expression; an empty one means
// DefaultLateOrderSchedule.
func NewLateOrderJob(handler LateOrderNotifier, schedule string, logger *slog.Logger) *LateOrderJob {
	if schedule == "" {
		schedule = DefaultLateOrderSchedule
	}
	return &LateOrderJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "late_order_job"),
	}
}

func (j *LateOrderJob) Name() string {
	return "late order"
}

func (j *LateOrderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background(), time.Now()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late order job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running check to finish.
func (j *LateOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Late order job stopped")
}

func (j *LateOrderJob) run(ctx context.Context, now time.Time) {
	cmd, err := commands.NewNotifyLateOrdersCommand(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Late order job failed", "error", err)
		return
	}

	sent, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Late order job failed", "error", err, "sent", sent)
		return
	}
	if sent > 0 {
		j.logger.InfoContext(ctx, "Late orders reported", "count", sent)
	}
}
