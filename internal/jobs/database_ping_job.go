package jobs

import (
	"context"
	"log/slog"
	"time"

	"shop/internal/health"

	"github.com/robfig/cron/v3"
)

// DefaultPingSchedule runs the ping every ten seconds.
const DefaultPingSchedule = "*/10 * * * * *"

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabasePingJob periodically pings the datastore and records the result.
type DatabasePingJob struct {
	db       Pinger
	probe    *health.Probe
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDatabasePingJob(
	db Pinger,
	probe *health.Probe,
	schedule string,
	timeout time.Duration,
	logger *slog.Logger,
) *DatabasePingJob {
	if schedule == "" {
		schedule = DefaultPingSchedule
	}
	return &DatabasePingJob{
		db:       db,
		probe:    probe,
		schedule: schedule,
		timeout:  timeout,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "database_ping_job"),
	}
}

func (j *DatabasePingJob) Name() string {
	return "database ping"
}

// Start pings once immediately, then on the configured schedule.
func (j *DatabasePingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.Run()
	j.cron.Start()
	j.logger.Info("Database ping job started", "schedule", j.schedule)
	return nil
}

// Run performs a single ping.
func (j *DatabasePingJob) Run() {
	ctx := context.Background()
	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	err := j.db.PingContext(ctx)
	j.probe.Record(err, time.Since(start))

	if err != nil {
		j.logger.ErrorContext(ctx, "Database ping failed", "error", err)
	}
}

// Stop waits for a running ping to finish.
func (j *DatabasePingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Database ping job stopped")
}
