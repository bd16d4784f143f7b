// File: internal/jobs/listing_close.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"synapse_backend/internal/config"
	"synapse_backend/internal/listing"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ListingCloseJob periodically closes open listings that have gone stale.
type ListingCloseJob struct {
	listingService listing.Service
	logger         *zap.Logger
	cfg            *config.Config
	cronScheduler  *cron.Cron
}

// NewListingCloseJob creates a new ListingCloseJob.
func NewListingCloseJob(
	listingService listing.Service,
	logger *zap.Logger,
	cfg *config.Config,
) *ListingCloseJob {
	scheduler := cron.New(cron.WithLogger(NewCronLogger(logger.Named("cron"))))

	return &ListingCloseJob{
		listingService: listingService,
		logger:         logger.Named("ListingCloseJob"),
		cfg:            cfg,
		cronScheduler:  scheduler,
	}
}

// SetupAndStart schedules and starts the cron job.
func (j *ListingCloseJob) SetupAndStart() error {
	jobSpec := j.cfg.ListingCloseJobSchedule // e.g., "@daily", "0 1 * * *"
	if jobSpec == "" {
		j.logger.Warn("Listing close job schedule not defined (LISTING_CLOSE_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule listing close job", zap.String("spec", jobSpec), zap.Error(err))
		return err
	}

	j.logger.Info("Listing close job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

func (j *ListingCloseJob) runJob() {
	j.logger.Info("Starting listing close job run...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	closedCount, err := j.listingService.CloseStaleListings(ctx)
	if err != nil {
		j.logger.Error("Listing close job run failed", zap.Error(err))
	} else {
		j.logger.Info("Listing close job run completed", zap.Int64("listings_closed", closedCount))
	}
}

// Stop gracefully stops the cron scheduler.
func (j *ListingCloseJob) Stop() {
	if j.cronScheduler != nil {
		j.logger.Info("Stopping listing close job scheduler...")
		stopCtx := j.cronScheduler.Stop()
		select {
		case <-stopCtx.Done():
			j.logger.Info("Listing close job scheduler stopped gracefully.")
		case <-time.After(10 * time.Second):
			j.logger.Warn("Listing close job scheduler stop timed out.")
		}
	}
}

// --- Cron Logger Adapter ---

// cronLogger adapts zap.Logger to the cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Info(msg, cl.parseKeysAndValues(keysAndValues...)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := cl.parseKeysAndValues(keysAndValues...)
	fields = append(fields, zap.Error(err))
	cl.zl.Error(msg, fields...)
}

func (cl *cronLogger) parseKeysAndValues(keysAndValues ...interface{}) []zap.Field {
	var fields []zap.Field
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(fmt.Sprintf("%v", keysAndValues[i]), "MISSING_VALUE"))
		}
	}
	return fields
}
