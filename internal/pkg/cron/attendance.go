package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// StaleSessionCloser closes attendance sessions left open past the cutoff.
type StaleSessionCloser interface {
	CloseStaleSessions(ctx context.Context) (int64, error)
}

type AttendanceJobs struct {
	attendanceService StaleSessionCloser
	interval          time.Duration
}

func NewAttendanceJobs(attendanceService StaleSessionCloser, interval time.Duration) *AttendanceJobs {
	if interval <= 0 {
		interval = time.Hour
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		interval:          interval,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_stale_attendance_sessions", j.interval, j.CloseStaleSessions)
}

func (j *AttendanceJobs) CloseStaleSessions(ctx context.Context) error {
	closed, err := j.attendanceService.CloseStaleSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to close stale sessions: %w", err)
	}

	if closed == 0 {
		slog.Debug("Cron: No stale attendance sessions found")
		return nil
	}

	slog.Info("Cron: Closed stale attendance sessions", "count", closed)
	return nil
}
