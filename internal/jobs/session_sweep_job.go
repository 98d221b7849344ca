package job

import (
	"log/slog"
	"time"
)

// Sweeper is the part of the session store the job needs.
type Sweeper interface {
	Sweep(idle time.Duration) int
	Len() int
}

type SessionSweepJob struct {
	store Sweeper
	idle  time.Duration
}

func NewSessionSweepJob(store Sweeper, idle time.Duration) *SessionSweepJob {
	return &SessionSweepJob{
		store: store,
		idle:  idle,
	}
}

// SweepSessions closes composers nobody touched for the idle timeout.
func (j *SessionSweepJob) SweepSessions() {
	removed := j.store.Sweep(j.idle)
	if removed > 0 {
		slog.Info("idle composer sessions closed", "removed", removed, "remaining", j.store.Len())
	}
}
