package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "fantapiazza-backend/internal/errors"
	"fantapiazza-backend/internal/logger"
	"fantapiazza-backend/internal/metrics"
	"fantapiazza-backend/internal/repository"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ReconcileService recomputes cached league scores from the rosters and repairs drift
type ReconcileService struct {
	scores repository.ScoreRepositoryInterface
	now    func() time.Time
}

// Ensure ReconcileService implements ReconcileServiceInterface
var _ ReconcileServiceInterface = (*ReconcileService)(nil)

// NewReconcileService creates a new reconcile service
func NewReconcileService(scores repository.ScoreRepositoryInterface) *ReconcileService {
	return &ReconcileService{scores: scores, now: time.Now}
}

// ReconcileReport summarises one reconciliation run
type ReconcileReport struct {
	StartedAt time.Time               `json:"startedAt"`
	Checked   int64                   `json:"checked"`
	Drifted   int                     `json:"drifted"`
	Repaired  []repository.ScoreDrift `json:"repaired"`
	// Skipped rows changed between detection and repair and are left to the next run
	Skipped []repository.ScoreDrift `json:"skipped"`
}

// Reconcile finds every league score that differs from the sum of its roster's totals
// and rewrites it. A row that moved since it was read is skipped, not overwritten.
func (s *ReconcileService) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	report := &ReconcileReport{
		StartedAt: s.now(),
		Repaired:  []repository.ScoreDrift{},
		Skipped:   []repository.ScoreDrift{},
	}

	drift, checked, err := s.scores.FindDrift(ctx)
	if err != nil {
		metrics.RecordReconcile(0, err)
		return nil, fmt.Errorf("failed to scan league scores: %w", err)
	}
	report.Checked = checked
	report.Drifted = len(drift)

	log := logger.WithContext(ctx)
	for _, d := range drift {
		ok, err := s.scores.Repair(ctx, d)
		if err != nil {
			metrics.RecordReconcile(len(report.Repaired), err)
			return nil, fmt.Errorf("failed to repair league score %s: %w", d.TeamLeagueID, err)
		}
		if !ok {
			report.Skipped = append(report.Skipped, d)
			continue
		}
		report.Repaired = append(report.Repaired, d)
		log.WithFields(map[string]interface{}{
			"team_id":   d.TeamID,
			"league_id": d.LeagueID,
			"stored":    d.Stored,
			"expected":  d.Expected,
		}).Warn("Repaired drifted league score")
	}

	metrics.RecordReconcile(len(report.Repaired), nil)
	return report, nil
}

// Scheduler runs reconciliation on a cron schedule
type Scheduler struct {
	cron    *cron.Cron
	service ReconcileServiceInterface
	timeout time.Duration
	mu      sync.Mutex
	last    *ReconcileReport
}

// NewScheduler registers the reconcile job. An empty schedule returns a nil scheduler.
func NewScheduler(schedule string, service ReconcileServiceInterface, timeout time.Duration) (*Scheduler, error) {
	if schedule == "" {
		return nil, nil
	}

	cronLogger := cron.PrintfLogger(logrus.StandardLogger())
	s := &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.SkipIfStillRunning(cronLogger))),
		service: service,
		timeout: timeout,
	}
	if _, err := s.cron.AddFunc(schedule, s.RunOnce); err != nil {
		return nil, fmt.Errorf("%w %q: %v", apperrors.ErrInvalidSchedule, schedule, err)
	}
	return s, nil
}

// Start begins running the job in the background
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running job until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// LastReport returns the report of the most recent successful run
func (s *Scheduler) LastReport() *ReconcileReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// RunOnce executes the job immediately on the calling goroutine
func (s *Scheduler) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	report, err := s.service.Reconcile(ctx)
	if err != nil {
		logger.New().WithError(err).Error("Scheduled score reconciliation failed")
		return
	}

	s.mu.Lock()
	s.last = report
	s.mu.Unlock()

	logger.New().WithFields(map[string]interface{}{
		"checked":  report.Checked,
		"repaired": len(report.Repaired),
		"skipped":  len(report.Skipped),
	}).Info("Scheduled score reconciliation finished")
}
