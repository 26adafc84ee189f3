package ledger

import (
	"context"
	"sync"
	"time"

	"stableswap/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultSnapshotJobDuration = 30 * time.Second

type Scheduler struct {
	source              custodySource
	snapshots           adapters.SnapshotRepository
	snapshotJobDuration time.Duration
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if snapErr := TakeCustodySnapshot(jobCtx, execID, s.source, s.snapshots); snapErr != nil {
			logrus.Errorf("Custody snapshot job %s failed: %v", execID, snapErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.snapshotJobDuration),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(source custodySource, snapshots adapters.SnapshotRepository, snapshotJobDuration time.Duration) *Scheduler {
	if snapshotJobDuration <= 0 {
		snapshotJobDuration = defaultSnapshotJobDuration
	}
	return &Scheduler{source: source, snapshots: snapshots, snapshotJobDuration: snapshotJobDuration}
}
