package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"myregistrar/helpers"
	"myregistrar/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrSchedulerStarted is returned by Start when the scheduler is already running.
var ErrSchedulerStarted = errors.New("scheduler is already started")

// Scheduler invokes a task with fixed-delay semantics: the first tick runs immediately, every next tick starts
// period after the previous one returned, so ticks never overlap. Each tick gets its own deadline (timeout).
type Scheduler struct {
	task    interfaces.Task
	period  time.Duration
	timeout time.Duration
	logger  log.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates a scheduler. Panics on nil task or logger and on non-positive period.
// A non-positive timeout means ticks only inherit the deadline of the context passed to Start.
func NewScheduler(task interfaces.Task, period, timeout time.Duration, logger log.Logger) *Scheduler {
	return &Scheduler{
		task:    helpers.NilPanic(task, "service.scheduler.go: task is required"),
		period:  helpers.PositivePanic(period, "service.scheduler.go: period must be positive"),
		timeout: timeout,
		logger:  log.With(helpers.NilPanic(logger, "service.scheduler.go: logger is required"), "component", "scheduler"),
	}
}

// Start runs the tick loop in a goroutine until ctx is done or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done != nil {
		return ErrSchedulerStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.loop(loopCtx, s.done)

	level.Info(s.logger).Log("msg", "Scheduler started", "period", s.period, "timeout", s.timeout)
	return nil
}

// Stop cancels the loop and waits for an in-flight tick to return. Safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			level.Info(s.logger).Log("msg", "Scheduler stopped")
			return
		case <-timer.C:
			s.tick(ctx)
			timer.Reset(s.period)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			level.Error(s.logger).Log("msg", "Task panicked", "err", fmt.Sprintf("%v", r))
		}
	}()
	s.task.Run(ctx)
}
