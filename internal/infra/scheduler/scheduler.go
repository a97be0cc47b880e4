package scheduler

import (
	"context"
	"time"

	"homework_notification_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler drives the poll-notify cycle on a fixed interval. A
// SkipIfStillRunning chain keeps execution strictly sequential: a cycle that
// outlives the interval makes the next tick a no-op instead of overlapping.
type PollScheduler struct {
	cronEngine *cron.Cron
	job        cron.Job
	poller     app.Poller
	log        *logrus.Logger
	interval   time.Duration
}

func NewPollScheduler(poller app.Poller, log *logrus.Logger, interval time.Duration) *PollScheduler {
	s := &PollScheduler{
		cronEngine: cron.New(cron.WithLocation(time.Local)),
		poller:     poller,
		log:        log,
		interval:   interval,
	}
	s.job = cron.NewChain(cron.SkipIfStillRunning(cron.PrintfLogger(log))).
		Then(cron.FuncJob(s.runCycle))
	return s
}

func (s *PollScheduler) runCycle() {
	// One cycle gets at most one interval of wall time before its fetch is
	// cancelled.
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	s.poller.RunCycle(ctx)
}

// Start registers the poll job and launches the cron engine. The first cycle
// runs immediately; cron's interval schedule only fires after the first
// interval elapses.
func (s *PollScheduler) Start() {
	s.log.Info("Starting poll scheduler...")

	if s.interval < time.Second {
		// cron.Every silently clamps sub-second intervals, which would turn
		// a misconfigured duration into a near-busy loop.
		s.log.Fatalf("FATAL: poll interval %s is below the 1s minimum", s.interval)
	}
	s.cronEngine.Schedule(cron.Every(s.interval), s.job)

	// Same chained job as the scheduled one, so the first cron tick is
	// skipped if this run is somehow still going.
	go s.job.Run()

	s.cronEngine.Start()
	s.log.Infof("Poll scheduler started, polling every %s.", s.interval)
}

func (s *PollScheduler) Stop() {
	s.log.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new runs, waits for a running cycle.
	<-ctx.Done()
	s.log.Info("Poll scheduler gracefully stopped.")
}
