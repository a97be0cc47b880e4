package scheduler

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

type recordingPoller struct {
	ran chan struct{}
}

func (p *recordingPoller) RunCycle(ctx context.Context) {
	select {
	case p.ran <- struct{}{}:
	default:
	}
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestStartRunsFirstCycleImmediately(t *testing.T) {
	poller := &recordingPoller{ran: make(chan struct{}, 1)}
	s := NewPollScheduler(poller, discardLogger(), time.Hour)

	s.Start()
	defer s.Stop()

	select {
	case <-poller.ran:
	case <-time.After(3 * time.Second):
		t.Fatal("expected an immediate poll cycle after Start")
	}
}

func TestStopWaitsForEngine(t *testing.T) {
	poller := &recordingPoller{ran: make(chan struct{}, 1)}
	s := NewPollScheduler(poller, discardLogger(), time.Hour)

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Stop did not return")
	}
}
