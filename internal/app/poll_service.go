// internal/app/poll_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/domain/homework"
	domainTelegram "homework_notification_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Poller runs a single poll-notify cycle. Satisfied by PollService.
type Poller interface {
	RunCycle(ctx context.Context)
}

// PollService owns the poll-notify cycle: fetch homework statuses, validate
// the payload, diff each record against the last notified status, notify the
// chat on change, and advance the timestamp cursor.
//
// The service is driven by a single scheduler goroutine; its state (cursor,
// lastStatus, lastAlert) is never accessed concurrently.
type PollService struct {
	api      homework.Client
	telegram domainTelegram.Client
	log      *logrus.Logger
	chatID   int64

	cursor     int64
	lastStatus homework.Status
	lastAlert  string
}

func NewPollService(
	api homework.Client,
	tc domainTelegram.Client,
	log *logrus.Logger,
	chatID int64,
) *PollService {
	return &PollService{
		api:      api,
		telegram: tc,
		log:      log,
		chatID:   chatID,
		cursor:   time.Now().Unix(),
	}
}

// RunCycle executes one fetch → validate → diff → notify pass. Every
// recoverable failure is contained here: it is logged, reported to the chat
// best-effort, and never escalates past the cycle boundary, so the scheduler
// keeps ticking no matter what one iteration did.
func (s *PollService) RunCycle(ctx context.Context) {
	if err := s.poll(ctx); err != nil {
		s.log.WithError(err).Error("Poll cycle failed")
		s.alertFailure(err)
		return
	}
	s.lastAlert = ""
}

func (s *PollService) poll(ctx context.Context) error {
	payload, err := s.api.Statuses(ctx, s.cursor)
	if err != nil {
		return err
	}

	resp, err := homework.CheckResponse(payload)
	if err != nil {
		return err
	}

	if len(resp.Homeworks) == 0 {
		s.log.Debug("No homework updates since last poll")
	}

	for _, hw := range resp.Homeworks {
		message, err := homework.ParseStatus(hw)
		if err != nil {
			return err
		}
		if hw.Status == s.lastStatus {
			s.log.WithField("homework", hw.HomeworkName).Debug("Status not updated, skipping notification")
			continue
		}
		// lastStatus advances only on a delivered notification; a failed
		// send is retried naturally on the next cycle.
		if err := s.notify(message); err == nil {
			s.lastStatus = hw.Status
		}
	}

	if resp.CurrentDate > 0 {
		s.cursor = resp.CurrentDate
	}
	return nil
}

// notify sends one message to the configured chat. Delivery failures are
// logged and returned but never escalate past the cycle.
func (s *PollService) notify(text string) error {
	if err := s.telegram.SendMessage(s.chatID, text); err != nil {
		s.log.WithError(err).Error("Could not deliver Telegram message")
		return err
	}
	s.log.WithField("message", text).Info("Bot sent a Telegram message")
	return nil
}

// alertFailure reports a cycle failure to the chat, de-duplicated by message
// text so a persistent outage produces one alert, not one per interval. The
// remembered text is cleared by the next clean cycle.
func (s *PollService) alertFailure(err error) {
	text := fmt.Sprintf("Poll cycle failed: %v", err)
	if text == s.lastAlert {
		s.log.Debug("Failure already reported to chat, skipping alert")
		return
	}
	if sendErr := s.telegram.SendMessage(s.chatID, text); sendErr != nil {
		s.log.WithError(sendErr).Error("Could not deliver failure alert")
		return
	}
	s.lastAlert = text
}
