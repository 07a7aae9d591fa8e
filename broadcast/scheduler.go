package broadcast

import (
	"context"
	"time"

	"github.com/pawfund/charitybot/core/logger"
	"log/slog"
)

// DefaultInterval is the production cadence of the reminder fan-out.
const DefaultInterval = 90 * time.Minute

// ReminderText is sent to every known chat, in both supported locales at
// once since the broadcast does not consult per-chat language state.
const ReminderText = "⏰ Reminder: every 90 minutes!\n⏰ Нагадування: кожні 90 хвилин!"

// Sender delivers broadcast messages to a single chat.
type Sender interface {
	SendText(chatID int64, text string) error
	SendPhoto(chatID int64, path string) error
}

// Recipients enumerates the chats known to the bot.
type Recipients interface {
	Known() []int64
}

// Result records the delivery outcome for one recipient within a cycle.
type Result struct {
	ChatID int64
	Err    error
}

// Report aggregates per-recipient outcomes of a single broadcast cycle.
type Report struct {
	Results   []Result
	Delivered int
	Failed    int
	Photos    int
}

// Scheduler fans reminders out to all known chats on a fixed interval.
type Scheduler struct {
	sender     Sender
	recipients Recipients
	pool       *Pool
	interval   time.Duration
}

// NewScheduler builds a scheduler; a non-positive interval falls back to
// DefaultInterval.
func NewScheduler(sender Sender, recipients Recipients, pool *Pool, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		sender:     sender,
		recipients: recipients,
		pool:       pool,
		interval:   interval,
	}
}

// Run cycles immediately, then once per interval until ctx is cancelled.
// Cycle failures never stop the loop.
func (s *Scheduler) Run(ctx context.Context) {
	logger.Broadcast.Info("broadcast started",
		slog.String("event", "broadcast.start"),
		slog.Int64("interval_ms", s.interval.Milliseconds()),
	)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			break
		}
		s.Cycle(ctx)
		select {
		case <-ctx.Done():
		case <-ticker.C:
			continue
		}
		break
	}
	logger.Broadcast.Info("broadcast stopped",
		slog.String("event", "broadcast.stop"),
	)
}

// Cycle delivers the reminder to every known chat once. Each recipient is
// attempted exactly once per cycle; a failed send is recorded and the loop
// moves on to the next recipient.
func (s *Scheduler) Cycle(ctx context.Context) Report {
	start := time.Now()
	chats := s.recipients.Known()
	var photos []string
	if s.pool != nil {
		photos = s.pool.List()
	}

	report := Report{Results: make([]Result, 0, len(chats))}
	for _, chatID := range chats {
		if ctx.Err() != nil {
			break
		}
		err := s.deliver(chatID, photos)
		report.Results = append(report.Results, Result{ChatID: chatID, Err: err})
		if err != nil {
			report.Failed++
			logger.Broadcast.Warn("delivery failed",
				slog.String("event", "broadcast.deliver"),
				slog.String("status", "fail"),
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()),
			)
			continue
		}
		report.Delivered++
	}
	report.Photos = len(photos)

	logger.Broadcast.Info("cycle complete",
		slog.String("event", "broadcast.cycle"),
		slog.Int("recipients", len(chats)),
		slog.Int("delivered", report.Delivered),
		slog.Int("failed", report.Failed),
		slog.Int("photos", len(photos)),
		slog.Duration("duration", logger.RoundMS(time.Since(start))),
	)
	return report
}

func (s *Scheduler) deliver(chatID int64, photos []string) error {
	if err := s.sender.SendText(chatID, ReminderText); err != nil {
		return err
	}
	if photo := pick(photos); photo != "" {
		return s.sender.SendPhoto(chatID, photo)
	}
	return nil
}
