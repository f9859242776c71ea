// Package notify delivers queued reminders once their fire time has passed.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/util"
)

// Queue is the read/ack side of the reminder queue.
//
//go:generate mockgen -source=poller.go -destination=mock_queue_test.go -package=notify
type Queue interface {
	DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error)
	MarkReminderFired(ctx context.Context, key string, at time.Time) error
}

type Poller struct {
	queue Queue
}

func NewPoller(q Queue) *Poller {
	return &Poller{queue: q}
}

// Poll returns the reminders that fired at now. A reminder whose ack fails is
// left out and logged; it will be delivered again on the next poll.
func (p *Poller) Poll(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	due, err := p.queue.DueReminders(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("poll reminders: %w", err)
	}
	fired := make([]models.Reminder, 0, len(due))
	for _, r := range due {
		if err := p.queue.MarkReminderFired(ctx, r.Key, now); err != nil {
			util.LogError(fmt.Sprintf("mark reminder %s fired", r.Key), err)
			continue
		}
		at := now
		r.FiredAt = &at
		fired = append(fired, r)
	}
	return fired, nil
}

// Banner is the one-line text shown for a delivered reminder.
func Banner(r models.Reminder) string {
	return fmt.Sprintf("%s - %s", r.Payload.Title(), r.Payload.Body())
}
