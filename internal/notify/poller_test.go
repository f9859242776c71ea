package notify

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/akyairhashvil/sprout/internal/database"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/testutil"
)

func reminderFor(key string, final bool) models.Reminder {
	return models.Reminder{
		Key:     key,
		FireAt:  testutil.Days(2),
		Payload: models.ReminderPayload{StageTitle: "Seedling", VeggieName: "Kale", IsFinalStage: final},
	}
}

func TestPollMarksEachFired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()
	now := testutil.Days(3)

	q := NewMockQueue(ctrl)
	q.EXPECT().DueReminders(gomock.Any(), now).Return([]models.Reminder{reminderFor("1-0", false), reminderFor("1-1", true)}, nil)
	q.EXPECT().MarkReminderFired(gomock.Any(), "1-0", now).Return(nil)
	q.EXPECT().MarkReminderFired(gomock.Any(), "1-1", now).Return(nil)

	fired, err := NewPoller(q).Poll(ctx, now)
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if len(fired) != 2 {
		t.Fatalf("expected 2 fired, got %d", len(fired))
	}
	for _, r := range fired {
		if r.FiredAt == nil || !r.FiredAt.Equal(now) {
			t.Fatalf("expected fired at %v, got %v", now, r.FiredAt)
		}
	}
}

func TestPollIsolatesAckFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	now := testutil.Days(3)

	q := NewMockQueue(ctrl)
	q.EXPECT().DueReminders(gomock.Any(), now).Return([]models.Reminder{reminderFor("1-0", false), reminderFor("1-1", true)}, nil)
	q.EXPECT().MarkReminderFired(gomock.Any(), "1-0", now).Return(errors.New("locked"))
	q.EXPECT().MarkReminderFired(gomock.Any(), "1-1", now).Return(nil)

	fired, err := NewPoller(q).Poll(context.Background(), now)
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if len(fired) != 1 || fired[0].Key != "1-1" {
		t.Fatalf("expected only 1-1 delivered, got %+v", fired)
	}
}

func TestPollQueueFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := NewMockQueue(ctrl)
	q.EXPECT().DueReminders(gomock.Any(), gomock.Any()).Return(nil, errors.New("closed"))
	if _, err := NewPoller(q).Poll(context.Background(), testutil.T0); err == nil {
		t.Fatalf("expected error")
	}
}

func TestPollDatabaseDeliversOnce(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, filepath.Join(t.TempDir(), "notify.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()

	payload := models.ReminderPayload{PlantID: 4, StageIndex: 0, StageTitle: "Germination", VeggieName: "Radish"}
	if err := db.ScheduleNotification(ctx, "4-0", testutil.Days(4), payload); err != nil {
		t.Fatalf("ScheduleNotification failed: %v", err)
	}
	p := NewPoller(db)

	early, err := p.Poll(ctx, testutil.Days(3))
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if len(early) != 0 {
		t.Fatalf("expected nothing due yet, got %d", len(early))
	}
	fired, err := p.Poll(ctx, testutil.Days(4))
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if len(fired) != 1 || fired[0].Payload != payload {
		t.Fatalf("expected reminder delivered, got %+v", fired)
	}
	again, err := p.Poll(ctx, testutil.Days(5))
	if err != nil {
		t.Fatalf("Poll failed: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no redelivery, got %d", len(again))
	}
}

func TestBanner(t *testing.T) {
	got := Banner(reminderFor("1-1", true))
	if !strings.Contains(got, "Kale: growth complete") || !strings.Contains(got, "Seedling") {
		t.Fatalf("unexpected banner %q", got)
	}
	got = Banner(reminderFor("1-0", false))
	if !strings.HasPrefix(got, "Kale: next stage starting") {
		t.Fatalf("unexpected banner %q", got)
	}
}
