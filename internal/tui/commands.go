package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/engine"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/notify"
	"github.com/akyairhashvil/sprout/internal/reminder"
)

// --- Messages ---

// TickMsg re-evaluates the open screen so stage statuses follow the clock.
type TickMsg time.Time

// PollMsg delivers due reminders.
type PollMsg time.Time

type gardenLoadedMsg struct {
	summaries []engine.Summary
	err       error
}

type catalogLoadedMsg struct {
	veggies []models.Veggie
	err     error
}

type evaluatedMsg struct {
	plantID int64
	eval    engine.Evaluation
	pending []models.Reminder
	err     error
}

type plantedMsg struct {
	name string
	id   int64
	err  error
}

type deletedMsg struct {
	plantID int64
	err     error
}

type firedMsg struct {
	reminders []models.Reminder
	err       error
}

type reportMsg struct {
	path string
	err  error
}

// --- Commands ---

func tickCmd() tea.Cmd {
	return tea.Tick(config.TimelineRefreshInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func pollCmd() tea.Cmd {
	return tea.Tick(config.ReminderPollInterval, func(t time.Time) tea.Msg { return PollMsg(t) })
}

func loadGardenCmd(ctx context.Context, eng *engine.Engine, user string) tea.Cmd {
	return func() tea.Msg {
		summaries, err := eng.Summaries(ctx, user)
		return gardenLoadedMsg{summaries: summaries, err: err}
	}
}

func loadCatalogCmd(ctx context.Context, db Database) tea.Cmd {
	return func() tea.Msg {
		veggies, err := db.ListVeggies(ctx)
		return catalogLoadedMsg{veggies: veggies, err: err}
	}
}

func evaluateCmd(ctx context.Context, eng *engine.Engine, db Database, session *reminder.Session, plantID int64) tea.Cmd {
	return func() tea.Msg {
		ev, err := eng.Evaluate(ctx, session, plantID)
		if err != nil {
			return evaluatedMsg{plantID: plantID, err: err}
		}
		pending, err := db.PendingReminders(ctx, plantID)
		return evaluatedMsg{plantID: plantID, eval: ev, pending: pending, err: err}
	}
}

func cancelPlantCmd(ctx context.Context, eng *engine.Engine, db Database, session *reminder.Session, plantID int64) tea.Cmd {
	return func() tea.Msg {
		ev, err := eng.Cancel(ctx, session, plantID)
		if err != nil {
			return evaluatedMsg{plantID: plantID, err: err}
		}
		pending, err := db.PendingReminders(ctx, plantID)
		return evaluatedMsg{plantID: plantID, eval: ev, pending: pending, err: err}
	}
}

func plantCmd(ctx context.Context, db Database, user string, v models.Veggie) tea.Cmd {
	return func() tea.Msg {
		id, err := db.AddPlant(ctx, user, v.ID)
		return plantedMsg{name: v.Name, id: id, err: err}
	}
}

func deletePlantCmd(ctx context.Context, db Database, plantID int64) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{plantID: plantID, err: db.DeletePlant(ctx, plantID)}
	}
}

func pollRemindersCmd(ctx context.Context, p *notify.Poller, now time.Time) tea.Cmd {
	return func() tea.Msg {
		fired, err := p.Poll(ctx, now)
		return firedMsg{reminders: fired, err: err}
	}
}

func reportCmd(summaries []engine.Summary, user, dir string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := GeneratePDFReport(summaries, user, dir, now)
		return reportMsg{path: path, err: err}
	}
}
