package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/database"
	"github.com/akyairhashvil/sprout/internal/engine"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/notify"
	"github.com/akyairhashvil/sprout/internal/reminder"
	"github.com/akyairhashvil/sprout/internal/util"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateInitializing SessionState = iota
	StateGarden
	StateCatalog
	StateDetail
)

// MainModel is the root bubbletea model that switches between screens.
type MainModel struct {
	ctx        context.Context
	state      SessionState
	db         Database
	engine     *engine.Engine
	poller     *notify.Poller
	now        func() time.Time
	keys       *HandlerRegistry
	user       string
	textInput  textinput.Model
	garden     []engine.Summary
	catalog    []models.Veggie
	cursor     int
	detail     DetailModel
	armedDel   int64 // plant awaiting a second "d"
	banner     string
	reportsDir string
	themeName  string
	err        error
	width      int
	height     int
}

// NewMainModel builds the root model. An empty user falls back to the stored
// gardener name; without one the name prompt is shown first.
func NewMainModel(ctx context.Context, db Database, user string) MainModel {
	m := MainModel{
		ctx:        ctx,
		db:         db,
		keys:       defaultRegistry(),
		reportsDir: util.ReportsDir(config.AppName),
		themeName:  "default",
	}
	m = m.WithClock(time.Now)

	theme, ok, err := db.GetSetting(ctx, config.SettingThemeKey)
	util.LogError("load theme", err)
	if ok && SetTheme(theme) {
		m.themeName = theme
	}

	m.user = strings.TrimSpace(user)
	if m.user == "" {
		stored, ok, err := db.GetSetting(ctx, config.SettingUserKey)
		util.LogError("load gardener", err)
		if ok {
			m.user = strings.TrimSpace(stored)
		}
	}
	if m.user == "" {
		m.state = StateInitializing
		ti := textinput.New()
		ti.Placeholder = "your name"
		ti.Focus()
		ti.CharLimit = config.MaxGardenerNameLength
		ti.Width = config.MaxGardenerNameLength
		m.textInput = ti
	} else {
		m.state = StateGarden
	}
	return m
}

// WithClock replaces the time source of the engine and the reminder poll.
func (m MainModel) WithClock(now func() time.Time) MainModel {
	m.now = now
	m.engine = engine.New(m.db, m.db, now)
	m.poller = notify.NewPoller(m.db)
	return m
}

func (m MainModel) Init() tea.Cmd {
	if m.state == StateInitializing {
		return textinput.Blink
	}
	return tea.Batch(loadGardenCmd(m.ctx, m.engine, m.user), tickCmd(), pollCmd())
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.state == StateInitializing {
			return m.updateInitializing(msg)
		}
		key := msg.String()
		m.err = nil
		if key != "d" {
			m.armedDel = 0
		}
		next, cmd, _ := m.keys.Handle(m, key)
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.progress.Width = progressWidth(msg.Width)
		return m, nil

	case TickMsg:
		return m, tea.Batch(m.refreshCmd(), tickCmd())

	case PollMsg:
		return m, tea.Batch(pollRemindersCmd(m.ctx, m.poller, m.now()), pollCmd())

	case gardenLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.garden = msg.summaries
		if m.state == StateGarden {
			m.cursor = clampCursor(m.cursor, len(m.garden))
		}
		return m, nil

	case catalogLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.catalog = msg.veggies
		if m.state == StateCatalog {
			m.cursor = clampCursor(m.cursor, len(m.catalog))
		}
		return m, nil

	case evaluatedMsg:
		if m.state != StateDetail || msg.plantID != m.detail.plantID {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.detail.eval = msg.eval
		m.detail.pending = msg.pending
		m.detail.loaded = true
		if msg.eval.Completed {
			m.banner = fmt.Sprintf("%s is ready to harvest", msg.eval.Plant.Veggie.Name)
		}
		if failed := reminder.Failed(msg.eval.Reminders); len(failed) > 0 {
			m.err = fmt.Errorf("%d reminder update(s) failed, will retry on refresh", len(failed))
		} else if msg.eval.StatusErr != nil {
			m.err = msg.eval.StatusErr
		}
		return m, nil

	case plantedMsg:
		if errors.Is(msg.err, database.ErrAlreadyPlanted) {
			m.err = fmt.Errorf("%s is already growing in your garden", msg.name)
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.banner = fmt.Sprintf("Planted %s", msg.name)
		m.state = StateGarden
		m.cursor = 0
		return m, loadGardenCmd(m.ctx, m.engine, m.user)

	case deletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.banner = "Plant removed"
		if m.state == StateDetail && m.detail.plantID == msg.plantID {
			m.state = StateGarden
			m.detail = DetailModel{}
		}
		return m, loadGardenCmd(m.ctx, m.engine, m.user)

	case firedMsg:
		if msg.err != nil {
			util.LogError("deliver reminders", msg.err)
			return m, nil
		}
		if len(msg.reminders) == 0 {
			return m, nil
		}
		m.banner = notify.Banner(msg.reminders[len(msg.reminders)-1])
		if extra := len(msg.reminders) - 1; extra > 0 {
			m.banner += fmt.Sprintf(" (+%d more)", extra)
		}
		return m, m.refreshCmd()

	case reportMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.banner = fmt.Sprintf("Report saved to %s", msg.path)
		return m, nil
	}

	if m.state == StateInitializing {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m MainModel) updateInitializing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		name := strings.TrimSpace(m.textInput.Value())
		if name == "" {
			m.err = fmt.Errorf("please enter a name")
			return m, nil
		}
		if err := m.db.SetSetting(m.ctx, config.SettingUserKey, name); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.user = name
		m.state = StateGarden
		return m, tea.Batch(loadGardenCmd(m.ctx, m.engine, m.user), tickCmd(), pollCmd())
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// refreshCmd reloads whatever the current screen shows.
func (m MainModel) refreshCmd() tea.Cmd {
	switch m.state {
	case StateGarden:
		return loadGardenCmd(m.ctx, m.engine, m.user)
	case StateDetail:
		return evaluateCmd(m.ctx, m.engine, m.db, m.detail.session, m.detail.plantID)
	}
	return nil
}

func (m MainModel) listLen() int {
	if m.state == StateCatalog {
		return len(m.catalog)
	}
	return len(m.garden)
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	return util.Clamp(cursor, 0, n-1)
}

// --- Key handlers ---

func handleCursorUp(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.cursor = clampCursor(m.cursor-1, m.listLen())
	return m, nil, true
}

func handleCursorDown(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.cursor = clampCursor(m.cursor+1, m.listLen())
	return m, nil, true
}

func handleOpen(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if len(m.garden) == 0 {
		return m, nil, true
	}
	id := m.garden[m.cursor].Plant.ID
	m.detail = NewDetailModel(id, m.width)
	m.state = StateDetail
	return m, evaluateCmd(m.ctx, m.engine, m.db, m.detail.session, id), true
}

func handlePlant(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if len(m.catalog) == 0 {
		return m, nil, true
	}
	return m, plantCmd(m.ctx, m.db, m.user, m.catalog[m.cursor]), true
}

func handleCatalog(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.state = StateCatalog
	m.cursor = 0
	return m, loadCatalogCmd(m.ctx, m.db), true
}

func handleCancelPlant(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	if !m.detail.loaded {
		return m, nil, true
	}
	if p := m.detail.eval.Plant; p.Status.Terminal() {
		m.err = fmt.Errorf("%s is already %s", p.Veggie.Name, p.Status)
		return m, nil, true
	}
	return m, cancelPlantCmd(m.ctx, m.engine, m.db, m.detail.session, m.detail.plantID), true
}

// handleDeletePlant asks for a second press before deleting.
func handleDeletePlant(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	var id int64
	var name string
	switch {
	case m.state == StateDetail && m.detail.loaded:
		id, name = m.detail.plantID, m.detail.eval.Plant.Veggie.Name
	case m.state == StateGarden && len(m.garden) > 0:
		p := m.garden[m.cursor].Plant
		id, name = p.ID, p.Veggie.Name
	default:
		return m, nil, true
	}
	if m.armedDel != id {
		m.armedDel = id
		m.banner = fmt.Sprintf("Press d again to delete %s", name)
		return m, nil, true
	}
	m.armedDel = 0
	return m, deletePlantCmd(m.ctx, m.db, id), true
}

func handleReport(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, reportCmd(m.garden, m.user, m.reportsDir, m.now()), true
}

func handleRefresh(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, m.refreshCmd(), true
}

func handleTheme(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	name := NextTheme(m.themeName)
	if SetTheme(name) {
		m.themeName = name
		util.LogError("save theme", m.db.SetSetting(m.ctx, config.SettingThemeKey, name))
	}
	return m, nil, true
}

func handleBack(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	m.state = StateGarden
	m.detail = DetailModel{}
	m.cursor = clampCursor(m.cursor, len(m.garden))
	return m, loadGardenCmd(m.ctx, m.engine, m.user), true
}

func handleQuit(m MainModel, _ string) (MainModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}
