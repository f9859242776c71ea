package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m MainModel, key string) (MainModel, tea.Cmd, bool)

type KeyBinding struct {
	Keys        []string
	Handler     KeyHandler
	Description string
	States      []SessionState
	Priority    int
}

func (b KeyBinding) AppliesTo(state SessionState) bool {
	if len(b.States) == 0 {
		return true
	}
	for _, s := range b.States {
		if s == state {
			return true
		}
	}
	return false
}

func (b KeyBinding) matches(key string) bool {
	for _, k := range b.Keys {
		if k == key {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m MainModel, key string) (MainModel, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.matches(key) && b.AppliesTo(m.state) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(state SessionState) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(state) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer help line for a state.
func (r *HandlerRegistry) HelpFor(state SessionState) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(state) {
		if b.Description == "" || len(b.Keys) == 0 {
			continue
		}
		key := b.Keys[0]
		if seen[key] {
			continue
		}
		seen[key] = true
		parts = append(parts, "["+key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}

func defaultRegistry() *HandlerRegistry {
	r := NewHandlerRegistry()
	browse := []SessionState{StateGarden, StateCatalog}
	r.Register(KeyBinding{Keys: []string{"up", "k"}, Handler: handleCursorUp, States: browse})
	r.Register(KeyBinding{Keys: []string{"down", "j"}, Handler: handleCursorDown, States: browse})
	r.Register(KeyBinding{Keys: []string{"enter"}, Handler: handleOpen, Description: "open", States: []SessionState{StateGarden}})
	r.Register(KeyBinding{Keys: []string{"enter"}, Handler: handlePlant, Description: "plant", States: []SessionState{StateCatalog}})
	r.Register(KeyBinding{Keys: []string{"c"}, Handler: handleCatalog, Description: "catalog", States: []SessionState{StateGarden}})
	r.Register(KeyBinding{Keys: []string{"x"}, Handler: handleCancelPlant, Description: "cancel plant", States: []SessionState{StateDetail}})
	r.Register(KeyBinding{Keys: []string{"d"}, Handler: handleDeletePlant, Description: "delete", States: []SessionState{StateGarden, StateDetail}})
	r.Register(KeyBinding{Keys: []string{"p"}, Handler: handleReport, Description: "pdf report", States: []SessionState{StateGarden}})
	r.Register(KeyBinding{Keys: []string{"r"}, Handler: handleRefresh, Description: "refresh", States: []SessionState{StateGarden, StateDetail}})
	r.Register(KeyBinding{Keys: []string{"t"}, Handler: handleTheme, Description: "theme", States: browse})
	r.Register(KeyBinding{Keys: []string{"esc"}, Handler: handleBack, Description: "back", States: []SessionState{StateCatalog, StateDetail}})
	r.Register(KeyBinding{Keys: []string{"q"}, Handler: handleQuit, Description: "quit", Priority: -1})
	return r
}
