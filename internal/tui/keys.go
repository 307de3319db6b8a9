package tui

import "github.com/charmbracelet/bubbles/key"

type Action string

const (
	actionQuit        Action = "quit"
	actionNextEditor  Action = "next_editor"
	actionPrevEditor  Action = "prev_editor"
	actionToggleTheme Action = "toggle_theme"
	actionConfirm     Action = "confirm"
	actionCancel      Action = "cancel"
)

// Binding ties an action to its physical keys within a scope.
type Binding struct {
	Action Action
	Keys   []string
	Help   string
}

const (
	scopeGlobal = "global"
	scopePaste  = "paste"
)

// KeyRegistry resolves key names to actions per scope. Editing keys are not
// listed here; those go through the engine's own classifier so the editors
// behave the same under any host.
type KeyRegistry struct {
	byScope map[string][]Binding
	index   map[string]map[string]Action
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{byScope: map[string][]Binding{}, index: map[string]map[string]Action{}}
	r.add(scopeGlobal, Binding{Action: actionQuit, Keys: []string{"q", "ctrl+c"}, Help: "quit"})
	r.add(scopeGlobal, Binding{Action: actionNextEditor, Keys: []string{"tab"}, Help: "next editor"})
	r.add(scopeGlobal, Binding{Action: actionPrevEditor, Keys: []string{"shift+tab"}, Help: "prev editor"})
	r.add(scopeGlobal, Binding{Action: actionToggleTheme, Keys: []string{"t"}, Help: "theme"})
	r.add(scopePaste, Binding{Action: actionConfirm, Keys: []string{"enter"}, Help: "paste"})
	r.add(scopePaste, Binding{Action: actionCancel, Keys: []string{"esc"}, Help: "cancel"})
	return r
}

func (r *KeyRegistry) add(scope string, b Binding) {
	r.byScope[scope] = append(r.byScope[scope], b)
	if r.index[scope] == nil {
		r.index[scope] = map[string]Action{}
	}
	for _, k := range b.Keys {
		r.index[scope][k] = b.Action
	}
}

// Lookup resolves a key name in a scope; the empty action means unbound.
func (r *KeyRegistry) Lookup(scope, keyName string) Action {
	return r.index[scope][keyName]
}

// HelpBindings exports a scope's bindings for the bubbles help widget.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	var out []key.Binding
	for _, b := range r.byScope[scope] {
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}
