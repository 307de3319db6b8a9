package engine

import "github.com/google/uuid"

// Theme is the ambient presentation variant broadcast to every live editor.
// The engine only carries the name; rendering maps it to actual styles.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Registry is the explicit broadcast collaborator shared by the editors of
// one program. It holds non-owning references: editors register on
// construction and unregister on Close. Besides the theme broadcast it
// enforces the two cross-instance exclusivity singletons — the paste prompt
// and the header drag — where acquiring releases any previous holder. No
// other state is shared between instances.
type Registry struct {
	editors     map[uuid.UUID]*Editor
	theme       Theme
	pastePrompt *Editor
	headerDrag  *Editor
}

func NewRegistry() *Registry {
	return &Registry{editors: make(map[uuid.UUID]*Editor), theme: ThemeDark}
}

func (r *Registry) register(e *Editor) {
	r.editors[e.id] = e
	e.applyTheme(r.theme)
}

func (r *Registry) unregister(e *Editor) {
	delete(r.editors, e.id)
	if r.pastePrompt == e {
		r.pastePrompt = nil
	}
	if r.headerDrag == e {
		r.headerDrag = nil
	}
}

func (r *Registry) Count() int   { return len(r.editors) }
func (r *Registry) Theme() Theme { return r.theme }

// SetTheme broadcasts the ambient theme to every live editor.
func (r *Registry) SetTheme(th Theme) {
	r.theme = th
	for _, e := range r.editors {
		e.applyTheme(th)
	}
}

// AcquirePastePrompt makes e the single instance showing a paste prompt.
func (r *Registry) AcquirePastePrompt(e *Editor) {
	r.pastePrompt = e
}

// ReleasePastePrompt clears the singleton if e still holds it.
func (r *Registry) ReleasePastePrompt(e *Editor) {
	if r.pastePrompt == e {
		r.pastePrompt = nil
	}
}

func (r *Registry) PastePromptHolder() *Editor { return r.pastePrompt }

// AcquireHeaderDrag makes e the single instance being header-dragged.
func (r *Registry) AcquireHeaderDrag(e *Editor) {
	r.headerDrag = e
}

func (r *Registry) ReleaseHeaderDrag(e *Editor) {
	if r.headerDrag == e {
		r.headerDrag = nil
	}
}

func (r *Registry) HeaderDragHolder() *Editor { return r.headerDrag }
