// Package modal implements the overlay dialog lifecycle shared by the add,
// view and edit dialogs.
package modal

// Surface is the rendering target of one dialog. Implementations mirror the
// visible flag into whatever display mechanism backs them.
type Surface interface {
	// SetVisible shows or hides the surface and updates its
	// hidden-from-assistive-tech marker to match.
	SetVisible(visible bool)

	// Visible reports the surface's live display state.
	Visible() bool
}

// Modal drives one dialog over a Surface. Open state is always read from
// the surface rather than tracked separately, so external display changes
// are picked up instead of fought.
type Modal struct {
	surface Surface
}

// New creates a modal over the given surface.
func New(surface Surface) *Modal {
	return &Modal{surface: surface}
}

// Open shows the dialog.
func (m *Modal) Open() {
	m.surface.SetVisible(true)
}

// Close hides the dialog.
func (m *Modal) Close() {
	m.surface.SetVisible(false)
}

// IsOpen reports whether the dialog is currently shown.
func (m *Modal) IsOpen() bool {
	return m.surface.Visible()
}

// HandleBackdropClick closes the dialog when the click landed on the dialog
// root itself rather than a descendant. Returns whether the dialog closed.
func (m *Modal) HandleBackdropClick(targetIsRoot bool) bool {
	if !targetIsRoot || !m.IsOpen() {
		return false
	}
	m.Close()
	return true
}

// HandleEscape closes the dialog if it is open. Returns whether the dialog
// closed.
func (m *Modal) HandleEscape() bool {
	if !m.IsOpen() {
		return false
	}
	m.Close()
	return true
}
