package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is the trail of menus that led to the current one. Esc walks back along it.
// Every method works on a copy, so a menu holding an older trail still goes back to the right place.
type Breadcrumbs struct {
	trail []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

// Push adds an already built model to the trail
func (b Breadcrumbs) Push(model tea.Model) Breadcrumbs {
	return b.PushNew(func() tea.Model {
		return model
	})
}

// PushNew adds a function that rebuilds the model when it's popped,
// for menus that should show fresh state when returned to.
func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	trail := make([]func() tea.Model, len(b.trail), len(b.trail)+1)
	copy(trail, b.trail)
	b.trail = append(trail, modelFunc)

	log.Debug().Int("depth", len(b.trail)).Msg("breadcrumb pushed")
	return b
}

func (b Breadcrumbs) Len() int {
	return len(b.trail)
}

// Pop builds the last model on the trail. Returns false when the trail is empty.
func (b Breadcrumbs) Pop() (tea.Model, bool) {
	if len(b.trail) == 0 {
		return nil, false
	}

	log.Debug().Int("depth", len(b.trail)-1).Msg("breadcrumb popped")
	return b.trail[len(b.trail)-1](), true
}

func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	if model, ok := b.Pop(); ok {
		return model
	}

	return def()
}
