// Package visit keeps the per-visitor view state in memory.
//
// A Visit bundles the navigator together with the local state of the views
// it selects. Entering a view starts that view with fresh state, so the
// preferences draft and the home toggles only live as long as their view is
// on screen.
package visit

import (
	"sync"
	"time"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/navigation"
)

// Visit is the state of one visitor. All methods are safe for concurrent use.
type Visit struct {
	ID string

	mu       sync.Mutex
	nav      *navigation.Navigator
	draft    *domain.PreferencesDraft
	home     *domain.HomeState
	lastSeen time.Time
}

// Snapshot is a consistent copy of a visit used for rendering.
type Snapshot struct {
	ID    string
	View  domain.View
	Draft domain.PreferencesDraft
	Home  domain.HomeState
}

func newVisit(id string, now time.Time) *Visit {
	v := &Visit{
		ID:       id,
		nav:      navigation.New(),
		draft:    domain.NewPreferencesDraft(),
		home:     domain.NewHomeState(),
		lastSeen: now,
	}
	v.nav.OnChange(v.mount)
	return v
}

// mount resets the local state of the view being entered. It runs under v.mu
// because it is only reached through Navigate.
func (v *Visit) mount(from, to domain.View) {
	if from == to {
		return
	}
	switch to {
	case domain.ViewPreferences:
		v.draft = domain.NewPreferencesDraft()
	case domain.ViewHome:
		v.home = domain.NewHomeState()
	}
}

// Current returns the active view.
func (v *Visit) Current() domain.View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.Current()
}

// Navigate changes the active view and returns the view selected.
func (v *Visit) Navigate(target domain.View) domain.View {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.nav.Navigate(target)
}

// UpdateDraft applies fn to the draft.
func (v *Visit) UpdateDraft(fn func(d *domain.PreferencesDraft)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.draft)
}

// SubmitDraft takes a copy of the draft and moves the visit to the home view.
// The draft itself is discarded.
func (v *Visit) SubmitDraft() domain.PreferencesDraft {
	v.mu.Lock()
	defer v.mu.Unlock()
	submitted := v.draft.Clone()
	v.draft = domain.NewPreferencesDraft()
	v.nav.Navigate(domain.ViewHome)
	return submitted
}

// UpdateHome applies fn to the home view state.
func (v *Visit) UpdateHome(fn func(s *domain.HomeState)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	fn(v.home)
}

// Snapshot returns a copy of the visit state.
func (v *Visit) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot{
		ID:    v.ID,
		View:  v.nav.Current(),
		Draft: v.draft.Clone(),
		Home:  *v.home,
	}
}

func (v *Visit) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

func (v *Visit) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return now.Sub(v.lastSeen)
}
