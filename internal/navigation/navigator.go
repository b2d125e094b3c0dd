// Package navigation holds the current-view state of a single visit.
package navigation

import "github.com/nivahq/niva/internal/domain"

// Listener is called after every navigation with the previous and the new
// view.
type Listener func(from, to domain.View)

// Navigator owns the current view identifier. It is not safe for concurrent
// use; the owning visit serialises access.
type Navigator struct {
	current   domain.View
	listeners []Listener
}

// New returns a Navigator positioned on the landing view.
func New() *Navigator {
	return &Navigator{current: domain.ViewLanding}
}

// Current returns the view that should be rendered.
func (n *Navigator) Current() domain.View {
	return n.current
}

// Navigate switches to target and notifies listeners. Unknown targets land on
// the landing view. It returns the view actually selected.
func (n *Navigator) Navigate(target domain.View) domain.View {
	to := domain.ParseView(string(target))
	from := n.current
	n.current = to
	for _, l := range n.listeners {
		l(from, to)
	}
	return to
}

// OnChange registers l to be called after each navigation, in registration
// order.
func (n *Navigator) OnChange(l Listener) {
	n.listeners = append(n.listeners, l)
}
