package navigation

import (
	"testing"

	"github.com/nivahq/niva/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNavigatorStartsOnLanding(t *testing.T) {
	assert.Equal(t, domain.ViewLanding, New().Current())
}

func TestNavigatorRoundTrip(t *testing.T) {
	n := New()
	path := []domain.View{
		domain.ViewPreferences,
		domain.ViewHome,
		domain.ViewPreferences,
		domain.ViewLanding,
		domain.ViewHome,
	}
	for _, v := range path {
		got := n.Navigate(v)
		assert.Equal(t, v, got)
		assert.Equal(t, v, n.Current())
	}
}

func TestNavigatorUnknownFailsClosed(t *testing.T) {
	n := New()
	n.Navigate(domain.ViewHome)

	got := n.Navigate(domain.View("homepage"))
	assert.Equal(t, domain.ViewLanding, got)
	assert.Equal(t, domain.ViewLanding, n.Current())
}

func TestNavigatorNotifiesListenersInOrder(t *testing.T) {
	n := New()
	var calls []string
	n.OnChange(func(from, to domain.View) {
		calls = append(calls, "first:"+from.String()+">"+to.String())
	})
	n.OnChange(func(from, to domain.View) {
		calls = append(calls, "second:"+from.String()+">"+to.String())
	})

	n.Navigate(domain.ViewPreferences)

	assert.Equal(t, []string{
		"first:landing>preferences",
		"second:landing>preferences",
	}, calls)
}
