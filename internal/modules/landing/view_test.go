package landing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/visit"
)

func renderLanding(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Render(context.Background(), visit.Snapshot{}).Render(&b))
	return b.String()
}

func TestRenderLanding(t *testing.T) {
	html := renderLanding(t)

	assert.Contains(t, html, "Real stories. Real impact.")
	assert.Contains(t, html, "Three steps. Maximum impact.")
	assert.Contains(t, html, "Ready to make a difference?")
	for _, s := range domain.Steps() {
		assert.Contains(t, html, s.Title)
	}
	assert.Contains(t, html, "Local Food Bank")
}

func TestLandingActionsGoToPreferences(t *testing.T) {
	html := renderLanding(t)

	assert.Equal(t, 3, strings.Count(html, `name="target" value="preferences"`))
	assert.NotContains(t, html, `value="home"`)
	for _, label := range []string{"Sign In", "Start giving today", "Get started now"} {
		assert.Contains(t, html, label)
	}
}

func TestStatValue(t *testing.T) {
	stats := domain.Stats()
	assert.Equal(t, "$2.4M", statValue(stats[0]))
	assert.Equal(t, "12,847", statValue(stats[1]))
	assert.Equal(t, "89", statValue(stats[2]))
	assert.Equal(t, "1,000,000", statValue(domain.Stat{Value: 1000000}))

	assert.Contains(t, renderLanding(t), ">12,847<")
}
