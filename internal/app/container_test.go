package app_test

import (
	"context"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivahq/niva/internal/app"
	"github.com/nivahq/niva/internal/pubsub"
	"github.com/nivahq/niva/internal/shell"
	"github.com/nivahq/niva/internal/testutils"
	"github.com/nivahq/niva/internal/visit"
)

func TestContainerResolvesSharedServices(t *testing.T) {
	cfg := testutils.ConfigForTests(t)
	i := app.NewContainer(cfg)

	bridge := do.MustInvoke[*pubsub.WatermillBridge](i)
	pub := do.MustInvoke[pubsub.Publisher](i)
	sub := do.MustInvoke[pubsub.Subscriber](i)
	assert.Same(t, bridge, pub)
	assert.Same(t, bridge, sub)

	sh, err := do.Invoke[*shell.Shell](i)
	require.NoError(t, err)
	assert.NotNil(t, sh)

	store := do.MustInvoke[*visit.Store](i)
	store.Create()
	assert.Equal(t, 1, store.Len())

	report := i.ShutdownWithContext(context.Background())
	assert.True(t, report.Succeed, report.Error())
	assert.Equal(t, 0, store.Len(), "shutdown clears the visit store")
}

func TestNewModulesNamesAreUnique(t *testing.T) {
	cfg := testutils.ConfigForTests(t)
	seen := map[string]bool{}
	for _, m := range app.NewModules(cfg) {
		assert.False(t, seen[m.Name()], "duplicate module %s", m.Name())
		seen[m.Name()] = true
	}
	assert.Len(t, seen, 4)
}
