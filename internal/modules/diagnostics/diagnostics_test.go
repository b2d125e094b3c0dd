package diagnostics_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/modules/diagnostics"
	"github.com/nivahq/niva/internal/modules/preferences"
	"github.com/nivahq/niva/internal/pubsub"
	"github.com/nivahq/niva/internal/testutils"
)

func submission(name string) preferences.Submission {
	d := domain.NewPreferencesDraft()
	d.Set(domain.FieldName, name)
	return preferences.Submission{Draft: d.Clone(), SubmittedAt: time.Now()}
}

func TestSubmissionLogKeepsNewestFirst(t *testing.T) {
	var buf bytes.Buffer
	log := diagnostics.NewSubmissionLog(2, slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := context.Background()

	require.NoError(t, log.Handle(ctx, "v1", submission("a")))
	require.NoError(t, log.Handle(pubsub.WithCorrelationID(ctx, "req-2"), "v2", submission("b")))
	require.NoError(t, log.Handle(ctx, "v3", submission("c")))

	recent := log.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "v3", recent[0].VisitID)
	assert.Equal(t, "b", recent[1].Submission.Draft.Name)

	assert.Contains(t, buf.String(), `"msg":"preferences draft submitted"`)
	assert.Contains(t, buf.String(), `"visit_id":"v1"`)
	assert.Contains(t, buf.String(), `"request_id":"req-2"`)
	assert.Equal(t, "req-2", recent[1].RequestID)
}

func TestSubmittedDraftReachesLog(t *testing.T) {
	app := testutils.NewApp(t,
		preferences.New(),
		diagnostics.New(diagnostics.Dependencies{}),
	)
	c := app.NewClient(t)
	c.HTMX("/navigate", url.Values{"target": {"preferences"}})
	c.HTMX(preferences.TogglePath, url.Values{"causes": {"Healthcare"}})
	submit := c.HTMX(preferences.SubmitPath, url.Values{"name": {"Noor"}})
	requestID := submit.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, requestID)

	log := do.MustInvoke[*diagnostics.SubmissionLog](app.Injector)
	require.Eventually(t, func() bool { return len(log.Recent()) == 1 }, 2*time.Second, 10*time.Millisecond)

	entry := log.Recent()[0]
	assert.Equal(t, c.Visit().ID, entry.VisitID)
	assert.Equal(t, requestID, entry.RequestID, "the submitting request's id reaches the subscriber")
	assert.Equal(t, "Noor", entry.Submission.Draft.Name)
	assert.Equal(t, []string{"Healthcare"}, entry.Submission.Draft.Causes)

	rec := c.Get("/diagnostics/submissions")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []diagnostics.Entry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "Noor", listed[0].Submission.Draft.Name)
}

func TestSubmissionsListingIsRateLimited(t *testing.T) {
	app := testutils.NewApp(t,
		preferences.New(),
		diagnostics.New(diagnostics.Dependencies{RateLimit: 1}),
	)
	c := app.NewClient(t)

	assert.Equal(t, http.StatusOK, c.Get("/diagnostics/submissions").Code)
	assert.Equal(t, http.StatusTooManyRequests, c.Get("/diagnostics/submissions").Code)

	// submitting is never limited
	for i := 0; i < 3; i++ {
		c.HTMX("/navigate", url.Values{"target": {"preferences"}})
		rec := c.HTMX(preferences.SubmitPath, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-view="home"`)
	}
}
