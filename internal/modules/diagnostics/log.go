package diagnostics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/nivahq/niva/internal/modules/preferences"
	"github.com/nivahq/niva/internal/pubsub"
)

// Entry is one submission as seen on the bus.
type Entry struct {
	VisitID    string                 `json:"visit_id"`
	RequestID  string                 `json:"request_id,omitempty"`
	Submission preferences.Submission `json:"submission"`
}

// SubmissionLog logs every submitted draft and remembers the most recent
// ones. It is the stand-in for a backend that would act on them.
type SubmissionLog struct {
	mu      sync.Mutex
	entries []Entry
	limit   int
	logger  *slog.Logger
}

// NewSubmissionLog keeps at most limit entries.
func NewSubmissionLog(limit int, logger *slog.Logger) *SubmissionLog {
	return &SubmissionLog{limit: limit, logger: logger}
}

// Handle records a submission. It matches the typed subscriber signature.
func (l *SubmissionLog) Handle(ctx context.Context, visitID string, s preferences.Submission) error {
	d := s.Draft
	requestID := pubsub.CorrelationID(ctx)
	l.logger.InfoContext(ctx, "preferences draft submitted",
		"visit_id", visitID,
		"request_id", requestID,
		"name", d.Name,
		"interests", d.Interests,
		"causes", d.Causes,
		"income", d.Income,
		"comfort_level", d.ComfortLevel,
		"frequency", d.Frequency,
		"geography", d.Geography,
		"submitted_at", s.SubmittedAt,
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Entry{VisitID: visitID, RequestID: requestID, Submission: s})
	if over := len(l.entries) - l.limit; over > 0 {
		l.entries = append(l.entries[:0], l.entries[over:]...)
	}
	return nil
}

// Recent returns the remembered submissions, newest first.
func (l *SubmissionLog) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(out)-1-i] = e
	}
	return out
}
