package preferences

import (
	"time"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/pubsub"
)

// Submission is the payload published when a visitor saves the form. It is
// the only place the draft leaves the visit.
type Submission struct {
	Draft       domain.PreferencesDraft `json:"draft"`
	SubmittedAt time.Time               `json:"submitted_at"`
}

// DraftSubmitted announces a saved preferences form.
var DraftSubmitted = pubsub.NewEvent[Submission](
	"preferences.draft.submitted",
	"A visitor saved the preferences form",
)

func exampleSubmission() Submission {
	d := domain.NewPreferencesDraft()
	d.Set(domain.FieldName, "Asha")
	d.Toggle(domain.FieldInterests, "education")
	d.Toggle(domain.FieldCauses, "Water & Sanitation")
	d.Set(domain.FieldFrequency, "monthly")
	return Submission{
		Draft:       d.Clone(),
		SubmittedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
