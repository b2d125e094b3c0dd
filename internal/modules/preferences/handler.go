package preferences

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/middleware"
	"github.com/nivahq/niva/internal/pubsub"
	"github.com/nivahq/niva/internal/shell"
	"github.com/nivahq/niva/internal/view"
	"github.com/nivahq/niva/internal/visit"
)

// Form endpoints. The module is mounted under /preferences.
const (
	FieldPath  = "/preferences/field"
	TogglePath = "/preferences/toggle"
	SubmitPath = "/preferences/submit"
)

// singleFields are applied from any posted form; each is optional.
var singleFields = []string{
	domain.FieldName,
	domain.FieldFreeTextInterests,
	domain.FieldIncome,
	domain.FieldComfortLevel,
	domain.FieldFrequency,
	domain.FieldGeography,
}

var multiFields = []string{domain.FieldInterests, domain.FieldCauses}

// Handler serves the preferences form endpoints.
type Handler struct {
	shell     *shell.Shell
	publisher pubsub.Publisher
	now       func() time.Time
}

// NewHandler creates a preferences handler.
func NewHandler(sh *shell.Shell, publisher pubsub.Publisher) *Handler {
	return &Handler{shell: sh, publisher: publisher, now: time.Now}
}

// applyFields copies the posted single-valued fields into d. Fields that are
// absent from the form are left alone.
func applyFields(d *domain.PreferencesDraft, form url.Values) {
	for _, f := range singleFields {
		if _, ok := form[f]; ok {
			d.Set(f, form.Get(f))
		}
	}
}

func formAndVisit(c echo.Context) (url.Values, *visit.Visit, error) {
	v := visit.FromContext(c)
	if v == nil {
		return nil, nil, shell.ErrNoVisit
	}
	form, err := c.FormParams()
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "malformed form").SetInternal(err)
	}
	return form, v, nil
}

// FieldPost updates single-valued fields.
func (h *Handler) FieldPost(c echo.Context) error {
	form, v, err := formAndVisit(c)
	if err != nil {
		return err
	}
	v.UpdateDraft(func(d *domain.PreferencesDraft) {
		applyFields(d, form)
	})
	return h.shell.Respond(c)
}

// TogglePost flips one interest or cause. The posted form may also carry the
// text fields, which are kept so nothing typed is lost.
func (h *Handler) TogglePost(c echo.Context) error {
	form, v, err := formAndVisit(c)
	if err != nil {
		return err
	}
	v.UpdateDraft(func(d *domain.PreferencesDraft) {
		applyFields(d, form)
		for _, f := range multiFields {
			if option := form.Get(f); option != "" {
				d.Toggle(f, option)
			}
		}
	})
	return h.shell.Respond(c)
}

// SubmitPost saves the form and moves the visit to home. Nothing is
// validated; an incomplete draft is submitted as is.
func (h *Handler) SubmitPost(c echo.Context) error {
	form, v, err := formAndVisit(c)
	if err != nil {
		return err
	}
	v.UpdateDraft(func(d *domain.PreferencesDraft) {
		applyFields(d, form)
	})
	draft := v.SubmitDraft()

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	submission := Submission{Draft: draft, SubmittedAt: h.now().UTC()}
	if err := pubsub.Publish(ctx, h.publisher, DraftSubmitted, v.ID, submission); err != nil {
		// The visitor still moves on to home.
		logger.Warn("could not publish submitted preferences", "visit_id", v.ID, "error", err)
		view.SetFlashError(c, notRecordedMessage)
		return h.shell.Respond(c)
	}
	logger.Info("preferences submitted",
		"visit_id", v.ID,
		"interests", len(draft.Interests),
		"causes", len(draft.Causes))

	view.SetFlashSuccess(c, savedMessage(draft.Name))
	return h.shell.Respond(c)
}

const notRecordedMessage = "We could not record your preferences this time. You can update them from Settings."

func savedMessage(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Your preferences are saved."
	}
	return fmt.Sprintf("Thanks, %s! Your preferences are saved.", name)
}
