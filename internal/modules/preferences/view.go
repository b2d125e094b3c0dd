package preferences

import (
	"context"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/view"
	"github.com/nivahq/niva/internal/visit"
)

const (
	formID = "preferences-form"

	chipOn  = "px-4 py-3 rounded-full text-sm font-medium bg-blue-600 text-white"
	chipOff = "px-4 py-3 rounded-full text-sm font-medium bg-gray-100 text-gray-700 hover:bg-blue-50"
	tileOn  = "px-4 py-3 rounded-lg text-sm font-medium bg-blue-600 text-white"
	tileOff = "px-4 py-3 rounded-lg text-sm font-medium bg-gray-100 text-gray-700 hover:bg-blue-50"

	inputClass = "w-full px-4 py-3 border border-gray-200 rounded-lg focus:ring-2 focus:ring-blue-500 focus:border-transparent"
	labelClass = "block text-sm font-medium text-gray-700 mb-2"
)

// InterestLabel is the display form of an interest value.
func InterestLabel(interest string) string {
	// Casers keep state, so each call gets its own.
	return cases.Title(language.English).String(interest)
}

// Render draws the intake form for the snapshot's draft.
func Render(_ context.Context, snap visit.Snapshot) g.Node {
	d := snap.Draft
	return h.Div(h.Class("min-h-screen bg-gradient-to-br from-blue-50 to-slate-100"),
		h.Div(h.Class("max-w-2xl mx-auto px-4 py-8"),
			header(),
			h.Form(h.ID(formID), h.Method("post"), h.Action(SubmitPath), h.Class("space-y-6"),
				hx.Post(SubmitPath), hx.Target("#"+view.AppID), hx.Swap("outerHTML"),
				// Enter in a text box submits the form rather than the first chip.
				h.Button(h.Type("submit"), h.Class("hidden"), g.Attr("tabindex", "-1"), g.Attr("aria-hidden", "true")),
				personal(d),
				about(d),
				interests(d),
				causes(d),
				income(d),
				comfort(d),
				frequency(d),
				geography(d),
				card(h.Button(h.Type("submit"),
					h.Class("w-full bg-blue-600 text-white py-4 px-6 rounded-lg font-medium hover:bg-blue-700"),
					g.Text("Save Preferences"))),
			),
		),
	)
}

func header() g.Node {
	return h.Div(h.Class("bg-white rounded-lg shadow-sm p-6 mb-6"),
		h.Div(h.Class("flex items-center mb-4"),
			view.NavigateButton(domain.ViewLanding, "flex items-center text-blue-600 hover:text-blue-800 mr-3",
				g.Attr("aria-label", "Back"), g.Text("‹")),
			h.H1(h.Class("text-2xl font-semibold text-gray-800"), g.Text("Preferences")),
		),
		h.P(h.Class("text-gray-600"),
			g.Text("Help us personalize your donation experience. This information helps us suggest causes and amounts that align with your interests.")),
	)
}

func card(children ...g.Node) g.Node {
	return h.Div(append([]g.Node{h.Class("bg-white rounded-lg shadow-sm p-6")}, children...)...)
}

func heading(text string) g.Node {
	return h.H2(h.Class("text-lg font-medium text-gray-800 mb-4"), g.Text(text))
}

// autosave posts the whole form when the control changes. The server keeps
// the value; the page is not swapped so typing is never interrupted.
func autosave() g.Node {
	return g.Group{hx.Post(FieldPath), hx.Trigger("change"), hx.Swap("none")}
}

// swapButton submits the form to path and swaps the application root with
// the answer. name and value say what was clicked.
func swapButton(path, name, value, class string, children ...g.Node) g.Node {
	return h.Button(append([]g.Node{
		h.Type("submit"),
		h.Name(name),
		h.Value(value),
		g.Attr("formaction", path),
		hx.Post(path),
		hx.Target("#" + view.AppID),
		hx.Swap("outerHTML"),
		h.Class(class),
	}, children...)...)
}

func classIf(on bool, yes, no string) string {
	if on {
		return yes
	}
	return no
}

func personal(d domain.PreferencesDraft) g.Node {
	return card(
		heading("Personal Information"),
		h.Label(h.Class(labelClass), g.Text("What's your name? *")),
		h.Input(h.Type("text"), h.Name(domain.FieldName), h.Value(d.Name),
			h.Placeholder("Enter your name"), h.Class(inputClass), autosave()),
	)
}

func about(d domain.PreferencesDraft) g.Node {
	return card(
		heading("Tell Us About Yourself"),
		h.Label(h.Class(labelClass),
			g.Text("Tell me about what you're passionate about and what drives you to want to make a difference *")),
		h.Textarea(h.Name(domain.FieldFreeTextInterests), g.Attr("rows", "4"),
			h.Placeholder("Share your passions and motivations..."),
			h.Class(inputClass+" resize-none"), autosave(),
			g.Text(d.FreeTextInterests)),
	)
}

func interests(d domain.PreferencesDraft) g.Node {
	return card(
		heading("What are you passionate about? (Select all that apply) *"),
		h.Div(h.ID("interests"), h.Class("grid grid-cols-2 md:grid-cols-3 gap-3"),
			g.Map(domain.InterestOptions, func(opt string) g.Node {
				on := d.Has(domain.FieldInterests, opt)
				return swapButton(TogglePath, domain.FieldInterests, opt, classIf(on, chipOn, chipOff),
					g.If(on, h.Data("selected", "true")),
					g.Text(InterestLabel(opt)))
			}),
		),
	)
}

func causes(d domain.PreferencesDraft) g.Node {
	return card(
		heading("Which causes matter most to you? *"),
		h.Div(h.ID("causes"), h.Class("grid grid-cols-1 md:grid-cols-2 gap-3"),
			g.Map(domain.CauseOptions, func(opt string) g.Node {
				on := d.Has(domain.FieldCauses, opt)
				return swapButton(TogglePath, domain.FieldCauses, opt, classIf(on, chipOn, chipOff),
					g.If(on, h.Data("selected", "true")),
					g.Text(opt))
			}),
		),
	)
}

func income(d domain.PreferencesDraft) g.Node {
	return card(
		heading("Financial Information"),
		h.Label(h.Class(labelClass),
			g.Text("What's your approximate monthly income? (This helps us suggest appropriate amounts) *")),
		h.Select(h.Name(domain.FieldIncome), h.Class(inputClass), autosave(),
			h.Option(h.Value(""), g.Text("Select income range")),
			g.Map(domain.IncomeBands, func(o domain.Option) g.Node {
				return h.Option(h.Value(o.Value), g.If(d.Income == o.Value, h.Selected()), g.Text(o.Label))
			}),
		),
	)
}

func comfort(d domain.PreferencesDraft) g.Node {
	return card(
		heading("How comfortable are you with regular donations? *"),
		h.Div(h.Class("space-y-3"),
			g.Map(domain.ComfortLevels, func(o domain.Option) g.Node {
				return h.Label(h.Class("flex items-center"),
					h.Input(h.Type("radio"), h.Name(domain.FieldComfortLevel), h.Value(o.Value),
						g.If(d.ComfortLevel == o.Value, h.Checked()),
						h.Class("w-4 h-4 text-blue-600 border-gray-300"), autosave()),
					h.Span(h.Class("ml-3 text-gray-700"), g.Text(o.Label)),
				)
			}),
		),
	)
}

func tiles(field, current string, options []domain.Option) g.Node {
	return h.Div(h.ID(field), h.Class("grid grid-cols-3 gap-3"),
		g.Map(options, func(o domain.Option) g.Node {
			on := current == o.Value
			return swapButton(FieldPath, field, o.Value, classIf(on, tileOn, tileOff),
				g.If(on, h.Data("selected", "true")),
				g.Text(o.Label))
		}),
	)
}

func frequency(d domain.PreferencesDraft) g.Node {
	return card(
		heading("Donation Frequency"),
		h.Label(h.Class(labelClass), g.Text("How often would you prefer to donate? *")),
		tiles(domain.FieldFrequency, d.Frequency, domain.Frequencies),
	)
}

func geography(d domain.PreferencesDraft) g.Node {
	return card(
		heading("Impact Scope"),
		h.Label(h.Class(labelClass), g.Text("Where would you like your impact to be? *")),
		tiles(domain.FieldGeography, d.Geography, domain.Geographies),
	)
}
