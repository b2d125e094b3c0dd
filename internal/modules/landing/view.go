package landing

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/view"
	"github.com/nivahq/niva/internal/visit"
)

const heroImage = "https://images.unsplash.com/photo-1582213782179-e0d53f98f2ca?auto=format&fit=crop&w=2070&q=80"

// Render draws the landing page. The snapshot is unused because the page is
// the same for every visitor.
func Render(_ context.Context, _ visit.Snapshot) g.Node {
	return h.Div(h.Class("min-h-screen bg-white"),
		header(),
		hero(),
		stories(domain.Testimonials()),
		steps(domain.Steps()),
		stats(domain.Stats()),
		callToAction(),
		footer(),
	)
}

func header() g.Node {
	return h.Header(h.Class("fixed top-0 left-0 right-0 z-20 p-2 backdrop-blur-md"),
		h.Div(h.Class("max-w-2xl mx-auto flex justify-between items-center"),
			h.Div(h.Class("bg-white px-6 py-3 rounded-full shadow-lg"),
				h.Span(h.Class("text-lg font-bold text-gray-800 tracking-wide"), g.Text("NIVA")),
			),
			view.NavigateButton(domain.ViewPreferences,
				"bg-white/20 backdrop-blur-sm text-white border border-white/30 px-6 py-3 rounded-full font-medium hover:bg-white/30",
				g.Text("Sign In")),
		),
	)
}

func hero() g.Node {
	return h.Div(h.Class("relative min-h-screen flex items-center"),
		h.Div(h.Class("absolute inset-0"),
			h.Div(h.Class("absolute inset-0 bg-cover bg-center"),
				g.Attr("style", fmt.Sprintf("background-image: url('%s')", heroImage))),
			h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-slate-900 via-blue-900 to-slate-800 opacity-85")),
		),
		h.Div(h.Class("relative z-10 max-w-4xl mx-auto px-6 text-center"),
			h.Div(h.Class("mb-6"),
				h.Span(h.Class("inline-block bg-blue-500/20 text-blue-200 px-4 py-2 rounded-full text-sm font-medium border border-blue-400/30"),
					g.Text("Join 12,000+ changemakers")),
			),
			h.H1(h.Class("text-4xl md:text-6xl lg:text-7xl font-bold text-white mb-6 leading-tight"),
				g.Text("Small acts."), h.Br(),
				h.Span(h.Class("text-transparent bg-clip-text bg-gradient-to-r from-blue-300 to-blue-100"), g.Text("Big change.")),
			),
			h.P(h.Class("text-xl md:text-2xl text-slate-200 max-w-2xl mx-auto mb-8 font-light"),
				g.Text("Your $5 becomes someone's meal. Your $20 becomes a child's education. Start making an impact that matters.")),
			h.Div(h.Class("flex justify-center"),
				view.NavigateButton(domain.ViewPreferences,
					"bg-blue-500 hover:bg-blue-600 text-white px-8 py-4 rounded-lg font-semibold text-lg shadow-xl",
					g.Text("Start giving today"), h.Span(h.Class("ml-2"), g.Text("→"))),
			),
			h.P(h.Class("text-slate-300 text-sm mt-4"), g.Text("No signup fees • Cancel anytime • 100% transparent")),
		),
	)
}

func stories(items []domain.Testimonial) g.Node {
	return h.Section(h.ID("stories"), h.Class("py-20 px-4 bg-slate-50"),
		h.Div(h.Class("max-w-6xl mx-auto"),
			h.Div(h.Class("text-center mb-12"),
				h.H2(h.Class("text-3xl md:text-4xl font-bold text-slate-800 mb-4"), g.Text("Real stories. Real impact.")),
				h.P(h.Class("text-lg text-slate-600 max-w-2xl mx-auto"),
					g.Text("We connect your generosity with verified causes worldwide. Here's what your donations make possible.")),
			),
			h.Div(h.Class("grid md:grid-cols-3 gap-6"),
				g.Map(items, func(t domain.Testimonial) g.Node {
					return h.Article(h.Class("bg-white rounded-xl p-6 shadow-sm border border-slate-100"),
						h.Div(h.Class(fmt.Sprintf("w-10 h-10 bg-%s-100 rounded-lg mb-4", t.Accent))),
						h.H3(h.Class("text-lg font-semibold text-slate-800 mb-2"), g.Text(t.Title)),
						h.P(h.Class("text-slate-600 mb-3 text-sm"), g.Text("\"" + t.Quote + "\"")),
						h.Div(h.Class("text-xs text-slate-500"), g.Text(t.Location)),
					)
				}),
			),
		),
	)
}

func steps(items []domain.Step) g.Node {
	return h.Section(h.ID("steps"), h.Class("py-16 px-4 bg-white"),
		h.Div(h.Class("max-w-4xl mx-auto text-center"),
			h.H2(h.Class("text-3xl font-bold text-slate-800 mb-12"), g.Text("Three steps. Maximum impact.")),
			h.Div(h.Class("grid md:grid-cols-3 gap-8"),
				g.Map(items, func(s domain.Step) g.Node {
					return h.Div(h.Class("text-center"),
						h.Div(h.Class("w-16 h-16 bg-blue-500 rounded-2xl flex items-center justify-center mx-auto mb-4"),
							h.Span(h.Class("text-2xl font-bold text-white"), g.Textf("%d", s.Number))),
						h.H3(h.Class("text-lg font-semibold text-slate-800 mb-2"), g.Text(s.Title)),
						h.P(h.Class("text-slate-600"), g.Text(s.Body)),
					)
				}),
			),
		),
	)
}

// statValue prefers the preformatted display and otherwise groups thousands.
func statValue(s domain.Stat) string {
	if s.Display != "" {
		return s.Display
	}
	return humanize.Comma(s.Value)
}

func stats(items []domain.Stat) g.Node {
	return h.Section(h.ID("stats"), h.Class("py-12 px-4 bg-gradient-to-r from-slate-800 to-slate-900"),
		h.Div(h.Class("max-w-3xl mx-auto grid grid-cols-2 md:grid-cols-4 gap-6 text-center"),
			g.Map(items, func(s domain.Stat) g.Node {
				return h.Div(
					h.Div(h.Class("text-2xl md:text-3xl font-bold text-white mb-1"), g.Text(statValue(s))),
					h.Div(h.Class("text-slate-300 text-sm"), g.Text(s.Caption)),
				)
			}),
		),
	)
}

func callToAction() g.Node {
	return h.Section(h.Class("py-20 px-4 bg-blue-600"),
		h.Div(h.Class("max-w-3xl mx-auto text-center"),
			h.H2(h.Class("text-3xl md:text-4xl font-bold text-white mb-6"), g.Text("Ready to make a difference?")),
			h.P(h.Class("text-xl text-blue-100 mb-8"),
				g.Text("Join thousands of people creating positive change, one donation at a time.")),
			view.NavigateButton(domain.ViewPreferences,
				"bg-white text-blue-600 px-8 py-4 rounded-lg font-semibold text-lg hover:bg-slate-50 shadow-lg",
				g.Text("Get started now")),
		),
	)
}

var supportLinks = []string{"How it works", "Find projects", "Help center", "Contact us"}

func footer() g.Node {
	return h.Footer(h.Class("bg-slate-900 text-white py-12 px-4"),
		h.Div(h.Class("max-w-4xl mx-auto"),
			h.Div(h.Class("grid md:grid-cols-3 gap-8 mb-8"),
				h.Div(
					h.H3(h.Class("text-xl font-bold mb-4"), g.Text("Niva")),
					h.P(h.Class("text-slate-400 text-sm mb-4"), g.Text("Connecting generous hearts with meaningful causes worldwide.")),
					h.Div(h.Class("text-sm text-slate-500"), g.Text("🔒 Secure platform • 📊 Full transparency • 🌍 Global reach")),
				),
				h.Div(
					h.H4(h.Class("font-semibold mb-3"), g.Text("Support")),
					h.Ul(h.Class("space-y-2 text-slate-400 text-sm"),
						g.Map(supportLinks, func(label string) g.Node {
							return h.Li(h.A(h.Href("#"), h.Class("hover:text-white"), g.Text(label)))
						}),
					),
				),
				h.Div(
					h.H4(h.Class("font-semibold mb-3"), g.Text("Get in touch")),
					h.Div(h.Class("space-y-3 text-slate-400 text-sm"),
						h.Div(g.Text("hello@niva.org")),
						h.Div(g.Text("(555) 123-4567")),
					),
				),
			),
			h.Div(h.Class("border-t border-slate-800 pt-6 text-center"),
				h.P(h.Class("text-slate-500 text-sm"), g.Text("© 2025 Niva • Made with care for a better world")),
			),
		),
	)
}
