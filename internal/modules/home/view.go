package home

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nivahq/niva/internal/domain"
	"github.com/nivahq/niva/internal/view"
	"github.com/nivahq/niva/internal/visit"
)

const (
	searchResultsID = "search-results"
	// incentivePreview is how many incentives the panel lists under the total.
	incentivePreview = 2
)

// Render draws the dashboard with the visit's layout state.
func Render(_ context.Context, snap visit.Snapshot) g.Node {
	s := snap.Home
	return h.Div(h.Class("min-h-screen bg-gray-50 flex flex-col"),
		header(s, domain.CurrentEngagement()),
		h.Div(h.Class("flex flex-1 overflow-hidden"),
			sidebar(s, domain.CurrentMonth()),
			mainContent(domain.FeedPosts(), domain.CurrentEngagement()),
			rightPanel(s, domain.DonationPlans(), domain.Badges(), domain.Incentives()),
		),
	)
}

func header(s domain.HomeState, e domain.Engagement) g.Node {
	return h.Header(h.Class("bg-white border-b border-gray-200 px-6 py-4 sticky top-0 z-40"),
		h.Div(h.Class("flex items-center justify-between"),
			h.Div(h.Class("flex items-center gap-2"),
				h.Div(h.Class("w-8 h-8 bg-blue-600 rounded-lg flex items-center justify-center"),
					h.Span(h.Class("text-white font-bold text-sm"), g.Text("N"))),
				h.H1(h.Class("text-xl font-semibold text-gray-900 tracking-tight"), g.Text("NIVA")),
				h.Span(h.Class("bg-gray-100 text-gray-600 text-xs px-2 py-1 rounded-full"), g.Text("AI Powered")),
			),
			searchBox(s),
			h.Div(h.Class("flex items-center gap-6"),
				h.Div(h.Class("flex items-center gap-2 bg-yellow-50 text-yellow-700 px-3 py-2 rounded-lg"),
					h.Span(h.Class("text-sm font-medium"), g.Textf("%d day streak", e.StreakDays))),
				h.Div(h.Class("flex items-center gap-2 bg-blue-50 text-blue-700 px-3 py-2 rounded-lg"),
					h.Span(h.Class("text-sm font-medium"), g.Text(humanize.Comma(int64(e.Points))+" points"))),
				view.NavigateButton(domain.ViewPreferences, "p-2 hover:bg-gray-100 rounded-lg text-gray-500",
					g.Attr("title", "Settings"), g.Text("Settings")),
				view.NavigateButton(domain.ViewLanding, "p-2 hover:bg-gray-100 rounded-lg text-gray-500",
					g.Attr("title", "Logout"), g.Text("Logout")),
			),
		),
	)
}

func searchBox(s domain.HomeState) g.Node {
	return h.Form(h.Method("post"), h.Action(SearchPath), h.Class("flex-1 max-w-md mx-8 relative"),
		h.Input(h.Type("search"), h.Name("q"), h.Value(s.SearchQuery),
			h.Placeholder("Discover causes that match your values..."),
			g.Attr("autocomplete", "off"),
			h.Class("w-full pl-4 pr-4 py-2 bg-gray-50 border border-gray-200 rounded-lg text-sm focus:ring-2 focus:ring-blue-500"),
			hx.Post(SearchPath),
			hx.Trigger("input changed delay:300ms, search"),
			hx.Target("#"+searchResultsID),
			hx.Swap("outerHTML"),
		),
		suggestions(s),
	)
}

// suggestions is the dropdown under the search box. The container is always
// rendered so htmx has something to swap.
func suggestions(s domain.HomeState) g.Node {
	return h.Div(h.ID(searchResultsID),
		g.If(s.ShowSuggestions(),
			h.Div(h.Class("absolute top-full mt-2 w-full bg-white border border-gray-200 rounded-lg shadow-lg z-50 p-2"),
				h.Div(h.Class("text-xs text-gray-500 mb-2 px-2"), g.Text("AI Suggested Matches")),
				g.Map(domain.Suggestions(), func(r domain.Suggestion) g.Node {
					return h.Div(h.Class("suggestion flex items-center justify-between p-3 rounded-lg hover:bg-gray-50"),
						h.Div(
							h.Div(h.Class("font-medium text-sm text-gray-900"), g.Text(r.Title)),
							h.Div(h.Class("text-xs text-gray-500"), g.Text(r.Category)),
						),
						h.Div(h.Class("text-xs text-blue-600 font-medium"), g.Textf("%d%% match", r.Match)),
					)
				}),
			),
		),
	)
}

func sidebar(s domain.HomeState, month domain.MonthSummary) g.Node {
	collapsed := s.SidebarCollapsed
	toggleLabel := "Menu"
	if collapsed {
		toggleLabel = "☰"
	}
	return h.Aside(h.ID("sidebar"), h.Class("bg-white border-r border-gray-200 relative z-30 "+s.SidebarWidth()),
		h.Data("collapsed", strconv.FormatBool(collapsed)),
		h.Div(h.Class("p-4 border-b border-gray-200"),
			view.ActionButton(SidebarPath, nil, "w-full flex items-center p-2 rounded-lg hover:bg-gray-50",
				h.Span(h.Class("font-medium text-gray-700"), g.Text(toggleLabel))),
		),
		h.Div(h.Class("p-4"),
			h.Nav(h.Class("space-y-2"),
				g.Map(domain.SidebarMenu, func(item domain.MenuItem) g.Node {
					class := "w-full flex items-center gap-3 p-3 rounded-lg text-sm font-medium text-gray-600 hover:bg-gray-50"
					active := s.ActiveTab == item.Tab
					if active {
						class = "w-full flex items-center gap-3 p-3 rounded-lg text-sm font-medium bg-blue-50 text-blue-700 border border-blue-200"
					}
					return view.ActionButton(TabPath, []view.Field{{Name: "tab", Value: string(item.Tab)}}, class,
						g.If(active, h.Data("active", "true")),
						g.If(collapsed, g.Attr("title", item.Label)),
						g.If(!collapsed, h.Span(g.Text(item.Label))),
					)
				}),
			),
			g.If(!collapsed, thisMonth(month)),
		),
	)
}

func thisMonth(m domain.MonthSummary) g.Node {
	row := func(label, value, valueClass string) g.Node {
		return h.Div(h.Class("flex justify-between items-center"),
			h.Span(h.Class("text-sm text-gray-600"), g.Text(label)),
			h.Span(h.Class("text-sm font-semibold "+valueClass), g.Text(value)),
		)
	}
	return h.Div(h.ID("this-month"), h.Class("mt-8 p-4 bg-gray-50 rounded-lg"),
		h.H3(h.Class("text-sm font-semibold text-gray-700 mb-3"), g.Text("This Month")),
		h.Div(h.Class("space-y-3"),
			row("Total Donated", "$"+humanize.Comma(int64(m.TotalDonated)), "text-gray-900"),
			row("Causes Supported", strconv.Itoa(m.CausesSupported), "text-gray-900"),
			row("Impact Score", strconv.Itoa(m.ImpactScore), "text-blue-700"),
		),
	)
}

func mainContent(posts []domain.FeedPost, e domain.Engagement) g.Node {
	return h.Main(h.Class("flex-1 p-6 max-w-4xl overflow-y-auto"),
		h.Div(h.Class("space-y-6"),
			h.Div(h.Class("bg-gradient-to-r from-blue-50 to-indigo-50 border border-blue-200 rounded-2xl p-6"),
				h.H1(h.Class("text-2xl font-semibold text-gray-900 mb-2"), g.Text("Welcome back! 👋")),
				h.P(h.Class("text-gray-600 mb-4"),
					g.Textf("Your donations have made an impact on %d lives this month.", e.LivesThisMonth)),
				h.Div(h.Class("flex gap-4"),
					view.InertButton("bg-blue-600 hover:bg-blue-700 text-white px-4 py-2 rounded-lg text-sm font-medium",
						g.Text("Make a Donation")),
					view.InertButton("bg-white hover:bg-blue-50 text-blue-600 border border-blue-200 px-4 py-2 rounded-lg text-sm font-medium",
						g.Text("View Impact Report")),
				),
			),
			h.H2(h.Class("text-lg font-semibold text-gray-900"), g.Text("Recent Updates")),
			g.Map(posts, feedPost),
		),
	)
}

func feedPost(p domain.FeedPost) g.Node {
	return h.Article(h.Class("feed-post bg-white rounded-2xl p-6 border border-gray-200"),
		h.Div(h.Class("flex items-center gap-3 mb-4"),
			h.Div(h.Class("w-10 h-10 bg-gray-100 rounded-full flex items-center justify-center text-lg"), g.Text(p.Avatar)),
			h.Div(h.Class("flex-1"),
				h.H3(h.Class("font-medium text-gray-900"), g.Text(p.Author)),
				h.Div(h.Class("flex items-center gap-2"),
					h.Span(h.Class("text-xs text-gray-500"), g.Text(p.Time)),
					h.Span(h.Class("text-xs bg-blue-100 text-blue-700 px-2 py-1 rounded-full"), g.Text(p.Category)),
				),
			),
		),
		h.P(h.Class("text-gray-700 mb-4"), g.Text(p.Content)),
		h.Img(h.Src(p.ImageURL), h.Alt("Impact"), h.Class("w-full h-48 object-cover rounded-lg mb-4")),
		h.Div(h.Class("flex items-center gap-6 text-sm text-gray-500"),
			view.InertButton("hover:text-gray-700", g.Text(humanize.Comma(int64(p.Likes))+" likes")),
			view.InertButton("hover:text-gray-700", g.Textf("%d comments", p.Comments)),
			view.InertButton("hover:text-gray-700", g.Text("Share")),
		),
	)
}

func rightPanel(s domain.HomeState, plans []domain.DonationPlan, badges []domain.Badge, incentives []domain.Incentive) g.Node {
	toggle := view.ActionButton(PanelPath, nil,
		"absolute -left-3 top-1/2 w-6 h-6 bg-white border border-gray-200 rounded-full flex items-center justify-center z-10",
		g.If(s.RightPanelCollapsed, g.Text("‹")),
		g.If(!s.RightPanelCollapsed, g.Text("›")),
	)
	attrs := []g.Node{
		h.ID("right-panel"),
		h.Class("bg-gray-50 border-l border-gray-200 relative overflow-y-auto " + s.RightPanelWidth()),
		h.Data("collapsed", strconv.FormatBool(s.RightPanelCollapsed)),
		toggle,
	}
	if s.RightPanelCollapsed {
		return h.Aside(append(attrs,
			h.Div(h.Class("flex flex-col items-center gap-4 p-4 mt-5"),
				h.Div(h.Class("w-8 h-8 bg-blue-100 rounded-lg"), g.Attr("title", "Your Plans")),
				h.Div(h.Class("w-8 h-8 bg-purple-100 rounded-lg"), g.Attr("title", "Achievements")),
				h.Div(h.Class("w-8 h-8 bg-green-100 rounded-lg"), g.Attr("title", "Incentives")),
			),
		)...)
	}
	return h.Aside(append(attrs,
		h.Div(h.Class("p-4 space-y-6"),
			plansCard(plans),
			badgesCard(badges),
			incentivesCard(incentives),
		),
	)...)
}

func panelCard(title string, aside g.Node, children ...g.Node) g.Node {
	return h.Section(h.Class("bg-white rounded-2xl p-4 border border-gray-200"),
		h.Div(h.Class("flex items-center justify-between mb-4"),
			h.H2(h.Class("font-semibold text-gray-900"), g.Text(title)),
			aside,
		),
		g.Group(children),
	)
}

func plansCard(plans []domain.DonationPlan) g.Node {
	return panelCard("Your Plans",
		view.InertButton("text-xs text-blue-600 font-medium hover:text-blue-700", g.Text("Manage")),
		h.Div(h.Class("space-y-3"),
			g.Map(plans, func(p domain.DonationPlan) g.Node {
				return h.Div(h.Class("p-3 bg-gray-50 rounded-lg"),
					h.Div(h.Class("flex justify-between items-start mb-2"),
						h.Div(
							h.H3(h.Class("font-medium text-sm text-gray-900"), g.Text(p.Name)),
							h.P(h.Class("text-xs text-gray-600"), g.Textf("$%d/%s", p.Amount, p.Frequency)),
						),
						h.Div(h.Class("text-xs text-gray-500"), g.Text("Next in "+p.NextDonation)),
					),
					h.Div(h.Class("flex justify-between text-xs"),
						h.Span(h.Class("text-gray-600"), g.Text("Progress")),
						h.Span(h.Class("text-gray-700 font-medium"), g.Textf("%d%%", p.Progress)),
					),
					h.Div(h.Class("w-full h-1.5 bg-gray-200 rounded-full overflow-hidden"),
						h.Div(h.Class("h-full bg-blue-600"), g.Attr("style", fmt.Sprintf("width: %d%%", p.Progress))),
					),
				)
			}),
		),
	)
}

func badgesCard(badges []domain.Badge) g.Node {
	return panelCard("Achievements",
		h.Div(h.ID("badge-count"), h.Class("text-xs text-gray-500"),
			g.Textf("%d/%d", domain.EarnedCount(badges), len(badges))),
		h.Div(h.Class("grid grid-cols-2 gap-2"),
			g.Map(badges, func(b domain.Badge) g.Node {
				class := "p-3 rounded-lg border text-center bg-gray-50 border-gray-200 opacity-60"
				if b.Earned {
					class = "p-3 rounded-lg border text-center bg-gradient-to-b from-blue-50 to-indigo-50 border-blue-200"
				}
				return h.Div(h.Class(class),
					h.Div(h.Class("text-lg mb-1"), g.Text(b.Icon)),
					h.H3(h.Class("text-xs font-medium"), g.Text(b.Name)),
				)
			}),
		),
	)
}

func incentivesCard(incentives []domain.Incentive) g.Node {
	preview := incentives
	if len(preview) > incentivePreview {
		preview = preview[:incentivePreview]
	}
	return panelCard("Incentives",
		view.InertButton("text-xs text-blue-600 font-medium hover:text-blue-700", g.Text("Redeem")),
		h.Div(h.Class("bg-gradient-to-r from-green-50 to-emerald-50 border border-green-200 rounded-lg p-3 mb-4"),
			h.Div(h.ID("cashback-total"), h.Class("font-semibold text-gray-900"),
				g.Text("$"+domain.FormatAmount(domain.CashbackTotal(incentives)))),
			h.Div(h.Class("text-xs text-gray-600"), g.Text("Available")),
		),
		h.Div(h.Class("space-y-2"),
			g.Map(preview, func(in domain.Incentive) g.Node {
				return h.Div(h.Class("incentive flex items-center justify-between p-2 bg-gray-50 rounded-lg"),
					h.Div(
						h.Div(h.Class("text-xs font-medium text-gray-900"), g.Text(in.Display())),
						h.Div(h.Class("text-xs text-gray-500"), g.Text(in.Description)),
					),
				)
			}),
		),
	)
}
