package view

import (
	g "maragu.dev/gomponents"
	comps "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/nivahq/niva/internal/domain"
)

const (
	tailwindURL = "https://cdn.tailwindcss.com"
	htmxURL     = "https://unpkg.com/htmx.org@2.0.4"
)

const (
	// AppID is the element id of the swappable application root.
	AppID = "app"
	// FlashSlotID wraps the flash banner so htmx responses can replace it.
	FlashSlotID = "flash-slot"
)

// PageProps describes the document around the application root.
type PageProps struct {
	Title         string
	StylesheetURL string
	Flash         FlashData
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Niva"
	}
	return "Niva"
}

// Page renders a complete HTML document around app.
func Page(p PageProps, app g.Node) g.Node {
	head := []g.Node{
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.Script(h.Src(tailwindURL)),
		h.Script(h.Src(htmxURL)),
	}
	if p.StylesheetURL != "" {
		head = append(head, h.Link(h.Rel("stylesheet"), h.Href(p.StylesheetURL)))
	}

	return comps.HTML5(comps.HTML5Props{
		Title:    CalculateTitle(p.Title),
		Language: "en",
		Head:     head,
		Body: []g.Node{
			h.Div(h.ID(FlashSlotID), FlashBanner(p.Flash)),
			app,
		},
	})
}

// App wraps the content of the active view. It is the unit htmx swaps, and
// it always holds exactly one view.
func App(active domain.View, content g.Node) g.Node {
	return h.Div(
		h.ID(AppID),
		h.Data("view", active.String()),
		content,
	)
}

// Title returns the document title for a view.
func Title(v domain.View) string {
	switch v {
	case domain.ViewPreferences:
		return "Preferences"
	case domain.ViewHome:
		return "Home"
	default:
		return ""
	}
}
