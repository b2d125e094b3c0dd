package view

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nivahq/niva/internal/domain"
)

// NavigatePath is the endpoint every view uses to switch views.
const NavigatePath = "/navigate"

// Field is a hidden form value.
type Field struct {
	Name  string
	Value string
}

// PostForm renders a form that posts to action. With htmx loaded the
// response replaces the application root; without it the browser follows
// the redirect back to the page.
func PostForm(action string, fields []Field, children ...g.Node) g.Node {
	nodes := []g.Node{
		h.Method("post"),
		h.Action(action),
		hx.Post(action),
		hx.Target("#" + AppID),
		hx.Swap("outerHTML"),
	}
	for _, f := range fields {
		nodes = append(nodes, h.Input(h.Type("hidden"), h.Name(f.Name), h.Value(f.Value)))
	}
	return h.Form(append(nodes, children...)...)
}

// ActionButton is a single submit button posting fields to action.
func ActionButton(action string, fields []Field, class string, children ...g.Node) g.Node {
	return PostForm(action, fields,
		h.Button(append([]g.Node{h.Type("submit"), h.Class(class)}, children...)...),
	)
}

// NavigateButton switches the visit to target.
func NavigateButton(target domain.View, class string, children ...g.Node) g.Node {
	return ActionButton(NavigatePath, []Field{{Name: "target", Value: target.String()}}, class, children...)
}

// InertButton renders a button with no behaviour.
func InertButton(class string, children ...g.Node) g.Node {
	return h.Button(append([]g.Node{h.Type("button"), h.Class(class)}, children...)...)
}
