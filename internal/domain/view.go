package domain

// View identifies one of the three top-level screens.
type View string

const (
	ViewLanding     View = "landing"
	ViewPreferences View = "preferences"
	ViewHome        View = "home"
)

// Views lists every known view in navigation order.
var Views = []View{ViewLanding, ViewPreferences, ViewHome}

// ParseView maps an identifier to a known view. Anything unrecognised falls
// back to ViewLanding.
func ParseView(s string) View {
	switch View(s) {
	case ViewLanding, ViewPreferences, ViewHome:
		return View(s)
	default:
		return ViewLanding
	}
}

// String implements fmt.Stringer.
func (v View) String() string {
	return string(v)
}
