package domain

// Testimonial is an impact story on the landing page.
type Testimonial struct {
	Title    string
	Quote    string
	Location string
	Accent   string
}

// Step is one of the "how it works" steps.
type Step struct {
	Number int
	Title  string
	Body   string
}

// Stat is a headline figure. Value is a number rendered with separators
// unless Display is set.
type Stat struct {
	Value   int64
	Display string
	Caption string
}

// Testimonials returns the landing page stories.
func Testimonials() []Testimonial {
	return []Testimonial{
		{
			Title:    "Maria's Water Well",
			Quote:    "Thanks to 47 donors, our village now has clean water. My daughter doesn't miss school anymore to walk 3 hours for water.",
			Location: "🇰🇪 Kenya • Funded in 23 days",
			Accent:   "emerald",
		},
		{
			Title:    "Local Food Bank",
			Quote:    "We fed 200 families last month. Every $10 provides groceries for a week. The community support has been incredible.",
			Location: "🇺🇸 Detroit • Ongoing support",
			Accent:   "blue",
		},
		{
			Title:    "School Library",
			Quote:    "152 donors helped us buy books and tablets. Reading scores improved 40%. These kids now dream of college.",
			Location: "🇲🇽 Mexico • Completed last month",
			Accent:   "purple",
		},
	}
}

// Steps returns the three onboarding steps.
func Steps() []Step {
	return []Step{
		{Number: 1, Title: "Choose your cause", Body: "Pick what matters to you most. We'll match you with vetted projects."},
		{Number: 2, Title: "Set your amount", Body: "Start with $5/month or give what feels right. Every dollar counts."},
		{Number: 3, Title: "See your impact", Body: "Get updates, photos, and stories from the communities you're helping."},
	}
}

// Stats returns the quick stats band.
func Stats() []Stat {
	return []Stat{
		{Display: "$2.4M", Caption: "donated this year"},
		{Value: 12847, Caption: "active donors"},
		{Value: 89, Caption: "projects funded"},
		{Value: 23, Caption: "countries reached"},
	}
}
