package domain

// FeedPost is an impact update shown in the home feed.
type FeedPost struct {
	ID       int
	Author   string
	Avatar   string
	Time     string
	Content  string
	ImageURL string
	Likes    int
	Comments int
	Category string
}

// DonationPlan is a recurring donation the visitor is subscribed to.
type DonationPlan struct {
	ID           int
	Name         string
	Amount       int
	Frequency    string
	Progress     int
	NextDonation string
}

// Badge is an achievement, earned or still locked.
type Badge struct {
	ID     int
	Name   string
	Icon   string
	Earned bool
}

// Suggestion is a cause match shown under the search box.
type Suggestion struct {
	ID       int
	Title    string
	Category string
	Match    int
}

// Tab is a destination in the home sidebar.
type Tab string

const (
	TabProfile  Tab = "profile"
	TabWallet   Tab = "wallet"
	TabDiscover Tab = "discover"
)

// MenuItem is a sidebar entry.
type MenuItem struct {
	Tab   Tab
	Label string
}

// SidebarMenu is the fixed sidebar navigation rail.
var SidebarMenu = []MenuItem{
	{Tab: TabProfile, Label: "Profile"},
	{Tab: TabWallet, Label: "Wallet"},
	{Tab: TabDiscover, Label: "Discover"},
}

// ParseTab reports the tab named by s and whether it is known.
func ParseTab(s string) (Tab, bool) {
	for _, item := range SidebarMenu {
		if string(item.Tab) == s {
			return item.Tab, true
		}
	}
	return "", false
}

// FeedPosts returns the home feed in display order.
func FeedPosts() []FeedPost {
	return []FeedPost{
		{
			ID:       1,
			Author:   "Education Foundation",
			Avatar:   "📚",
			Time:     "2 hours ago",
			Content:  "Thanks to your donations, we have built 3 new schools in rural areas this month! 🎉",
			ImageURL: "https://images.unsplash.com/photo-1497486751825-1233686d5d80?w=500&h=300&fit=crop",
			Likes:    234,
			Comments: 18,
			Category: "Education",
		},
		{
			ID:       2,
			Author:   "Clean Water Initiative",
			Avatar:   "💧",
			Time:     "4 hours ago",
			Content:  "Your contribution helped us install 15 water purifiers in villages across Maharashtra.",
			ImageURL: "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=500&h=300&fit=crop",
			Likes:    189,
			Comments: 12,
			Category: "Environment",
		},
		{
			ID:       3,
			Author:   "Healthcare Heroes",
			Avatar:   "🏥",
			Time:     "6 hours ago",
			Content:  "Mobile health camps reached 500+ families this week. Your support makes it possible!",
			ImageURL: "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?w=500&h=300&fit=crop",
			Likes:    167,
			Comments: 9,
			Category: "Health",
		},
	}
}

// DonationPlans returns the visitor's recurring plans.
func DonationPlans() []DonationPlan {
	return []DonationPlan{
		{ID: 1, Name: "Education Fund", Amount: 50, Frequency: "monthly", Progress: 75, NextDonation: "3 days"},
		{ID: 2, Name: "Clean Water Project", Amount: 25, Frequency: "weekly", Progress: 60, NextDonation: "2 days"},
	}
}

// Badges returns the achievement grid.
func Badges() []Badge {
	return []Badge{
		{ID: 1, Name: "First Donor", Icon: "🎯", Earned: true},
		{ID: 2, Name: "Consistent Giver", Icon: "⭐", Earned: true},
		{ID: 3, Name: "Education Champion", Icon: "📚", Earned: true},
		{ID: 4, Name: "Monthly Hero", Icon: "🏆", Earned: false},
	}
}

// EarnedCount returns how many badges have been earned.
func EarnedCount(badges []Badge) int {
	n := 0
	for _, b := range badges {
		if b.Earned {
			n++
		}
	}
	return n
}

// Suggestions returns the cause matches shown for any non-empty search.
// The list does not depend on the query text.
func Suggestions() []Suggestion {
	return []Suggestion{
		{ID: 1, Title: "Education for All", Category: "Education", Match: 95},
		{ID: 2, Title: "Clean Water Initiative", Category: "Environment", Match: 88},
		{ID: 3, Title: "Healthcare Access", Category: "Health", Match: 92},
	}
}

// MonthSummary is the "This Month" card in the expanded sidebar.
type MonthSummary struct {
	TotalDonated    int
	CausesSupported int
	ImpactScore     int
}

// CurrentMonth returns the sidebar summary figures.
func CurrentMonth() MonthSummary {
	return MonthSummary{TotalDonated: 347, CausesSupported: 8, ImpactScore: 94}
}

// Engagement holds the header chips.
type Engagement struct {
	StreakDays     int
	Points         int
	LivesThisMonth int
}

// CurrentEngagement returns the header and welcome-card figures.
func CurrentEngagement() Engagement {
	return Engagement{StreakDays: 12, Points: 2847, LivesThisMonth: 127}
}
