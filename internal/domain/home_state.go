package domain

// HomeState is the local UI state of the home view. It only affects layout
// and never the dashboard data.
type HomeState struct {
	SidebarCollapsed    bool
	RightPanelCollapsed bool
	ActiveTab           Tab
	SearchQuery         string
}

// NewHomeState returns the state the home view mounts with.
func NewHomeState() *HomeState {
	return &HomeState{ActiveTab: TabProfile}
}

// ToggleSidebar flips the sidebar between collapsed and expanded.
func (s *HomeState) ToggleSidebar() {
	s.SidebarCollapsed = !s.SidebarCollapsed
}

// ToggleRightPanel flips the right panel between collapsed and expanded.
func (s *HomeState) ToggleRightPanel() {
	s.RightPanelCollapsed = !s.RightPanelCollapsed
}

// SelectTab makes tab active. Unknown tabs are ignored.
func (s *HomeState) SelectTab(tab string) bool {
	t, ok := ParseTab(tab)
	if !ok {
		return false
	}
	s.ActiveTab = t
	return true
}

// Search stores the query text.
func (s *HomeState) Search(query string) {
	s.SearchQuery = query
}

// ShowSuggestions reports whether the suggestion list is visible.
func (s *HomeState) ShowSuggestions() bool {
	return s.SearchQuery != ""
}

// SidebarWidth is the layout width class of the sidebar.
func (s *HomeState) SidebarWidth() string {
	if s.SidebarCollapsed {
		return "w-16"
	}
	return "w-80"
}

// RightPanelWidth is the layout width class of the right panel.
func (s *HomeState) RightPanelWidth() string {
	if s.RightPanelCollapsed {
		return "w-16"
	}
	return "w-80"
}
