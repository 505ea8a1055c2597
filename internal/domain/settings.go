package domain

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Colors is the fixed accent palette offered on the settings page.
var Colors = []string{"zinc", "slate", "stone", "gray", "neutral", "red", "rose", "orange", "green", "blue", "yellow", "violet"}

// NavItem is one module entry in the dashboard navigation.
type NavItem struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Path     string `db:"path" json:"path"`
	Enabled  bool   `db:"enabled" json:"enabled"`
	Position int    `db:"position" json:"-"`
}

// Settings is the shell configuration passed to every page and API that
// needs it. It is loaded at start and saved on every change.
type Settings struct {
	AppName    string    `json:"appName"`
	Currency   string    `json:"currency"`
	Theme      string    `json:"theme"`
	Color      string    `json:"color"`
	Navigation []NavItem `json:"navigation"`
}

// EnabledNavigation returns the navigation entries that are switched on.
func (s Settings) EnabledNavigation() []NavItem {
	out := make([]NavItem, 0, len(s.Navigation))
	for _, n := range s.Navigation {
		if n.Enabled {
			out = append(out, n)
		}
	}
	return out
}

func DefaultSettings() Settings {
	return Settings{
		AppName:  "Your Business Name",
		Currency: "$",
		Theme:    ThemeSystem,
		Color:    "zinc",
		Navigation: []NavItem{
			{ID: "1", Name: "Dashboard", Path: "/", Enabled: true, Position: 1},
			{ID: "2", Name: "Point of Sale", Path: "/pos", Enabled: true, Position: 2},
			{ID: "3", Name: "Inventory", Path: "/inventory", Enabled: true, Position: 3},
			{ID: "4", Name: "Restaurant POS", Path: "/restaurant-pos", Enabled: true, Position: 4},
			{ID: "5", Name: "Warehouse & Distribution", Path: "/warehouse-distribution", Enabled: true, Position: 5},
			{ID: "6", Name: "Profile", Path: "/profile", Enabled: true, Position: 6},
			{ID: "7", Name: "Help", Path: "/help", Enabled: true, Position: 7},
			{ID: "8", Name: "Settings", Path: "/settings", Enabled: true, Position: 8},
		},
	}
}
