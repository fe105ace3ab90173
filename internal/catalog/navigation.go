package catalog

// NavLink is a top-level documentation link.
type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// NavHook is a sidebar link to a hook page.
type NavHook struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Href returns the page path for the hook.
func (h NavHook) Href() string {
	return "/hooks/" + h.Slug
}

// NavCategory groups sidebar hook links under a heading.
type NavCategory struct {
	Name  string    `json:"name"`
	Hooks []NavHook `json:"hooks"`
}

// FeaturedHook is a card on the home page.
type FeaturedHook struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Slug        string `json:"slug"`
}

// Href returns the page path for the hook.
func (h FeaturedHook) Href() string {
	return "/hooks/" + h.Slug
}

// Navigation is the site's navigation listing. It is independent of the
// catalog; its slugs are expected to be a subset of the catalog's keys.
type Navigation struct {
	Main       []NavLink      `json:"main"`
	Categories []NavCategory  `json:"categories"`
	Featured   []FeaturedHook `json:"featured"`
}

// AppInfo describes the site itself.
type AppInfo struct {
	Name          string
	Version       string
	Description   string
	GitHubURL     string
	ContributeURL string
	LastUpdated   string
}

// DefaultAppInfo returns the site metadata shown in the header and sidebar.
func DefaultAppInfo() AppInfo {
	return AppInfo{
		Name:          "hookitup",
		Version:       "1.0.0",
		Description:   "A collection of carefully crafted, production-ready React hooks",
		GitHubURL:     "https://github.com/ManojSravan/hookitup",
		ContributeURL: "https://github.com/ManojSravan/hookitup",
		LastUpdated:   "Jan 2025",
	}
}

// DefaultNavigation returns the sidebar and header navigation.
func DefaultNavigation() Navigation {
	return Navigation{
		Main: []NavLink{
			{Name: "Home", Href: "/"},
			{Name: "Getting Started", Href: "/docs/getting-started"},
		},
		Categories: []NavCategory{
			{Name: "State Management", Hooks: []NavHook{
				{Name: "useLocalStorage", Slug: "use-local-storage"},
				{Name: "usePrevious", Slug: "use-previous"},
				{Name: "useOptimistic", Slug: "use-optimistic"},
			}},
			{Name: "Animations", Hooks: []NavHook{
				{Name: "useReveal", Slug: "use-reveal"},
			}},
			{Name: "Performance", Hooks: []NavHook{
				{Name: "useDebounce", Slug: "use-debounce"},
				{Name: "useTransition", Slug: "use-transition"},
				{Name: "useDeferredValue", Slug: "use-deferred-value"},
			}},
			{Name: "Data Fetching", Hooks: []NavHook{
				{Name: "useFetch", Slug: "use-fetch"},
			}},
		},
		Featured: []FeaturedHook{
			{Name: "usePrevious", Description: "Track the previous value of a prop or state variable", Category: "State", Slug: "use-previous"},
			{Name: "useDebounce", Description: "Debounce values for optimized updates and API calls", Category: "Performance", Slug: "use-debounce"},
			{Name: "useLocalStorage", Description: "Sync component state with localStorage automatically", Category: "Storage", Slug: "use-local-storage"},
			{Name: "useFetch", Description: "Simplified API data fetching with error handling", Category: "Data", Slug: "use-fetch"},
		},
	}
}

// CheckNavigation returns the slugs referenced by nav that have no catalog
// entry, in navigation order. An empty result means nav is consistent.
func CheckNavigation(c *Catalog, nav Navigation) []string {
	var missing []string
	for _, cat := range nav.Categories {
		for _, h := range cat.Hooks {
			if _, ok := c.index[h.Slug]; !ok {
				missing = append(missing, h.Slug)
			}
		}
	}
	for _, f := range nav.Featured {
		if _, ok := c.index[f.Slug]; !ok {
			missing = append(missing, f.Slug)
		}
	}
	return missing
}
