// Package navigation describes the site's top-level routes and derives the
// navigation bar for a given request path.
package navigation

// Route is a navigable top-level page.
type Route struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// Link is a Route as presented in the navigation bar.
type Link struct {
	Path   string `json:"path"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// DefaultRoutes returns the site routes in display order.
func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Label: "Home"},
		{Path: "/about", Label: "About"},
		{Path: "/contact", Label: "Contact"},
		{Path: "/analyzer", Label: "Analyzer 🔍"},
	}
}

// Links marks the route whose path equals current as active. Matching is
// exact; a path that names no route leaves every link inactive.
func Links(routes []Route, current string) []Link {
	links := make([]Link, 0, len(routes))
	for _, route := range routes {
		links = append(links, Link{
			Path:   route.Path,
			Label:  route.Label,
			Active: route.Path == current,
		})
	}
	return links
}

// Find returns the route registered for path.
func Find(routes []Route, path string) (Route, bool) {
	for _, route := range routes {
		if route.Path == path {
			return route, true
		}
	}
	return Route{}, false
}
