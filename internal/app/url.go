package app

import "strings"

// placeholderBreadcrumb is shown when no URL has been entered yet.
const placeholderBreadcrumb = "example.com › ..."

// FormatURL renders a URL the way a results page does: scheme stripped,
// leading www. removed, path segments joined into a breadcrumb.
func FormatURL(rawURL string) string {
	if rawURL == "" {
		return placeholderBreadcrumb
	}

	clean := strings.TrimPrefix(rawURL, "https://")
	clean = strings.TrimPrefix(clean, "http://")

	parts := strings.Split(clean, "/")
	domain := strings.TrimPrefix(parts[0], "www.")

	crumbs := []string{domain}
	for _, p := range parts[1:] {
		if p != "" {
			crumbs = append(crumbs, p)
		}
	}
	return strings.Join(crumbs, " › ")
}
