package domain

import "strings"

// FilterPosts returns the posts matching the given search term and category,
// preserving input order. A post matches when the term appears
// case-insensitively in its title or content (an empty term matches
// everything) and its category equals the filter (CategoryAll matches
// everything). Filtering is purely local; it never touches the network.
func FilterPosts(posts []Post, term string, category Category) []Post {
	term = strings.ToLower(term)

	filtered := make([]Post, 0, len(posts))
	for _, p := range posts {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Content), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
