package domain

import "strings"

// FilterByTitle returns the videos whose title contains query as a
// case-insensitive substring. An empty (or all-whitespace) query
// returns the input slice unchanged.
//
// The input is never mutated and the relative order of matches is
// preserved, so repeated calls over the same slice are stable.
func FilterByTitle(videos []Video, query string) []Video {
	query = strings.TrimSpace(query)
	if query == "" {
		return videos
	}

	needle := strings.ToLower(query)
	matches := make([]Video, 0, len(videos))
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), needle) {
			matches = append(matches, v)
		}
	}
	return matches
}
