package curation

import "sort"

// Sort orders channels by language, then category, then name, using plain
// byte-wise string comparison. The sort is stable so ties keep match order.
func Sort(channels []Channel) {
	sort.SliceStable(channels, func(i, j int) bool {
		a, b := channels[i], channels[j]
		if a.Language != b.Language {
			return a.Language < b.Language
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Name < b.Name
	})
}
