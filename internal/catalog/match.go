package catalog

import "slices"

// MatchKeywords reports whether a food matches the given search keywords.
// If matchAll is true the food must carry every keyword; otherwise any one
// keyword suffices. Comparison is case-insensitive. An empty or nil keyword
// list matches every food.
func MatchKeywords(food Food, keywords []string, matchAll bool) bool {
	if len(keywords) == 0 {
		return true
	}

	foodKeywords := lowercaseAll(food.Keywords())
	searchKeywords := lowercaseAll(keywords)

	if matchAll {
		for _, kw := range searchKeywords {
			if !slices.Contains(foodKeywords, kw) {
				return false
			}
		}
		return true
	}

	for _, kw := range searchKeywords {
		if slices.Contains(foodKeywords, kw) {
			return true
		}
	}
	return false
}

func lowercaseAll(values []string) []string {
	result := make([]string, len(values))
	for i, v := range values {
		result[i] = Lowercase(v)
	}
	return result
}
