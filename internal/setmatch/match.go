// Package setmatch resolves user-supplied set names against the names the
// upstream catalog actually uses. Set names drift between printings
// ("Base Set" vs "Base", promo sets with em-dash prefixes), so resolution
// falls through increasingly loose strategies.
package setmatch

import (
	"regexp"
	"strings"
)

var termSplitter = regexp.MustCompile(`[-—_&\s]+`)

// Closest returns the best matching catalog name for target, or "" when
// nothing plausibly matches. Strategies, in order: exact, case-insensitive,
// Black Star Promos prefix handling, substring, then best term overlap.
func Closest(target string, available []string) string {
	if target == "" || len(available) == 0 {
		return ""
	}

	for _, name := range available {
		if name == target {
			return name
		}
	}

	for _, name := range available {
		if strings.EqualFold(name, target) {
			return name
		}
	}

	// Promo sets appear as "<Series>—Black Star Promos" with varying separators.
	if strings.Contains(target, "Black Star Promos") {
		prefix := strings.TrimSpace(strings.SplitN(target, "Black Star", 2)[0])
		for _, name := range available {
			if strings.Contains(name, prefix) && strings.Contains(name, "Black Star Promos") {
				return name
			}
		}
	}

	lowerTarget := strings.ToLower(target)
	for _, name := range available {
		if strings.Contains(strings.ToLower(name), lowerTarget) {
			return name
		}
	}

	return bestTermOverlap(lowerTarget, available)
}

func bestTermOverlap(lowerTarget string, available []string) string {
	targetTerms := splitTerms(lowerTarget)

	best := ""
	mostMatched := 0
	for _, name := range available {
		nameTerms := splitTerms(strings.ToLower(name))
		matched := 0
		for _, term := range targetTerms {
			if containsTerm(nameTerms, term) {
				matched++
			}
		}
		if matched > mostMatched {
			mostMatched = matched
			best = name
		}
	}
	return best
}

func splitTerms(s string) []string {
	parts := termSplitter.Split(s, -1)
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}

func containsTerm(terms []string, term string) bool {
	for _, t := range terms {
		if t == term {
			return true
		}
	}
	return false
}
