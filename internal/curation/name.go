package curation

import (
	"regexp"
	"strings"
)

var (
	feedSuffixRegex    = regexp.MustCompile(`(?i)@(HD|SD)`)
	qualityRegex       = regexp.MustCompile(`(?i)\s+(HD|SD)(\+|\b)`)
	parentheticalRegex = regexp.MustCompile(`\s+\([^)]+\)`)
	bracketedRegex     = regexp.MustCompile(`\s+\[[^\]]+\]`)
	whitespaceRegex    = regexp.MustCompile(`\s+`)
)

// CleanName strips quality markers (@HD, @SD, " HD", " SD+"), parenthetical
// and bracketed annotations from a channel name and collapses whitespace.
// CleanName(CleanName(s)) == CleanName(s) for every s.
func CleanName(name string) string {
	for {
		cleaned := cleanOnce(name)
		if cleaned == name {
			return cleaned
		}
		name = cleaned
	}
}

func cleanOnce(name string) string {
	name = feedSuffixRegex.ReplaceAllString(name, "")
	name = qualityRegex.ReplaceAllString(name, "")
	name = parentheticalRegex.ReplaceAllString(name, "")
	name = bracketedRegex.ReplaceAllString(name, "")
	name = whitespaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// GenerateTvgID derives an identifier from a cleaned name by lower-casing it
// and dropping everything outside [a-z0-9].
func GenerateTvgID(name string) string {
	lower := strings.ToLower(name)

	var sb strings.Builder
	sb.Grow(len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
