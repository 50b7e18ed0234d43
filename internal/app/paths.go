package app

import (
	"regexp"
	"strings"
)

var (
	unsafeCharRe = regexp.MustCompile(`[<>:"/\\|?*]`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// SafeFilename derives a filesystem-legal, deterministic name from a recipe
// title: the characters <>:"/\|?* are removed, "&" becomes the word "and",
// whitespace runs collapse to single underscores, and the result is capped
// at 100 characters. An empty result falls back to "untitled_recipe".
//
// Two titles can normalize to the same name; the later write silently wins.
// This is accepted behavior, not a defect to guard against.
func SafeFilename(title string) string {
	safe := unsafeCharRe.ReplaceAllString(title, "")
	safe = strings.ReplaceAll(safe, "&", "and")
	safe = spaceRunRe.ReplaceAllString(strings.TrimSpace(safe), "_")
	if r := []rune(safe); len(r) > 100 {
		safe = string(r[:100])
	}
	if safe == "" {
		return "untitled_recipe"
	}
	return safe
}
