// Package normalize provides the text-cleaning primitives shared by the
// extractor: Unicode normalization, entity decoding, whitespace collapsing,
// and the standardization rules for titles, categories, times, servings, and
// ingredient lines.
//
// Lookup tables are ordered slices evaluated first-match in declared order so
// that tie-break behavior stays explicit and testable.
package normalize

import (
	"html"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var (
	spaceRunRe      = regexp.MustCompile(`\s+`)
	ordinalPrefixRe = regexp.MustCompile(`^\d+\.\s*`)
	recipePrefixRe  = regexp.MustCompile(`(?i)^recipe:\s*`)
	servingPrefixRe = regexp.MustCompile(`(?i)^(yield:\s*|serves:\s*)`)

	// Connector words are kept lowercase inline when reflowing shouty titles.
	connectorRe = regexp.MustCompile(`(?i)\s+(?:with|and|&|in|on|for|or)\s+`)

	titleCaser = cases.Title(language.English)
)

// Text normalizes a string to NFKC, decodes HTML entities, and collapses all
// whitespace runs to single spaces. Every field goes through this before
// storage.
func Text(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFKC.String(s)
	s = html.UnescapeString(s)
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// TitleCase title-cases every word of s.
func TitleCase(s string) string {
	return titleCaser.String(strings.ToLower(s))
}

// Title cleans a recipe title: leading ordinal prefixes ("12. ") and a
// literal "Recipe:" prefix are stripped, and mostly-uppercase titles are
// reflowed into title case around connector words. An empty title becomes
// the "Untitled Recipe" placeholder.
func Title(s string) string {
	t := Text(s)
	if t == "" {
		return "Untitled Recipe"
	}
	t = ordinalPrefixRe.ReplaceAllString(t, "")
	t = recipePrefixRe.ReplaceAllString(t, "")
	if isShouty(t) {
		t = reflowShouty(t)
	}
	return strings.TrimSpace(spaceRunRe.ReplaceAllString(t, " "))
}

// isShouty reports whether more than 70% of the title's characters are
// uppercase letters and the title is longer than three characters.
func isShouty(s string) bool {
	runes := []rune(s)
	if len(runes) <= 3 {
		return false
	}
	upper := 0
	for _, r := range runes {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) > float64(len(runes))*0.7
}

// reflowShouty splits on connector words, lowercases the connectors, and
// title-cases every other segment. The heuristic is lossy: it does not
// attempt perfect English title casing.
func reflowShouty(s string) string {
	var b strings.Builder
	last := 0
	for _, m := range connectorRe.FindAllStringIndex(s, -1) {
		b.WriteString(TitleCase(s[last:m[0]]))
		b.WriteString(strings.ToLower(s[m[0]:m[1]]))
		last = m[1]
	}
	b.WriteString(TitleCase(s[last:]))
	return b.String()
}

// SynonymRule maps category tokens containing Match (lowercase substring)
// to the canonical Label.
type SynonymRule struct {
	Match string
	Label string
}

// categorySynonyms is evaluated in declared order; the first matching rule
// wins. Both crockpot and slow-cooker spellings canonicalize to the same
// label.
var categorySynonyms = []SynonymRule{
	{"air fryer", "Air Fryer"},
	{"crockpot", "Slow Cooker"},
	{"slow cooker", "Slow Cooker"},
	{"instant pot", "Instant Pot"},
	{"pressure cooker", "Pressure Cooker"},
	{"oven", "Oven"},
	{"stove", "Stovetop"},
	{"grill", "Grilled"},
	{"no bake", "No Bake"},
	{"vegetarian", "Vegetarian"},
	{"vegan", "Vegan"},
	{"keto", "Keto"},
	{"low carb", "Low Carb"},
	{"gluten free", "Gluten Free"},
	{"dairy free", "Dairy Free"},
}

// Category normalizes a category token and maps it through the synonym
// table. Extra rules supplied by configuration are consulted after the
// built-in table. Tokens matching no rule fall back to generic title casing.
func Category(s string, extra []SynonymRule) string {
	c := Text(s)
	if c == "" {
		return ""
	}
	low := strings.ToLower(c)
	for _, r := range categorySynonyms {
		if strings.Contains(low, r.Match) {
			return r.Label
		}
	}
	for _, r := range extra {
		if r.Match != "" && strings.Contains(low, strings.ToLower(r.Match)) {
			return r.Label
		}
	}
	return TitleCase(c)
}

// clockRules expand time abbreviations with word-boundary-safe patterns.
// The last two rules repair accidental double suffixes. Expansion is not
// semantically pluralized: "1 hours" is accepted output.
var clockRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)(\d+)\s*mins?\b`), "$1 minutes"},
	{regexp.MustCompile(`(?i)(\d+)\s*hrs?\b`), "$1 hours"},
	{regexp.MustCompile(`(?i)(\d+)\s*h\s*(\d+)\s*m\b`), "$1 hours $2 minutes"},
	{regexp.MustCompile(`(?i)(\d+)\s+minutesutes`), "$1 minutes"},
	{regexp.MustCompile(`(?i)(\d+)\s+hoursours`), "$1 hours"},
}

// Clock standardizes a free-text time value ("5 mins" -> "5 minutes",
// "1h 30m" -> "1 hours 30 minutes").
func Clock(s string) string {
	t := Text(s)
	if t == "" {
		return ""
	}
	for _, rule := range clockRules {
		t = rule.re.ReplaceAllString(t, rule.repl)
	}
	return t
}

// Servings normalizes a yield value and strips a leading "Yield:" or
// "Serves:" prefix.
func Servings(s string) string {
	return strings.TrimSpace(servingPrefixRe.ReplaceAllString(Text(s), ""))
}

// fractionTable maps Unicode vulgar fractions to ASCII slash forms. The
// standalone fraction slash is included because NFKC decomposes the glyphs
// into digit + U+2044 sequences; mapping it keeps the output ASCII either
// way. Applied before Text so the glyphs are still intact.
var fractionTable = []struct {
	glyph string
	ascii string
}{
	{"½", "1/2"}, {"⅓", "1/3"}, {"⅔", "2/3"}, {"¼", "1/4"}, {"¾", "3/4"},
	{"⅕", "1/5"}, {"⅖", "2/5"}, {"⅗", "3/5"}, {"⅘", "4/5"}, {"⅙", "1/6"},
	{"⅚", "5/6"}, {"⅛", "1/8"}, {"⅜", "3/8"}, {"⅝", "5/8"}, {"⅞", "7/8"},
	{"⁄", "/"},
}

// unitRules canonicalize unit abbreviations with word-boundary matching.
// Order matters: the lone-T tablespoon rule must run before the generic
// rules, and fractions are substituted before any unit rule is applied.
var unitRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(?i)\bT\b`), "tbsp"},
	{regexp.MustCompile(`(?i)\btsp\b`), "tsp"},
	{regexp.MustCompile(`(?i)\btbsp\b`), "tbsp"},
	{regexp.MustCompile(`(?i)\bc\b`), "cup"},
	{regexp.MustCompile(`(?i)\bcups?\b`), "cup"},
	{regexp.MustCompile(`(?i)\blbs?\b`), "lb"},
	{regexp.MustCompile(`(?i)\bpounds?\b`), "lb"},
	{regexp.MustCompile(`(?i)\boz\b`), "oz"},
	{regexp.MustCompile(`(?i)\bounces?\b`), "oz"},
	{regexp.MustCompile(`(?i)\bpkgs?\b`), "package"},
}

// Ingredient standardizes one ingredient line: vulgar fractions become ASCII
// slash forms, then the line is normalized, then unit abbreviations are
// canonicalized.
func Ingredient(s string) string {
	for _, f := range fractionTable {
		s = strings.ReplaceAll(s, f.glyph, f.ascii)
	}
	t := Text(s)
	if t == "" {
		return ""
	}
	for _, rule := range unitRules {
		t = rule.re.ReplaceAllString(t, rule.repl)
	}
	return t
}
