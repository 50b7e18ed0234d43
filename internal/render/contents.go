package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notefold/paprika2notes/internal/recipe"
)

const contentsStyle = `body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; margin: 20px; }
h1 { color: #1d1d1f; border-bottom: 2px solid #007aff; padding-bottom: 10px; }
h2 { color: #007aff; margin-top: 25px; }
.recipe-list { columns: 2; column-gap: 30px; }
.recipe-item { break-inside: avoid; margin-bottom: 15px; padding: 10px; background-color: #f5f5f7; border-radius: 8px; }
.recipe-title { font-weight: bold; font-size: 16px; margin-bottom: 5px; }
.recipe-meta { font-size: 14px; color: #666; }
.stats { background-color: #e8f4fd; padding: 15px; border-radius: 8px; margin: 20px 0; }
`

// sortByTitle returns a copy of recs sorted case-insensitively by title.
// The sort is stable so records with equal keys keep discovery order.
func sortByTitle(recs []recipe.Record) []recipe.Record {
	out := make([]recipe.Record, len(recs))
	copy(out, recs)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Title) < strings.ToLower(out[j].Title)
	})
	return out
}

// sectionLetter keys a record by the uppercased first character of its
// title, with "#" as the fallback for an empty title.
func sectionLetter(title string) string {
	if title == "" {
		return "#"
	}
	return strings.ToUpper(string([]rune(title)[0]))
}

// distinctCategories counts the case-sensitive set union of the records'
// already-normalized category labels.
func distinctCategories(recs []recipe.Record) int {
	set := make(map[string]struct{})
	for _, rec := range recs {
		for _, cat := range rec.Categories {
			set[cat] = struct{}{}
		}
	}
	return len(set)
}

// metaLine joins the non-empty category/prep/cook fields, in that order,
// with a middle-dot separator. Absent fields leave no stray separators.
// The result is unescaped; callers escape per output format.
func metaLine(rec recipe.Record) string {
	var parts []string
	if len(rec.Categories) > 0 {
		parts = append(parts, "Categories: "+strings.Join(rec.Categories, ", "))
	}
	if rec.PrepTime != "" {
		parts = append(parts, "Prep: "+rec.PrepTime)
	}
	if rec.CookTime != "" {
		parts = append(parts, "Cook: "+rec.CookTime)
	}
	return strings.Join(parts, " • ")
}

// Contents renders the table-of-contents document for one conversion run.
// Records are sorted case-insensitively by title and grouped into first-letter
// sections in a single left-to-right pass: a heading is emitted whenever the
// letter changes, so group boundaries exactly match runs of equal first
// letters in sorted order.
func Contents(recs []recipe.Record) string {
	sorted := sortByTitle(recs)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html><head><meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Recipe Collection - Table of Contents</title>\n")
	b.WriteString("<style>\n" + contentsStyle + "</style>\n")
	b.WriteString("</head><body>\n")
	b.WriteString("<h1>Recipe Collection</h1>\n")

	b.WriteString("<div class=\"stats\">\n")
	fmt.Fprintf(&b, "<p><strong>Total Recipes:</strong> %d</p>\n", len(sorted))
	fmt.Fprintf(&b, "<p><strong>Categories:</strong> %d</p>\n", distinctCategories(sorted))
	b.WriteString("</div>\n")

	b.WriteString("<div class=\"recipe-list\">\n")
	current := ""
	for _, rec := range sorted {
		if letter := sectionLetter(rec.Title); letter != current {
			current = letter
			b.WriteString("<h2>" + esc(letter) + "</h2>\n")
		}
		b.WriteString("<div class=\"recipe-item\">\n")
		b.WriteString("<div class=\"recipe-title\">" + esc(rec.Title) + "</div>\n")
		if meta := metaLine(rec); meta != "" {
			b.WriteString("<div class=\"recipe-meta\">" + esc(meta) + "</div>\n")
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")

	b.WriteString("</body></html>\n")
	return b.String()
}
