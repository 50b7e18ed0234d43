// Package render serializes recipe records into the output documents: one
// styled, self-contained HTML note per record, a table-of-contents document
// for the whole run, and an optional printable PDF index.
//
// Every interpolated domain value is escaped for the five HTML-sensitive
// characters immediately before insertion; the renderer never emits raw
// domain text. Styling is embedded because the note-import target cannot
// resolve linked resources.
package render

import (
	"html"
	"strings"

	"github.com/notefold/paprika2notes/internal/recipe"
)

const noteStyle = `body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 20px; line-height: 1.6; color: #1d1d1f; }
h1 { color: #1d1d1f; border-bottom: 3px solid #007aff; padding-bottom: 12px; margin-bottom: 20px; font-size: 28px; }
h2 { color: #007aff; margin-top: 30px; margin-bottom: 15px; font-size: 20px; font-weight: 600; }
.metadata { background: linear-gradient(135deg, #f5f5f7 0%, #e8e8ea 100%); padding: 20px; border-radius: 12px; margin: 20px 0; border-left: 4px solid #007aff; }
.metadata p { margin: 8px 0; }
.metadata strong { color: #1d1d1f; }
.ingredients { background: linear-gradient(135deg, #f0f9ff 0%, #e0f2fe 100%); padding: 20px; border-radius: 12px; margin: 20px 0; border-left: 4px solid #0ea5e9; }
.instructions { margin: 20px 0; }
.instructions ol { padding-left: 0; counter-reset: step-counter; }
.instructions li { list-style: none; counter-increment: step-counter; margin-bottom: 15px; padding: 15px; background-color: #fafafa; border-radius: 8px; border-left: 4px solid #10b981; position: relative; }
.instructions li::before { content: counter(step-counter); position: absolute; left: -25px; top: 15px; background: #10b981; color: white; width: 20px; height: 20px; border-radius: 50%; display: flex; align-items: center; justify-content: center; font-size: 12px; font-weight: bold; }
.notes { background: linear-gradient(135deg, #fffbf0 0%, #fef3c7 100%); padding: 20px; border-radius: 12px; margin: 20px 0; border-left: 4px solid #f59e0b; }
.nutrition { background: linear-gradient(135deg, #f0fdf4 0%, #dcfce7 100%); padding: 20px; border-radius: 12px; margin: 20px 0; border-left: 4px solid #22c55e; }
ul { padding-left: 20px; }
li { margin-bottom: 8px; }
a { color: #007aff; text-decoration: none; }
a:hover { text-decoration: underline; }
.source { margin: 25px 0; padding: 15px; background-color: #f8f9fa; border-radius: 8px; border-left: 4px solid #6c757d; }
`

// esc escapes the five HTML-sensitive characters.
func esc(s string) string {
	return html.EscapeString(s)
}

// Note renders one record into a complete styled HTML document. Sections
// appear only when their backing data is non-empty. Rendering is total for a
// well-formed record.
func Note(rec recipe.Record) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html><head><meta charset=\"UTF-8\">\n")
	b.WriteString("<title>" + esc(rec.Title) + "</title>\n")
	b.WriteString("<style>\n" + noteStyle + "</style>\n")
	b.WriteString("</head><body>\n")

	b.WriteString("<h1>" + esc(rec.Title) + "</h1>\n")

	if rec.HasMetadata() {
		b.WriteString("<div class=\"metadata\">\n")
		if rec.PrepTime != "" {
			b.WriteString("<p><strong>Prep Time:</strong> " + esc(rec.PrepTime) + "</p>\n")
		}
		if rec.CookTime != "" {
			b.WriteString("<p><strong>Cook Time:</strong> " + esc(rec.CookTime) + "</p>\n")
		}
		if rec.Servings != "" {
			b.WriteString("<p><strong>Servings:</strong> " + esc(rec.Servings) + "</p>\n")
		}
		if len(rec.Categories) > 0 {
			escaped := make([]string, len(rec.Categories))
			for i, cat := range rec.Categories {
				escaped[i] = esc(cat)
			}
			b.WriteString("<p><strong>Categories:</strong> " + strings.Join(escaped, ", ") + "</p>\n")
		}
		b.WriteString("</div>\n")
	}

	if len(rec.Ingredients) > 0 {
		b.WriteString("<div class=\"ingredients\">\n<h2>Ingredients</h2>\n<ul>\n")
		for _, ing := range rec.Ingredients {
			b.WriteString("<li>" + esc(ing) + "</li>\n")
		}
		b.WriteString("</ul>\n</div>\n")
	}

	if len(rec.Instructions) > 0 {
		b.WriteString("<h2>Instructions</h2>\n<div class=\"instructions\">\n<ol>\n")
		for _, step := range rec.Instructions {
			b.WriteString("<li>" + esc(step) + "</li>\n")
		}
		b.WriteString("</ol>\n</div>\n")
	}

	if len(rec.Notes) > 0 {
		b.WriteString("<div class=\"notes\">\n<h2>Notes</h2>\n")
		for _, note := range rec.Notes {
			b.WriteString("<p>" + esc(note) + "</p>\n")
		}
		b.WriteString("</div>\n")
	}

	if rec.SourceURL != "" || rec.SourceName != "" {
		b.WriteString("<div class=\"source\">\n<h2>Source</h2>\n")
		if rec.SourceURL != "" {
			text := rec.SourceName
			if text == "" {
				text = rec.SourceURL
			}
			b.WriteString("<p><a href=\"" + esc(rec.SourceURL) + "\" target=\"_blank\">" + esc(text) + "</a></p>\n")
		} else {
			b.WriteString("<p>" + esc(rec.SourceName) + "</p>\n")
		}
		b.WriteString("</div>\n")
	}

	if len(rec.Nutrition) > 0 {
		b.WriteString("<div class=\"nutrition\">\n<h2>Nutrition Information</h2>\n")
		for _, item := range rec.Nutrition {
			b.WriteString("<p>" + esc(item) + "</p>\n")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body></html>\n")
	return b.String()
}
