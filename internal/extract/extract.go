// Package extract parses one Paprika HTML export into a recipe.Record. It
// reads the semantic itemprop markers the export format uses for each field;
// a missing marker leaves the corresponding field empty and is not an error.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/notefold/paprika2notes/internal/normalize"
	"github.com/notefold/paprika2notes/internal/recipe"
)

// Extractor turns export markup into recipe records. Extra category synonym
// rules from configuration are consulted after the built-in table.
type Extractor struct {
	synonyms []normalize.SynonymRule
}

// New creates an Extractor.
func New(extra ...normalize.SynonymRule) *Extractor {
	return &Extractor{synonyms: extra}
}

// FromHTML extracts a recipe record from one export document. It is a pure
// transformation over the input bytes. A document without a name marker
// yields a record with an empty title; the caller discards it.
func (e *Extractor) FromHTML(data []byte) (recipe.Record, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return recipe.Record{}, fmt.Errorf("parsing HTML: %w", err)
	}

	b := recipe.NewBuilder()

	if sel := doc.Find("h1[itemprop=name]").First(); sel.Length() > 0 {
		b.Title(normalize.Title(sel.Text()))
	}

	if sel := doc.Find("p[itemprop=recipeCategory]").First(); sel.Length() > 0 {
		for _, tok := range strings.Split(sel.Text(), ",") {
			if strings.TrimSpace(tok) == "" {
				continue
			}
			b.AddCategory(normalize.Category(tok, e.synonyms))
		}
	}

	if sel := doc.Find("span[itemprop=prepTime]").First(); sel.Length() > 0 {
		b.PrepTime(normalize.Clock(sel.Text()))
	}
	if sel := doc.Find("span[itemprop=cookTime]").First(); sel.Length() > 0 {
		b.CookTime(normalize.Clock(sel.Text()))
	}
	if sel := doc.Find("span[itemprop=recipeYield]").First(); sel.Length() > 0 {
		b.Servings(normalize.Servings(sel.Text()))
	}

	if sel := doc.Find("a[itemprop=url]").First(); sel.Length() > 0 {
		href, _ := sel.Attr("href")
		name := ""
		if author := sel.Find("span[itemprop=author]").First(); author.Length() > 0 {
			name = normalize.Text(author.Text())
		}
		b.Source(strings.TrimSpace(href), name)
	}

	doc.Find("p[itemprop=recipeIngredient]").Each(func(_ int, s *goquery.Selection) {
		b.AddIngredient(normalize.Ingredient(s.Text()))
	})

	if sel := doc.Find("div[itemprop=recipeInstructions]").First(); sel.Length() > 0 {
		raw, _ := sel.Html()
		b.Instructions(splitSteps(raw, sel.Text()))
	}

	if sel := doc.Find("div[itemprop=comment]").First(); sel.Length() > 0 {
		b.Notes(extractNotes(sel))
	}

	if sel := doc.Find("div[itemprop=nutrition]").First(); sel.Length() > 0 {
		raw, _ := sel.Html()
		b.Nutrition(splitNutrition(raw, sel.Text()))
	}

	if sel := doc.Find("img[itemprop=image]").First(); sel.Length() > 0 {
		src, _ := sel.Attr("src")
		b.Image(strings.TrimSpace(src))
	}

	return b.Build(), nil
}

// extractNotes prefers explicit paragraph children; without them it falls
// back to splitting the flattened text on blank-line runs or on two-or-more
// spaces after a sentence terminator. The fallback is a best-effort
// heuristic, not a guaranteed-correct parse.
func extractNotes(sel *goquery.Selection) []string {
	var notes []string
	if ps := sel.Find("p"); ps.Length() > 0 {
		ps.Each(func(_ int, p *goquery.Selection) {
			if t := normalize.Text(p.Text()); t != "" {
				notes = append(notes, t)
			}
		})
		return notes
	}
	for _, part := range paragraphBreakRe.Split(sel.Text(), -1) {
		if t := normalize.Text(part); t != "" {
			notes = append(notes, t)
		}
	}
	return notes
}
