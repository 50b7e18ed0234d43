package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/notefold/paprika2notes/internal/normalize"
)

var (
	brRe             = regexp.MustCompile(`(?i)<br\s*/?>`)
	stepNumberRe     = regexp.MustCompile(`^\d+\.\s*`)
	paragraphBreakRe = regexp.MustCompile(`\n\s*\n|\. {2,}`)
	nutritionSepRe   = regexp.MustCompile(`[,;\n]`)
)

// actionVerbs mark the start of a new instruction step when sentence
// splitting is used. Checked in declared order.
var actionVerbs = []string{
	"heat", "cook", "add", "mix", "stir", "combine", "bake", "fry", "grill",
	"roast", "simmer", "boil", "sauté", "season", "serve", "remove", "place",
	"put", "set", "preheat", "prepare", "cut", "chop", "slice", "dice", "mince",
}

// splitSteps turns the raw instructions markup into discrete steps. When the
// markup carries explicit <br> markers, each fragment between them is one
// step. Otherwise the flattened text is split into sentences and consecutive
// sentences are merged into the same step until one begins with a
// cooking-action verb.
func splitSteps(rawHTML, flatText string) []string {
	var steps []string
	if brRe.MatchString(rawHTML) {
		for _, frag := range brRe.Split(rawHTML, -1) {
			if t := normalize.Text(fragmentText(frag)); t != "" {
				steps = append(steps, t)
			}
		}
	} else {
		steps = mergeSentences(splitSentences(normalize.Text(flatText)))
	}

	cleaned := make([]string, 0, len(steps))
	for _, step := range steps {
		step = strings.TrimSpace(stepNumberRe.ReplaceAllString(step, ""))
		if step == "" {
			continue
		}
		if !strings.ContainsRune(".!?", rune(step[len(step)-1])) {
			step += "."
		}
		cleaned = append(cleaned, step)
	}
	return cleaned
}

// splitSentences splits at boundaries where terminal punctuation is followed
// by whitespace and a capital letter.
func splitSentences(s string) []string {
	var parts []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		j := i + 1
		for j < len(runes) && unicode.IsSpace(runes[j]) {
			j++
		}
		if j == i+1 || j >= len(runes) || !unicode.IsUpper(runes[j]) {
			continue
		}
		parts = append(parts, string(runes[start:i+1]))
		start = j
		i = j - 1
	}
	if start < len(runes) {
		parts = append(parts, string(runes[start:]))
	}
	return parts
}

func mergeSentences(sentences []string) []string {
	var steps []string
	var cur string
	for _, sent := range sentences {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		switch {
		case startsWithActionVerb(sent) && cur != "":
			steps = append(steps, cur)
			cur = sent
		case cur != "":
			cur += " " + sent
		default:
			cur = sent
		}
	}
	if cur != "" {
		steps = append(steps, cur)
	}
	return steps
}

// startsWithActionVerb is a hand-rolled prefix test instead of a \b regexp
// because Go's word boundary is ASCII-only and the verb list contains
// "sauté".
func startsWithActionVerb(s string) bool {
	low := strings.ToLower(s)
	for _, v := range actionVerbs {
		if !strings.HasPrefix(low, v) {
			continue
		}
		rest := low[len(v):]
		if rest == "" {
			return true
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// splitNutrition splits on <br> markers when the raw markup has them, else
// on commas, semicolons, and newlines in the flattened text. Items without a
// colon are dropped; kept items are reformatted as "Label: value" with the
// label title-cased.
func splitNutrition(rawHTML, flatText string) []string {
	var items []string
	if brRe.MatchString(rawHTML) {
		for _, frag := range brRe.Split(rawHTML, -1) {
			items = append(items, fragmentText(frag))
		}
	} else {
		items = nutritionSepRe.Split(flatText, -1)
	}

	var out []string
	for _, item := range items {
		t := normalize.Text(item)
		if t == "" || !strings.Contains(t, ":") {
			continue
		}
		parts := strings.SplitN(t, ":", 2)
		label := normalize.TitleCase(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		out = append(out, label+": "+value)
	}
	return out
}

// fragmentText strips any residual tags from an HTML fragment.
func fragmentText(frag string) string {
	if !strings.Contains(frag, "<") {
		return frag
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(frag))
	if err != nil {
		return ""
	}
	return doc.Text()
}
