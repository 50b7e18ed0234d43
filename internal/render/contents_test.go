package render

import (
	"strings"
	"testing"

	"github.com/notefold/paprika2notes/internal/recipe"
)

func TestContentsGrouping(t *testing.T) {
	recs := []recipe.Record{
		{Title: "Apple Pie"},
		{Title: "Banana Bread"},
		{Title: "Apricot Tart"},
	}
	out := Contents(recs)

	if got := strings.Count(out, "<h2>A</h2>"); got != 1 {
		t.Errorf("expected exactly one A section heading, got %d", got)
	}
	if got := strings.Count(out, "<h2>B</h2>"); got != 1 {
		t.Errorf("expected exactly one B section heading, got %d", got)
	}

	apple := strings.Index(out, ">Apple Pie<")
	apricot := strings.Index(out, ">Apricot Tart<")
	banana := strings.Index(out, ">Banana Bread<")
	if apple == -1 || apricot == -1 || banana == -1 {
		t.Fatalf("missing entries: %d %d %d", apple, apricot, banana)
	}
	if !(apple < apricot && apricot < banana) {
		t.Errorf("sorted order wrong: apple=%d apricot=%d banana=%d", apple, apricot, banana)
	}
}

// Equal case-insensitive sort keys keep their discovery order.
func TestContentsStableTieBreak(t *testing.T) {
	recs := []recipe.Record{
		{Title: "apple pie", PrepTime: "first"},
		{Title: "Apple Pie", PrepTime: "second"},
	}
	out := Contents(recs)
	first := strings.Index(out, "Prep: first")
	second := strings.Index(out, "Prep: second")
	if first == -1 || second == -1 {
		t.Fatal("missing meta lines")
	}
	if first > second {
		t.Error("tie-break did not preserve discovery order")
	}
}

func TestContentsStats(t *testing.T) {
	recs := []recipe.Record{
		{Title: "A", Categories: []string{"Dessert"}},
		{Title: "B", Categories: []string{"Dessert", "Breakfast"}},
		{Title: "C"},
	}
	out := Contents(recs)
	if !strings.Contains(out, "<p><strong>Total Recipes:</strong> 3</p>") {
		t.Error("total recipe count wrong")
	}
	if !strings.Contains(out, "<p><strong>Categories:</strong> 2</p>") {
		t.Error("distinct category count wrong")
	}
}

func TestContentsEmptyTitleFallback(t *testing.T) {
	out := Contents([]recipe.Record{{Title: ""}})
	if !strings.Contains(out, "<h2>#</h2>") {
		t.Error("empty title should fall into the # section")
	}
}

func TestContentsBalancedTags(t *testing.T) {
	out := Contents([]recipe.Record{
		{Title: "Apple Pie", Categories: []string{"Dessert"}},
		{Title: "Zucchini Bread"},
	})
	for _, tag := range []string{"div", "h1", "h2", "p", "html", "head", "body"} {
		open := strings.Count(out, "<"+tag)
		closed := strings.Count(out, "</"+tag+">")
		if open != closed {
			t.Errorf("tag %q unbalanced: %d open, %d closed", tag, open, closed)
		}
	}
}

func TestMetaLine(t *testing.T) {
	tests := []struct {
		name string
		rec  recipe.Record
		want string
	}{
		{
			"all fields",
			recipe.Record{Categories: []string{"A", "B"}, PrepTime: "10 minutes", CookTime: "1 hours"},
			"Categories: A, B • Prep: 10 minutes • Cook: 1 hours",
		},
		{"cook only", recipe.Record{CookTime: "45 minutes"}, "Cook: 45 minutes"},
		{"prep and cook", recipe.Record{PrepTime: "5 minutes", CookTime: "10 minutes"}, "Prep: 5 minutes • Cook: 10 minutes"},
		{"none", recipe.Record{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metaLine(tt.rec); got != tt.want {
				t.Errorf("metaLine = %q, want %q", got, tt.want)
			}
		})
	}
}
