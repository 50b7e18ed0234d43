// Package recipe defines the domain record produced by extraction and
// consumed by rendering. A Record is assembled through a Builder during
// parsing and is immutable once built.
package recipe

// Record holds the cleaned fields of a single recipe. All text has been
// normalized (NFKC, entity-decoded, whitespace-collapsed) before it is
// stored; no raw source text is retained.
type Record struct {
	Title      string
	Categories []string

	PrepTime string
	CookTime string
	Servings string

	SourceURL  string
	SourceName string

	Ingredients  []string
	Instructions []string
	Notes        []string
	Nutrition    []string

	// ImagePath is the raw image reference from the export. It is not
	// resolved or copied.
	ImagePath string
}

// HasMetadata reports whether at least one field of the metadata block
// (prep time, cook time, servings, categories) is present.
func (r Record) HasMetadata() bool {
	return r.PrepTime != "" || r.CookTime != "" || r.Servings != "" || len(r.Categories) > 0
}

// Builder accumulates recipe fields from independent, order-insensitive
// extraction steps and freezes them into a Record.
type Builder struct {
	rec Record
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Title(s string) *Builder {
	b.rec.Title = s
	return b
}

func (b *Builder) AddCategory(s string) *Builder {
	if s != "" {
		b.rec.Categories = append(b.rec.Categories, s)
	}
	return b
}

func (b *Builder) PrepTime(s string) *Builder {
	b.rec.PrepTime = s
	return b
}

func (b *Builder) CookTime(s string) *Builder {
	b.rec.CookTime = s
	return b
}

func (b *Builder) Servings(s string) *Builder {
	b.rec.Servings = s
	return b
}

func (b *Builder) Source(url, name string) *Builder {
	b.rec.SourceURL = url
	b.rec.SourceName = name
	return b
}

func (b *Builder) AddIngredient(s string) *Builder {
	if s != "" {
		b.rec.Ingredients = append(b.rec.Ingredients, s)
	}
	return b
}

func (b *Builder) Instructions(steps []string) *Builder {
	b.rec.Instructions = steps
	return b
}

func (b *Builder) Notes(notes []string) *Builder {
	b.rec.Notes = notes
	return b
}

func (b *Builder) Nutrition(items []string) *Builder {
	b.rec.Nutrition = items
	return b
}

func (b *Builder) Image(path string) *Builder {
	b.rec.ImagePath = path
	return b
}

// Build freezes the accumulated fields into a Record. Slices are copied so
// that later builder use cannot be observed through the returned value.
func (b *Builder) Build() Record {
	rec := b.rec
	rec.Categories = copyStrings(b.rec.Categories)
	rec.Ingredients = copyStrings(b.rec.Ingredients)
	rec.Instructions = copyStrings(b.rec.Instructions)
	rec.Notes = copyStrings(b.rec.Notes)
	rec.Nutrition = copyStrings(b.rec.Nutrition)
	return rec
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
