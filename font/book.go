package font

import (
	"sort"
	"strings"
	"sync"
)

// FontBook holds every font discovered on the system or supplied
// explicitly, and resolves the single math face a render should use from
// an ordered family preference list. Math formulas are set in one face;
// there is no bold/italic/weight matching to do, unlike a general
// document typesetter.
type FontBook struct {
	fonts    []*Font
	byFamily map[string][]*Font
	mu       sync.RWMutex
}

// NewFontBook creates a new empty FontBook.
func NewFontBook() *FontBook {
	return &FontBook{
		byFamily: make(map[string][]*Font),
	}
}

// Add adds fonts to the book, indexing each by its normalized family name.
func (b *FontBook) Add(fonts ...*Font) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, f := range fonts {
		b.fonts = append(b.fonts, f)
		family := normalizeFamily(f.Info.Family)
		b.byFamily[family] = append(b.byFamily[family], f)
	}
}

// Len returns the number of fonts in the book.
func (b *FontBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.fonts)
}

// Fonts returns all fonts in the book.
func (b *FontBook) Fonts() []*Font {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]*Font, len(b.fonts))
	copy(result, b.fonts)
	return result
}

// Families returns all unique family names in the book, sorted.
func (b *FontBook) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	families := make([]string, 0, len(b.byFamily))
	for family := range b.byFamily {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// FindByFamily returns all fonts matching the given family name.
func (b *FontBook) FindByFamily(family string) []*Font {
	b.mu.RLock()
	defer b.mu.RUnlock()

	fonts := b.byFamily[normalizeFamily(family)]
	if len(fonts) == 0 {
		return nil
	}
	result := make([]*Font, len(fonts))
	copy(result, fonts)
	return result
}

// ResolveMathFont walks families in order and returns the first font
// matching one of them. If none match, it falls back to the first font
// in the book (so an unusual but present font is still used rather than
// failing outright). ok is false only when the book is empty.
func (b *FontBook) ResolveMathFont(families []string) (f *Font, ok bool) {
	for _, family := range families {
		if matches := b.FindByFamily(family); len(matches) > 0 {
			return matches[0], true
		}
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.fonts) == 0 {
		return nil, false
	}
	return b.fonts[0], true
}

// normalizeFamily normalizes a font family name for comparison.
func normalizeFamily(family string) string {
	s := strings.ToLower(family)
	s = strings.TrimSuffix(s, " regular")
	s = strings.TrimSuffix(s, " normal")
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// SystemFontBook creates a FontBook loaded with every font discovered in
// the system's font directories.
func SystemFontBook() (*FontBook, error) {
	fonts, err := DiscoverSystemFonts()
	if err != nil {
		return nil, err
	}

	book := NewFontBook()
	book.Add(fonts...)
	return book, nil
}
