package font

import "testing"

func newTestFont(family string) *Font {
	return &Font{Info: FontInfo{Family: family}}
}

func TestFontBookResolveMathFontPrefersEarlierFamily(t *testing.T) {
	book := NewFontBook()
	book.Add(newTestFont("DejaVu Sans"), newTestFont("STIX Two Math"))

	got, ok := book.ResolveMathFont([]string{"STIX Two Math", "DejaVu Sans"})
	if !ok {
		t.Fatal("ResolveMathFont returned ok=false for non-empty book")
	}
	if got.Family() != "STIX Two Math" {
		t.Fatalf("Family() = %q, want %q", got.Family(), "STIX Two Math")
	}
}

func TestFontBookResolveMathFontFallsBackToAnyFont(t *testing.T) {
	book := NewFontBook()
	book.Add(newTestFont("Unrelated Sans"))

	got, ok := book.ResolveMathFont([]string{"STIX Two Math"})
	if !ok {
		t.Fatal("ResolveMathFont returned ok=false for non-empty book")
	}
	if got.Family() != "Unrelated Sans" {
		t.Fatalf("Family() = %q, want the only font in the book", got.Family())
	}
}

func TestFontBookResolveMathFontEmptyBook(t *testing.T) {
	book := NewFontBook()
	if _, ok := book.ResolveMathFont([]string{"STIX Two Math"}); ok {
		t.Fatal("ResolveMathFont returned ok=true for an empty book")
	}
}

func TestNormalizeFamilyIgnoresCaseAndSuffix(t *testing.T) {
	book := NewFontBook()
	book.Add(newTestFont("STIX Two Math Regular"))

	matches := book.FindByFamily("stix two math")
	if len(matches) != 1 {
		t.Fatalf("FindByFamily matched %d fonts, want 1", len(matches))
	}
}
