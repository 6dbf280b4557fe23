package font

import (
	"embed"
	"io/fs"
)

// EmbeddedFonts provides access to a bundled fallback math font. To use,
// set this to an embed.FS containing a font file:
//
//	//go:embed fonts/*.otf
//	var embeddedFonts embed.FS
//
//	func init() {
//	    font.EmbeddedFonts = &embeddedFonts
//	}
var EmbeddedFonts *embed.FS

// LoadEmbeddedFonts loads all fonts from the embedded filesystem.
// Returns nil if no embedded fonts are configured.
func LoadEmbeddedFonts() ([]*Font, error) {
	if EmbeddedFonts == nil {
		return nil, nil
	}

	return LoadFromFS(EmbeddedFonts, ".")
}

// LoadFromFS loads all fonts from a filesystem (embed.FS, os.DirFS, etc.).
func LoadFromFS(fsys fs.FS, root string) ([]*Font, error) {
	var fonts []*Font

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !IsFontFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil
		}

		loaded, err := LoadFromBytes(data, path)
		if err != nil {
			return nil
		}
		fonts = append(fonts, loaded...)
		return nil
	})
	if err != nil {
		return fonts, err
	}

	return fonts, nil
}

// MathFallbackFamilies is the ordered list of font families tried when
// resolving the face used to set a formula, most math-complete first.
func MathFallbackFamilies() []string {
	return []string{
		"STIX Two Math",
		"STIX Math",
		"Latin Modern Math",
		"TeX Gyre Termes Math",
		"Asana Math",
		"Noto Sans Math",
		"XITS Math",
		"DejaVu Math TeX Gyre",
		"DejaVu Sans",
	}
}
