// Package main provides the command-line entry point for mathshot.
//
// Usage:
//
//	mathshot -i input.tex -o out/
//	mathshot input.md --theme light --font-size 28 --scale 2
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/juntao/mathshot"
	"github.com/juntao/mathshot/config"
	"github.com/juntao/mathshot/extract"
	"github.com/juntao/mathshot/font"
	"github.com/juntao/mathshot/mparse"
	"github.com/juntao/mathshot/raster"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage()
		return
	case "version", "-V", "--version":
		printVersion()
		return
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mathshot - extract math equations from LaTeX/Markdown and render them as PNG

USAGE:
    mathshot -i <INPUT> [OPTIONS]
    mathshot <INPUT> [OPTIONS]

OPTIONS:
    -i, --input <FILE>       Input file (LaTeX/TeX or Markdown)
    -o, --output <DIR>       Output directory for PNG images [default: .]
    --config <FILE>          TOML config file overriding the defaults below
    --theme <dark|light>     Color theme [default: dark]
    --font-size <N>          Font size in points [default: 24]
    --scale <N>              Render scale factor [default: 3.0]
    --font-path <DIR>        Additional font search directory (repeatable)
    -h, --help               Print help
    -V, --version            Print version`)
}

func printVersion() {
	fmt.Println("mathshot version 0.1.0")
}

func run(args []string) error {
	fs := flag.NewFlagSet("mathshot", flag.ContinueOnError)
	input := fs.String("i", "", "Input file")
	inputLong := fs.String("input", "", "Input file (long form)")
	output := fs.String("o", ".", "Output directory")
	outputLong := fs.String("output", "", "Output directory (long form)")
	configPath := fs.String("config", "", "TOML config file")
	themeFlag := fs.String("theme", "", "Color theme (dark|light)")
	fontSize := fs.Float64("font-size", 0, "Font size in points")
	scale := fs.Float64("scale", 0, "Render scale factor")
	var fontPaths []string
	fs.Func("font-path", "Additional font search directory", func(s string) error {
		fontPaths = append(fontPaths, s)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return err
	}
	// flag stops at the first non-flag argument; resume parsing after each
	// positional so options may follow the input path.
	var positional []string
	for fs.NArg() > 0 {
		positional = append(positional, fs.Arg(0))
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return err
		}
	}

	inputPath := *input
	if inputPath == "" {
		inputPath = *inputLong
	}
	if inputPath == "" && len(positional) > 0 {
		inputPath = positional[0]
	}
	if inputPath == "" {
		return fmt.Errorf("input file is required")
	}

	outDir := *output
	if *outputLong != "" {
		outDir = *outputLong
	}

	opts, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *themeFlag != "" {
		opts.Theme = config.Theme(*themeFlag)
	}
	if *fontSize > 0 {
		opts.FontSize = *fontSize
	}
	if *scale > 0 {
		opts.Scale = *scale
	}
	if len(fontPaths) > 0 {
		opts.FontPaths = append(opts.FontPaths, fontPaths...)
	}

	theme := raster.ThemeDark
	if opts.Theme == config.ThemeLight {
		theme = raster.ThemeLight
	}

	mathFont, err := resolveFont(opts.FontPaths)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	equations := extractEquations(inputPath, string(content))
	if len(equations) == 0 {
		fmt.Fprintf(os.Stderr, "No math equations found in %s\n", inputPath)
		return nil
	}
	fmt.Fprintf(os.Stderr, "Found %d equation(s) in %s\n", len(equations), inputPath)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	success := 0
	for i, eq := range equations {
		outPath := filepath.Join(outDir, fmt.Sprintf("equation_%04d.png", i+1))
		node := mparse.Parse(eq.Content)
		warnMissingGlyphs(eq.Content, mathFont)
		img := mathshot.Render(node, mathFont, theme, opts.FontSize, opts.Scale)

		if err := savePNG(outPath, img); err != nil {
			fmt.Fprintf(os.Stderr, "  [ERROR] equation %d: %v\n", i+1, err)
			continue
		}

		kind := "inline "
		if eq.IsDisplay {
			kind = "display"
		}
		fmt.Fprintf(os.Stderr, "  [%s] %s -> %s\n", kind, truncate(eq.Content, 60), outPath)
		success++
	}

	fmt.Fprintf(os.Stderr, "Done. %d/%d equations rendered to %s\n", success, len(equations), outDir)
	return nil
}

func extractEquations(path, content string) []extract.Equation {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown", ".mdx":
		return extract.ExtractMarkdown(content)
	default:
		return extract.ExtractLatex(content)
	}
}

func resolveFont(extraDirs []string) (*font.Font, error) {
	book, err := font.SystemFontBook()
	if err != nil {
		return nil, fmt.Errorf("discovering system fonts: %w", err)
	}
	for _, dir := range extraDirs {
		found, err := font.DiscoverFonts([]string{dir})
		if err != nil {
			return nil, fmt.Errorf("scanning font directory %s: %w", dir, err)
		}
		book.Add(found...)
	}

	f, ok := book.ResolveMathFont(font.MathFallbackFamilies())
	if !ok {
		return nil, fmt.Errorf("no usable font found; pass --font-path to a directory containing a math font")
	}
	return f, nil
}

// warnMissingGlyphs reports, once per equation, which characters the
// resolved font has no glyph for, naming them with their Unicode
// identifier rather than a possibly-unrenderable character.
func warnMissingGlyphs(content string, f *font.Font) {
	seen := make(map[rune]bool)
	for _, r := range content {
		if r == '\\' || seen[r] {
			continue
		}
		if gid, ok := f.GlyphIndex(r); ok && gid != 0 {
			continue
		}
		seen[r] = true
		fmt.Fprintf(os.Stderr, "  [warn] no glyph for U+%04X %s in %s\n", r, font.GlyphName(r), f.Family())
	}
}

func savePNG(path string, img *raster.Buf) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// truncate shortens s to at most maxLen grapheme clusters, so multi-byte
// runes (and combined sequences) aren't split mid-character in the
// console preview.
func truncate(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	var b strings.Builder
	count := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if count >= maxLen {
			b.WriteString("...")
			return b.String()
		}
		b.WriteString(gr.Str())
		count++
	}
	return b.String()
}
