// Package extract locates math equations embedded in LaTeX/TeX and
// Markdown source documents, reporting each as a byte-range span over
// the original text so callers can report accurate source locations.
package extract

import (
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Equation is one math span found in a source document.
type Equation struct {
	// Content is the equation body, with delimiters stripped and
	// surrounding whitespace trimmed; for a named environment
	// (equation, align, ...) it is the full \begin...\end span verbatim.
	Content string
	// IsDisplay is true for display-style math ($$...$$, \[...\],
	// equation/align/... environments) and false for inline math.
	IsDisplay bool
	// Start and End are byte offsets of the full match (including
	// delimiters) in the original document.
	Start, End int
}

var envRe = regexp.MustCompile(`(?s)\\begin\{(equation\*?|align\*?|gather\*?|multline\*?|displaymath|flalign\*?|eqnarray\*?|pmatrix|bmatrix|vmatrix|Bmatrix|Vmatrix|cases)\}(.*?)\\end\{(equation\*?|align\*?|gather\*?|multline\*?|displaymath|flalign\*?|eqnarray\*?|pmatrix|bmatrix|vmatrix|Bmatrix|Vmatrix|cases)\}`)
var displayDollarRe = regexp.MustCompile(`(?s)\$\$(.*?)\$\$`)
var bracketRe = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)
var parenRe = regexp.MustCompile(`(?s)\\\((.*?)\\\)`)
var inlineCodeRe = regexp.MustCompile("`[^`\n]+`")

// span is a byte range already claimed by a found equation or a masked
// code region; used to prevent a later, looser pattern from matching
// inside a region an earlier, more specific pattern already claimed.
type span struct{ start, end int }

func overlaps(used []span, start, end int) bool {
	for _, s := range used {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}

// ExtractLatex finds every math equation in a LaTeX/TeX document. Display
// environments and $$...$$/\[...\] spans are matched first so that inline
// \(...\) and $...$ matching does not fire inside them.
func ExtractLatex(content string) []Equation {
	var equations []Equation
	var used []span

	for _, m := range envRe.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[0], m[1]
		openEnv := content[m[2]:m[3]]
		closeEnv := content[m[6]:m[7]]
		if openEnv != closeEnv {
			continue
		}
		if overlaps(used, start, end) {
			continue
		}
		used = append(used, span{start, end})
		equations = append(equations, Equation{Content: content[start:end], IsDisplay: true, Start: start, End: end})
	}

	claimGroup1 := func(re *regexp.Regexp, isDisplay bool) {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			start, end := m[0], m[1]
			if overlaps(used, start, end) {
				continue
			}
			inner := strings.TrimSpace(content[m[2]:m[3]])
			if inner == "" {
				continue
			}
			used = append(used, span{start, end})
			equations = append(equations, Equation{Content: inner, IsDisplay: isDisplay, Start: start, End: end})
		}
	}

	claimGroup1(displayDollarRe, true)
	claimGroup1(bracketRe, true)
	claimGroup1(parenRe, false)

	equations = append(equations, extractSingleDollar(content, &used)...)

	sort.Slice(equations, func(i, j int) bool { return equations[i].Start < equations[j].Start })
	return equations
}

// extractSingleDollar scans for $...$ inline math with a byte-level state
// machine rather than a regex, since escaped dollars (\$), adjacent
// display delimiters ($$), and unbalanced dollars all need lookback that
// a single regex can't express cleanly.
func extractSingleDollar(content string, used *[]span) []Equation {
	var equations []Equation
	b := []byte(content)
	i := 0
	for i < len(b) {
		if b[i] != '$' {
			i++
			continue
		}
		if i+1 < len(b) && b[i+1] == '$' {
			i += 2
			continue
		}
		if i > 0 && b[i-1] == '$' {
			i++
			continue
		}
		if i > 0 && b[i-1] == '\\' {
			i++
			continue
		}

		open := i
		i++
		for i < len(b) {
			if b[i] == '$' && b[i-1] != '\\' {
				if i+1 < len(b) && b[i+1] == '$' {
					i += 2
					continue
				}
				closeAt := i + 1
				if !overlaps(*used, open, closeAt) {
					trimmed := strings.TrimSpace(content[open+1 : i])
					if trimmed != "" {
						*used = append(*used, span{open, closeAt})
						equations = append(equations, Equation{Content: trimmed, IsDisplay: false, Start: open, End: closeAt})
					}
				}
				i++
				break
			}
			i++
		}
	}
	return equations
}

// ExtractMarkdown finds math equations in a Markdown document the same
// way ExtractLatex does, but discards any match that falls entirely
// inside a fenced or inline code region.
func ExtractMarkdown(content string) []Equation {
	codeRanges := findCodeRanges(content)
	if fm, ok := frontmatterRange(content); ok {
		codeRanges = append(codeRanges, fm)
	}
	equations := ExtractLatex(content)

	out := equations[:0]
	for _, eq := range equations {
		inCode := false
		for _, r := range codeRanges {
			if eq.Start >= r.start && eq.End <= r.end {
				inCode = true
				break
			}
		}
		if !inCode {
			out = append(out, eq)
		}
	}
	return out
}

// frontmatterRange reports the byte range of a leading YAML frontmatter
// block (delimited by a `---` line at the very start of the document and
// a closing `---` line), so math-like text inside document metadata
// (e.g. a quoted price containing a dollar sign) is never mistaken for
// an equation. The block is only masked when it actually parses as
// YAML; a `---` horizontal rule that happens to open the document is
// left alone.
func frontmatterRange(content string) (span, bool) {
	const delim = "---"
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != delim {
		return span{}, false
	}

	offset := len(lines[0]) + 1
	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimRight(line, "\r") == delim {
			end := offset + len(line)
			body := content[len(lines[0])+1 : offset]
			var probe map[string]any
			if yaml.Unmarshal([]byte(body), &probe) != nil {
				return span{}, false
			}
			return span{0, end}, true
		}
		offset += len(line) + 1
	}
	return span{}, false
}

// findCodeRanges locates fenced (``` or ~~~) and inline (`...`) code
// regions so ExtractMarkdown can exclude math-like text inside them.
func findCodeRanges(content string) []span {
	var ranges []span

	inFence := false
	fenceStart := 0
	offset := 0
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		isFence := strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
		if !inFence && isFence {
			inFence = true
			fenceStart = offset
		} else if inFence && isFence {
			inFence = false
			ranges = append(ranges, span{fenceStart, offset + len(line)})
		}
		offset += len(line) + 1
	}

	for _, m := range inlineCodeRe.FindAllStringIndex(content, -1) {
		if !overlaps(ranges, m[0], m[1]) {
			ranges = append(ranges, span{m[0], m[1]})
		}
	}

	return ranges
}
