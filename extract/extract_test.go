package extract

import "testing"

func TestExtractLatexInlineDollar(t *testing.T) {
	eqs := ExtractLatex("before $x^2 + 1$ after")
	if len(eqs) != 1 {
		t.Fatalf("len = %d, want 1", len(eqs))
	}
	if eqs[0].Content != "x^2 + 1" || eqs[0].IsDisplay {
		t.Fatalf("eq = %+v", eqs[0])
	}
}

func TestExtractLatexDisplayDoubleDollar(t *testing.T) {
	eqs := ExtractLatex("text $$E = mc^2$$ more")
	if len(eqs) != 1 || !eqs[0].IsDisplay || eqs[0].Content != "E = mc^2" {
		t.Fatalf("eqs = %+v", eqs)
	}
}

func TestExtractLatexBracketDisplay(t *testing.T) {
	eqs := ExtractLatex(`a \[ \int_0^1 f(x)\,dx \] b`)
	if len(eqs) != 1 || !eqs[0].IsDisplay {
		t.Fatalf("eqs = %+v", eqs)
	}
}

func TestExtractLatexParenInline(t *testing.T) {
	eqs := ExtractLatex(`see \(\alpha + \beta\) here`)
	if len(eqs) != 1 || eqs[0].IsDisplay || eqs[0].Content != `\alpha + \beta` {
		t.Fatalf("eqs = %+v", eqs)
	}
}

func TestExtractLatexEquationEnvironment(t *testing.T) {
	content := "\\begin{equation}\nx = y\n\\end{equation}"
	eqs := ExtractLatex(content)
	if len(eqs) != 1 || !eqs[0].IsDisplay {
		t.Fatalf("eqs = %+v", eqs)
	}
	if eqs[0].Content != content {
		t.Fatalf("content = %q, want full environment text", eqs[0].Content)
	}
}

func TestExtractLatexMismatchedEnvironmentNamesIgnored(t *testing.T) {
	eqs := ExtractLatex("\\begin{equation}x\\end{align}")
	if len(eqs) != 0 {
		t.Fatalf("eqs = %+v, want none (mismatched begin/end names)", eqs)
	}
}

func TestExtractLatexSkipsEscapedDollar(t *testing.T) {
	eqs := ExtractLatex(`price: \$5, then $x$`)
	if len(eqs) != 1 || eqs[0].Content != "x" {
		t.Fatalf("eqs = %+v", eqs)
	}
}

func TestExtractLatexEmptyDollarSpanSkipped(t *testing.T) {
	eqs := ExtractLatex("a $$ b $x$ c")
	if len(eqs) != 1 || eqs[0].Content != "x" {
		t.Fatalf("eqs = %+v, want only the non-empty span", eqs)
	}
}

func TestExtractLatexOrdersBySourcePosition(t *testing.T) {
	eqs := ExtractLatex(`$b$ text \(a\) $$c$$`)
	if len(eqs) != 3 {
		t.Fatalf("len = %d, want 3", len(eqs))
	}
	for i := 1; i < len(eqs); i++ {
		if eqs[i].Start < eqs[i-1].Start {
			t.Fatalf("equations not sorted by Start: %+v", eqs)
		}
	}
}

func TestExtractLatexDisplayEnvironmentWinsOverInlineDollar(t *testing.T) {
	content := "\\begin{equation}\n$x$\n\\end{equation}"
	eqs := ExtractLatex(content)
	if len(eqs) != 1 || !eqs[0].IsDisplay {
		t.Fatalf("eqs = %+v, want the environment to claim the span first", eqs)
	}
}

func TestExtractMarkdownSkipsFencedCodeBlock(t *testing.T) {
	content := "text $a$\n```\n$b$\n```\n$c$"
	eqs := ExtractMarkdown(content)
	var contents []string
	for _, eq := range eqs {
		contents = append(contents, eq.Content)
	}
	if len(contents) != 2 || contents[0] != "a" || contents[1] != "c" {
		t.Fatalf("contents = %v, want [a c]", contents)
	}
}

func TestExtractMarkdownSkipsInlineCode(t *testing.T) {
	eqs := ExtractMarkdown("see `$x$` then $y$")
	if len(eqs) != 1 || eqs[0].Content != "y" {
		t.Fatalf("eqs = %+v", eqs)
	}
}

func TestExtractMarkdownMasksYAMLFrontmatter(t *testing.T) {
	content := "---\ntitle: x\nprice: five dollars\n---\n$y$"
	eqs := ExtractMarkdown(content)
	if len(eqs) != 1 || eqs[0].Content != "y" {
		t.Fatalf("eqs = %+v, want only the equation after the frontmatter block", eqs)
	}
}

func TestExtractMarkdownLeavesNonYAMLHorizontalRuleAlone(t *testing.T) {
	content := "---\n$a$\n---\n$b$"
	eqs := ExtractMarkdown(content)
	if len(eqs) != 2 {
		t.Fatalf("eqs = %+v, want both equations found since the leading block is not valid YAML frontmatter", eqs)
	}
}

func TestExtractMarkdownTildeFence(t *testing.T) {
	content := "~~~\n$a$\n~~~\n$b$"
	eqs := ExtractMarkdown(content)
	if len(eqs) != 1 || eqs[0].Content != "b" {
		t.Fatalf("eqs = %+v", eqs)
	}
}
