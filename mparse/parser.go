// Package mparse turns a formula's raw TeX-family markup into a mast.Node
// tree.
//
// The parser is a hand-written recursive-descent machine over a rune
// cursor; there is no separate tokenizer. It never fails: malformed
// input always yields a best-effort tree, with unrecognized commands
// surfacing as literal text so a human can still see what went wrong.
package mparse

import (
	"strings"
	"unicode"

	"github.com/juntao/mathshot/mast"
)

// Parse parses the inner markup of one equation into a single AST node.
// If the markup is exactly a \begin{equation|displaymath|math}...\end{...}
// wrapper, the wrapper is stripped first.
func Parse(input string) mast.Node {
	input = stripEnvWrapper(strings.TrimSpace(input))
	p := &parser{runes: []rune(input)}
	return p.parseExprUntil(func(rune) bool { return false })
}

var wrapperNames = map[string]bool{"equation": true, "equation*": true, "displaymath": true, "math": true}

// stripEnvWrapper removes a top-level \begin{NAME}...\end{NAME} wrapper
// when NAME is one of the single-equation environments in wrapperNames.
func stripEnvWrapper(input string) string {
	const prefix = `\begin{`
	if !strings.HasPrefix(input, prefix) {
		return input
	}
	rest := input[len(prefix):]
	closeIdx := strings.IndexByte(rest, '}')
	if closeIdx < 0 {
		return input
	}
	name := rest[:closeIdx]
	if !wrapperNames[name] {
		return input
	}
	endTag := `\end{` + name + `}`
	if !strings.HasSuffix(input, endTag) {
		return input
	}
	beginTag := prefix + name + "}"
	body := strings.TrimSuffix(strings.TrimPrefix(input, beginTag), endTag)
	return strings.TrimSpace(body)
}

type parser struct {
	runes []rune
	pos   int
}

func (p *parser) peek() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	return p.runes[p.pos], true
}

func (p *parser) advance() (rune, bool) {
	ch, ok := p.peek()
	if ok {
		p.pos++
	}
	return ch, ok
}

func (p *parser) skipWS() {
	for {
		ch, ok := p.peek()
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		p.pos++
	}
}

func (p *parser) eat(ch rune) bool {
	p.skipWS()
	if c, ok := p.peek(); ok && c == ch {
		p.pos++
		return true
	}
	return false
}

func (p *parser) readUntil(stop rune) string {
	var b strings.Builder
	for {
		ch, ok := p.peek()
		if !ok || ch == stop {
			break
		}
		b.WriteRune(ch)
		p.pos++
	}
	return b.String()
}

// readCmd reads a maximal ASCII-alphabetic run as a command name; if that
// run is empty, it consumes exactly one following character instead, so
// that \, \! \{ \\ are all valid one-character commands.
func (p *parser) readCmd() string {
	var b strings.Builder
	for {
		ch, ok := p.peek()
		if !ok || !isASCIIAlpha(ch) {
			break
		}
		b.WriteRune(ch)
		p.pos++
	}
	if b.Len() == 0 {
		if ch, ok := p.advance(); ok {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func (p *parser) readEnvName() string {
	p.eat('{')
	name := p.readUntil('}')
	p.eat('}')
	return name
}

// readGroup parses a brace-delimited expression, or a single atom when no
// brace is present.
func (p *parser) readGroup() mast.Node {
	p.skipWS()
	if p.eat('{') {
		node := p.parseExprUntil(func(c rune) bool { return c == '}' })
		p.eat('}')
		return node
	}
	if n, ok := p.parseSingleAtom(); ok {
		return n
	}
	return mast.Row{}
}

// parseSingleAtom parses one atom without attaching scripts.
func (p *parser) parseSingleAtom() (mast.Node, bool) {
	p.skipWS()
	ch, ok := p.peek()
	if !ok {
		return nil, false
	}
	switch ch {
	case '\\':
		p.pos++
		cmd := p.readCmd()
		return p.dispatchCmd(cmd)
	case '{':
		return p.readGroup(), true
	case '}', '&', '^', '_':
		return nil, false
	default:
		p.pos++
		return mast.Symbol{Ch: ch}, true
	}
}

// parseExprUntil consumes atoms with attached scripts until end of input,
// a character accepted by stop, or a \end / \right / \\ sentinel (which
// is left unconsumed for the caller to handle).
func (p *parser) parseExprUntil(stop func(rune) bool) mast.Node {
	var nodes []mast.Node

	for {
		p.skipWS()
		ch, ok := p.peek()
		if !ok {
			break
		}
		if stop(ch) {
			break
		}
		if ch == '\\' {
			saved := p.pos
			p.pos++
			cmd := p.readCmd()
			if cmd == "end" || cmd == "right" || cmd == "\\" {
				p.pos = saved
				break
			}
			p.pos = saved
			n, ok := p.parseSingleAtom()
			if !ok {
				break
			}
			nodes = append(nodes, p.maybeScripts(n))
			continue
		}
		if ch == '^' || ch == '_' {
			nodes = append(nodes, p.maybeScripts(mast.Row{}))
			continue
		}
		n, ok := p.parseSingleAtom()
		if !ok {
			break
		}
		nodes = append(nodes, p.maybeScripts(n))
	}

	if len(nodes) == 1 {
		return nodes[0]
	}
	return mast.Row{Children: nodes}
}

// maybeScripts accepts at most one ^ and one _ (in either order) after an
// atom and attaches them (I2).
func (p *parser) maybeScripts(base mast.Node) mast.Node {
	var sup, sub mast.Node
	haveSup, haveSub := false, false
	for {
		p.skipWS()
		ch, ok := p.peek()
		if !ok {
			break
		}
		if ch == '^' && !haveSup {
			p.pos++
			sup = p.readGroup()
			haveSup = true
			continue
		}
		if ch == '_' && !haveSub {
			p.pos++
			sub = p.readGroup()
			haveSub = true
			continue
		}
		break
	}
	switch {
	case haveSub && haveSup:
		return mast.SubSup{Base: base, Sub: sub, Sup: sup}
	case haveSup:
		return mast.Sup{Base: base, Sup: sup}
	case haveSub:
		return mast.Sub{Base: base, Sub: sub}
	default:
		return base
	}
}

// dispatchCmd resolves a command name (without its leading backslash) to
// a node. The ok result is false for sentinels (\right, \\, \end) that
// are not nodes in their own right.
func (p *parser) dispatchCmd(cmd string) (mast.Node, bool) {
	if fracCommands[cmd] {
		num := p.readGroup()
		den := p.readGroup()
		return mast.Frac{Num: num, Den: den}, true
	}
	if cmd == "sqrt" {
		return mast.Sqrt{Inner: p.readGroup()}, true
	}
	if cmd == "overline" || cmd == "bar" {
		return mast.Overline{Inner: p.readGroup()}, true
	}
	if mark, ok := accentTable[cmd]; ok {
		return mast.Accent{Mark: mark, Inner: p.readGroup()}, true
	}
	if textCommands[cmd] {
		p.eat('{')
		t := p.readUntil('}')
		p.eat('}')
		return mast.Text{S: t}, true
	}
	if styleWrapperCommands[cmd] {
		return p.readGroup(), true
	}
	if ch, ok := symbolTable[cmd]; ok {
		return mast.Symbol{Ch: ch}, true
	}
	if em, ok := spaceTable[cmd]; ok {
		return mast.Space{Em: em}, true
	}
	if functionNames[cmd] {
		return mast.Text{S: cmd}, true
	}

	switch cmd {
	case "left":
		left := p.readDelimChar()
		inner := p.parseExprUntil(func(rune) bool { return false })
		p.pos++ // skip the '\' of \right
		p.readCmd()
		right := p.readDelimChar()
		return mast.Delimited{Left: left, Right: right, Inner: inner}, true
	case "right":
		return nil, false
	case "begin":
		env := p.readEnvName()
		return p.parseEnv(env)
	case "end":
		p.readEnvName()
		return nil, false
	case "\\":
		return nil, false
	case "not":
		return p.parseSingleAtom()
	default:
		return mast.Text{S: "\\" + cmd}, true
	}
}

// readDelimChar reads the delimiter that follows \left or \right.
func (p *parser) readDelimChar() rune {
	p.skipWS()
	ch, ok := p.peek()
	if !ok {
		return mast.NoDelim
	}
	if ch == '\\' {
		p.pos++
		cmd := p.readCmd()
		if d, ok := delimCmdTable[cmd]; ok {
			return d
		}
		return '.'
	}
	p.pos++
	if ch == '.' {
		return mast.NoDelim
	}
	return ch
}

// parseEnv dispatches on an environment name opened by \begin.
func (p *parser) parseEnv(env string) (mast.Node, bool) {
	if bd, ok := bracketDelims[env]; ok {
		return mast.Matrix{Rows: p.parseTabular(), Left: bd[0], Right: bd[1]}, true
	}
	switch env {
	case "matrix", "smallmatrix":
		return mast.Matrix{Rows: p.parseTabular(), Left: mast.NoDelim, Right: mast.NoDelim}, true
	case "cases":
		return mast.Cases{Rows: p.parseTabular()}, true
	case "array":
		p.skipWS()
		if p.eat('{') {
			p.readUntil('}')
			p.eat('}')
		}
		return mast.Matrix{Rows: p.parseTabular(), Left: mast.NoDelim, Right: mast.NoDelim}, true
	default:
		rows := p.parseTabular()
		if len(rows) == 1 && len(rows[0]) == 1 {
			return rows[0][0], true
		}
		return mast.Matrix{Rows: rows, Left: mast.NoDelim, Right: mast.NoDelim}, true
	}
}

// parseTabular parses & separated cells and \\ separated rows until
// \end{...}, which is consumed.
func (p *parser) parseTabular() [][]mast.Node {
	var rows [][]mast.Node
	var row []mast.Node

	for {
		cell := p.parseExprUntil(func(c rune) bool { return c == '&' })
		p.skipWS()
		ch, ok := p.peek()
		if !ok {
			row = append(row, cell)
			break
		}
		switch {
		case ch == '&':
			p.pos++
			row = append(row, cell)
		case ch == '\\':
			saved := p.pos
			p.pos++
			cmd := p.readCmd()
			switch {
			case cmd == "end":
				p.readEnvName()
				row = append(row, cell)
				rows = append(rows, row)
				return rows
			case cmd == "\\":
				row = append(row, cell)
				rows = append(rows, row)
				row = nil
				p.skipWS()
				if ch, ok := p.peek(); ok && ch == '[' {
					p.pos++
					p.readUntil(']')
					p.eat(']')
				}
			case cmd == "hline" || cmd == "cline":
				if cmd == "cline" {
					p.eat('{')
					p.readUntil('}')
					p.eat('}')
				}
				// Cell dropped; \hline/\cline carry no content of their own.
			default:
				p.pos = saved
				row = append(row, cell)
				return appendNonEmpty(rows, row)
			}
		default:
			row = append(row, cell)
			return appendNonEmpty(rows, row)
		}
	}
	return appendNonEmpty(rows, row)
}

func appendNonEmpty(rows [][]mast.Node, row []mast.Node) [][]mast.Node {
	if len(row) != 0 {
		rows = append(rows, row)
	}
	return rows
}

func isASCIIAlpha(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}
