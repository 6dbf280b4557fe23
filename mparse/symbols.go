package mparse

// symbolTable maps a command name (without the leading backslash) to the
// Unicode code point it denotes. This is the public contract for which
// Greek letters, operators, relations, and arrows are recognized.
var symbolTable = map[string]rune{
	// Greek lowercase.
	"alpha": 'α', "beta": 'β', "gamma": 'γ', "delta": 'δ',
	"epsilon": 'ε', "varepsilon": 'ε',
	"zeta": 'ζ', "eta": 'η',
	"theta": 'θ', "vartheta": 'θ',
	"iota": 'ι', "kappa": 'κ',
	"lambda": 'λ', "mu": 'μ',
	"nu": 'ν', "xi": 'ξ',
	"pi": 'π', "varpi": 'π',
	"rho": 'ρ', "varrho": 'ρ',
	"sigma": 'σ', "varsigma": 'σ',
	"tau": 'τ', "upsilon": 'υ',
	"phi": 'φ', "varphi": 'φ',
	"chi": 'χ', "psi": 'ψ', "omega": 'ω',

	// Greek uppercase.
	"Gamma": 'Γ', "Delta": 'Δ', "Theta": 'Θ', "Lambda": 'Λ',
	"Xi": 'Ξ', "Pi": 'Π', "Sigma": 'Σ', "Upsilon": 'Υ',
	"Phi": 'Φ', "Psi": 'Ψ', "Omega": 'Ω',

	// Big operators.
	"sum": '∑', "prod": '∏', "int": '∫', "iint": '∬',
	"iiint": '∭', "oint": '∮', "bigcup": '⋃', "bigcap": '⋂',
	"bigoplus": '⨁', "bigotimes": '⨂', "coprod": '∐',

	// Binary operators.
	"times": '×', "div": '÷', "cdot": '⋅', "pm": '±',
	"mp": '∓', "circ": '∘', "ast": '∗', "star": '⋆',
	"oplus": '⊕', "otimes": '⊗',

	// Relations.
	"leq": '≤', "le": '≤', "geq": '≥', "ge": '≥',
	"neq": '≠', "ne": '≠', "approx": '≈', "equiv": '≡',
	"sim": '∼', "simeq": '≃', "cong": '≅', "propto": '∝',
	"subset": '⊂', "supset": '⊃', "subseteq": '⊆', "supseteq": '⊇',
	"in": '∈', "notin": '∉', "ni": '∋',
	"cup": '∪', "cap": '∩',
	"vee": '∨', "lor": '∨', "wedge": '∧', "land": '∧',
	"perp": '⊥', "parallel": '∥', "mid": '|',
	"ll": '≪', "gg": '≫', "prec": '≺', "succ": '≻',

	// Arrows.
	"to": '→', "rightarrow": '→',
	"leftarrow": '←', "gets": '←',
	"leftrightarrow": '↔',
	"Rightarrow": '⇒', "Leftarrow": '⇐',
	"Leftrightarrow": '⇔', "iff": '⇔',
	"uparrow": '↑', "downarrow": '↓',
	"mapsto": '↦', "hookrightarrow": '↪',
	"longrightarrow": '⟶', "Longrightarrow": '⟹',

	// Misc.
	"infty": '∞', "partial": '∂', "nabla": '∇',
	"forall": '∀', "exists": '∃', "nexists": '∄',
	"emptyset": '∅', "varnothing": '∅',
	"neg": '¬', "lnot": '¬',
	"angle": '∠', "triangle": '△', "prime": '′',
	"hbar": 'ℏ', "ell": 'ℓ', "aleph": 'ℵ',
	"Re": 'ℜ', "Im": 'ℑ',

	// Dots.
	"ldots": '…', "dots": '…', "cdots": '⋯',
	"vdots": '⋮', "ddots": '⋱',

	// Delimiters exposed as ordinary symbols.
	"langle": '⟨', "rangle": '⟩',
	"lceil": '⌈', "rceil": '⌉',
	"lfloor": '⌊', "rfloor": '⌋',
	"lbrace": '{', "rbrace": '}',
	"lvert": '|', "rvert": '|',
	"lVert": '‖', "rVert": '‖', "|": '‖',
}

// spaceTable maps a spacing command to its width in em units.
var spaceTable = map[string]float64{
	",":     0.17,
	":":     0.22,
	">":     0.22,
	";":     0.28,
	"!":     -0.17,
	"quad":  1.0,
	"qquad": 2.0,
	" ":     0.25,
}

// accentTable maps an accent command to the mark code point drawn above
// its argument (a combining circumflex for \hat, spacing characters for
// the others).
var accentTable = map[string]rune{
	"hat":   '̂',
	"tilde": '~',
	"vec":   '→',
	"dot":   '˙',
	"ddot":  '¨',
}

// functionNames is the set of command names that render as upright text
// with no special spacing rules applied.
var functionNames = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"arcsin": true, "arccos": true, "arctan": true,
	"sinh": true, "cosh": true, "tanh": true, "coth": true,
	"log": true, "ln": true, "exp": true,
	"lim": true, "limsup": true, "liminf": true,
	"max": true, "min": true, "sup": true, "inf": true,
	"det": true, "gcd": true, "lcm": true, "dim": true, "ker": true, "deg": true,
	"arg": true, "hom": true, "Pr": true, "mod": true,
}

// textCommands read a single brace-delimited literal and return it
// verbatim as upright Text.
var textCommands = map[string]bool{
	"text": true, "textrm": true, "mathrm": true, "operatorname": true,
}

// styleWrapperCommands discard styling and return their argument group
// unchanged; the font style itself is not modeled.
var styleWrapperCommands = map[string]bool{
	"mathbf": true, "bm": true, "mathit": true, "mathcal": true,
	"mathbb": true, "mathfrak": true, "mathsf": true, "mathtt": true,
	"boldsymbol": true, "textbf": true, "textit": true,
}

// delimCmdTable maps a backslash command naming a delimiter (used after
// \left / \right) to its code point.
var delimCmdTable = map[string]rune{
	"{": '{', "lbrace": '{',
	"}": '}', "rbrace": '}',
	"|": '‖', "lVert": '‖', "rVert": '‖',
	"langle": '⟨', "rangle": '⟩',
	"lceil": '⌈', "rceil": '⌉',
	"lfloor": '⌊', "rfloor": '⌋',
	"lvert": '|', "rvert": '|',
}

// fracCommands introduce a Frac node (two groups read: numerator then
// denominator).
var fracCommands = map[string]bool{"frac": true, "dfrac": true, "tfrac": true}

// bracketDelims maps an environment name ending in "matrix" to its fixed
// left/right delimiter pair.
var bracketDelims = map[string][2]rune{
	"pmatrix": {'(', ')'},
	"bmatrix": {'[', ']'},
	"Bmatrix": {'{', '}'},
	"vmatrix": {'|', '|'},
	"Vmatrix": {'‖', '‖'},
}
