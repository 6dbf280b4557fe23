package mast

import "testing"

func TestHasDelim(t *testing.T) {
	if HasDelim(NoDelim) {
		t.Fatalf("NoDelim must report false")
	}
	if !HasDelim('(') {
		t.Fatalf("a real delimiter rune must report true")
	}
}

func TestNodeVariantsSatisfyNode(t *testing.T) {
	var nodes = []Node{
		Symbol{Ch: 'x'},
		Text{S: "sin"},
		Space{Em: 0.5},
		Row{Children: []Node{Symbol{Ch: 'a'}}},
		Frac{Num: Symbol{Ch: '1'}, Den: Symbol{Ch: '2'}},
		Sup{Base: Symbol{Ch: 'x'}, Sup: Symbol{Ch: '2'}},
		Sub{Base: Symbol{Ch: 'x'}, Sub: Symbol{Ch: 'i'}},
		SubSup{Base: Symbol{Ch: 'x'}, Sub: Symbol{Ch: 'i'}, Sup: Symbol{Ch: '2'}},
		Sqrt{Inner: Symbol{Ch: 'x'}},
		Overline{Inner: Symbol{Ch: 'x'}},
		Accent{Mark: '^', Inner: Symbol{Ch: 'x'}},
		Matrix{Rows: [][]Node{{Symbol{Ch: '1'}}}, Left: '(', Right: ')'},
		Cases{Rows: [][]Node{{Symbol{Ch: '1'}}}},
		Delimited{Left: '(', Right: ')', Inner: Symbol{Ch: 'x'}},
	}
	if len(nodes) != 14 {
		t.Fatalf("expected all 14 node kinds represented, got %d", len(nodes))
	}
}

func TestSubSupFieldOrderIsSubThenSup(t *testing.T) {
	// Positional literal: Base, then Sub, then Sup in declaration order.
	n := SubSup{Symbol{Ch: 'x'}, Symbol{Ch: 'i'}, Symbol{Ch: '2'}}
	sub, ok := n.Sub.(Symbol)
	if !ok || sub.Ch != 'i' {
		t.Fatalf("Sub field did not hold the subscript node: %+v", n.Sub)
	}
	sup, ok := n.Sup.(Symbol)
	if !ok || sup.Ch != '2' {
		t.Fatalf("Sup field did not hold the superscript node: %+v", n.Sup)
	}
}
