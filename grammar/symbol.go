// Package grammar implements the symbol/production data model and the
// Chomsky Normal Form transformation pipeline described by the grammar
// notation's grammar: START, DEL, UNIT, USELESS, TERM, BIN.
package grammar

import "fmt"

type symbolKind string

const (
	symbolKindNonTerminal = symbolKind("non-terminal")
	symbolKindTerminal    = symbolKind("terminal")
)

func (k symbolKind) String() string {
	return string(k)
}

// Symbol is an interned reference into a SymbolTable. The kind and
// "is the current start symbol" bits are packed into the high bits so
// that Symbol remains a small, comparable, map-key-friendly value, the
// same layout the grammar-tool lineage this package descends from uses.
type Symbol uint16

const (
	symbolNil = Symbol(0)

	symbolBaseMin = uint16(1)
	symbolBaseMax = uint16(0xffff) >> 2
)

const (
	kindMaskTerminal = uint16(0x8000)
	startMask        = uint16(0x4000)
	baseMask         = uint16(0x3fff)
)

// EpsilonName is the one reserved terminal name. It may only appear as
// the sole symbol of a production.
const EpsilonName = "epsilon"

func newSymbol(kind symbolKind, isStart bool, base uint16) (Symbol, error) {
	if base > symbolBaseMax {
		return symbolNil, fmt.Errorf("grammar: symbol base exceeds limit; limit: %v, got: %v", symbolBaseMax, base)
	}
	var km uint16
	if kind == symbolKindTerminal {
		km = kindMaskTerminal
	}
	var sm uint16
	if isStart {
		sm = startMask
	}
	return Symbol(km | sm | base), nil
}

func (s Symbol) describe() (symbolKind, bool, uint16) {
	kind := symbolKindNonTerminal
	if uint16(s)&kindMaskTerminal != 0 {
		kind = symbolKindTerminal
	}
	isStart := uint16(s)&startMask != 0
	base := uint16(s) & baseMask
	return kind, isStart, base
}

func (s Symbol) isNil() bool {
	_, _, base := s.describe()
	return base == 0
}

// IsTerminal reports whether s refers to a terminal symbol.
func (s Symbol) IsTerminal() bool {
	if s.isNil() {
		return false
	}
	kind, _, _ := s.describe()
	return kind == symbolKindTerminal
}

// IsNonTerminal reports whether s refers to a nonterminal symbol.
func (s Symbol) IsNonTerminal() bool {
	return !s.isNil() && !s.IsTerminal()
}

func (s Symbol) isStart() bool {
	if s.isNil() {
		return false
	}
	_, isStart, _ := s.describe()
	return isStart
}

func (s Symbol) String() string {
	kind, isStart, base := s.describe()
	var prefix string
	switch {
	case isStart:
		prefix = "s"
	case kind == symbolKindNonTerminal:
		prefix = "n"
	case kind == symbolKindTerminal:
		prefix = "t"
	default:
		prefix = "?"
	}
	return fmt.Sprintf("%s%d", prefix, base)
}

// SymbolTable interns symbol names to small Symbol values and back.
// Registration is idempotent: registering the same name twice returns
// the same Symbol, including across kind-neutral re-registration of the
// start symbol.
type SymbolTable struct {
	text2Sym map[string]Symbol
	sym2Text map[Symbol]string
	nBase    uint16
	tBase    uint16
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		text2Sym: map[string]Symbol{},
		sym2Text: map[Symbol]string{},
		nBase:    symbolBaseMin,
		tBase:    symbolBaseMin,
	}
}

// RegisterNonTerminal interns a nonterminal name.
func (t *SymbolTable) RegisterNonTerminal(name string) (Symbol, error) {
	if sym, ok := t.text2Sym[name]; ok {
		return t.promoteIfStart(sym, name, false), nil
	}
	sym, err := newSymbol(symbolKindNonTerminal, false, t.nBase)
	if err != nil {
		return symbolNil, err
	}
	t.nBase++
	t.text2Sym[name] = sym
	t.sym2Text[sym] = name
	return sym, nil
}

// RegisterStart interns name as the grammar's current start nonterminal.
// If name was already registered as a plain nonterminal, it is
// re-keyed with the start bit set; callers must discard any previously
// returned Symbol for name after calling this.
func (t *SymbolTable) RegisterStart(name string) (Symbol, error) {
	return t.promoteExisting(name)
}

func (t *SymbolTable) promoteExisting(name string) (Symbol, error) {
	if old, ok := t.text2Sym[name]; ok {
		if old.isStart() {
			return old, nil
		}
		_, _, base := old.describe()
		sym, err := newSymbol(symbolKindNonTerminal, true, base)
		if err != nil {
			return symbolNil, err
		}
		delete(t.sym2Text, old)
		t.text2Sym[name] = sym
		t.sym2Text[sym] = name
		return sym, nil
	}
	sym, err := newSymbol(symbolKindNonTerminal, true, t.nBase)
	if err != nil {
		return symbolNil, err
	}
	t.nBase++
	t.text2Sym[name] = sym
	t.sym2Text[sym] = name
	return sym, nil
}

func (t *SymbolTable) promoteIfStart(sym Symbol, name string, _ bool) Symbol {
	return sym
}

// RegisterTerminal interns a terminal name.
func (t *SymbolTable) RegisterTerminal(name string) (Symbol, error) {
	if sym, ok := t.text2Sym[name]; ok {
		return sym, nil
	}
	sym, err := newSymbol(symbolKindTerminal, false, t.tBase)
	if err != nil {
		return symbolNil, err
	}
	t.tBase++
	t.text2Sym[name] = sym
	t.sym2Text[sym] = name
	return sym, nil
}

// ToSymbol looks up a previously registered name.
func (t *SymbolTable) ToSymbol(name string) (Symbol, bool) {
	sym, ok := t.text2Sym[name]
	return sym, ok
}

// ToText returns the name a Symbol was registered under.
func (t *SymbolTable) ToText(sym Symbol) (string, bool) {
	text, ok := t.sym2Text[sym]
	return text, ok
}

// Has reports whether name has been registered, regardless of kind.
func (t *SymbolTable) Has(name string) bool {
	_, ok := t.text2Sym[name]
	return ok
}
