package grammar

import (
	"fmt"

	"github.com/nihei9/cfgequiv/parser"
)

// FromAST converts a parsed grammar-source AST (§6) into a Grammar. A
// bare identifier on an RHS is a nonterminal reference, a quoted string
// is a terminal, and the bare "epsilon" keyword stands alone as an
// alternative. The start symbol is the LHS of the first rule.
func FromAST(root *parser.AST) (*Grammar, error) {
	if root == nil || len(root.Children) == 0 {
		return nil, fmt.Errorf("grammar: empty grammar")
	}

	g, err := New()
	if err != nil {
		return nil, err
	}

	startName := root.Children[0].Children[0].Text
	if err := g.SetStart(startName); err != nil {
		return nil, err
	}

	for _, ruleAST := range root.Children {
		lhsName := ruleAST.Children[0].Text
		if _, err := g.Symbols.RegisterNonTerminal(lhsName); err != nil {
			return nil, err
		}
	}

	for _, ruleAST := range root.Children {
		lhsName := ruleAST.Children[0].Text
		lhsSym, _ := g.Symbols.ToSymbol(lhsName)

		for _, altAST := range ruleAST.Children[1:] {
			prod, err := altAST2Production(g, lhsSym, altAST)
			if err != nil {
				return nil, err
			}
			g.Rules.Add(prod)
		}
	}

	if err := g.RebuildSymbolSets(); err != nil {
		return nil, err
	}
	return g, nil
}

func altAST2Production(g *Grammar, lhs Symbol, altAST *parser.AST) (Production, error) {
	if len(altAST.Children) == 1 && altAST.Children[0].Ty == parser.ASTTypeEpsilon {
		return NewProduction(lhs, []Symbol{g.Epsilon()})
	}

	rhs := make([]Symbol, 0, len(altAST.Children))
	for _, symAST := range altAST.Children {
		switch symAST.Ty {
		case parser.ASTTypeSymbol:
			sym, err := g.Symbols.RegisterNonTerminal(symAST.Text)
			if err != nil {
				return Production{}, err
			}
			if sym.IsTerminal() {
				return Production{}, fmt.Errorf("grammar: %q is used as both a terminal and a nonterminal", symAST.Text)
			}
			rhs = append(rhs, sym)
		case parser.ASTTypeString:
			if symAST.Text == EpsilonName {
				return Production{}, fmt.Errorf("grammar: %q is a reserved terminal name and cannot be used as a literal string", EpsilonName)
			}
			sym, err := g.Symbols.RegisterTerminal(symAST.Text)
			if err != nil {
				return Production{}, err
			}
			if sym.IsNonTerminal() {
				return Production{}, fmt.Errorf("grammar: %q is used as both a terminal and a nonterminal", symAST.Text)
			}
			rhs = append(rhs, sym)
		default:
			return Production{}, fmt.Errorf("grammar: unexpected AST node in alternative: %v", symAST.Ty)
		}
	}
	return NewProduction(lhs, rhs)
}
