// GPR rule parsing and evaluation.
//
// Grammar (case-insensitive keywords, standard precedence OR < AND):
//
//	expr   := term { "or" term }
//	term   := factor { "and" factor }
//	factor := gene | "(" expr ")"
//
// Gene identifiers may contain letters, digits, '_', '.', '-' and ':'.
package model

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// gprNode is one node of a parsed GPR expression tree.
// op is opGene for leaves, opAnd/opOr for internal nodes.
type gprNode struct {
	op       gprOp
	gene     string     // leaf only
	children []*gprNode // internal only
}

type gprOp int

const (
	opGene gprOp = iota
	opAnd
	opOr
)

// GPR is an immutable parsed gene-protein-reaction rule.
type GPR struct {
	rule  string
	root  *gprNode
	genes []string // unique gene IDs, sorted
}

// ParseGPR parses a boolean gene association rule such as
// "(b0001 and b0002) or b0003". An empty or blank rule yields a nil GPR,
// meaning the reaction has no gene association.
//
// Returns ErrBadGPR (wrapped with position context) on malformed input.
// Complexity: O(len(rule))
func ParseGPR(rule string) (*GPR, error) {
	if strings.TrimSpace(rule) == "" {
		return nil, nil
	}
	p := &gprParser{tokens: tokenizeGPR(rule)}
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.tokens) {
		return nil, fmt.Errorf("%w: unexpected token %q", ErrBadGPR, p.tokens[p.pos])
	}

	// Collect the unique gene set once; rules are immutable afterwards.
	seen := make(map[string]struct{})
	collectGenes(root, seen)
	genes := make([]string, 0, len(seen))
	for g := range seen {
		genes = append(genes, g)
	}
	sort.Strings(genes)

	return &GPR{rule: rule, root: root, genes: genes}, nil
}

// String returns the original rule text.
func (g *GPR) String() string {
	if g == nil {
		return ""
	}

	return g.rule
}

// Genes returns the sorted unique gene IDs referenced by the rule.
func (g *GPR) Genes() []string {
	if g == nil {
		return nil
	}

	return g.genes
}

// Evaluate reports whether the rule still holds when every gene with
// knockouts[id] == true is removed. A nil GPR always evaluates true: a
// reaction with no gene association cannot be knocked out.
// Complexity: O(|rule|)
func (g *GPR) Evaluate(knockouts map[string]bool) bool {
	if g == nil {
		return true
	}

	return evalNode(g.root, knockouts)
}

// EvalWeights folds per-gene numeric scores through the rule, taking the
// minimum across AND branches and the maximum across OR branches — the
// standard GPR mapping from gene scores to a reaction score. Genes absent
// from weights contribute the missing value.
// Complexity: O(|rule|)
func (g *GPR) EvalWeights(weights map[string]float64, missing float64) float64 {
	if g == nil {
		return missing
	}

	return evalWeightsNode(g.root, weights, missing)
}

func evalNode(n *gprNode, knockouts map[string]bool) bool {
	switch n.op {
	case opGene:
		return !knockouts[n.gene]
	case opAnd:
		for _, c := range n.children {
			if !evalNode(c, knockouts) {
				return false
			}
		}
		return true
	default: // opOr
		for _, c := range n.children {
			if evalNode(c, knockouts) {
				return true
			}
		}
		return false
	}
}

func evalWeightsNode(n *gprNode, weights map[string]float64, missing float64) float64 {
	switch n.op {
	case opGene:
		if w, ok := weights[n.gene]; ok {
			return w
		}
		return missing
	case opAnd:
		v := math.Inf(1)
		for _, c := range n.children {
			v = math.Min(v, evalWeightsNode(c, weights, missing))
		}
		return v
	default: // opOr
		v := math.Inf(-1)
		for _, c := range n.children {
			v = math.Max(v, evalWeightsNode(c, weights, missing))
		}
		return v
	}
}

func collectGenes(n *gprNode, seen map[string]struct{}) {
	if n.op == opGene {
		seen[n.gene] = struct{}{}
		return
	}
	for _, c := range n.children {
		collectGenes(c, seen)
	}
}

// tokenizeGPR splits a rule into parens and identifiers. Keywords stay as
// plain tokens; the parser compares them case-insensitively.
func tokenizeGPR(rule string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range rule {
		switch {
		case r == '(' || r == ')':
			flush()
			tokens = append(tokens, string(r))
		case r == ' ' || r == '\t' || r == '\n':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()

	return tokens
}

type gprParser struct {
	tokens []string
	pos    int
}

func (p *gprParser) peek() (string, bool) {
	if p.pos >= len(p.tokens) {
		return "", false
	}

	return p.tokens[p.pos], true
}

// parseExpr := term { "or" term }
func (p *gprParser) parseExpr() (*gprNode, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	children := []*gprNode{left}
	for {
		tok, ok := p.peek()
		if !ok || !strings.EqualFold(tok, "or") {
			break
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return left, nil
	}

	return &gprNode{op: opOr, children: children}, nil
}

// parseTerm := factor { "and" factor }
func (p *gprParser) parseTerm() (*gprNode, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	children := []*gprNode{left}
	for {
		tok, ok := p.peek()
		if !ok || !strings.EqualFold(tok, "and") {
			break
		}
		p.pos++
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		children = append(children, right)
	}
	if len(children) == 1 {
		return left, nil
	}

	return &gprNode{op: opAnd, children: children}, nil
}

// parseFactor := gene | "(" expr ")"
func (p *gprParser) parseFactor() (*gprNode, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of rule", ErrBadGPR)
	}
	if tok == "(" {
		p.pos++
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing != ")" {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrBadGPR)
		}
		p.pos++
		return inner, nil
	}
	if tok == ")" || strings.EqualFold(tok, "and") || strings.EqualFold(tok, "or") {
		return nil, fmt.Errorf("%w: unexpected token %q", ErrBadGPR, tok)
	}
	p.pos++

	return &gprNode{op: opGene, gene: tok}, nil
}
