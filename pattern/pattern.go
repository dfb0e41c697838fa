// SPDX-License-Identifier: MIT
//
// File: pattern.go
// Role: AST of the triple-pattern language and its term predicates.

package pattern

import (
	"errors"
	"strconv"
	"strings"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("pattern: syntax error")

// Op is the predicate attached to a term.
type Op int

const (
	// OpNone matches any value.
	OpNone Op = iota
	// OpEqual matches values whose string form equals Term.Value.
	OpEqual
	// OpContains matches values whose string form contains Term.Value.
	OpContains
)

// String returns the operator as written in the source.
func (o Op) String() string {
	switch o {
	case OpEqual:
		return "="
	case OpContains:
		return "~"
	default:
		return ""
	}
}

// Term is one position of a clause: an optional variable plus an optional predicate.
// A term with no variable is a wildcard; its predicate, if any, still filters.
type Term struct {
	Var   string
	Op    Op
	Value string
}

// Wildcard reports whether the term binds no variable.
func (t Term) Wildcard() bool { return t.Var == "" }

// Match applies the predicate to the string form s.
func (t Term) Match(s string) bool {
	switch t.Op {
	case OpEqual:
		return s == t.Value
	case OpContains:
		return strings.Contains(s, t.Value)
	default:
		return true
	}
}

// String renders the term back to source form.
func (t Term) String() string {
	var b strings.Builder
	b.WriteString(t.Var)
	if t.Op != OpNone {
		b.WriteString(t.Op.String())
		b.WriteString(strconv.Quote(t.Value))
	}

	return b.String()
}

// Clause is one (src)-[label]->(dst) triple pattern.
type Clause struct {
	Src   Term
	Label Term
	Dst   Term
}

// String renders the clause back to source form.
func (c Clause) String() string {
	return "(" + c.Src.String() + ")-[" + c.Label.String() + "]->(" + c.Dst.String() + ")"
}

// Pattern is a conjunction of clauses joined on shared variable names.
type Pattern struct {
	Clauses []Clause
}

// String renders the pattern back to source form.
func (p Pattern) String() string {
	parts := make([]string, len(p.Clauses))
	for i, c := range p.Clauses {
		parts[i] = c.String()
	}

	return strings.Join(parts, "; ")
}

// Vars returns the variable names in order of first appearance.
func (p Pattern) Vars() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, c := range p.Clauses {
		for _, t := range [...]Term{c.Src, c.Label, c.Dst} {
			if t.Wildcard() {
				continue
			}
			if _, ok := seen[t.Var]; ok {
				continue
			}
			seen[t.Var] = struct{}{}
			out = append(out, t.Var)
		}
	}

	return out
}
