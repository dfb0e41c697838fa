// Package pattern parses the small triple-pattern language used by package query.
//
// A pattern is a ";"-separated list of clauses, each shaped like an edge:
//
//	(a)-[e]->(b); (b)-[*="follows"]->(c)
//
// Every position holds a term:
//
//	(empty) or *     wildcard, binds nothing
//	name             binds the variable "name"; repeated names must agree
//	name="lit"       binds and requires the string form to equal lit
//	name~"sub"       binds and requires the string form to contain sub
//	="lit", *~"sub"  filter without binding
//
// Literals may use single or double quotes; a backslash escapes the next rune.
// Parse errors wrap ErrSyntax and report the byte offset.
//
// The package only produces an AST (Pattern, Clause, Term). Evaluation against
// a graph lives in package query.
package pattern
