// Package query finds subgraph matches of a pattern.Pattern in a core.Graph.
//
// Each clause of a pattern is matched against the edge catalog; clauses are
// then joined on variables they share, so
//
//	(a)-[]->(b); (b)-[]->(c)
//
// enumerates every two-hop path a→b→c. Node positions compare against the
// fmt.Sprint form of the key, label positions against the label itself.
//
//	seq, err := query.FindString(g, `(a)-[e~"follow"]->(b)`)
//	for b := range seq {
//		src, _ := query.Node[string](b, "a")
//		lbl, _ := query.Label(b, "e")
//		...
//	}
package query
