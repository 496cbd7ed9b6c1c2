// Package analyzer is the orchestration layer over scoring and align:
// one Analyzer value answers the four pairwise query modes —
// Similarity, EditDistance, Alignment and the composite Summary —
// dispatching each to the matrix fill with the right model and
// objective (similarity maximizes, edit cost minimizes).
//
// It adds no algorithmic content of its own: the recurrences, the
// tie-break policy and the error taxonomy all live in align.
//
// Usage:
//
//	an := analyzer.New() // built-in default schemes
//	sum, err := an.Summary("AGCT", "AGGT")
//
//	// or with a CSV-loaded substitution table:
//	an = analyzer.New(analyzer.WithSimilarityModel(table))
package analyzer
