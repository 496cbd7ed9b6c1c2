// Package seqalign is a toolkit for pairwise alignment of symbolic
// sequences — from scoring models to dynamic-programming matrix fill,
// traceback and summary queries.
//
// 🚀 What is seqalign?
//
//	A small, focused library that brings together:
//		• Scoring models: match/mismatch/gap schemes & CSV-loaded substitution tables
//		• Matrix fill: global (Needleman-Wunsch) & local (Smith-Waterman) variants
//		• Traceback: deterministic reconstruction of one optimal alignment
//		• Query modes: similarity, edit distance, alignment, composite summary
//		• Translation: RNA triplets → amino acids (standard genetic code)
//
// ✨ Why choose seqalign?
//
//   - One recurrence, both directions – the fill is parametric over the
//     objective, so similarity maximization and edit-cost minimization
//     share the same code path
//   - Deterministic output – documented tie-break (diagonal, up, left)
//     makes alignments reproducible across runs and machines
//   - Memory-aware – full-matrix mode for traceback, rolling two-row
//     mode when only the score matters
//
// Everything is organized under five subpackages plus a CLI:
//
//	scoring/      — cost models: Scheme, Table, Objective
//	align/        — matrix fill, traceback, rendering
//	analyzer/     — the four query modes over one configured pair of models
//	translate/    — RNA → amino-acid lookup
//	config/       — viper-backed CLI settings
//	cmd/seqalign/ — cobra command-line interface
//
// Quick example:
//
//	an := analyzer.New()
//	sum, _ := an.Summary("AGCT", "AGGT")
//	// sum.Similarity == 2, sum.EditDistance == 1,
//	// sum.Global aligns end-to-end, sum.Local keeps the best region
//
// See each package's doc.go for algorithmic details and complexity
// contracts.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
