// Package scoring defines the cost models consulted by the alignment
// matrix fill: a three-value Scheme (match / mismatch / gap), a Table
// loaded from an external substitution file, and the Objective that
// selects the optimization direction (maximize similarity, minimize
// edit cost).
//
// Key properties:
//   - Models are total functions over all byte symbols: unknown symbols
//     behave as ordinary non-equal comparisons, never errors.
//   - Models are immutable once constructed and safe to share between
//     computations.
//   - The gap symbol is part of the model: Score(a, gap) and
//     Score(gap, b) yield the model's gap cost, so loaded tables may
//     carry per-symbol gap costs.
//
// Two built-in schemes cover the common cases:
//
//	scoring.DefaultSimilarity() // match=1, mismatch=-1, gap=-1 → Maximize
//	scoring.DefaultEditCost()   // match=0, mismatch=1,  gap=1  → Minimize
//
// See align for the matrix fill that consumes these models.
package scoring
