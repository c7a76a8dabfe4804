// Package frame implements the tagged, column-oriented table the
// cleaning pipeline operates on.
//
// A Table is built through a Builder from column specs and tagged cells.
// Every column carries exactly one Kind (text, int, float, or category)
// declared at construction time, and all accessors are typed against
// that kind: asking for the wrong view fails with a kind mismatch error
// instead of silently coercing values.
//
// Any cell may be absent. Absence is tracked per cell in a validity
// mask, so a missing integer never needs a sentinel value and a missing
// label never needs an out-of-set string. Tables are immutable: fills,
// column additions, and projections all return a new Table and leave
// the receiver unchanged, which keeps pipeline steps freely composable
// and repeatable.
package frame
