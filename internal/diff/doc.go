// Package diff computes word-level and line-level diffs between the two sides of a failed comparison.
//
// Two granularities serve two rendering paths:
//   - WordDiff diffs two single-line strings by word tokens and renders each side with the tokens unique to that side highlighted. It backs the compact expansion
//     (left and right on one line) and the intra-line highlighting of 1:1 line replacements.
//   - DiffLines diffs two multi-line strings by whole lines, then regroups the raw result: a single left line answered by a single right line becomes a
//     LineDifferent pair (rendered as an interleaved word diff), while any larger replacement stays as separate removed/added lines.
//
// Invariants:
//   - A WordDiff's ranges partition each input exactly: concatenating the range substrings reproduces the input string.
//   - DiffLines yields LineDifferent only for exactly-1:1 replacements; two or more left lines, or one left line answered by several right lines, never merge.
//   - Identical inputs yield zero highlighted bytes (word diff) and only LineEqual entries (line diff).
//
// Rendering writes into a termwriter.Writer: left-side text in cyan, right-side text in yellow, changed words inverted (black on the side's color), common lines
// dimmed. WriteInterleaved leaves the last rendered line pending so the caller keeps control of the final flush.
package diff
