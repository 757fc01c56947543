// Package textmatch implements the diacritic-insensitive matching used by
// the tool workspace: normalization, tokenization, haystack building and a
// 0-100 fuzzy relevance score.
//
// Scores combine four signals over normalized text: whole-query substring
// containment, per-token coverage, token prefixes and the distance between
// the first and last query tokens in the candidate. The constants are tuned
// against the existing tool catalog and must not drift, since recorded
// rankings depend on them.
package textmatch
