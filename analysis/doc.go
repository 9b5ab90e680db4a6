// Package analysis provides best-effort heuristics over letter text:
// keyword extraction, structural scoring, tone classification, and
// type/industry/level detection.
//
// Every function in this package degrades instead of failing. Malformed or
// empty input yields the documented defaults (score 0, tone professional,
// empty keyword list) so suggestion and comparison features stay available
// on edge-case content.
//
// Text is normalized to Unicode NFC before matching so composed and
// decomposed accented forms (é vs e+ ́) compare equal.
package analysis
