// Package stats defines the per-query stats record and an
// append-only JSONL writer for it. It is the boundary between the decision
// pipeline and the on-disk artifact a caller inspects after the fact — the
// pipeline never reads its own stats back, it only ever appends.
package stats
