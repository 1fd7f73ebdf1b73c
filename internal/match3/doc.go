// Package match3 implements the candy grid engine: the playable-cell and item model,
// same-colour run detection, fusion of runs into special items, gravity after removals,
// refill of empty cells and the cascade loop that ties them together for a single move.
//
// Every operation takes explicit snapshots (Items, Tiles) and returns freshly built
// ones, so callers can detect what changed by comparing snapshots. The only state the
// engine keeps lives in a caller-held Session. Nothing here logs, renders or does I/O.
package match3
