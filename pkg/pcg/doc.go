// Package pcg holds the core types of the procedural map generation
// pipeline: tile classes, the TileGrid working structure with its
// iterative connectivity helpers, the seeded RandomSource every
// generator draws from, the shared connectivity-repair subroutine,
// and the error taxonomy the generators surface.
//
// Determinism is the central contract. Two generator invocations with
// identical seeds and identical themes produce byte-identical output;
// the order in which a generator draws from its RandomSource is part
// of that contract. Generators therefore never share a RandomSource,
// never consult a global PRNG, and never re-roll after a failure.
//
// The algorithmic generators live in the subpackages: blocks (sparse,
// packed, and BSP rectangle layout), maze, cave, levels (room carving
// and multi-room dungeons), terrain (wilderness features), zone
// (whole-zone assembly, door linking, towns), and themes (the XML
// theme records the pipeline consumes).
package pcg
