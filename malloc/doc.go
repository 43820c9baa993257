// Package malloc supplies region based memory management, arenas, for
// phase scoped allocations. Note that Types and Functions exported by
// this package are not thread safe.
//
//   - Memory is reserved from the OS in page granular blocks and
//     handed out as 16-byte aligned sub-slices.
//   - Blocks are never freed individually. The unit of reclamation is
//     the whole arena, either Reset (rewind and keep reservations) or
//     Release (return everything to the OS).
//   - "fixed" arenas reserve one block up front, 64KB by default, and
//     fail allocation once it is full.
//   - "dynamic" arenas start with a single page and grow on demand.
//     With the default "chain" strategy new chunks are appended and
//     filled memory never moves, so blocks handed out before a growth
//     stay valid until Reset or Release. With the "copy" strategy the
//     arena keeps one contiguous block and moves the filled bytes into
//     a bigger reservation on growth, invalidating every block handed
//     out earlier.
//
// Blocks returned by Alloc are borrowed views into arena owned memory.
// Reading a block after a Reset and further allocations yields stale
// data, and a released arena must not be touched again. The arena does
// not detect either misuse.
package malloc
