// Package bosm implements the BOS-M (Bit-packed Outlier-Split with Median,
// with Run-Length extension) integer block codec.
//
// BOS-M compresses sequences of 32-bit signed integers into a compact byte
// stream and restores them losslessly. Each block is processed in four
// stages:
//
//  1. DeltaRLE subtracts the block minimum and collapses runs of 8 or more
//     repeated deltas into a single (start, length) side-table entry.
//  2. MedianSplit partitions the collapsed deltas into left-outlier,
//     normal, and right-outlier buckets around the delta median, choosing
//     the split that minimizes total packed bits.
//  3. The classified values are bit-packed at per-class widths through a
//     single bit cursor. Outlier index lists, when used instead of the
//     bitmap, are packed with two disciplines: P8 (aligned groups of 8) for
//     the bulk of a list, and a streaming tail-pack for the remainder.
//  4. StreamCodec frames a sequence of blocks with a length prefix, a block
//     size prefix, and a tail policy for the final partial block.
//
// The package implements the "improved" wire layout described in the
// design notes: within a block, left-outlier, right-outlier, and normal
// values are interleaved in original collapsed-position order through a
// single bit cursor, rather than written as three separate per-class
// streams. See DESIGN.md for the rationale.
package bosm
