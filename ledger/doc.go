// Package ledger implements a hash-linked ledger: an ordered sequence of
// immutable blocks, each bound to its predecessor by a content digest.
//
// # Core Components
//
// Block: A single record holding an index, a timestamp, an opaque payload and
// the digest of the block before it. Its own digest is computed once, at
// construction.
//
// Chain: An append-only container of blocks that refuses anything that does
// not extend its tip.
//
// Validate: A single pass over any sequence of blocks that checks linkage,
// timestamp ordering and digest integrity for every block and reports each
// failure it finds.
//
// # Security Properties
//
//   - Tamper detection: changing any field of a block without recomputing its
//     digest makes the block fail its integrity check
//   - Linkage: replacing a block breaks the link stored in its successor
//
// # Usage
//
// Build a genesis block with NewBlockAt and the Genesis sentinel, wrap it in a
// Chain, then extend the chain with Next. Verify can be called at any time;
// an invalid chain is reported, never returned as an error.
package ledger
