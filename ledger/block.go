package ledger

import (
	"fmt"
	"time"

	"github.com/luca-patrignani/hash-ledger/digest"
)

// Genesis is the previous digest carried by the first block of a chain.
const Genesis = "0"

// displayDigestLen is the number of hex characters String shows per digest.
const displayDigestLen = 16

// Block is a single ledger record. A Block is a value: once built by
// NewBlockAt its digest covers every other field.
type Block struct {
	index      uint32
	timestamp  uint64
	payload    string
	prevDigest string
	digest     string
}

// NewBlockAt builds a block with a caller supplied timestamp (seconds since
// the unix epoch) and computes its digest.
func NewBlockAt(index uint32, timestamp uint64, payload, prevDigest string) Block {
	b := Block{
		index:      index,
		timestamp:  timestamp,
		payload:    payload,
		prevDigest: prevDigest,
	}
	b.digest = calculateDigest(b)
	return b
}

// NewBlock is NewBlockAt stamped with the current wall clock time.
func NewBlock(index uint32, payload, prevDigest string) Block {
	return NewBlockAt(index, uint64(time.Now().Unix()), payload, prevDigest)
}

func (b Block) Index() uint32      { return b.index }
func (b Block) Timestamp() uint64  { return b.timestamp }
func (b Block) Payload() string    { return b.payload }
func (b Block) PrevDigest() string { return b.prevDigest }
func (b Block) Digest() string     { return b.digest }

// IsValid recomputes the digest from the current fields and reports whether
// it matches the stored one.
func (b Block) IsValid() bool {
	return calculateDigest(b) == b.digest
}

// String renders the block for a human, shortening long digests.
func (b Block) String() string {
	return fmt.Sprintf("--- Block %d ---\n  Time: %d\n  Data: %s\n  Previous Hash: %s\n  Hash: %s\n  Is Valid?: %t\n",
		b.index,
		b.timestamp,
		b.payload,
		ShortDigest(b.prevDigest),
		ShortDigest(b.digest),
		b.IsValid(),
	)
}

// ShortDigest cuts d to its first 16 characters followed by "..." when it is
// longer than that.
func ShortDigest(d string) string {
	if len(d) > displayDigestLen {
		return d[:displayDigestLen] + "..."
	}
	return d
}

// calculateDigest hashes index, timestamp, payload and previous digest,
// concatenated in that order without separators.
func calculateDigest(b Block) string {
	data := fmt.Sprintf("%d%d%s%s",
		b.index,
		b.timestamp,
		b.payload,
		b.prevDigest,
	)
	return digest.SumString(data)
}
