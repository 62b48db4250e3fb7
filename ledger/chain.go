package ledger

import (
	"fmt"
	"sync"
)

// Chain is an append-only sequence of blocks. Reads may happen from many
// goroutines; appends are serialized.
type Chain struct {
	mu     sync.RWMutex
	blocks []Block
}

// NewChain creates a chain rooted at genesis. The genesis block must have
// index 1, point at Genesis and match its own digest.
func NewChain(genesis Block) (*Chain, error) {
	if genesis.index != 1 || genesis.prevDigest != Genesis {
		return nil, ErrBadGenesis
	}
	if !genesis.IsValid() {
		return nil, fmt.Errorf("invalid genesis block: %w", ErrBadDigest)
	}
	return &Chain{blocks: []Block{genesis}}, nil
}

// Append adds b after the current tip. It returns an error if b does not
// extend the tip: wrong index, wrong previous hash, a timestamp that is not
// strictly later, or a digest that doesn't match.
func (c *Chain) Append(b Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := validateNext(b, c.blocks[len(c.blocks)-1]); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	c.blocks = append(c.blocks, b)
	return nil
}

// Next builds the successor of the tip with the given payload and timestamp
// and appends it.
func (c *Chain) Next(payload string, timestamp uint64) (Block, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	latest := c.blocks[len(c.blocks)-1]
	b := NewBlockAt(latest.index+1, timestamp, payload, latest.digest)
	if err := validateNext(b, latest); err != nil {
		return Block{}, fmt.Errorf("invalid block: %w", err)
	}
	c.blocks = append(c.blocks, b)
	return b, nil
}

// Latest returns the most recently added block.
func (c *Chain) Latest() Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.blocks[len(c.blocks)-1]
}

// ByIndex returns the block carrying the given index.
func (c *Chain) ByIndex(index uint32) (Block, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos := int(index) - 1
	if index == 0 || pos >= len(c.blocks) {
		return Block{}, fmt.Errorf("index %d: %w", index, ErrNoBlock)
	}
	return c.blocks[pos], nil
}

// Len returns the number of blocks, genesis included.
func (c *Chain) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.blocks)
}

// Blocks returns a copy of the blocks in chain order.
func (c *Chain) Blocks() []Block {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Verify validates the whole chain.
func (c *Chain) Verify() Report {
	return Validate(c.Blocks())
}

// validateNext verifies that current extends previous: index continuity,
// previous hash linkage, timestamp order and its own digest.
func validateNext(current, previous Block) error {
	if current.index != previous.index+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrBadIndex, previous.index+1, current.index)
	}
	if current.prevDigest != previous.digest {
		return fmt.Errorf("%w: expected %s, got %s", ErrBadLink, previous.digest, current.prevDigest)
	}
	if current.timestamp <= previous.timestamp {
		return fmt.Errorf("%w: %d is not after %d", ErrBadOrder, current.timestamp, previous.timestamp)
	}
	if !current.IsValid() {
		return ErrBadDigest
	}
	return nil
}
