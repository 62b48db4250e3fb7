package ledger

import "log/slog"

// BlockCheck holds the outcome of the three checks run against one block.
// Ordering is always true for the block at position 0.
type BlockCheck struct {
	Position  int
	Index     uint32
	Linkage   bool
	Ordering  bool
	Integrity bool
}

// Ok reports whether every check passed.
func (c BlockCheck) Ok() bool {
	return c.Linkage && c.Ordering && c.Integrity
}

// Validate checks every block in blocks and never stops at the first failure.
// The first block must point at Genesis; every later block must point at the
// digest of its predecessor and carry a strictly later timestamp. Every block,
// the first included, must match its own digest. An empty sequence is valid.
func Validate(blocks []Block) Report {
	r := Report{
		Valid:  true,
		Blocks: make([]BlockCheck, 0, len(blocks)),
	}
	for i, b := range blocks {
		c := BlockCheck{
			Position: i,
			Index:    b.index,
			Ordering: true,
		}
		if i == 0 {
			c.Linkage = b.prevDigest == Genesis
		} else {
			prev := blocks[i-1]
			c.Linkage = b.prevDigest == prev.digest
			c.Ordering = b.timestamp > prev.timestamp
		}
		c.Integrity = b.IsValid()

		r.Valid = r.Valid && c.Ok()
		r.Blocks = append(r.Blocks, c)
	}
	return r
}

// CheckChain validates blocks, writes the report to logger and returns the
// verdict. A nil logger falls back to slog.Default.
func CheckChain(blocks []Block, logger *slog.Logger) bool {
	r := Validate(blocks)
	r.Log(logger)
	return r.Valid
}
