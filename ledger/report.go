package ledger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Check names one of the three per block checks.
type Check string

const (
	CheckLinkage   Check = "linkage"
	CheckOrdering  Check = "ordering"
	CheckIntegrity Check = "integrity"
)

// Failure is a single failed check on a single block.
type Failure struct {
	Position int
	Index    uint32
	Check    Check
}

func (f Failure) String() string {
	switch f.Check {
	case CheckLinkage:
		if f.Position == 0 {
			return fmt.Sprintf("block %d: genesis block should have previous hash %q", f.Index, Genesis)
		}
		return fmt.Sprintf("block %d: incorrect previous hash", f.Index)
	case CheckOrdering:
		return fmt.Sprintf("block %d: timestamp is not after the previous block", f.Index)
	default:
		return fmt.Sprintf("block %d: incorrect hash", f.Index)
	}
}

// Report is the result of Validate.
type Report struct {
	Valid  bool
	Blocks []BlockCheck
}

// Failures lists every failed check in chain order.
func (r Report) Failures() []Failure {
	var fs []Failure
	for _, c := range r.Blocks {
		if !c.Linkage {
			fs = append(fs, Failure{Position: c.Position, Index: c.Index, Check: CheckLinkage})
		}
		if !c.Ordering {
			fs = append(fs, Failure{Position: c.Position, Index: c.Index, Check: CheckOrdering})
		}
		if !c.Integrity {
			fs = append(fs, Failure{Position: c.Position, Index: c.Index, Check: CheckIntegrity})
		}
	}
	return fs
}

// Failed reports whether the block at position failed the given check.
func (r Report) Failed(position int, check Check) bool {
	if position < 0 || position >= len(r.Blocks) {
		return false
	}
	c := r.Blocks[position]
	switch check {
	case CheckLinkage:
		return !c.Linkage
	case CheckOrdering:
		return !c.Ordering
	case CheckIntegrity:
		return !c.Integrity
	}
	return false
}

// Verdict is "VALID" or "INVALID".
func (r Report) Verdict() string {
	if r.Valid {
		return "VALID"
	}
	return "INVALID"
}

func (r Report) String() string {
	var sb strings.Builder
	for _, c := range r.Blocks {
		fmt.Fprintf(&sb, "block %d: linkage %s, ordering %s, integrity %s\n",
			c.Index, passed(c.Linkage), passed(c.Ordering), passed(c.Integrity))
	}
	fmt.Fprintf(&sb, "chain: %s\n", r.Verdict())
	return sb.String()
}

// Log writes one error record per failure, one info record per passing
// block and a final verdict.
func (r Report) Log(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	failures := r.Failures()
	for _, f := range failures {
		logger.Error(f.String(), "position", f.Position, "index", f.Index, "check", string(f.Check))
	}
	for _, c := range r.Blocks {
		if c.Ok() {
			logger.Info(fmt.Sprintf("block %d validation: PASSED", c.Index), "position", c.Position)
		}
	}
	if r.Valid {
		logger.Info("blockchain status: "+r.Verdict(), "blocks", len(r.Blocks))
	} else {
		logger.Error("blockchain status: "+r.Verdict(), "blocks", len(r.Blocks), "failures", len(failures))
	}
}

func passed(ok bool) string {
	if ok {
		return "ok"
	}
	return "FAILED"
}
