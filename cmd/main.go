package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/hash-ledger/ledger"
)

const defaultBlocks = 3

func main() {
	n, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [blocks]\n%v\n", os.Args[0], err)
		os.Exit(1)
	}

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("H", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ash ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("L", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("edger", pterm.FgDarkGray.ToStyle()),
	).Render()

	chain, err := buildDemoChain(demoPayloads(n), uint64(time.Now().Unix()))
	if err != nil {
		logger.Error("failed to build demo chain", "error", err.Error())
		os.Exit(1)
	}

	pterm.DefaultSection.Println("Blockchain contents")
	printBlocks(chain.Blocks())

	pterm.DefaultSection.Println("Checking blockchain integrity")
	report := chain.Verify()
	report.Log(logger)
	printReport(report)

	pterm.DefaultSection.Println("Tamper detection")
	blocks := chain.Blocks()
	if len(blocks) < 2 {
		pterm.Info.Println("A single block has no successor to break, skipping")
		return
	}
	forged := forge(blocks, 1, "Bob send Mallory 3000 coins")
	pterm.Info.Printfln("Rewrote block %d and recomputed its hash", forged[1].Index())
	printBlocks(forged[:2])
	forgedReport := ledger.Validate(forged)
	forgedReport.Log(logger)
	printReport(forgedReport)
}

// parseArgs reads the optional block count.
func parseArgs(args []string) (int, error) {
	switch len(args) {
	case 1:
		return defaultBlocks, nil
	case 2:
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, fmt.Errorf("invalid block count %q: %w", args[1], err)
		}
		if n < 1 {
			return 0, fmt.Errorf("block count must be at least 1, got %d", n)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("expected at most one argument, got %d", len(args)-1)
	}
}

var demoNames = []string{"Alice", "Bob", "Charlie"}

// demoPayloads returns n transfer descriptions, the first marked as genesis.
func demoPayloads(n int) []string {
	payloads := make([]string, n)
	amount := 50
	for i := range payloads {
		from := demoNames[i%len(demoNames)]
		to := demoNames[(i+1)%len(demoNames)]
		payloads[i] = fmt.Sprintf("%s send %s %d coins", from, to, amount)
		amount = amount*3/5 + 1
	}
	payloads[0] = "Genesis: " + payloads[0]
	return payloads
}

// buildDemoChain chains payloads one second apart starting at start.
func buildDemoChain(payloads []string, start uint64) (*ledger.Chain, error) {
	if len(payloads) == 0 {
		return nil, fmt.Errorf("no payloads")
	}
	chain, err := ledger.NewChain(ledger.NewBlockAt(1, start, payloads[0], ledger.Genesis))
	if err != nil {
		return nil, err
	}
	for i, p := range payloads[1:] {
		if _, err := chain.Next(p, start+uint64(i)+1); err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// forge returns a copy of blocks where the block at pos is rebuilt with a new
// payload. The rebuilt block is internally valid but its successor no longer
// links to it.
func forge(blocks []ledger.Block, pos int, payload string) []ledger.Block {
	out := make([]ledger.Block, len(blocks))
	copy(out, blocks)
	b := out[pos]
	out[pos] = ledger.NewBlockAt(b.Index(), b.Timestamp(), payload, b.PrevDigest())
	return out
}
