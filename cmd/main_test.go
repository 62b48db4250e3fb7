package main

import (
	"strings"
	"testing"

	"github.com/advanderveer/go-test"

	"github.com/luca-patrignani/hash-ledger/ledger"
)

func TestParseArgs(t *testing.T) {
	n, err := parseArgs([]string{"ledger"})
	test.Ok(t, err)
	test.Equals(t, defaultBlocks, n)

	n, err = parseArgs([]string{"ledger", "5"})
	test.Ok(t, err)
	test.Equals(t, 5, n)

	for _, args := range [][]string{
		{"ledger", "zero"},
		{"ledger", "0"},
		{"ledger", "-2"},
		{"ledger", "1", "2"},
	} {
		_, err := parseArgs(args)
		test.Assert(t, err != nil, "should reject %v", args)
	}
}

func TestDemoPayloads(t *testing.T) {
	payloads := demoPayloads(4)
	test.Equals(t, 4, len(payloads))
	test.Equals(t, "Genesis: Alice send Bob 50 coins", payloads[0])
	test.Equals(t, "Bob send Charlie 31 coins", payloads[1])
	test.Equals(t, "Alice send Bob", strings.Join(strings.Fields(payloads[3])[:3], " "))
}

func TestBuildDemoChain(t *testing.T) {
	chain, err := buildDemoChain(demoPayloads(5), 1000)
	test.Ok(t, err)
	test.Equals(t, 5, chain.Len())
	test.Equals(t, uint64(1004), chain.Latest().Timestamp())
	test.Assert(t, chain.Verify().Valid, "demo chain should be valid")

	_, err = buildDemoChain(nil, 1000)
	test.Assert(t, err != nil, "should refuse an empty payload list")
}

func TestForgeBreaksSuccessorLink(t *testing.T) {
	chain, err := buildDemoChain(demoPayloads(3), 1000)
	test.Ok(t, err)

	blocks := chain.Blocks()
	forged := forge(blocks, 1, "Bob send Mallory 3000 coins")
	test.Assert(t, forged[1].IsValid(), "forged block is rebuilt, so it is internally valid")
	test.Equals(t, blocks[1].Payload(), chain.Blocks()[1].Payload())

	r := ledger.Validate(forged)
	test.Equals(t, false, r.Valid)
	test.Equals(t, []ledger.Failure{{Position: 2, Index: 3, Check: ledger.CheckLinkage}}, r.Failures())
}

func TestReportTable(t *testing.T) {
	chain, err := buildDemoChain(demoPayloads(2), 1000)
	test.Ok(t, err)

	data := reportTable(ledger.Validate(forge(chain.Blocks(), 1, "x")))
	test.Equals(t, 3, len(data))
	test.Equals(t, []string{"Block", "Linkage", "Ordering", "Integrity"}, data[0])
	test.Equals(t, []string{"2", "PASSED", "PASSED", "PASSED"}, data[2])

	gen := chain.Blocks()[0]
	test.Assert(t, strings.Contains(blockInfo(gen), ledger.ShortDigest(gen.Digest())), "block panel should show the short hash")
}
