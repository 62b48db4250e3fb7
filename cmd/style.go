package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/hash-ledger/ledger"
)

func printBlocks(blocks []ledger.Block) {
	var panels []pterm.Panel
	for _, b := range blocks {
		panels = append(panels, pterm.Panel{Data: blockInfo(b)})
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()
}

func blockInfo(b ledger.Block) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2).WithTopPadding(1).WithBottomPadding(1)
	var valid string
	if b.IsValid() {
		valid = pterm.LightGreen("Valid")
	} else {
		valid = pterm.LightRed("Invalid")
	}
	return pbox.WithTitle(pterm.LightYellow("|BLOCK " + strconv.FormatUint(uint64(b.Index()), 10) + "|")).WithTitleTopCenter().Sprintf(
		"Time: %d\nData: %s\nPrevious Hash: %s\nHash: %s\n%s",
		b.Timestamp(),
		b.Payload(),
		ledger.ShortDigest(b.PrevDigest()),
		ledger.ShortDigest(b.Digest()),
		valid,
	)
}

func reportTable(r ledger.Report) pterm.TableData {
	data := pterm.TableData{{"Block", "Linkage", "Ordering", "Integrity"}}
	for _, c := range r.Blocks {
		data = append(data, []string{
			strconv.FormatUint(uint64(c.Index), 10),
			checkCell(c.Linkage),
			checkCell(c.Ordering),
			checkCell(c.Integrity),
		})
	}
	return data
}

func checkCell(ok bool) string {
	if ok {
		return "PASSED"
	}
	return "FAILED"
}

func printReport(r ledger.Report) {
	pterm.DefaultTable.WithHasHeader().WithData(reportTable(r)).Render()
	if r.Valid {
		pterm.Success.Printfln("BLOCKCHAIN STATUS: %s", r.Verdict())
		return
	}
	for _, f := range r.Failures() {
		pterm.Warning.Println(f.String())
	}
	pterm.Error.Printfln("BLOCKCHAIN STATUS: %s", r.Verdict())
}
