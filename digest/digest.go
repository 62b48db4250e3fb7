// Package digest hashes byte sequences into the lowercase hex form used to
// link ledger blocks together.
package digest

import (
	"encoding/hex"

	"go.dedis.ch/kyber/v4/suites"
)

// Size is the length of a hex digest in characters.
const Size = 64

var suite suites.Suite = suites.MustFind("Ed25519")

// Sum returns the SHA-256 digest of data as a lowercase hex string.
// Any input is valid, including nil.
func Sum(data []byte) string {
	h := suite.Hash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// SumString is Sum over the bytes of s.
func SumString(s string) string {
	return Sum([]byte(s))
}
