package ledger

import "errors"

var (
	ErrBadGenesis = errors.New("genesis block must have index 1 and previous hash \"0\"")
	ErrBadIndex   = errors.New("index doesn't follow the tip")
	ErrBadLink    = errors.New("previous hash doesn't match the tip")
	ErrBadOrder   = errors.New("timestamp didn't come after the tip's timestamp")
	ErrBadDigest  = errors.New("hash doesn't match block contents")
	ErrNoBlock    = errors.New("block doesn't exist")
)
