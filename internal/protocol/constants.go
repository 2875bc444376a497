package protocol

// Programmer states, sent as the "state" field of every command envelope.
// The firmware dispatches on this value.
const (
	StateRead       = 1
	StateWrite      = 2
	StateErase      = 3
	StateCheckBlank = 4
	StateReadVPE    = 10
	StateReadVPP    = 11
	StateReadVCC    = 12
	StateVersion    = 13
	StateConfig     = 14
)

// BlockSize is the fixed chunk size for bulk chip data in both directions.
const BlockSize = 256
